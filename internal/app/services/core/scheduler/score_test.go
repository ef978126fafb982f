package scheduler

import (
	"testing"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
)

// Wednesday morning, well before the work window opens.
var scoreNow = time.Date(2025, time.September, 10, 8, 30, 0, 0, utils.TimezoneWIB)

func TestScoreSlot_WeekdayEvening(t *testing.T) {
	// +2 evening, +3 zero deadlines, +0.6 same-day proximity, +0.6 capped headroom.
	score := ScoreSlot(scoreNow, wib(10, 19, 0), 60, 0, DefaultWorkWindow)

	assert.InDelta(t, 6.2, score, 1e-9)
}

func TestScoreSlot_WeekendBonus(t *testing.T) {
	saturday := wib(13, 19, 0)
	thursday := wib(11, 19, 0)

	saturdayScore := ScoreSlot(scoreNow, saturday, 60, 0, DefaultWorkWindow)
	thursdayScore := ScoreSlot(scoreNow, thursday, 60, 0, DefaultWorkWindow)

	assert.Greater(t, saturdayScore, thursdayScore)
	// +3 weekend, +2 evening, +3 deadlines, +0.3 proximity (3 days out), +0.6 headroom.
	assert.InDelta(t, 8.9, saturdayScore, 1e-9)
}

func TestScoreSlot_AfternoonBandBelowEvening(t *testing.T) {
	afternoon := ScoreSlot(scoreNow, wib(10, 14, 0), 60, 0, DefaultWorkWindow)
	evening := ScoreSlot(scoreNow, wib(10, 19, 0), 60, 0, DefaultWorkWindow)

	assert.Greater(t, evening, afternoon)
	assert.InDelta(t, 5.2, afternoon, 1e-9)
}

func TestScoreSlot_EarlyMorningPenalty(t *testing.T) {
	// -1 early, +3 deadlines, +0.6 proximity, +0.6 headroom.
	score := ScoreSlot(scoreNow, wib(10, 9, 0), 60, 0, DefaultWorkWindow)

	assert.InDelta(t, 3.8, score, 1e-9)
}

func TestScoreSlot_HourTwentyOneGetsBonusAndLatePenalty(t *testing.T) {
	// +2 evening band includes 21, -1 late, +3 deadlines, +0.6 proximity,
	// zero headroom left for a one-hour slot.
	score := ScoreSlot(scoreNow, wib(10, 21, 0), 60, 0, DefaultWorkWindow)

	assert.InDelta(t, 4.6, score, 1e-9)
}

func TestScoreSlot_DeadlineDensity(t *testing.T) {
	none := ScoreSlot(scoreNow, wib(10, 19, 0), 60, 0, DefaultWorkWindow)
	two := ScoreSlot(scoreNow, wib(10, 19, 0), 60, 2, DefaultWorkWindow)
	five := ScoreSlot(scoreNow, wib(10, 19, 0), 60, 5, DefaultWorkWindow)

	assert.InDelta(t, 3, none-two, 1e-9)
	assert.InDelta(t, 1, two-five, 1e-9)
}

func TestScoreSlot_ProximityFadesOutAtSixDays(t *testing.T) {
	sameDay := ScoreSlot(scoreNow, wib(10, 19, 0), 60, 0, DefaultWorkWindow)
	sixDaysOut := ScoreSlot(scoreNow, wib(16, 19, 0), 60, 0, DefaultWorkWindow)

	assert.InDelta(t, 0.6, sameDay-sixDaysOut, 1e-9)
	assert.InDelta(t, 5.6, sixDaysOut, 1e-9)
}

func TestScoreSlot_NegativeHeadroomIsNotClamped(t *testing.T) {
	// A two-hour slot starting at 21:00 overruns the window by an hour:
	// +2-1 hour terms, +3 deadlines, +0.6 proximity, -0.3 headroom.
	score := ScoreSlot(scoreNow, wib(10, 21, 0), 120, 0, DefaultWorkWindow)

	assert.InDelta(t, 4.3, score, 1e-9)
}
