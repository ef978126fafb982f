package scheduler

import (
	"math"
	"time"
)

// ScoreSlot rates a candidate start time for an activity of the given
// duration. Higher is better. Weekend evenings with few deadlines score
// highest; late-night and early-morning starts are penalised.
func ScoreSlot(now, slotStart time.Time, durationMinutes, deadlineCount int, window WorkWindow) float64 {
	score := 0.0

	local := slotStart.In(now.Location())
	weekday := local.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		score += 3
	}

	hour := local.Hour()
	switch {
	case hour >= 18 && hour <= 21:
		score += 2
	case hour >= 13 && hour < 18:
		score += 1
	}
	if hour < 10 {
		score -= 1
	}
	if hour >= 21 {
		score -= 1
	}

	if deadlineCount < 3 {
		score += float64(3 - deadlineCount)
	}

	daysFromNow := int(math.Floor(slotStart.Sub(now).Hours() / 24))
	if daysFromNow < 6 {
		score += 0.1 * float64(6-daysFromNow)
	}

	headroom := window.DayEnd(slotStart).Sub(slotStart).Minutes() - float64(durationMinutes)
	score += 0.005 * math.Min(120, headroom)

	return score
}
