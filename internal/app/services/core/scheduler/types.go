// Package scheduler implements the automatic time-slot scheduling engine:
// it scans the calendar, persisted schedules, and task deadlines over a
// rolling horizon, computes free time inside the daily work window, scores
// candidate slots, and books the best one.
package scheduler

import (
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
)

// Interval is a busy time range with a provenance tag. The tag is
// diagnostic only; no logic branches on it after construction.
type Interval struct {
	Start  time.Time
	End    time.Time
	Source string
}

// Candidate is a scored slot proposal. End is always Start plus the
// requested duration.
type Candidate struct {
	Start time.Time
	End   time.Time
	Score float64
}

// WorkWindow is the daily schedulable span in WIB. Time outside it is
// neither busy nor free; it does not exist for scheduling purposes.
type WorkWindow struct {
	StartHour int
	EndHour   int
}

// DefaultWorkWindow is the product's fixed 09:00-22:00 WIB window.
var DefaultWorkWindow = WorkWindow{StartHour: 9, EndHour: 22}

func (w WorkWindow) DayStart(day time.Time) time.Time {
	local := day.In(utils.TimezoneWIB)
	return time.Date(local.Year(), local.Month(), local.Day(), w.StartHour, 0, 0, 0, utils.TimezoneWIB)
}

func (w WorkWindow) DayEnd(day time.Time) time.Time {
	local := day.In(utils.TimezoneWIB)
	return time.Date(local.Year(), local.Month(), local.Day(), w.EndHour, 0, 0, 0, utils.TimezoneWIB)
}
