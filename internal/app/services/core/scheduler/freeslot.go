package scheduler

import (
	"sort"
	"time"
)

// DayFreeSlots subtracts merged busy intervals from one day's work window
// and returns the disjoint free intervals, ascending. Busy time is clipped
// to the window first; intervals not touching the day are ignored.
func DayFreeSlots(day time.Time, busy []Interval, window WorkWindow) []Interval {
	dayStart := window.DayStart(day)
	dayEnd := window.DayEnd(day)

	relevant := make([]Interval, 0, len(busy))
	for _, interval := range busy {
		if !interval.End.After(dayStart) || !interval.Start.Before(dayEnd) {
			continue
		}
		clipped := interval
		if clipped.Start.Before(dayStart) {
			clipped.Start = dayStart
		}
		if clipped.End.After(dayEnd) {
			clipped.End = dayEnd
		}
		relevant = append(relevant, clipped)
	}
	sort.Slice(relevant, func(i, j int) bool {
		return relevant[i].Start.Before(relevant[j].Start)
	})

	free := []Interval{}
	cursor := dayStart
	for _, interval := range relevant {
		if interval.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: interval.Start})
		}
		if interval.End.After(cursor) {
			cursor = interval.End
		}
	}
	if cursor.Before(dayEnd) {
		free = append(free, Interval{Start: cursor, End: dayEnd})
	}
	return free
}
