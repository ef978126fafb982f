// Package timeexpr resolves loosely specified day expressions ("besok",
// "senin", "15 desember") plus optional HH:MM time strings into absolute
// start/end instants in WIB, with an optional weekly recurrence rule.
package timeexpr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/exceptions"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
)

// Resolution is the result of resolving a day expression and time strings.
type Resolution struct {
	Start           time.Time
	End             time.Time
	Recurrence      string
	HadExplicitTime bool
}

// Options tweaks resolver behavior.
type Options struct {
	// StrictDay rejects day expressions that match no known pattern instead
	// of silently falling back to today.
	StrictDay bool
}

var weekdayIndex = map[string]int{
	"minggu": 0,
	"senin":  1,
	"selasa": 2,
	"rabu":   3,
	"kamis":  4,
	"jumat":  5,
	"sabtu":  6,
}

var byDayNames = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

var monthIndex = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"maret":     time.March,
	"april":     time.April,
	"mei":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"agustus":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"desember":  time.December,
}

var datePattern = regexp.MustCompile(`(?i)(\d{1,2})\s+(januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember)(?:\s+(\d{4}))?`)

// Resolve turns a day expression and optional HH:MM start/end strings into
// absolute WIB instants relative to now. When no day pattern matches, the
// target date silently defaults to today.
func Resolve(now time.Time, dayExpr, startTimeStr, endTimeStr string) (*Resolution, error) {
	return ResolveWithOptions(now, dayExpr, startTimeStr, endTimeStr, Options{})
}

// ResolveWithOptions is Resolve with strict-day control.
func ResolveWithOptions(now time.Time, dayExpr, startTimeStr, endTimeStr string, opts Options) (*Resolution, error) {
	local := now.In(utils.TimezoneWIB)
	year, month, day := local.Date()
	recurrence := ""

	dayLower := strings.ToLower(strings.TrimSpace(dayExpr))
	switch {
	case dayLower == "hari ini" || dayLower == "today":
		// today as-is
	case dayLower == "besok" || dayLower == "tomorrow":
		day++
	case dayLower == "lusa" || dayLower == "day after tomorrow":
		day += 2
	default:
		if idx, ok := weekdayIndex[dayLower]; ok {
			diff := (idx - int(local.Weekday()) + 7) % 7
			day += diff
			recurrence = "RRULE:FREQ=WEEKLY;BYDAY=" + byDayNames[idx]
			break
		}
		if m := datePattern.FindStringSubmatch(dayLower); m != nil {
			d, _ := strconv.Atoi(m[1])
			day = d
			month = monthIndex[m[2]]
			if m[3] != "" {
				y, _ := strconv.Atoi(m[3])
				year = y
			}
			break
		}
		if opts.StrictDay {
			return nil, exceptions.ErrUnresolvedDay(dayExpr)
		}
		// No pattern matched: fall back to today. Permissive on purpose.
	}

	hadExplicitTime := startTimeStr != "" || endTimeStr != ""

	startHour, startMin := 0, 0
	if startTimeStr != "" {
		var err error
		startHour, startMin, err = parseClock(startTimeStr)
		if err != nil {
			return nil, err
		}
	}

	endHour, endMin := 23, 59
	switch {
	case endTimeStr != "":
		var err error
		endHour, endMin, err = parseClock(endTimeStr)
		if err != nil {
			return nil, err
		}
	case startTimeStr != "":
		// One-hour default duration when only a start time is given.
		endHour, endMin = startHour+1, startMin
	}

	start := time.Date(year, month, day, startHour, startMin, 0, 0, utils.TimezoneWIB)
	end := time.Date(year, month, day, endHour, endMin, 0, 0, utils.TimezoneWIB)

	return &Resolution{
		Start:           start,
		End:             end,
		Recurrence:      recurrence,
		HadExplicitTime: hadExplicitTime,
	}, nil
}

func parseClock(raw string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, 0, exceptions.ErrCannotParseTime(nil, raw)
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, exceptions.ErrCannotParseTime(nil, raw)
	}
	return hour, minute, nil
}
