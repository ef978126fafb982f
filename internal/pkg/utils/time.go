package utils

import (
	"fmt"
	"time"
)

// TimezoneWIB is the fixed UTC+7 offset every instant in the scheduling
// domain is constructed in. The host-local timezone is never consulted, so
// behavior does not depend on where the service is deployed.
var TimezoneWIB = time.FixedZone("WIB", 7*60*60)

var indonesianWeekdays = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var indonesianMonthsShort = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

func FormatRFC3339Local(t time.Time) string {
	return t.In(TimezoneWIB).Format("2006-01-02T15:04:05-07:00")
}

func FormatDateYMD(t time.Time) string {
	return t.In(TimezoneWIB).Format("2006-01-02")
}

func FormatTimeHM(t time.Time) string {
	return t.In(TimezoneWIB).Format("15:04")
}

// FormatIndonesianDateTime renders e.g. "Senin, 08 Sep 19:30" for chat
// messages, always in WIB.
func FormatIndonesianDateTime(t time.Time) string {
	local := t.In(TimezoneWIB)
	return fmt.Sprintf("%s, %02d %s %s",
		indonesianWeekdays[int(local.Weekday())],
		local.Day(),
		indonesianMonthsShort[int(local.Month())-1],
		local.Format("15:04"),
	)
}
