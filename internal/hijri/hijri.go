// Package hijri converts Gregorian dates to the tabular (civil) Islamic
// calendar. The tabular calendar uses a fixed 30-year intercalation cycle and
// can drift one day from the observational Umm al-Qura calendar; that is close
// enough for bucketing occasions by Hijri month and day.
package hijri

import (
	"strconv"
	"time"
)

// Date is a Hijri calendar date.
type Date struct {
	Year  int
	Month int // 1 = Muharram .. 12 = Dhu al-Hijjah
	Day   int
}

// Julian day number of 1 Muharram 1 AH (19 July 622 CE, proleptic Gregorian).
const epochJDN = 1948440

var monthNamesArabic = [13]string{
	"",
	"محرم",
	"صفر",
	"ربيع الأول",
	"ربيع الآخر",
	"جمادى الأولى",
	"جمادى الآخرة",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذو القعدة",
	"ذو الحجة",
}

// MonthNameArabic returns the Arabic name of a Hijri month, or "" when the
// month is out of range.
func MonthNameArabic(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNamesArabic[month]
}

// NextMonth returns the month following m, wrapping 12 back to 1.
func NextMonth(m int) int {
	return m%12 + 1
}

// IsLeapYear reports whether the Hijri year has 355 days in the civil cycle.
func IsLeapYear(year int) bool {
	return (11*year+14)%30 < 11
}

// gregorianJDN converts a Gregorian calendar date to a Julian day number.
func gregorianJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// FromTime converts t (in its own location) to a Hijri date.
func FromTime(t time.Time) Date {
	return fromJDN(gregorianJDN(t.Year(), int(t.Month()), t.Day()))
}

func fromJDN(jdn int) Date {
	d0 := jdn - epochJDN // days since 1 Muharram 1 AH

	year := (30*d0 + 10646) / 10631
	yearStart := 354*(year-1) + (3+11*year)/30
	dayOfYear := d0 - yearStart

	month := 2*dayOfYear/59 + 1
	if month > 12 {
		month = 12
	}
	// months alternate 30/29 days; month 12 absorbs the leap day
	monthStart := 29*(month-1) + month/2

	return Date{
		Year:  year,
		Month: month,
		Day:   dayOfYear - monthStart + 1,
	}
}

// Display renders the "<day> <arabic month>" label attached to occasions.
func Display(day, month int) string {
	name := MonthNameArabic(month)
	if name == "" {
		return ""
	}
	return strconv.Itoa(day) + " " + name
}
