package engine

import "time"

// YearSource supplies the reference year used for living persons.
type YearSource func() int

// FixedYear always reports year.
func FixedYear(year int) YearSource {
	return func() int { return year }
}

// WallClockYear reads the current year from the system clock.
func WallClockYear() int {
	return time.Now().Year()
}

// NewYearSource returns FixedYear(year) for a positive year and the wall
// clock otherwise.
func NewYearSource(year int) YearSource {
	if year > 0 {
		return FixedYear(year)
	}
	return WallClockYear
}
