package docx

import "time"

//go:generate mockgen -source=clock.go -destination=mock_clock_test.go -package=docx

// Clock supplies the generation time stamped into the document
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock
var SystemClock Clock = systemClock{}

// FixedClock always returns the same instant
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
