package gameforge

import (
	"strconv"
	"time"
)

// Time is a span of game time in milliseconds. Arithmetic is plain float
// arithmetic: nothing is clamped, and negative values are allowed.
type Time float64

// Common durations. Multiply by a number to build a Time:
//
//	d := 250 * gameforge.Millisecond
const (
	Microsecond Time = 0.001
	Millisecond Time = 1
	Second      Time = 1000
)

// FromDuration converts a time.Duration into a Time.
func FromDuration(d time.Duration) Time {
	return Time(float64(d) / float64(time.Millisecond))
}

// Seconds returns t in seconds.
func (t Time) Seconds() float64 { return float64(t) / 1000 }

// Milliseconds returns t in milliseconds.
func (t Time) Milliseconds() float64 { return float64(t) }

// Microseconds returns t in microseconds.
func (t Time) Microseconds() float64 { return float64(t) * 1000 }

// Duration converts t to a time.Duration, truncating below a nanosecond.
func (t Time) Duration() time.Duration {
	return time.Duration(float64(t) * float64(time.Millisecond))
}

// Add returns t+o.
func (t Time) Add(o Time) Time { return t + o }

// Sub returns t-o.
func (t Time) Sub(o Time) Time { return t - o }

// Scale returns t multiplied by f.
func (t Time) Scale(f float64) Time { return Time(float64(t) * f) }

// Ratio returns t/o as a plain number. A zero o yields ±Inf or NaN.
func (t Time) Ratio(o Time) float64 { return float64(t) / float64(o) }

// String formats t as milliseconds, e.g. "16.5ms".
func (t Time) String() string {
	return strconv.FormatFloat(float64(t), 'g', -1, 64) + "ms"
}
