package game

import "fmt"

// Time is the in-game clock, advanced a few minutes per move.
type Time struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Add advances the clock by the given number of minutes.
func (t *Time) Add(minutes int) {
	t.Minute += minutes
	if t.Minute > 59 {
		t.Hour += t.Minute / 60
		t.Minute %= 60
	}
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
