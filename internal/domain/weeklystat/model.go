package weeklystat

import (
	"fmt"
	"time"
)

// Stat is a recorded stat line for one player in one NFL week. Its presence
// is what freezes the player's lineup slot for that week.
type Stat struct {
	PlayerID   string
	Season     int
	Week       int
	Points     float64
	RecordedAt time.Time
}

const (
	MinWeek = 1
	MaxWeek = 18
)

func (s Stat) Validate() error {
	if s.PlayerID == "" {
		return fmt.Errorf("stat player id is required")
	}
	if s.Season <= 0 {
		return fmt.Errorf("stat season must be greater than zero")
	}
	if s.Week < MinWeek || s.Week > MaxWeek {
		return fmt.Errorf("stat week must be between %d and %d", MinWeek, MaxWeek)
	}

	return nil
}
