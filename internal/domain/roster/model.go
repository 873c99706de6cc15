package roster

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lineup slot an entry occupies. An empty status means the
// owner has never arranged a lineup for this entry.
type Status string

const (
	StatusUnset   Status = ""
	StatusStarter Status = "STARTER"
	StatusBench   Status = "BENCH"
)

func (s Status) IsExplicit() bool {
	return s == StatusStarter || s == StatusBench
}

// Source records how an entry was acquired.
type Source string

const (
	SourceDraft  Source = "DRAFT"
	SourceWaiver Source = "WAIVER"
)

var (
	ErrPlayerAlreadyOwned = errors.New("player already owned in league")
	ErrRosterFull         = errors.New("roster is full")
	ErrEntryNotFound      = errors.New("roster entry not found")
)

// Entry is a player acquired by an owner for a price within one league.
type Entry struct {
	ID         string
	LeagueID   string
	OwnerID    string
	PlayerID   string
	Amount     int64
	Status     Status
	Season     int
	Source     Source
	AcquiredAt time.Time
}

func (e Entry) Validate() error {
	if e.LeagueID == "" {
		return fmt.Errorf("roster entry league id is required")
	}
	if e.OwnerID == "" {
		return fmt.Errorf("roster entry owner id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("roster entry player id is required")
	}
	if e.Amount < 0 {
		return fmt.Errorf("roster entry amount cannot be negative")
	}

	return nil
}

// TotalSpent sums acquisition amounts.
func TotalSpent(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
