package trade

import (
	"fmt"
	"time"
)

// Status is where a proposal stands. Proposals are created PENDING and are
// reviewed by the commissioner outside this service.
type Status string

const StatusPending Status = "PENDING"

// Proposal offers one rostered player for one player on another roster in
// the same league.
type Proposal struct {
	ID                string
	LeagueID          string
	FromOwnerID       string
	ToOwnerID         string
	OfferedPlayerID   string
	RequestedPlayerID string
	Note              string
	Status            Status
	CreatedAt         time.Time
}

func (p Proposal) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("trade id is required")
	case p.LeagueID == "":
		return fmt.Errorf("trade league id is required")
	case p.FromOwnerID == "" || p.ToOwnerID == "":
		return fmt.Errorf("trade owners are required")
	case p.FromOwnerID == p.ToOwnerID:
		return fmt.Errorf("trade owners must differ")
	case p.OfferedPlayerID == "" || p.RequestedPlayerID == "":
		return fmt.Errorf("trade players are required")
	}
	return nil
}
