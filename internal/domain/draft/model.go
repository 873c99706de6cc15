package draft

import (
	"errors"
	"fmt"
	"time"
)

// EventType is the kind of live draft event pushed to league subscribers.
type EventType string

const (
	EventNomination EventType = "NOMINATION"
	EventNewBid     EventType = "NEW_BID"
	EventPickMade   EventType = "PICK_MADE"
)

func (t EventType) Valid() bool {
	switch t {
	case EventNomination, EventNewBid, EventPickMade:
		return true
	default:
		return false
	}
}

// Event is a single broadcast message. Sequence increases per league and
// lets clients detect gaps after a reconnect.
type Event struct {
	Type       EventType `json:"type"`
	LeagueID   string    `json:"leagueId"`
	Sequence   uint64    `json:"sequence"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    Payload   `json:"payload"`
}

// Payload carries the fields relevant to the event type; unused fields are omitted.
type Payload struct {
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Position   string `json:"position,omitempty"`
	OwnerID    string `json:"ownerId,omitempty"`
	TeamName   string `json:"teamName,omitempty"`
	Amount     int64  `json:"amount,omitempty"`
}

var (
	ErrNoActiveLot     = errors.New("no player is currently nominated")
	ErrLotInProgress   = errors.New("another player is already nominated")
	ErrBidTooLow       = errors.New("bid must exceed current high bid")
	ErrOverBudget      = errors.New("bid exceeds remaining budget")
	ErrDraftNotActive  = errors.New("draft is not active")
	ErrDraftNotPending = errors.New("draft has already started")
)

// MinBid is the smallest legal opening bid.
const MinBid int64 = 1

// Lot is the player currently up for auction in a league.
type Lot struct {
	LeagueID     string
	PlayerID     string
	NominatorID  string
	HighBidderID string
	HighBid      int64
	OpenedAt     time.Time
	UpdatedAt    time.Time
}

// Accept applies a bid to the lot if it beats the standing high bid.
func (l *Lot) Accept(ownerID string, amount int64, at time.Time) error {
	if amount <= l.HighBid {
		return fmt.Errorf("%w: high bid is %d", ErrBidTooLow, l.HighBid)
	}
	l.HighBidderID = ownerID
	l.HighBid = amount
	l.UpdatedAt = at
	return nil
}

// WithinBudget reports whether an owner can commit amount on top of what they already spent.
func WithinBudget(salaryCap, spent, amount int64) bool {
	return spent+amount <= salaryCap
}
