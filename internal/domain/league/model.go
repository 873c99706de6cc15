package league

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

var (
	ErrNameTaken    = errors.New("league name already taken")
	ErrMemberExists = errors.New("user is already a league member")
)

// DraftStatus tracks where a league is in its auction draft.
type DraftStatus string

const (
	DraftStatusPreDraft  DraftStatus = "PRE_DRAFT"
	DraftStatusActive    DraftStatus = "ACTIVE"
	DraftStatusCompleted DraftStatus = "COMPLETED"
)

func ParseDraftStatus(raw string) DraftStatus {
	switch DraftStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case DraftStatusActive:
		return DraftStatusActive
	case DraftStatusCompleted:
		return DraftStatusCompleted
	default:
		return DraftStatusPreDraft
	}
}

// League is a fantasy league that runs one auction draft per season.
type League struct {
	ID          string
	Name        string
	DraftStatus DraftStatus
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}

// Member is an owner's seat in a league.
type Member struct {
	LeagueID       string
	UserID         string
	TeamName       string
	IsCommissioner bool
}

// DisplayTeamName falls back to a generated name for owners who never set one.
func (m Member) DisplayTeamName() string {
	if name := strings.TrimSpace(m.TeamName); name != "" {
		return name
	}
	return "Team " + m.UserID
}

const (
	DefaultRosterSize = 14
	DefaultSalaryCap  = 200

	SlotFlex               = "FLEX"
	SlotActiveRosterSize   = "ACTIVE_ROSTER_SIZE"
	SlotAllowPartialLineup = "ALLOW_PARTIAL_LINEUP"
	slotMaxPrefix          = "MAX_"
)

var defaultMaxStarters = map[player.Position]int{
	player.PositionQuarterback:  3,
	player.PositionRunningBack:  5,
	player.PositionWideReceiver: 5,
	player.PositionTightEnd:     3,
	player.PositionKicker:       1,
	player.PositionDefense:      1,
}

// Settings are the commissioner-controlled rules of a league.
type Settings struct {
	LeagueID       string
	RosterSize     int
	SalaryCap      int64
	StartingSlots  map[string]int
	WaiverDeadline *time.Time
	UpdatedAt      time.Time
}

func DefaultStartingSlots() map[string]int {
	return map[string]int{
		string(player.PositionQuarterback):  1,
		string(player.PositionRunningBack):  2,
		string(player.PositionWideReceiver): 2,
		string(player.PositionTightEnd):     1,
		string(player.PositionKicker):       1,
		string(player.PositionDefense):      1,
		SlotFlex:                            1,
	}
}

func DefaultSettings(leagueID string) Settings {
	return Settings{
		LeagueID:      leagueID,
		RosterSize:    DefaultRosterSize,
		SalaryCap:     DefaultSalaryCap,
		StartingSlots: DefaultStartingSlots(),
	}
}

func (s Settings) Validate() error {
	if s.LeagueID == "" {
		return fmt.Errorf("settings league id is required")
	}
	if s.RosterSize <= 0 {
		return fmt.Errorf("roster size must be greater than zero")
	}
	if s.SalaryCap <= 0 {
		return fmt.Errorf("salary cap must be greater than zero")
	}
	for slot, count := range s.StartingSlots {
		if count < 0 {
			return fmt.Errorf("starting slot %s cannot be negative", slot)
		}
	}

	return nil
}

func (s Settings) slots() map[string]int {
	if len(s.StartingSlots) == 0 {
		return DefaultStartingSlots()
	}
	return s.StartingSlots
}

// ActiveRosterSize is the number of starters a submitted lineup must contain.
func (s Settings) ActiveRosterSize() int {
	if v := s.slots()[SlotActiveRosterSize]; v > 0 {
		return v
	}
	if s.RosterSize > 0 {
		return s.RosterSize
	}
	return 9
}

func (s Settings) AllowPartialLineup() bool {
	return s.slots()[SlotAllowPartialLineup] == 1
}

// MaxStarters returns the configured cap for a position; zero falls back to the default.
func (s Settings) MaxStarters(pos player.Position) int {
	if v := s.slots()[slotMaxPrefix+string(pos)]; v > 0 {
		return v
	}
	return defaultMaxStarters[pos]
}

// WaiversClosed reports whether the commissioner deadline has passed at now.
func (s Settings) WaiversClosed(now time.Time) bool {
	return s.WaiverDeadline != nil && now.After(*s.WaiverDeadline)
}

func (s Settings) Clone() Settings {
	out := s
	out.StartingSlots = make(map[string]int, len(s.StartingSlots))
	for k, v := range s.StartingSlots {
		out.StartingSlots[k] = v
	}
	if s.WaiverDeadline != nil {
		deadline := *s.WaiverDeadline
		out.WaiverDeadline = &deadline
	}
	return out
}
