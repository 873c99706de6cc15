package postgres

import (
	"time"
)

type leagueTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	DraftStatus string     `db:"draft_status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type leagueInsertModel struct {
	PublicID    string `db:"public_id"`
	Name        string `db:"name"`
	DraftStatus string `db:"draft_status"`
}

type leagueMemberTableModel struct {
	ID             int64      `db:"id"`
	LeagueID       string     `db:"league_public_id"`
	UserID         string     `db:"user_id"`
	TeamName       string     `db:"team_name"`
	IsCommissioner bool       `db:"is_commissioner"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type leagueMemberInsertModel struct {
	LeagueID       string `db:"league_public_id"`
	UserID         string `db:"user_id"`
	TeamName       string `db:"team_name"`
	IsCommissioner bool   `db:"is_commissioner"`
}

type leagueSettingsTableModel struct {
	ID             int64      `db:"id"`
	LeagueID       string     `db:"league_public_id"`
	RosterSize     int        `db:"roster_size"`
	SalaryCap      int64      `db:"salary_cap"`
	StartingSlots  string     `db:"starting_slots"`
	WaiverDeadline *time.Time `db:"waiver_deadline"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type leagueSettingsInsertModel struct {
	LeagueID       string     `db:"league_public_id"`
	RosterSize     int        `db:"roster_size"`
	SalaryCap      int64      `db:"salary_cap"`
	StartingSlots  string     `db:"starting_slots"`
	WaiverDeadline *time.Time `db:"waiver_deadline"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
