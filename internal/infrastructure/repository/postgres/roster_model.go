package postgres

import "time"

type rosterEntryTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	LeagueID   string     `db:"league_public_id"`
	OwnerID    string     `db:"owner_user_id"`
	PlayerID   string     `db:"player_public_id"`
	Amount     int64      `db:"amount"`
	Status     string     `db:"status"`
	Season     int        `db:"season"`
	Source     string     `db:"source"`
	AcquiredAt time.Time  `db:"acquired_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type rosterEntryInsertModel struct {
	PublicID   string    `db:"public_id"`
	LeagueID   string    `db:"league_public_id"`
	OwnerID    string    `db:"owner_user_id"`
	PlayerID   string    `db:"player_public_id"`
	Amount     int64     `db:"amount"`
	Status     string    `db:"status"`
	Season     int       `db:"season"`
	Source     string    `db:"source"`
	AcquiredAt time.Time `db:"acquired_at"`
}

type lineupSubmissionTableModel struct {
	ID          int64     `db:"id"`
	OwnerID     string    `db:"owner_user_id"`
	LeagueID    string    `db:"league_public_id"`
	Season      int       `db:"season"`
	Week        int       `db:"week"`
	SubmittedAt time.Time `db:"submitted_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type lineupSubmissionInsertModel struct {
	OwnerID     string    `db:"owner_user_id"`
	LeagueID    string    `db:"league_public_id"`
	Season      int       `db:"season"`
	Week        int       `db:"week"`
	SubmittedAt time.Time `db:"submitted_at"`
}
