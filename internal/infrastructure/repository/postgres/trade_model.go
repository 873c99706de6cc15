package postgres

import "time"

type tradeProposalTableModel struct {
	ID                int64     `db:"id"`
	PublicID          string    `db:"public_id"`
	LeagueID          string    `db:"league_public_id"`
	FromOwnerID       string    `db:"from_user_id"`
	ToOwnerID         string    `db:"to_user_id"`
	OfferedPlayerID   string    `db:"offered_player_public_id"`
	RequestedPlayerID string    `db:"requested_player_public_id"`
	Note              string    `db:"note"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type tradeProposalInsertModel struct {
	PublicID          string    `db:"public_id"`
	LeagueID          string    `db:"league_public_id"`
	FromOwnerID       string    `db:"from_user_id"`
	ToOwnerID         string    `db:"to_user_id"`
	OfferedPlayerID   string    `db:"offered_player_public_id"`
	RequestedPlayerID string    `db:"requested_player_public_id"`
	Note              string    `db:"note"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
}
