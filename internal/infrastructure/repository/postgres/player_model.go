package postgres

import "time"

type playerTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Position    string     `db:"position"`
	NFLTeam     string     `db:"nfl_team"`
	ByeWeek     int        `db:"bye_week"`
	ExternalIDs string     `db:"external_ids"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type weeklyStatInsertModel struct {
	PlayerID   string    `db:"player_public_id"`
	Season     int       `db:"season"`
	Week       int       `db:"week"`
	Points     float64   `db:"points"`
	RecordedAt time.Time `db:"recorded_at"`
}
