package weeklystat

import "context"

type Repository interface {
	ListRecordedPlayerIDs(ctx context.Context, playerIDs []string, season, week int) ([]string, error)
	Upsert(ctx context.Context, stats []Stat) error
}
