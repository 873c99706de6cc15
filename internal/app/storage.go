package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/domain/trade"
	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
	repocache "github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/fantasy-draft/internal/platform/cache"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	leagues     league.Repository
	players     player.Repository
	rosters     roster.Repository
	submissions lineup.SubmissionRepository
	stats       weeklystat.Repository
	trades      trade.Repository
	close       func() error
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var (
		repos repositories
		err   error
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		repos, err = newPostgresRepositories(ctx, cfg, logger)
	default:
		repos = newMemoryRepositories(cfg)
	}
	if err != nil {
		return repositories{}, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.leagues = repocache.NewLeagueRepository(repos.leagues, store)
		repos.players = repocache.NewPlayerRepository(repos.players, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}
	return repos, nil
}

func newMemoryRepositories(cfg config.Config) repositories {
	var (
		leagues []league.League
		members []league.Member
		players []player.Player
	)
	if cfg.SeedEnabled {
		leagues = memory.SeedLeagues()
		members = memory.SeedMembers()
		players = memory.SeedPlayers()
	}

	return repositories{
		leagues:     memory.NewLeagueRepository(leagues, members),
		players:     memory.NewPlayerRepository(players),
		rosters:     memory.NewRosterRepository(),
		submissions: memory.NewSubmissionRepository(),
		stats:       memory.NewWeeklyStatRepository(),
		trades:      memory.NewTradeRepository(),
		close:       func() error { return nil },
	}
}

func newPostgresRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns / 2)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return repositories{}, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.SeedEnabled {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	logger.Info("postgres storage ready", "db_name", dbNameFromURL(dbURL), "max_open_conns", cfg.DBMaxOpenConns)
	return postgresRepositories(db), nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		leagues:     postgres.NewLeagueRepository(db),
		players:     postgres.NewPlayerRepository(db),
		rosters:     postgres.NewRosterRepository(db),
		submissions: postgres.NewSubmissionRepository(db),
		stats:       postgres.NewWeeklyStatRepository(db),
		trades:      postgres.NewTradeRepository(db),
		close:       db.Close,
	}
}
