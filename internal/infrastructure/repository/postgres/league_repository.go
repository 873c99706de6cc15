package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

const (
	leagueNameUniqueIndex   = "leagues_name_uidx"
	leagueMemberUniqueIndex = "league_members_league_user_uidx"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}
	return out, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League, settings league.Settings, commissioner league.Member) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create league: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("leagues", leagueInsertModel{
		PublicID:    item.ID,
		Name:        item.Name,
		DraftStatus: string(item.DraftStatus),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, leagueNameUniqueIndex) {
			return league.ErrNameTaken
		}
		return fmt.Errorf("insert league: %w", err)
	}

	if err := upsertSettings(ctx, tx, settings); err != nil {
		return err
	}
	if err := insertMember(ctx, tx, commissioner); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create league tx: %w", err)
	}
	return nil
}

func (r *LeagueRepository) UpdateDraftStatus(ctx context.Context, leagueID string, status league.DraftStatus) error {
	query, args, err := qb.Update("leagues").
		Set("draft_status", string(status)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update draft status query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update draft status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update draft status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update draft status: league %s not found", leagueID)
	}

	return nil
}

func (r *LeagueRepository) GetSettings(ctx context.Context, leagueID string) (league.Settings, bool, error) {
	query, args, err := qb.Select(
		"id",
		"league_public_id",
		"roster_size",
		"salary_cap",
		"starting_slots::text AS starting_slots",
		"waiver_deadline",
		"created_at",
		"updated_at",
		"deleted_at",
	).From("league_settings").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.Settings{}, false, fmt.Errorf("build get league settings query: %w", err)
	}

	var row leagueSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Settings{}, false, nil
		}
		return league.Settings{}, false, fmt.Errorf("get league settings: %w", err)
	}

	return league.Settings{
		LeagueID:       row.LeagueID,
		RosterSize:     row.RosterSize,
		SalaryCap:      row.SalaryCap,
		StartingSlots:  decodeJSON[int](row.StartingSlots),
		WaiverDeadline: row.WaiverDeadline,
		UpdatedAt:      row.UpdatedAt,
	}, true, nil
}

func (r *LeagueRepository) UpsertSettings(ctx context.Context, settings league.Settings) error {
	return upsertSettings(ctx, r.db, settings)
}

func upsertSettings(ctx context.Context, db sqlx.ExecerContext, settings league.Settings) error {
	insertModel := leagueSettingsInsertModel{
		LeagueID:       settings.LeagueID,
		RosterSize:     settings.RosterSize,
		SalaryCap:      settings.SalaryCap,
		StartingSlots:  encodeJSON(settings.StartingSlots),
		WaiverDeadline: settings.WaiverDeadline,
		UpdatedAt:      settings.UpdatedAt,
	}

	query, args, err := qb.InsertModel("league_settings", insertModel, `ON CONFLICT (league_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    roster_size = EXCLUDED.roster_size,
    salary_cap = EXCLUDED.salary_cap,
    starting_slots = EXCLUDED.starting_slots,
    waiver_deadline = EXCLUDED.waiver_deadline,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build league settings upsert query: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league settings: %w", err)
	}
	return nil
}

func (r *LeagueRepository) GetMember(ctx context.Context, leagueID, userID string) (league.Member, bool, error) {
	query, args, err := qb.Select("*").From("league_members").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.Member{}, false, fmt.Errorf("build get league member query: %w", err)
	}

	var row leagueMemberTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Member{}, false, nil
		}
		return league.Member{}, false, fmt.Errorf("get league member: %w", err)
	}

	return memberFromRow(row), true, nil
}

func (r *LeagueRepository) ListMembers(ctx context.Context, leagueID string) ([]league.Member, error) {
	query, args, err := qb.Select("*").From("league_members").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league members query: %w", err)
	}

	var rows []leagueMemberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}

	out := make([]league.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRow(row))
	}
	return out, nil
}

func (r *LeagueRepository) AddMember(ctx context.Context, member league.Member) error {
	return insertMember(ctx, r.db, member)
}

func insertMember(ctx context.Context, db sqlx.ExecerContext, member league.Member) error {
	query, args, err := qb.InsertModel("league_members", leagueMemberInsertModel{
		LeagueID:       member.LeagueID,
		UserID:         member.UserID,
		TeamName:       member.TeamName,
		IsCommissioner: member.IsCommissioner,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert league member query: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, leagueMemberUniqueIndex) {
			return league.ErrMemberExists
		}
		return fmt.Errorf("insert league member: %w", err)
	}
	return nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:          row.PublicID,
		Name:        row.Name,
		DraftStatus: league.ParseDraftStatus(row.DraftStatus),
	}
}

func memberFromRow(row leagueMemberTableModel) league.Member {
	return league.Member{
		LeagueID:       row.LeagueID,
		UserID:         row.UserID,
		TeamName:       row.TeamName,
		IsCommissioner: row.IsCommissioner,
	}
}
