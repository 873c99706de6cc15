package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-draft/internal/domain/trade"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type TradeRepository struct {
	db *sqlx.DB
}

func NewTradeRepository(db *sqlx.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) Create(ctx context.Context, proposal trade.Proposal) error {
	query, args, err := qb.InsertModel("trade_proposals", tradeProposalInsertModel{
		PublicID:          proposal.ID,
		LeagueID:          proposal.LeagueID,
		FromOwnerID:       proposal.FromOwnerID,
		ToOwnerID:         proposal.ToOwnerID,
		OfferedPlayerID:   proposal.OfferedPlayerID,
		RequestedPlayerID: proposal.RequestedPlayerID,
		Note:              proposal.Note,
		Status:            string(proposal.Status),
		CreatedAt:         proposal.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert trade proposal query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert trade proposal: %w", err)
	}
	return nil
}

func (r *TradeRepository) ListByStatus(ctx context.Context, leagueID string, status trade.Status) ([]trade.Proposal, error) {
	query, args, err := qb.Select("*").From("trade_proposals").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("status", string(status)),
		).
		OrderBy("id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list trade proposals query: %w", err)
	}

	var rows []tradeProposalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list trade proposals: %w", err)
	}

	out := make([]trade.Proposal, 0, len(rows))
	for _, row := range rows {
		out = append(out, trade.Proposal{
			ID:                row.PublicID,
			LeagueID:          row.LeagueID,
			FromOwnerID:       row.FromOwnerID,
			ToOwnerID:         row.ToOwnerID,
			OfferedPlayerID:   row.OfferedPlayerID,
			RequestedPlayerID: row.RequestedPlayerID,
			Note:              row.Note,
			Status:            trade.Status(row.Status),
			CreatedAt:         row.CreatedAt,
		})
	}
	return out, nil
}
