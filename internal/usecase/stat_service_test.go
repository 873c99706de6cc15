package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
)

func TestStatService_RecordWeeklyStats(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	n, err := env.statService.RecordWeeklyStats(t.Context(), []weeklystat.Stat{
		{PlayerID: " qb-allen ", Season: 2026, Week: 4, Points: 31.2},
		{PlayerID: "k-tucker", Season: 2026, Week: 4, Points: 9},
	})
	if err != nil {
		t.Fatalf("record stats: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 stats recorded, got %d", n)
	}

	ids, err := env.stats.ListRecordedPlayerIDs(t.Context(), []string{"qb-allen", "k-tucker", "rb-henry"}, 2026, 4)
	if err != nil {
		t.Fatalf("list recorded: %v", err)
	}
	if len(ids) != 2 || ids[0] != "qb-allen" {
		t.Fatalf("unexpected recorded ids: %v", ids)
	}
}

func TestStatService_RejectsInvalidWeek(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.statService.RecordWeeklyStats(t.Context(), []weeklystat.Stat{
		{PlayerID: "qb-allen", Season: 2026, Week: 19},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
