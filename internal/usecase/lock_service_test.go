package usecase

import (
	"context"
	"errors"
	"testing"

	weeklystatmock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/weeklystat"
	"github.com/stretchr/testify/mock"
)

func TestLockService_EmptyInputSkipsStorage(t *testing.T) {
	t.Parallel()

	statRepo := weeklystatmock.NewRepository(t)
	service := NewLockService(statRepo)

	locked, err := service.LockedIDs(context.Background(), nil, 2026, 3)
	if err != nil {
		t.Fatalf("locked ids: %v", err)
	}
	if len(locked) != 0 {
		t.Fatalf("expected empty set, got %v", locked)
	}
}

func TestLockService_LockedIDsUsingMockery(t *testing.T) {
	t.Parallel()

	statRepo := weeklystatmock.NewRepository(t)
	statRepo.
		On("ListRecordedPlayerIDs", mock.Anything, []string{"p1", "p2", "p3"}, 2026, 3).
		Return([]string{"p2"}, nil).
		Once()

	service := NewLockService(statRepo)
	locked, err := service.LockedIDs(context.Background(), []string{"p1", "p2", "p3"}, 2026, 3)
	if err != nil {
		t.Fatalf("locked ids: %v", err)
	}
	if _, ok := locked["p2"]; !ok || len(locked) != 1 {
		t.Fatalf("expected only p2 locked, got %v", locked)
	}
}

func TestLockService_PropagatesStorageError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	statRepo := weeklystatmock.NewRepository(t)
	statRepo.
		On("ListRecordedPlayerIDs", mock.Anything, []string{"p1"}, 2026, 1).
		Return(nil, boom).
		Once()

	service := NewLockService(statRepo)
	if _, err := service.LockedIDs(context.Background(), []string{"p1"}, 2026, 1); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
