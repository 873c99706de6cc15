package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
)

type SubmissionRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Submission
}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{items: make(map[string]lineup.Submission)}
}

func (r *SubmissionRepository) Upsert(_ context.Context, item lineup.Submission) (lineup.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[submissionKey(item.OwnerID, item.LeagueID, item.Season, item.Week)] = item
	return item, nil
}

func (r *SubmissionRepository) Get(_ context.Context, ownerID, leagueID string, season, week int) (lineup.Submission, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[submissionKey(ownerID, leagueID, season, week)]
	return item, ok, nil
}

func submissionKey(ownerID, leagueID string, season, week int) string {
	return fmt.Sprintf("%s::%s::%d::%d", ownerID, leagueID, season, week)
}
