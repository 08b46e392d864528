package contact

import (
	"context"
	"sync"
)

type ContactRepository interface {
	Save(ctx context.Context, submission Submission) error
	All(ctx context.Context) ([]Submission, error)
}

// InMemoryContactRepository keeps submissions for the lifetime of the
// process. There is no outbound mail or database on purpose.
type InMemoryContactRepository struct {
	mu          sync.RWMutex
	submissions []Submission
}

func NewContactRepo() *InMemoryContactRepository {
	return &InMemoryContactRepository{}
}

func (r *InMemoryContactRepository) Save(ctx context.Context, submission Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, submission)
	return nil
}

func (r *InMemoryContactRepository) All(ctx context.Context) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Submission, len(r.submissions))
	copy(out, r.submissions)
	return out, nil
}
