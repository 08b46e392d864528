package event

import (
	"context"
)

type StubEventRepository struct {
	Events []Event
	Err    error
}

func (s *StubEventRepository) All(ctx context.Context) ([]Event, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Events, nil
}

func (s *StubEventRepository) Reload() error {
	return nil
}
