package availability

import "context"

// Noop заглушка кэша для окружений без Redis
// Get всегда промахивается, запись и инвалидация ничего не делают
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(ctx context.Context, activityID int64, date string) (*DaySnapshot, error) {
	return nil, ErrCacheMiss
}

func (n *Noop) Set(ctx context.Context, snapshot *DaySnapshot) error {
	return nil
}

func (n *Noop) Invalidate(ctx context.Context, activityID int64, date string) error {
	return nil
}
