package notificationdb

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/uptrace/bun"
)

// FakeRepository is an in-memory Repository for tests. CreateErr, when set, makes
// every Create fail.
type FakeRepository struct {
	mu        sync.Mutex
	rows      []*Notification
	nextID    int64
	CreateErr error
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, n *Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.nextID++
	n.ID = f.nextID
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(n.ID) * time.Minute)
	}
	stored := *n
	f.rows = append(f.rows, &stored)
	return nil
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.rows {
		if n.ID == id {
			out := *n
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) ListForRecipient(ctx context.Context, db bun.IDB, recipientID int64, unreadOnly bool, limit int) ([]*Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*Notification{}
	for _, n := range f.rows {
		if n.RecipientID != recipientID || (unreadOnly && n.Read) {
			continue
		}
		c := *n
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeRepository) CountUnread(ctx context.Context, db bun.IDB, recipientID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.rows {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *FakeRepository) MarkRead(ctx context.Context, db bun.IDB, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.rows {
		if n.ID == id {
			n.Read = true
		}
	}
	return nil
}

func (f *FakeRepository) MarkAllRead(ctx context.Context, db bun.IDB, recipientID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var changed int64
	for _, n := range f.rows {
		if n.RecipientID == recipientID && !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}

// All returns a copy of every stored notification in insertion order.
func (f *FakeRepository) All() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, 0, len(f.rows))
	for _, n := range f.rows {
		out = append(out, *n)
	}
	return out
}

var _ Repository = (*FakeRepository)(nil)
