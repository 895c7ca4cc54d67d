// Package memory implements the submission store in process memory. It is
// used for local runs without PostgreSQL and as a real collaborator in
// tests of the layers above the store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/gametime-api/internal/domain"
)

// Store keeps submissions in a map guarded by a single mutex. Every
// conditional write checks existence and mutates under the same lock.
type Store struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.Submission

	// txMu serializes RunInTx callers.
	txMu sync.Mutex
}

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[uuid.UUID]domain.Submission)}
}

// Ping always succeeds; it lets the store back the readiness check.
func (s *Store) Ping(context.Context) error { return nil }

// Put writes a submission, replacing any record with the same id.
func (s *Store) Put(ctx context.Context, sub *domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remember(ctx, sub.ID)
	s.records[sub.ID] = clone(*sub)
	return nil
}

// GetByID returns a copy of the record. Returns domain.ErrNotFound if absent.
func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	out := clone(rec)
	return &out, nil
}

// QueryByIndex returns copies of every record whose indexed field equals
// key, ordered by creation time.
func (s *Store) QueryByIndex(_ context.Context, index domain.SubmissionIndex, key string, descending bool) ([]*domain.Submission, error) {
	var field func(domain.Submission) string
	switch index {
	case domain.IndexUser:
		field = func(r domain.Submission) string { return r.UserID }
	case domain.IndexGame:
		field = func(r domain.Submission) string { return r.GameTitle }
	default:
		return nil, fmt.Errorf("query submissions: unknown index %q", index)
	}

	s.mu.RLock()
	out := make([]*domain.Submission, 0)
	for _, rec := range s.records {
		if field(rec) == key {
			c := clone(rec)
			out = append(out, &c)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *domain.Submission) int {
		c := a.CreatedAt.Compare(b.CreatedAt)
		if c == 0 {
			c = strings.Compare(a.ID.String(), b.ID.String())
		}
		if descending {
			return -c
		}
		return c
	})
	return out, nil
}

// UpdateIfExists applies patch to an existing record.
// Returns domain.ErrConditionFailed if the id does not exist.
func (s *Store) UpdateIfExists(ctx context.Context, id uuid.UUID, patch domain.SubmissionPatch) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrConditionFailed)
	}
	s.remember(ctx, id)
	rec = clone(patch.Apply(rec))
	s.records[id] = rec

	out := clone(rec)
	return &out, nil
}

// DeleteIfExists removes a record and returns it.
// Returns domain.ErrConditionFailed if the id does not exist.
func (s *Store) DeleteIfExists(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrConditionFailed)
	}
	s.remember(ctx, id)
	delete(s.records, id)
	return &rec, nil
}

// undoLog holds the state each record had before a transaction first
// wrote it. A nil entry means the record did not exist.
type undoLog map[uuid.UUID]*domain.Submission

type undoLogKey struct{}

// RunInTx runs fn and, if fn fails or panics, puts back the records fn
// wrote through its context. Writes made outside the transaction are left
// alone unless they touched the same records. Transactions are serialized
// with each other.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	undo := undoLog{}
	ctx = context.WithValue(ctx, undoLogKey{}, undo)

	defer func() {
		if r := recover(); r != nil {
			s.rollback(undo)
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		s.rollback(undo)
		return err
	}
	return nil
}

// remember records the current state of id in the transaction's undo log.
// Callers hold s.mu for writing.
func (s *Store) remember(ctx context.Context, id uuid.UUID) {
	undo, ok := ctx.Value(undoLogKey{}).(undoLog)
	if !ok {
		return
	}
	if _, seen := undo[id]; seen {
		return
	}
	if rec, exists := s.records[id]; exists {
		c := clone(rec)
		undo[id] = &c
		return
	}
	undo[id] = nil
}

func (s *Store) rollback(undo undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, prev := range undo {
		if prev == nil {
			delete(s.records, id)
			continue
		}
		s.records[id] = *prev
	}
}

// clone copies a record so callers never share the Notes pointer with the
// stored value.
func clone(s domain.Submission) domain.Submission {
	if s.Notes != nil {
		n := *s.Notes
		s.Notes = &n
	}
	return s
}
