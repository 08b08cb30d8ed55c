// Package loadrepo provides an in-memory implementation of ports.LoadRepository.
package loadrepo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"
)

// Store keeps loads in a map guarded by a single RWMutex. CompareAndSwap takes
// the write lock for both the comparison and the write. Loads are cloned on the
// way in and on the way out, so callers never share state with the store.
type Store struct {
	mu    sync.RWMutex
	loads map[kernel.UUID]*load.Load
}

func NewStore() *Store {
	return &Store{loads: make(map[kernel.UUID]*load.Load)}
}

// Add stores a newly posted load. Adding an id twice is rejected.
func (s *Store) Add(ctx context.Context, aggregate *load.Load) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := clone(aggregate)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.loads[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("load id already exists: " + aggregate.ID().String())
	}
	s.loads[aggregate.ID()] = stored
	return nil
}

func (s *Store) CompareAndSwap(ctx context.Context, aggregate *load.Load, expected load.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	next, err := clone(aggregate)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.loads[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("load", aggregate.ID().String())
	}
	if current.Status() != expected {
		return errs.ErrPreconditionFailed
	}

	s.loads[aggregate.ID()] = next
	return nil
}

// Claim stores a claimed load if the stored one is still POSTED and the new
// assignee holds no active load. Both checks and the write happen under the
// write lock.
func (s *Store) Claim(ctx context.Context, aggregate *load.Load) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	assignee := aggregate.AssignedTo()
	if aggregate.Status() != load.Matched || assignee == nil {
		return errs.NewValueIsInvalidError("claimed load must be MATCHED with an assignee")
	}

	next, err := clone(aggregate)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.loads[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("load", aggregate.ID().String())
	}
	if current.Status() != load.Posted {
		return errs.ErrPreconditionFailed
	}
	if s.hasActive(*assignee) {
		return errs.ErrAssigneeHasActiveJob
	}

	s.loads[aggregate.ID()] = next
	return nil
}

func (s *Store) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	stored, ok := s.loads[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("load", id.String())
	}
	return clone(stored)
}

func (s *Store) ListByPoster(ctx context.Context, businessID kernel.UUID) ([]*load.Load, error) {
	if err := businessID.Validate(); err != nil {
		return nil, err
	}
	return s.filter(ctx, func(l *load.Load) bool {
		return l.PostedBy().IsEqual(businessID)
	})
}

func (s *Store) ListAvailable(ctx context.Context, capability load.Capability) ([]*load.Load, error) {
	return s.filter(ctx, func(l *load.Load) bool {
		return l.IsAvailableFor(capability)
	})
}

func (s *Store) ListByAssignee(ctx context.Context, truckerID kernel.UUID) ([]*load.Load, error) {
	if err := truckerID.Validate(); err != nil {
		return nil, err
	}
	return s.filter(ctx, func(l *load.Load) bool {
		return l.IsAssignedTo(truckerID)
	})
}

func (s *Store) HasActiveByAssignee(ctx context.Context, truckerID kernel.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := truckerID.Validate(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasActive(truckerID), nil
}

// hasActive must be called with s.mu held.
func (s *Store) hasActive(truckerID kernel.UUID) bool {
	for _, l := range s.loads {
		if l.IsAssignedTo(truckerID) && l.Status().IsActiveJob() {
			return true
		}
	}
	return false
}

func (s *Store) CountByStatus(ctx context.Context) (map[load.Status]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := make(map[load.Status]int, len(load.AllStatuses()))
	for _, status := range load.AllStatuses() {
		counts[status] = 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.loads {
		counts[l.Status()]++
	}
	return counts, nil
}

// filter returns clones of the matching loads, newest posting first.
func (s *Store) filter(ctx context.Context, match func(*load.Load) bool) ([]*load.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	matched := make([]*load.Load, 0)
	for _, l := range s.loads {
		if match(l) {
			matched = append(matched, l)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *load.Load) int {
		if c := b.Timeline().PostedAt().Compare(a.Timeline().PostedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})

	out := make([]*load.Load, 0, len(matched))
	for _, l := range matched {
		c, err := clone(l)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func clone(l *load.Load) (*load.Load, error) {
	return load.RestoreLoad(l.ID(), l.PostedBy(), l.Terms(), l.Status(), l.AssignedTo(), l.Timeline())
}
