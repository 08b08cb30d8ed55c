// Package memory provides an in-process unit of work over loadrepo.Store, used
// when the service runs without a database and in tests.
//
// Every command performs at most one write, and that write is a single atomic
// compare-and-swap on the store, so there is nothing to undo: Begin, Commit and
// Rollback only track whether a transaction is open, mirroring the database
// adapter's contract.
package memory

import (
	"context"
	"errors"

	"loadboard/internal/adapters/out/memory/loadrepo"
	"loadboard/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory hands out units of work sharing one Store.
type UnitOfWorkFactory struct {
	store *loadrepo.Store
}

func NewUnitOfWorkFactory(store *loadrepo.Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is not safe for concurrent use; each command creates its own.
type UnitOfWork struct {
	store  *loadrepo.Store
	active bool
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	return nil
}

func (uow *UnitOfWork) LoadRepository() ports.LoadRepository {
	return uow.store
}
