package tabular

import (
	"context"
	"errors"
)

// Snapshot is a full in-memory copy of a tabular source's rows at one point
// in time - an ordered sequence of rows, each an ordered sequence of string
// cells, with the first row conventionally treated as the header. A snapshot
// is never mutated after it has been read; callers that need a private copy
// use Clone.
type Snapshot [][]string

var (
	ErrNotConfigured = errors.New("source not configured")
	ErrAuth          = errors.New("authentication failed")
	ErrRead          = errors.New("read failed")
	ErrWrite         = errors.New("write failed")
)

// Source is a remote tabular store. Read returns the current snapshot with
// the header row first. Write replaces the remote contents in full and is
// idempotent when given the same snapshot twice.
type Source interface {
	Read(ctx context.Context) (Snapshot, error)
	Write(ctx context.Context, snapshot Snapshot) error
}

// Unconfigured is a placeholder Source for a collaborator that failed to
// initialise at startup. Every operation fails with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Read(context.Context) (Snapshot, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Write(context.Context, Snapshot) error {
	return ErrNotConfigured
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}

	replica := make(Snapshot, len(s))
	for i, row := range s {
		replica[i] = make([]string, len(row))
		copy(replica[i], row)
	}

	return replica
}

// Equal returns true if both snapshots have identical rows in identical
// order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}

	for i, row := range s {
		if len(row) != len(other[i]) {
			return false
		}

		for j, cell := range row {
			if cell != other[i][j] {
				return false
			}
		}
	}

	return true
}
