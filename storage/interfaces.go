package storage

import (
	"context"
	"time"

	"github.com/poiesic/seromatch/core"
)

// RecordSetInfo describes one stored record set.
type RecordSetInfo struct {
	// Name identifies the set within its kind.
	Name string

	// Kind is the record kind the set was imported as.
	Kind core.Kind

	// Count is the number of records in the set.
	Count int

	// Fingerprint is the content fingerprint of the serialized records,
	// recorded at import for duplicate detection.
	Fingerprint core.Fingerprint

	// InsertedAt is the import timestamp.
	InsertedAt time.Time
}

// RecordRepository stores named record sets so a corpus is imported once
// and resolved many times. Implementations must be thread-safe and support
// concurrent access.
type RecordRepository interface {
	// SaveRecordSet stores records under (name, kind).
	// Returns ErrDuplicateRecordSet when the same content is already
	// stored under that name; a set with the same name but different
	// content is replaced. Returns the info of the stored set.
	SaveRecordSet(ctx context.Context, name string, kind core.Kind, records []core.Record) (*RecordSetInfo, error)

	// GetRecordSet retrieves the records and info stored under (name, kind).
	// Returns ErrNotFound if no such set exists.
	GetRecordSet(ctx context.Context, name string, kind core.Kind) ([]core.Record, *RecordSetInfo, error)

	// ListRecordSets returns the info of every stored set, ordered by kind
	// and then name.
	ListRecordSets(ctx context.Context) ([]*RecordSetInfo, error)

	// DeleteRecordSet removes the set stored under (name, kind).
	// Returns ErrNotFound if no such set exists.
	DeleteRecordSet(ctx context.Context, name string, kind core.Kind) error

	// Close closes the storage backend and releases resources.
	Close() error
}
