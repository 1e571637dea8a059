// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package seromatch resolves antigen and serum identities in antigenic
// assay data. It ties the pieces together: imported record sets persist in
// a local store, the gazetteer recognizes place names inside strain
// descriptors, and datasets answer fuzzy free-text queries over the stored
// records.
package seromatch

import (
	"context"
	"log/slog"

	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/dataset"
	"github.com/poiesic/seromatch/gazetteer"
	"github.com/poiesic/seromatch/storage"
	"github.com/poiesic/seromatch/storage/badger"
	"github.com/poiesic/seromatch/titer"
)

// Database is the root handle: an opened record store plus the place
// directory shared by every dataset built from it.
type Database struct {
	backend   *badger.Backend
	records   storage.RecordRepository
	directory *gazetteer.Directory
	logger    *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	directory *gazetteer.Directory
	inMemory  bool
}

// WithDirectory uses a caller-supplied place directory instead of the
// embedded one.
func WithDirectory(directory *gazetteer.Directory) DatabaseOption {
	return func(o *databaseOptions) {
		o.directory = directory
	}
}

// WithInMemoryStore opens a store that lives only as long as the process.
func WithInMemoryStore() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens (or creates) the record store at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		directory: gazetteer.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create record repository
	records, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:   backend,
		records:   records,
		directory: options.directory,
		logger:    slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.records.Close(); err != nil {
		db.logger.Error("error closing record repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Directory returns the place directory datasets are built with.
func (db *Database) Directory() *gazetteer.Directory {
	return db.directory
}

// RecordRepository returns the underlying record store.
func (db *Database) RecordRepository() storage.RecordRepository {
	return db.records
}

// ImportAntigens stores antigen records under name.
func (db *Database) ImportAntigens(ctx context.Context, name string, records []core.Record) (*storage.RecordSetInfo, error) {
	return db.records.SaveRecordSet(ctx, name, core.KindAntigen, records)
}

// ImportSera stores serum records under name.
func (db *Database) ImportSera(ctx context.Context, name string, records []core.Record) (*storage.RecordSetInfo, error) {
	return db.records.SaveRecordSet(ctx, name, core.KindSerum, records)
}

// AntigenDataset builds a matcher over the antigen set stored under name.
// The caller owns the dataset and must Close it.
func (db *Database) AntigenDataset(ctx context.Context, name string, opts ...dataset.Option) (*dataset.Dataset, error) {
	records, _, err := db.records.GetRecordSet(ctx, name, core.KindAntigen)
	if err != nil {
		return nil, err
	}
	return dataset.NewAntigenDataset(records, db.datasetOptions(opts)...)
}

// SerumDataset builds a matcher over the serum set stored under name.
// The caller owns the dataset and must Close it.
func (db *Database) SerumDataset(ctx context.Context, name string, opts ...dataset.Option) (*dataset.Dataset, error) {
	records, _, err := db.records.GetRecordSet(ctx, name, core.KindSerum)
	if err != nil {
		return nil, err
	}
	return dataset.NewSerumDataset(records, db.datasetOptions(opts)...)
}

// TiterTable builds a titer table from a results record against the
// antigen and serum sets stored under antigenSet and serumSet.
func (db *Database) TiterTable(ctx context.Context, results core.Record, antigenSet, serumSet string) (*titer.Table, error) {
	antigens, _, err := db.records.GetRecordSet(ctx, antigenSet, core.KindAntigen)
	if err != nil {
		return nil, err
	}
	sera, _, err := db.records.GetRecordSet(ctx, serumSet, core.KindSerum)
	if err != nil {
		return nil, err
	}
	return titer.New(results, antigens, sera, titer.WithDirectory(db.directory))
}

func (db *Database) datasetOptions(opts []dataset.Option) []dataset.Option {
	base := []dataset.Option{dataset.WithDirectory(db.directory)}
	return append(base, opts...)
}
