// Package mongotab backs the tabular abstraction with MongoDB: each
// collection is a sheet, each document a row.
//
// Row documents carry an explicit index so column values stay aligned
// across reads and writes:
//
//	{ "index": 0, "cells": ["Name", "Phone"] }
//	{ "index": 1, "cells": ["Ada", "(415) 555-0123"] }
package mongotab

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dialtone/pkg/tabular"
)

type Store struct {
	db        *mongo.Database
	headerRow int64
}

func NewStore(db *mongo.Database, headerRow int) *Store {
	return &Store{db: db, headerRow: int64(headerRow)}
}

func (s *Store) Sheets(ctx context.Context) ([]tabular.Source, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet collections: %w", err)
	}
	sort.Strings(names)

	sheets := make([]tabular.Source, 0, len(names))
	for _, name := range names {
		sheets = append(sheets, s.sheet(name))
	}
	return sheets, nil
}

func (s *Store) Sheet(ctx context.Context, name string) (tabular.Source, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %s: %w", name, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("sheet %s does not exist", name)
	}
	return s.sheet(name), nil
}

func (s *Store) sheet(name string) *Sheet {
	return &Sheet{
		collection: s.db.Collection(name),
		name:       name,
		headerRow:  s.headerRow,
	}
}

type Sheet struct {
	collection *mongo.Collection
	name       string
	headerRow  int64
}

type rowDoc struct {
	Index int64 `bson:"index"`
	Cells []any `bson:"cells"`
}

func (s *Sheet) Name() string {
	return s.name
}

func (s *Sheet) Headers(ctx context.Context) ([]string, error) {
	var row rowDoc
	err := s.collection.FindOne(ctx, bson.M{"index": s.headerRow}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row of sheet %s: %w", s.name, err)
	}

	headers := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		if cell == nil {
			continue
		}
		headers[i] = fmt.Sprint(cell)
	}
	return headers, nil
}

func (s *Sheet) ReadColumn(ctx context.Context, col int) ([]any, error) {
	rows, err := s.dataRows(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(rows))
	for i, row := range rows {
		if col < len(row.Cells) {
			values[i] = row.Cells[col]
		}
	}
	return values, nil
}

func (s *Sheet) WriteColumn(ctx context.Context, col int, values []string) error {
	rows, err := s.dataRows(ctx)
	if err != nil {
		return err
	}

	// Results are written as BSON strings so a numeric-looking value keeps
	// its exact digits.
	var writes []mongo.WriteModel
	field := fmt.Sprintf("cells.%d", col)
	for i, row := range rows {
		if i >= len(values) {
			break
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"index": row.Index}).
			SetUpdate(bson.M{"$set": bson.M{field: values[i]}}))
	}
	if len(writes) == 0 {
		return nil
	}

	_, err = s.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("failed to write column %d of sheet %s: %w", col, s.name, err)
	}
	return nil
}

func (s *Sheet) dataRows(ctx context.Context) ([]rowDoc, error) {
	cursor, err := s.collection.Find(ctx,
		bson.M{"index": bson.M{"$gt": s.headerRow}},
		options.Find().SetSort(bson.D{{Key: "index", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %s: %w", s.name, err)
	}

	var rows []rowDoc
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows of sheet %s: %w", s.name, err)
	}
	return rows, nil
}
