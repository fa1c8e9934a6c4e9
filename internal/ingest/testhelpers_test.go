// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// sampleReviews is a small dataset in the review file format.
const sampleReviews = `id;author.id;offering_id;ratings.service;ratings.cleanliness;ratings.value;ratings.location;ratings.sleep_quality;ratings.rooms
r1;U1;I1;4;5;;3;;4
r2;U1;I2;2;;5;;;
r3;U2;I1;5;5;5;5;5;5
`

// writeFile writes content to a file in a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// sliceSource serves fixed rows.
type sliceSource struct {
	rows []Row
	err  error
}

func (s *sliceSource) Each(ctx context.Context, fn func(Row) error) error {
	if s.err != nil {
		return s.err
	}
	for _, r := range s.rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *sliceSource) String() string { return "slice" }

// collect reads every row of src.
func collect(t *testing.T, src Source) []Row {
	t.Helper()
	var rows []Row
	if err := src.Each(context.Background(), func(r Row) error {
		rows = append(rows, r)
		return nil
	}); err != nil {
		t.Fatalf("Each: %v", err)
	}
	return rows
}
