// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

// Package ingest reads review records from a delimited text source into the
// record map the recommend package builds models from.
//
// Two sources read the same file format:
//
//   - CSVSource streams the file with encoding/csv.
//   - DuckDBSource reads it through DuckDB's read_csv table function, which
//     copes with larger files and quoting irregularities.
//
// The header row must name the columns id, author.id and offering_id, plus
// one ratings.<dimension> column per schema dimension the file carries.
// Missing dimension columns mean "not supplied" for every row.
//
// Load turns rows into reviews. A repeated review id replaces the earlier row.
// A row without an id, author or offering aborts the whole load with
// recommend.ErrMalformedRecord; a source that cannot be opened or read fails
// with recommend.ErrSourceUnavailable.
package ingest
