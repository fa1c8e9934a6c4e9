// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

// Command profile loads a review file, builds every model and prints the
// models and recommendation value of one user/item pair.
//
//	profile -source reviews.csv -user U1 -item I1
//	profile -source reviews.csv -unrated
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tripscore/internal/ingest"
	"github.com/tomtom215/tripscore/internal/recommend"
)

// profileOutput is the JSON document printed for a user/item query.
type profileOutput struct {
	UserID         string              `json:"user_id"`
	ItemID         string              `json:"item_id"`
	UserModel      recommend.UserModel `json:"user_model"`
	ItemModel      recommend.ItemModel `json:"item_model"`
	Recommendation float64             `json:"recommendation"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		source    = fs.String("source", "reviews.csv", "review file")
		delimiter = fs.String("delimiter", string(ingest.DefaultDelimiter), "field separator")
		engine    = fs.String("engine", ingest.EngineCSV, "source reader: csv or duckdb")
		userID    = fs.String("user", "", "user id to profile")
		itemID    = fs.String("item", "", "item id to profile")
		unrated   = fs.Bool("unrated", false, "list items with at least one unrated dimension")
		parallel  = fs.Bool("parallel", false, "build user and item models concurrently")
		verbose   = fs.Bool("v", false, "log build progress to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !*unrated && (*userID == "" || *itemID == "") {
		fmt.Fprintln(stderr, "profile: -user and -item are required unless -unrated is set")
		fs.Usage()
		return 2
	}
	if utf8.RuneCountInString(*delimiter) != 1 {
		fmt.Fprintf(stderr, "profile: -delimiter must be one character, got %q\n", *delimiter)
		return 2
	}
	delim, _ := utf8.DecodeRuneInString(*delimiter)

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	cfg := recommend.DefaultConfig()
	cfg.Parallel = *parallel
	cfg.Cache.Enabled = false

	e, err := recommend.NewEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
		return 1
	}

	src, err := ingest.NewSource(*engine, *source, delim)
	if err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
		return 2
	}

	ctx := context.Background()
	records, err := ingest.Load(ctx, src, e.Schema())
	if err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
		return 1
	}
	if err := e.Build(ctx, records); err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
		return 1
	}

	var out any
	if *unrated {
		items, err := e.ItemsWithUnratedDimensions()
		if err != nil {
			fmt.Fprintf(stderr, "profile: %v\n", err)
			return 1
		}
		out = items
	} else {
		out, err = profile(ctx, e, *userID, *itemID)
		if err != nil {
			fmt.Fprintf(stderr, "profile: %v\n", err)
			if errors.Is(err, recommend.ErrUnknownUser) || errors.Is(err, recommend.ErrUnknownItem) {
				return 3
			}
			return 1
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "profile: encode output: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(data))
	return 0
}

// profile gathers both models and the recommendation value of a pair.
func profile(ctx context.Context, e *recommend.Engine, userID, itemID string) (*profileOutput, error) {
	user, err := e.GetUserModel(userID)
	if err != nil {
		return nil, err
	}
	item, err := e.GetItemModel(itemID)
	if err != nil {
		return nil, err
	}
	value, err := e.GetRecommendationValue(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	return &profileOutput{
		UserID:         userID,
		ItemID:         itemID,
		UserModel:      user,
		ItemModel:      item,
		Recommendation: value,
	}, nil
}
