// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

// Package recommend builds user and item profiles from multi-attribute reviews
// and scores how well an item fits a user.
//
// # Profiles
//
// Every review carries an optional rating for each dimension of the attribute
// schema (service, cleanliness, value, location, sleep_quality, rooms).
// Two profiles are derived from the full review set:
//
//   - User model: for each dimension, the fraction of the user's reviews that
//     supplied a rating for it. This is read as how much attention the user
//     pays to the dimension and always lies in [0, 1].
//   - Item model: for each dimension, the mean of all ratings supplied for it
//     across the item's reviews. A dimension nobody rated gets the value 0.
//
// All profile values are rounded to one decimal place.
//
// # Scoring
//
// The recommendation value of an item for a user is
//
//	mean over dimensions d of ( importance_d * average_d + (1 - importance_d) )
//
// rounded to one decimal place. Dimensions the user rarely rates contribute
// close to 1 whatever the item's average.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	records, err := ingest.Load(ctx, ingest.NewCSVSource(path, ';'), engine.Schema())
//	if err != nil {
//	    return err
//	}
//
//	if err := engine.Build(ctx, records); err != nil {
//	    return err
//	}
//
//	value, err := engine.GetRecommendationValue(ctx, userID, itemID)
//
// # Thread Safety
//
// Models are built off to the side and published as one immutable snapshot
// with an atomic pointer swap, so readers never observe a partially built
// model. Accessors return deep copies. The engine is safe for concurrent use.
package recommend
