// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

/*
Package middleware provides the HTTP middleware the Tripscore API mounts on
its chi router.

Key Components:

  - RequestID: takes X-Request-ID from the client or generates a UUID, echoes
    it on the response and stores it (plus a fresh correlation id) in the
    logging context.
  - PrometheusMetrics: counts requests and observes latency per route
    pattern. Labels use the chi route pattern, not the raw path, so user and
    item ids never become label values.
  - SecurityHeaders: nosniff, frame denial, referrer policy and HSTS behind
    TLS.

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SecurityHeaders)

CORS and rate limiting come from go-chi/cors and go-chi/httprate and are
configured in the api package.
*/
package middleware
