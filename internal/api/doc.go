// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

/*
Package api provides the HTTP query surface over the built models.

Key Components:

  - Router: chi route table and global middleware stack
  - Handler: request handlers backed by a ModelService (the recommend engine)
  - ChiMiddleware: CORS (go-chi/cors) and rate limiting (go-chi/httprate)
  - Response formatting: every response uses the models.APIResponse envelope

Endpoints:

	GET /api/v1/users/{userID}/model                         user attention ratios
	GET /api/v1/items/{itemID}/model                         item dimension averages
	GET /api/v1/users/{userID}/items/{itemID}/recommendation recommendation value
	GET /api/v1/items/unrated                                items with unrated dimensions
	GET /api/v1/schema                                       ordered dimensions
	GET /api/v1/status                                       build status
	GET /api/v1/health/live                                  liveness
	GET /api/v1/health/ready                                 readiness (503 until built)
	GET /metrics                                             Prometheus exposition

Error Handling:

Engine errors map to status codes: unknown users and items are 404, queries
before the first build are 503 MODELS_NOT_READY, malformed ids are 400
VALIDATION_ERROR. Anything else is logged and returned as 500
INTERNAL_ERROR without the underlying message.

Example:

	handler := api.NewHandler(engine)
	mw := api.NewChiMiddlewareFromConfig(&cfg.Security)
	router := api.NewRouter(handler, mw)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
