// Tripscore - Review-based preference profiles and item scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripscore

/*
Package supervisor provides process supervision for the Tripscore server
using suture v4.

# Overview

Services are organized into two layers:

	RootSupervisor ("tripscore")
	├── ModelsSupervisor ("models-layer")
	│   └── RebuildService (rebuild models on SIGHUP)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing rebuild never takes the HTTP server down: the last published
snapshot keeps serving until a rebuild succeeds.

# Logging

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog; cmd/server passes a slog.Logger backed by the zerolog logger
(logging.NewSlogLogger) so they share the application's output.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddModelService(services.NewRebuildService(rebuild, hup, 0, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err = tree.Serve(ctx)

Cancelling the context stops every service; UnstoppedServiceReport lists the
ones that did not return within ShutdownTimeout.
*/
package supervisor
