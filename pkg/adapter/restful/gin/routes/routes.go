// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-parking/pkg/adapter/config"
	"github.com/momeni/clean-parking/pkg/adapter/metrics"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/clientsrs"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/healthrs"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/middleware"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/parkingsrs"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/sessionsrs"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like clientsuc and each repository package is named like clientsrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like clientsrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance, after the
// request ID and metrics middlewares.
func Register(e *gin.Engine, p repo.Pool, c *config.Config) error {
	sessions, err := c.NewSessionsUseCase(p)
	if err != nil {
		return fmt.Errorf("creating sessions use case: %w", err)
	}
	e.Use(middleware.RequestID())
	if *c.Metrics.Enabled {
		metrics.Register()
		e.Use(middleware.Metrics())
		e.GET(c.Metrics.Path, gin.WrapH(metrics.Handler()))
	}
	healthrs.Register(e, p)
	clientsrs.Register(e, c.NewClientsUseCase(p))
	parkingsrs.Register(e, c.NewParkingsUseCase(p))
	sessionsrs.Register(e, sessions)
	return nil
}
