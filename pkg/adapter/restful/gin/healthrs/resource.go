// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package healthrs realizes the health check resource.
package healthrs

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

type resource struct {
	pool repo.Pool
}

// Register adds the GET /healthz API which reports if the database
// is reachable.
func Register(r gin.IRouter, p repo.Pool) {
	rs := &resource{pool: p}
	r.GET("healthz", rs.Health)
}

func (rs *resource) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 2*time.Second)
	defer cancel()
	if err := rs.pool.Ping(ctx); err != nil {
		log.Warn(c, "database is unreachable", log.Err("err", err))
		serdser.Error(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
