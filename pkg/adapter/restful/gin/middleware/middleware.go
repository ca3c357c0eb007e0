// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package middleware provides the gin middlewares which are shared by
// all resources.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/clean-parking/pkg/adapter/metrics"
	"github.com/momeni/clean-parking/pkg/core/log"
)

// RequestIDHeader is the request and response header which carries
// the request ID.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns an ID to each request, reusing the ID which is
// sent by the client (if any). The ID is returned in the response
// headers and is attached to the request context, so all records
// which are logged while serving that request include it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		ctx := log.WithAttrs(c.Request.Context(), slog.String("request_id", id))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Metrics counts the served requests by their method, route pattern,
// and response status code.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.IncHTTP(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
