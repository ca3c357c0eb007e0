// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo contains the repository interfaces which are required
// by the use cases layer. Use cases acquire a connection (or a
// transaction on top of it) from a Pool for each unit of work and pass
// it to the repositories, so the store handle is never kept as an
// ambient global state.
package repo

import "context"

// ConnHandler is a function which runs queries on a connection which
// is acquired from the pool. The connection is released as soon as
// the handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool represents a database connections pool.
type Pool interface {
	// Conn acquires a connection, passes it to handler, and releases
	// it afterwards. Errors of handler are returned as is.
	Conn(ctx context.Context, handler ConnHandler) error

	// Ping checks if the database may be reached.
	Ping(ctx context.Context) error
}
