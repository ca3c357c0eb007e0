// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"time"

	"github.com/momeni/clean-parking/pkg/core/model"
)

type SessionsConnQueryer interface {
	SessionsQueryer
}

// SessionsTxQueryer adds the session mutating methods. They are only
// available in a transaction because they must be combined with the
// capacity bookkeeping of ParkingsTxQueryer atomically.
type SessionsTxQueryer interface {
	SessionsQueryer

	// Open inserts cp as a new active session. A concurrent active
	// session for the same client and parking is reported as a
	// conflict error.
	Open(ctx context.Context, cp *model.ClientParking) (*model.ClientParking, error)

	// Close records timeOut for the id session if it is still active.
	// It reports false if no row was updated.
	Close(ctx context.Context, id int64, timeOut time.Time) (bool, error)
}

type SessionsQueryer interface {
	// Active returns the active session of the clientID client at
	// the parkingID parking. A nil session and nil error are returned
	// if there is no such session.
	Active(ctx context.Context, clientID, parkingID int64) (*model.ClientParking, error)

	// CountActive returns the number of active sessions of the
	// parkingID parking.
	CountActive(ctx context.Context, parkingID int64) (int64, error)
}

type Sessions interface {
	Conn(Conn) SessionsConnQueryer
	Tx(Tx) SessionsTxQueryer
}
