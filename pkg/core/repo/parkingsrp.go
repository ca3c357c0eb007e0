// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/clean-parking/pkg/core/model"
)

type ParkingsConnQueryer interface {
	ParkingsQueryer
}

// ParkingsTxQueryer adds the capacity bookkeeping methods which must
// run in the same transaction as the session changes.
type ParkingsTxQueryer interface {
	ParkingsQueryer

	// TakePlace decrements the available places of the id parking
	// if it has at least one available place. It reports false if
	// no row was updated (i.e., the parking was full or missing).
	TakePlace(ctx context.Context, id int64) (bool, error)

	// ReleasePlace increments the available places of the id parking
	// if it is below its capacity. It reports false if no row was
	// updated (i.e., the parking was missing or had no taken place).
	ReleasePlace(ctx context.Context, id int64) (bool, error)
}

type ParkingsQueryer interface {
	List(ctx context.Context) ([]model.Parking, error)
	Get(ctx context.Context, id int64) (*model.Parking, error)
	Create(ctx context.Context, p *model.Parking) (*model.Parking, error)
	SetOpened(ctx context.Context, id int64, opened bool) (*model.Parking, error)
}

type Parkings interface {
	Conn(Conn) ParkingsConnQueryer
	Tx(Tx) ParkingsTxQueryer
}
