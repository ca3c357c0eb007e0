// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strings"
)

// Parking models a parking facility. The CountPlaces is its total
// capacity which is fixed at creation time, while the
// CountAvailablePlaces is a materialized counter of its unoccupied
// places. Each active ClientParking session which refers to a parking
// occupies one of its places, so the counter must be updated in the
// same transaction which opens or closes a session.
type Parking struct {
	ID                   int64  `json:"id"`
	Address              string `json:"address"`
	Opened               bool   `json:"opened"`
	CountPlaces          int    `json:"count_places"`
	CountAvailablePlaces int    `json:"count_available_places"`
}

// NewParking instantiates an opened parking with all of its places
// being available. The address must not be blank and the count must
// be positive, otherwise, ErrParkingAddressRequired or a PlacesError
// will be returned respectively.
func NewParking(address string, count int) (*Parking, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrParkingAddressRequired
	}
	if count <= 0 {
		return nil, PlacesError(count)
	}
	return &Parking{
		Address:              address,
		Opened:               true,
		CountPlaces:          count,
		CountAvailablePlaces: count,
	}, nil
}

// HasAvailablePlaces reports if at least one place is unoccupied.
func (p *Parking) HasAvailablePlaces() bool {
	return p.CountAvailablePlaces > 0
}

// Validate checks the capacity invariant, that is, available places
// must be within the [0, CountPlaces] range.
func (p *Parking) Validate() error {
	if p.CountPlaces <= 0 {
		return PlacesError(p.CountPlaces)
	}
	if p.CountAvailablePlaces < 0 || p.CountAvailablePlaces > p.CountPlaces {
		return fmt.Errorf(
			"available places (%d) out of [0, %d]",
			p.CountAvailablePlaces, p.CountPlaces,
		)
	}
	return nil
}

// PlacesError indicates an invalid (non-positive) capacity for a
// parking. It keeps the rejected count, so it may be reported back.
type PlacesError int

// Error implements the error interface, returning a string
// representation of the PlacesError.
func (e PlacesError) Error() string {
	return fmt.Sprintf("count_places must be a positive integer, got %d", int(e))
}
