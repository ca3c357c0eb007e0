// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "errors"

// These errors describe the business-level failures. They only encode
// a description string (and not the arguments which caused them)
// because the caller already knows about its own arguments.
// They are wrapped by the cerr package in order to be classified.
var (
	ErrClientNameRequired     = errors.New("name and surname required")
	ErrParkingAddressRequired = errors.New("address and count_places required")

	ErrClientNotFound        = errors.New("client not found")
	ErrParkingNotFound       = errors.New("parking not found")
	ErrActiveSessionNotFound = errors.New("active parking session not found")

	ErrParkingClosed      = errors.New("parking is closed")
	ErrNoAvailablePlaces  = errors.New("no available places")
	ErrNoPaymentMethod    = errors.New("no credit card attached; cannot charge")
	ErrSessionActive      = errors.New("active parking session already exists for this client on this parking")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrCapacityInvariant  = errors.New("available places would exceed the parking capacity")
	ErrDuplicatedIdentity = errors.New("duplicated record")
)
