// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// ClientParking models a parking session, spanning a client's stay at
// a parking facility from its entry to its exit.
// A session is created as active (with a nil TimeOut) and is closed
// exactly once by setting its TimeOut. Closed sessions are kept for
// the records and are never reopened nor deleted.
type ClientParking struct {
	ID        int64      `json:"id"`
	ClientID  int64      `json:"client_id"`
	ParkingID int64      `json:"parking_id"`
	TimeIn    time.Time  `json:"time_in"`
	TimeOut   *time.Time `json:"time_out"`
}

// Active reports if the session has no recorded exit time yet.
func (cp *ClientParking) Active() bool {
	return cp.TimeOut == nil
}

// Duration returns the stay duration of a session assuming that it
// is (or was) closed at the given now time. For closed sessions, the
// recorded TimeOut takes precedence over now.
func (cp *ClientParking) Duration(now time.Time) time.Duration {
	if cp.TimeOut != nil {
		now = *cp.TimeOut
	}
	return now.Sub(cp.TimeIn)
}

// Exit is the outcome of a successful exit from a parking, containing
// the closed session and the amount which was charged for it.
type Exit struct {
	ClientParking *ClientParking `json:"client_parking"`
	Charged       float64        `json:"charged"`
	Currency      string         `json:"currency"`
}
