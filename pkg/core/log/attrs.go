// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/momeni/clean-parking/pkg/core/model"
)

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Session returns a group Attr describing the cp parking session.
func Session(key string, cp *model.ClientParking) slog.Attr {
	if cp == nil {
		return slog.String(key, "nil-session")
	}
	return slog.Group(key,
		slog.Int64("id", cp.ID),
		slog.Int64("client_id", cp.ClientID),
		slog.Int64("parking_id", cp.ParkingID),
		slog.Time("time_in", cp.TimeIn),
	)
}

// Charge returns a group Attr describing the c charge.
func Charge(key string, c model.Charge) slog.Attr {
	return slog.Group(key,
		slog.Int64("periods", c.Periods),
		slog.Float64("amount", c.Amount),
		slog.String("currency", c.Currency),
	)
}
