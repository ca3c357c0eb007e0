// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Tariff describes how a parking stay is priced. Stays are measured
// in whole billing periods (normally one hour) and each started period
// costs Rate units of the Currency.
type Tariff struct {
	Period   time.Duration
	Rate     float64
	Currency string
}

// BilledPeriods returns the number of whole periods which should be
// billed for a stay of d duration. Any started period counts as a
// full one, so a one second stay bills one period, while a stay of
// exactly one period bills one. Non-positive durations bill nothing.
func (t Tariff) BilledPeriods(d time.Duration) int64 {
	if d <= 0 || t.Period <= 0 {
		return 0
	}
	n := int64(d / t.Period)
	if d%t.Period != 0 {
		n++
	}
	return n
}

// Charge computes the amount to be charged for a stay of d duration.
func (t Tariff) Charge(d time.Duration) Charge {
	return Charge{
		Periods:  t.BilledPeriods(d),
		Amount:   float64(t.BilledPeriods(d)) * t.Rate,
		Currency: t.Currency,
	}
}

// Charge is an amount of money which should be taken from a client.
type Charge struct {
	Periods  int64   // number of billed periods
	Amount   float64 // total amount, i.e., Periods times the rate
	Currency string  // ISO 4217 currency code, like USD
}

// Receipt is returned by a payment gateway after a successful charge.
type Receipt struct {
	Reference string    // gateway specific transaction reference
	Charge    Charge    // the charged amount
	PaidAt    time.Time // when the payment was accepted
}
