// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hourly = model.Tariff{Period: time.Hour, Rate: 1.0, Currency: "USD"}

func TestBilledPeriods(t *testing.T) {
	for _, tc := range []struct {
		name string
		d    time.Duration
		want int64
	}{
		{"zero", 0, 0},
		{"negative", -time.Minute, 0},
		{"half second", 500 * time.Millisecond, 1},
		{"one second", time.Second, 1},
		{"five minutes", 5 * time.Minute, 1},
		{"exactly one hour", 3600 * time.Second, 1},
		{"one hour and a second", 3601 * time.Second, 2},
		{"a day", 24 * time.Hour, 24},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hourly.BilledPeriods(tc.d))
		})
	}
}

func TestCharge(t *testing.T) {
	c := model.Tariff{Period: time.Hour, Rate: 2.5, Currency: "USD"}.Charge(
		90 * time.Minute,
	)
	assert.Equal(t, model.Charge{Periods: 2, Amount: 5, Currency: "USD"}, c)
}

func TestNewParking(t *testing.T) {
	p, err := model.NewParking("Lenina 1", 10)
	require.NoError(t, err)
	assert.True(t, p.Opened)
	assert.Equal(t, 10, p.CountAvailablePlaces)
	assert.NoError(t, p.Validate())

	_, err = model.NewParking(" ", 10)
	assert.ErrorIs(t, err, model.ErrParkingAddressRequired)

	_, err = model.NewParking("Lenina 1", 0)
	var pe model.PlacesError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, model.PlacesError(0), pe)
}

func TestParkingValidate(t *testing.T) {
	p := &model.Parking{CountPlaces: 2, CountAvailablePlaces: 3}
	assert.Error(t, p.Validate())
	p.CountAvailablePlaces = -1
	assert.Error(t, p.Validate())
	p.CountAvailablePlaces = 0
	assert.NoError(t, p.Validate())
	assert.False(t, p.HasAvailablePlaces())
}

func TestClient(t *testing.T) {
	card := "1111222233334444"
	c := &model.Client{Name: "Ivan", Surname: "Petrov"}
	assert.NoError(t, c.Validate())
	assert.False(t, c.CanPay())
	c.CreditCard = &card
	assert.True(t, c.CanPay())
	c.Surname = ""
	assert.ErrorIs(t, c.Validate(), model.ErrClientNameRequired)
}

func TestSessionDuration(t *testing.T) {
	in := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	cp := &model.ClientParking{TimeIn: in}
	assert.True(t, cp.Active())
	assert.Equal(t, 5*time.Minute, cp.Duration(in.Add(5*time.Minute)))
	out := in.Add(time.Hour)
	cp.TimeOut = &out
	assert.False(t, cp.Active())
	assert.Equal(t, time.Hour, cp.Duration(in.Add(5*time.Hour)))
}
