// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionsuc

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Option is a functional option for the sessions use case.
type Option func(uc *UseCase) error

// WithBillingPeriod option configures the duration which is billed
// as one unit. Every started period is billed completely.
func WithBillingPeriod(period time.Duration) Option {
	return func(uc *UseCase) error {
		if d := int64(period); d <= 0 {
			return fmt.Errorf("billing period (%d) is not positive", d)
		}
		if uc.tariff.Period != 0 {
			return errors.New("billing period is already configured")
		}
		uc.tariff.Period = period
		return nil
	}
}

// WithHourlyRate option configures the price of one billing period.
// The name follows the default one hour billing period.
func WithHourlyRate(rate float64) Option {
	return func(uc *UseCase) error {
		if rate < 0 {
			return fmt.Errorf("hourly rate (%v) is negative", rate)
		}
		if uc.rateSet {
			return errors.New("hourly rate is already configured")
		}
		uc.tariff.Rate = rate
		uc.rateSet = true
		return nil
	}
}

// WithCurrency option configures the currency code which is reported
// alongside the charged amounts.
func WithCurrency(currency string) Option {
	return func(uc *UseCase) error {
		currency = strings.TrimSpace(currency)
		if currency == "" {
			return errors.New("currency is empty")
		}
		if uc.tariff.Currency != "" {
			return errors.New("currency is already configured")
		}
		uc.tariff.Currency = strings.ToUpper(currency)
		return nil
	}
}

// WithClock option replaces time.Now as the source of entry and exit
// times.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		uc.now = now
		return nil
	}
}

// WithRecorder option registers r to be notified after each entry
// and exit which is committed successfully.
func WithRecorder(r Recorder) Option {
	return func(uc *UseCase) error {
		if r == nil {
			return errors.New("recorder is nil")
		}
		uc.recorder = r
		return nil
	}
}
