// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stubpay provides a payment gateway which accepts every
// charge without contacting any payment processor.
package stubpay

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/momeni/clean-parking/pkg/core/model"
)

// Gateway accepts all charges and issues a random reference for them.
type Gateway struct {
	now func() time.Time
}

func New() *Gateway {
	return &Gateway{now: time.Now}
}

func (g *Gateway) Charge(
	ctx context.Context, cl *model.Client, ch model.Charge,
) (*model.Receipt, error) {
	ref := uuid.New().String()
	log.Debug(ctx, "simulated payment accepted",
		slog.Int64("client_id", cl.ID),
		slog.String("reference", ref),
		log.Charge("charge", ch),
	)
	return &model.Receipt{
		Reference: ref,
		Charge:    ch,
		PaidAt:    g.now().UTC(),
	}, nil
}
