// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sessionsuc contains the sessions UseCase which manages the
// parking sessions of clients. Two use cases are supported:
//  1. Entering a parking, taking one of its available places,
//  2. Exiting a parking, releasing the place and paying for the stay.
//
// Each use case runs in a single transaction, so the available places
// counter of a parking and its active sessions are changed together.
package sessionsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

// Gateway charges clients for their parking sessions.
type Gateway interface {
	// Charge takes the ch amount from the credit card of the cl
	// client. A non-nil error indicates that the payment was not
	// accepted and nothing was taken.
	Charge(ctx context.Context, cl *model.Client, ch model.Charge) (*model.Receipt, error)
}

// Recorder is notified about the successfully committed sessions.
type Recorder interface {
	SessionOpened(cp *model.ClientParking)
	SessionClosed(cp *model.ClientParking, ch model.Charge)
}

// UseCase represents a sessions use case. It holds a database
// connection pool, the repositories which must be updated together,
// the payment gateway, and the billing settings.
type UseCase struct {
	pool       repo.Pool
	clientsrp  repo.Clients
	parkingsrp repo.Parkings
	sessionsrp repo.Sessions
	gateway    Gateway

	tariff   model.Tariff
	rateSet  bool
	now      func() time.Time
	recorder Recorder
}

// New instantiates a sessions use case.
// Required parameters are passed individually, while the optional
// billing settings, clock, and recorder are passed as functional
// options. By default, every started hour costs 1.0 USD.
func New(
	p repo.Pool,
	c repo.Clients,
	pr repo.Parkings,
	s repo.Sessions,
	gw Gateway,
	opts ...Option,
) (*UseCase, error) {
	if gw == nil {
		return nil, errors.New("payment gateway is nil")
	}
	uc := &UseCase{
		pool:       p,
		clientsrp:  c,
		parkingsrp: pr,
		sessionsrp: s,
		gateway:    gw,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.tariff.Period == 0 {
		uc.tariff.Period = time.Hour
	}
	if !uc.rateSet {
		uc.tariff.Rate = 1.0
	}
	if uc.tariff.Currency == "" {
		uc.tariff.Currency = "USD"
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// Tariff returns the effective billing settings.
func (sessions *UseCase) Tariff() model.Tariff {
	return sessions.tariff
}

// Enter starts a parking session for the clientID client at the
// parkingID parking, taking one of its available places.
// The client and parking must exist, the parking must be opened and
// have an available place, and the client may not have another active
// session at that parking.
func (sessions *UseCase) Enter(
	ctx context.Context, clientID, parkingID int64,
) (cp *model.ClientParking, err error) {
	ctx = log.WithAttrs(ctx,
		slog.Int64("client_id", clientID),
		slog.Int64("parking_id", parkingID),
	)
	err = sessions.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			cp, err = sessions.enter(ctx, tx, clientID, parkingID)
			return err
		})
	})
	if err != nil {
		log.Debug(ctx, "entering parking failed", log.Err("err", err))
		return nil, err
	}
	log.Info(ctx, "parking entered", log.Session("session", cp))
	if sessions.recorder != nil {
		sessions.recorder.SessionOpened(cp)
	}
	return cp, nil
}

func (sessions *UseCase) enter(
	ctx context.Context, tx repo.Tx, clientID, parkingID int64,
) (*model.ClientParking, error) {
	if _, err := sessions.clientsrp.Tx(tx).Get(ctx, clientID); err != nil {
		return nil, err
	}
	pq := sessions.parkingsrp.Tx(tx)
	p, err := pq.Get(ctx, parkingID)
	if err != nil {
		return nil, err
	}
	if !p.Opened {
		return nil, cerr.InvalidState(model.ErrParkingClosed)
	}
	if !p.HasAvailablePlaces() {
		return nil, cerr.InvalidState(model.ErrNoAvailablePlaces)
	}
	sq := sessions.sessionsrp.Tx(tx)
	active, err := sq.Active(ctx, clientID, parkingID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, cerr.Conflict(model.ErrSessionActive)
	}
	taken, err := pq.TakePlace(ctx, parkingID)
	if err != nil {
		return nil, err
	}
	if !taken {
		return nil, cerr.InvalidState(model.ErrNoAvailablePlaces)
	}
	return sq.Open(ctx, &model.ClientParking{
		ClientID:  clientID,
		ParkingID: parkingID,
		TimeIn:    sessions.now().UTC(),
	})
}

// Exit finishes the active parking session of the clientID client at
// the parkingID parking, releasing its place. The client is charged
// for every started billing period of the session using its credit
// card. If the payment is not accepted, nothing is changed.
func (sessions *UseCase) Exit(
	ctx context.Context, clientID, parkingID int64,
) (ex *model.Exit, err error) {
	ctx = log.WithAttrs(ctx,
		slog.Int64("client_id", clientID),
		slog.Int64("parking_id", parkingID),
	)
	var ch model.Charge
	err = sessions.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			ex, ch, err = sessions.exit(ctx, tx, clientID, parkingID)
			return err
		})
	})
	if err != nil {
		log.Debug(ctx, "exiting parking failed", log.Err("err", err))
		return nil, err
	}
	log.Info(ctx, "parking exited",
		log.Session("session", ex.ClientParking),
		log.Charge("charge", ch),
	)
	if sessions.recorder != nil {
		sessions.recorder.SessionClosed(ex.ClientParking, ch)
	}
	return ex, nil
}

// exit closes the session and releases its place before asking the
// gateway for the payment, so a lost race is never charged and a
// declined payment rolls both updates back.
func (sessions *UseCase) exit(
	ctx context.Context, tx repo.Tx, clientID, parkingID int64,
) (*model.Exit, model.Charge, error) {
	var ch model.Charge
	cl, err := sessions.clientsrp.Tx(tx).Get(ctx, clientID)
	if err != nil {
		return nil, ch, err
	}
	pq := sessions.parkingsrp.Tx(tx)
	if _, err = pq.Get(ctx, parkingID); err != nil {
		return nil, ch, err
	}
	sq := sessions.sessionsrp.Tx(tx)
	cp, err := sq.Active(ctx, clientID, parkingID)
	if err != nil {
		return nil, ch, err
	}
	if cp == nil {
		return nil, ch, cerr.NotFound(model.ErrActiveSessionNotFound)
	}
	if !cl.CanPay() {
		return nil, ch, cerr.InvalidState(model.ErrNoPaymentMethod)
	}
	now := sessions.now().UTC()
	closed, err := sq.Close(ctx, cp.ID, now)
	if err != nil {
		return nil, ch, err
	}
	if !closed {
		return nil, ch, cerr.NotFound(model.ErrActiveSessionNotFound)
	}
	cp.TimeOut = &now
	released, err := pq.ReleasePlace(ctx, parkingID)
	if err != nil {
		return nil, ch, err
	}
	if !released {
		return nil, ch, cerr.Internal(model.ErrCapacityInvariant)
	}
	ch = sessions.tariff.Charge(cp.Duration(now))
	rcpt, err := sessions.gateway.Charge(ctx, cl, ch)
	if err != nil {
		log.Warn(ctx, "payment was declined",
			log.Charge("charge", ch), log.Err("err", err),
		)
		return nil, ch, cerr.Payment(model.ErrPaymentFailed)
	}
	log.Debug(ctx, "payment accepted",
		slog.String("reference", rcpt.Reference),
	)
	return &model.Exit{
		ClientParking: cp,
		Charged:       ch.Amount,
		Currency:      ch.Currency,
	}, ch, nil
}
