// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionsuc_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/momeni/clean-parking/internal/test/dbcontainer"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/clientsrp"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/parkingsrp"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/sessionsrp"
	"github.com/momeni/clean-parking/pkg/adapter/payment/stubpay"
	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/usecase/clientsuc"
	"github.com/momeni/clean-parking/pkg/core/usecase/parkingsuc"
	"github.com/momeni/clean-parking/pkg/core/usecase/sessionsuc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type clock struct {
	sync.Mutex
	t time.Time
}

func (c *clock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.t = c.t.Add(d)
}

type decliningGateway struct{}

func (decliningGateway) Charge(
	context.Context, *model.Client, model.Charge,
) (*model.Receipt, error) {
	return nil, errors.New("card expired")
}

type countingRecorder struct {
	opened, closed int
	charged        float64
}

func (r *countingRecorder) SessionOpened(*model.ClientParking) {
	r.opened++
}

func (r *countingRecorder) SessionClosed(_ *model.ClientParking, ch model.Charge) {
	r.closed++
	r.charged += ch.Amount
}

type SessionsSuite struct {
	suite.Suite

	ctx      context.Context
	pool     *gormdb.Pool
	clock    *clock
	recorder *countingRecorder
	clients  *clientsuc.UseCase
	parkings *parkingsuc.UseCase
	sessions *sessionsuc.UseCase
}

func TestSessionsSuite(t *testing.T) {
	suite.Run(t, new(SessionsSuite))
}

func (ss *SessionsSuite) SetupTest() {
	ss.ctx = context.Background()
	ss.pool = dbcontainer.NewSQLite(ss.ctx, ss.T())
	ss.clock = &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	ss.recorder = &countingRecorder{}
	ss.clients = clientsuc.New(ss.pool, clientsrp.New())
	ss.parkings = parkingsuc.New(ss.pool, parkingsrp.New())
	ss.sessions = ss.newSessions(stubpay.New())
}

func (ss *SessionsSuite) newSessions(gw sessionsuc.Gateway) *sessionsuc.UseCase {
	uc, err := sessionsuc.New(
		ss.pool, clientsrp.New(), parkingsrp.New(), sessionsrp.New(), gw,
		sessionsuc.WithClock(ss.clock.Now),
		sessionsuc.WithRecorder(ss.recorder),
	)
	ss.Require().NoError(err)
	return uc
}

func (ss *SessionsSuite) client(card string) *model.Client {
	cl := &model.Client{Name: "Ivan", Surname: "Petrov"}
	if card != "" {
		cl.CreditCard = &card
	}
	cl, err := ss.clients.Create(ss.ctx, cl)
	ss.Require().NoError(err)
	return cl
}

func (ss *SessionsSuite) parking(count int) *model.Parking {
	p, err := ss.parkings.Create(ss.ctx, "Lenina 1", count)
	ss.Require().NoError(err)
	return p
}

func (ss *SessionsSuite) available(id int64) int {
	p, err := ss.parkings.Get(ss.ctx, id)
	ss.Require().NoError(err)
	return p.CountAvailablePlaces
}

func (ss *SessionsSuite) requireKind(err error, kind cerr.Kind, target error) {
	ss.Require().Error(err)
	ss.Equal(kind, cerr.KindOf(err), "err: %v", err)
	ss.ErrorIs(err, target)
}

func (ss *SessionsSuite) TestDefaults() {
	tr := ss.sessions.Tariff()
	ss.Equal(time.Hour, tr.Period)
	ss.Equal(1.0, tr.Rate)
	ss.Equal("USD", tr.Currency)
}

func (ss *SessionsSuite) TestEnterAndExit() {
	cl := ss.client("1111222233334444")
	p := ss.parking(10)

	cp, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.NotZero(cp.ID)
	ss.Equal(cl.ID, cp.ClientID)
	ss.Equal(p.ID, cp.ParkingID)
	ss.True(cp.TimeIn.Equal(ss.clock.Now()))
	ss.Nil(cp.TimeOut)
	ss.Equal(9, ss.available(p.ID))

	ss.clock.Advance(5 * time.Minute)
	ex, err := ss.sessions.Exit(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.Equal(1.0, ex.Charged)
	ss.Equal("USD", ex.Currency)
	ss.Equal(cp.ID, ex.ClientParking.ID)
	ss.Require().NotNil(ex.ClientParking.TimeOut)
	ss.True(ex.ClientParking.TimeOut.Equal(ss.clock.Now()))
	ss.Equal(10, ss.available(p.ID))

	ss.Equal(1, ss.recorder.opened)
	ss.Equal(1, ss.recorder.closed)
	ss.Equal(1.0, ss.recorder.charged)
}

func (ss *SessionsSuite) TestBilledHours() {
	cl := ss.client("1111222233334444")
	p := ss.parking(3)
	for _, tc := range []struct {
		stay time.Duration
		want float64
	}{
		{time.Second, 1},
		{3600 * time.Second, 1},
		{3601 * time.Second, 2},
		{0, 0},
	} {
		_, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
		ss.Require().NoError(err)
		ss.clock.Advance(tc.stay)
		ex, err := ss.sessions.Exit(ss.ctx, cl.ID, p.ID)
		ss.Require().NoError(err)
		ss.Equal(tc.want, ex.Charged, "stay: %s", tc.stay)
	}
	ss.Equal(3, ss.available(p.ID))
}

func (ss *SessionsSuite) TestCustomTariff() {
	uc, err := sessionsuc.New(
		ss.pool, clientsrp.New(), parkingsrp.New(), sessionsrp.New(),
		stubpay.New(),
		sessionsuc.WithClock(ss.clock.Now),
		sessionsuc.WithBillingPeriod(15*time.Minute),
		sessionsuc.WithHourlyRate(0.5),
		sessionsuc.WithCurrency("eur"),
	)
	ss.Require().NoError(err)
	cl := ss.client("1111222233334444")
	p := ss.parking(1)
	_, err = uc.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.clock.Advance(31 * time.Minute)
	ex, err := uc.Exit(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.Equal(1.5, ex.Charged)
	ss.Equal("EUR", ex.Currency)
}

func (ss *SessionsSuite) TestInvalidOptions() {
	newUC := func(gw sessionsuc.Gateway, opts ...sessionsuc.Option) error {
		_, err := sessionsuc.New(
			ss.pool, clientsrp.New(), parkingsrp.New(), sessionsrp.New(),
			gw, opts...,
		)
		return err
	}
	ss.Error(newUC(nil))
	ss.Error(newUC(stubpay.New(), sessionsuc.WithBillingPeriod(0)))
	ss.Error(newUC(stubpay.New(), sessionsuc.WithHourlyRate(-1)))
	ss.Error(newUC(stubpay.New(), sessionsuc.WithCurrency(" ")))
	ss.Error(newUC(stubpay.New(), sessionsuc.WithClock(nil)))
	ss.Error(newUC(stubpay.New(),
		sessionsuc.WithHourlyRate(1), sessionsuc.WithHourlyRate(2),
	))
	ss.NoError(newUC(stubpay.New(), sessionsuc.WithHourlyRate(0)))
}

func (ss *SessionsSuite) TestEnterPreconditions() {
	cl := ss.client("")
	p := ss.parking(1)

	_, err := ss.sessions.Enter(ss.ctx, cl.ID+100, p.ID)
	ss.requireKind(err, cerr.KindNotFound, model.ErrClientNotFound)
	_, err = ss.sessions.Enter(ss.ctx, cl.ID, p.ID+100)
	ss.requireKind(err, cerr.KindNotFound, model.ErrParkingNotFound)

	_, err = ss.parkings.SetOpened(ss.ctx, p.ID, false)
	ss.Require().NoError(err)
	_, err = ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.requireKind(err, cerr.KindInvalidState, model.ErrParkingClosed)
	_, err = ss.parkings.SetOpened(ss.ctx, p.ID, true)
	ss.Require().NoError(err)

	_, err = ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.Equal(0, ss.available(p.ID))

	_, err = ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.requireKind(err, cerr.KindInvalidState, model.ErrNoAvailablePlaces)

	other := ss.client("")
	_, err = ss.sessions.Enter(ss.ctx, other.ID, p.ID)
	ss.requireKind(err, cerr.KindInvalidState, model.ErrNoAvailablePlaces)
	ss.Equal(0, ss.available(p.ID))
}

func (ss *SessionsSuite) TestDoubleEntryConflicts() {
	cl := ss.client("")
	p := ss.parking(5)
	_, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	_, err = ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.requireKind(err, cerr.KindConflict, model.ErrSessionActive)
	ss.Equal(4, ss.available(p.ID))
}

func (ss *SessionsSuite) TestRevisitAfterExit() {
	cl := ss.client("1111222233334444")
	p := ss.parking(2)
	first, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.clock.Advance(time.Minute)
	_, err = ss.sessions.Exit(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)

	second, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.NotEqual(first.ID, second.ID)
	ss.Equal(1, ss.available(p.ID))
}

func (ss *SessionsSuite) TestExitPreconditions() {
	cl := ss.client("")
	p := ss.parking(2)

	_, err := ss.sessions.Exit(ss.ctx, cl.ID+100, p.ID)
	ss.requireKind(err, cerr.KindNotFound, model.ErrClientNotFound)
	_, err = ss.sessions.Exit(ss.ctx, cl.ID, p.ID+100)
	ss.requireKind(err, cerr.KindNotFound, model.ErrParkingNotFound)
	_, err = ss.sessions.Exit(ss.ctx, cl.ID, p.ID)
	ss.requireKind(err, cerr.KindNotFound, model.ErrActiveSessionNotFound)

	_, err = ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.clock.Advance(2 * time.Hour)
	_, err = ss.sessions.Exit(ss.ctx, cl.ID, p.ID)
	ss.requireKind(err, cerr.KindInvalidState, model.ErrNoPaymentMethod)

	// nothing is changed, so the session is still active
	ss.Equal(1, ss.available(p.ID))
	_, err = ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.requireKind(err, cerr.KindConflict, model.ErrSessionActive)
}

func (ss *SessionsSuite) TestExitFromClosedParking() {
	cl := ss.client("1111222233334444")
	p := ss.parking(2)
	_, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	_, err = ss.parkings.SetOpened(ss.ctx, p.ID, false)
	ss.Require().NoError(err)
	_, err = ss.sessions.Exit(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.Equal(2, ss.available(p.ID))
}

func (ss *SessionsSuite) TestDeclinedPaymentRollsBack() {
	cl := ss.client("1111222233334444")
	p := ss.parking(2)
	_, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)

	declining := ss.newSessions(decliningGateway{})
	ss.clock.Advance(time.Hour)
	_, err = declining.Exit(ss.ctx, cl.ID, p.ID)
	ss.requireKind(err, cerr.KindPayment, model.ErrPaymentFailed)
	ss.Equal(1, ss.available(p.ID))

	ex, err := ss.sessions.Exit(ss.ctx, cl.ID, p.ID)
	ss.Require().NoError(err)
	ss.Equal(1.0, ex.Charged)
	ss.Equal(2, ss.available(p.ID))
}

func (ss *SessionsSuite) TestCounterStaysWithinBounds() {
	p := ss.parking(3)
	var ids []int64
	for i := 0; i < 5; i++ {
		cl := ss.client("1111222233334444")
		ids = append(ids, cl.ID)
		_, err := ss.sessions.Enter(ss.ctx, cl.ID, p.ID)
		if i < 3 {
			ss.Require().NoError(err)
		} else {
			ss.requireKind(err, cerr.KindInvalidState, model.ErrNoAvailablePlaces)
		}
		n := ss.available(p.ID)
		ss.GreaterOrEqual(n, 0)
		ss.LessOrEqual(n, 3)
	}
	for _, id := range ids[:3] {
		_, err := ss.sessions.Exit(ss.ctx, id, p.ID)
		ss.Require().NoError(err)
	}
	for _, id := range ids {
		_, err := ss.sessions.Exit(ss.ctx, id, p.ID)
		ss.requireKind(err, cerr.KindNotFound, model.ErrActiveSessionNotFound)
	}
	ss.Equal(3, ss.available(p.ID))
}

func TestConcurrentEntriesRespectCapacity(t *testing.T) {
	ctx := context.Background()
	pool := dbcontainer.NewSQLite(ctx, t)
	clients := clientsuc.New(pool, clientsrp.New())
	parkings := parkingsuc.New(pool, parkingsrp.New())
	sessions, err := sessionsuc.New(
		pool, clientsrp.New(), parkingsrp.New(), sessionsrp.New(),
		stubpay.New(),
	)
	require.NoError(t, err)
	p, err := parkings.Create(ctx, "Lenina 1", 2)
	require.NoError(t, err)

	const n = 6
	var ids []int64
	for i := 0; i < n; i++ {
		cl, err := clients.Create(ctx, &model.Client{Name: "A", Surname: "B"})
		require.NoError(t, err)
		ids = append(ids, cl.ID)
	}
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			_, errs[i] = sessions.Enter(ctx, id, p.ID)
		}(i, id)
	}
	wg.Wait()

	entered := 0
	for _, err := range errs {
		if err == nil {
			entered++
			continue
		}
		require.ErrorIs(t, err, model.ErrNoAvailablePlaces)
	}
	require.Equal(t, 2, entered)
	p, err = parkings.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 0, p.CountAvailablePlaces)
}
