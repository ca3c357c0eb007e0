// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientsuc_test

import (
	"context"
	"testing"

	"github.com/momeni/clean-parking/internal/test/dbcontainer"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/clientsrp"
	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/usecase/clientsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClients(t *testing.T) {
	ctx := context.Background()
	uc := clientsuc.New(dbcontainer.NewSQLite(ctx, t), clientsrp.New())

	cs, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cs)

	card, car := "1111222233334444", "A123BC"
	ivan, err := uc.Create(ctx, &model.Client{
		ID: 42, Name: "Ivan", Surname: "Petrov",
		CreditCard: &card, CarNumber: &car,
	})
	require.NoError(t, err)
	assert.NotEqual(t, int64(42), ivan.ID)
	anna, err := uc.Create(ctx, &model.Client{Name: "Anna", Surname: "Ivanova"})
	require.NoError(t, err)
	assert.Nil(t, anna.CreditCard)
	assert.Nil(t, anna.CarNumber)

	got, err := uc.Get(ctx, ivan.ID)
	require.NoError(t, err)
	assert.Equal(t, ivan, got)

	cs, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Client{*ivan, *anna}, cs)

	_, err = uc.Get(ctx, anna.ID+1)
	assert.Equal(t, cerr.KindNotFound, cerr.KindOf(err))
	assert.ErrorIs(t, err, model.ErrClientNotFound)

	_, err = uc.Create(ctx, &model.Client{Name: "Ivan", Surname: "  "})
	assert.Equal(t, cerr.KindValidation, cerr.KindOf(err))
	assert.ErrorIs(t, err, model.ErrClientNameRequired)
}
