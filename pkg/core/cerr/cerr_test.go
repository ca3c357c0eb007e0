// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	for _, tc := range []struct {
		err    *cerr.Error
		kind   cerr.Kind
		status int
	}{
		{cerr.Validation(model.ErrClientNameRequired), cerr.KindValidation, http.StatusBadRequest},
		{cerr.NotFound(model.ErrClientNotFound), cerr.KindNotFound, http.StatusNotFound},
		{cerr.InvalidState(model.ErrParkingClosed), cerr.KindInvalidState, http.StatusBadRequest},
		{cerr.Conflict(model.ErrSessionActive), cerr.KindConflict, http.StatusBadRequest},
		{cerr.Payment(model.ErrPaymentFailed), cerr.KindPayment, http.StatusPaymentRequired},
		{cerr.Internal(errors.New("disk full")), cerr.KindInternal, http.StatusInternalServerError},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.HTTPStatusCode)
			wrapped := fmt.Errorf("handler: %w", tc.err)
			assert.Equal(t, tc.kind, cerr.KindOf(wrapped))
		})
	}
}

func TestUnwrap(t *testing.T) {
	err := fmt.Errorf("enter: %w", cerr.NotFound(model.ErrParkingNotFound))
	assert.ErrorIs(t, err, model.ErrParkingNotFound)
	assert.Equal(t, cerr.KindInternal, cerr.KindOf(errors.New("plain")))
}
