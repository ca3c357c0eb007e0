// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	ctx := log.WithAttrs(context.Background(), slog.String("request_id", "r1"))
	ctx = log.WithAttrs(ctx, slog.Int("attempt", 2))
	log.Info(ctx, "entered", log.Err("err", errors.New("boom")))
	log.Debug(ctx, "dropped by the default info level")

	rec := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "entered", rec["msg"])
	assert.Equal(t, "r1", rec["request_id"])
	assert.Equal(t, float64(2), rec["attempt"])
	assert.Equal(t, "boom", rec["err"])
}

func TestNilErr(t *testing.T) {
	assert.Equal(t, "no-error", log.Err("err", nil).Value.String())
	assert.Empty(t, log.Attrs(context.Background()))
}
