// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package parkingsrs

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/model"
)

// ErrPlacesNotInteger is reported if count_places is neither an
// integer JSON number nor a string holding an integer.
var ErrPlacesNotInteger = errors.New("count_places must be integer")

type rawCreateParkingReq struct {
	Address     string          `json:"address" binding:"required"`
	CountPlaces json.RawMessage `json:"count_places" binding:"required"`
}

type createParkingReq struct {
	Address     string
	CountPlaces int
}

type updateParkingReq struct {
	Opened *bool `json:"opened" binding:"required"`
}

// DserCreateParkingReq binds the request body and converts its
// count_places to an int. Integers may be sent as numbers, like 10,
// or as strings, like "10". Nil is returned if a response is written
// already because of an invalid request.
func (rs *resource) DserCreateParkingReq(c *gin.Context) *createParkingReq {
	req := &rawCreateParkingReq{}
	msg := model.ErrParkingAddressRequired.Error()
	if !serdser.Bind(c, req, msg) {
		return nil
	}
	raw := bytes.TrimSpace(req.CountPlaces)
	if bytes.Equal(raw, []byte("null")) {
		serdser.SerErr(c, cerr.Validation(model.ErrParkingAddressRequired))
		return nil
	}
	n, err := parseCount(raw)
	if err != nil {
		serdser.SerErr(c, cerr.Validation(ErrPlacesNotInteger))
		return nil
	}
	return &createParkingReq{Address: req.Address, CountPlaces: n}
}

func parseCount(raw []byte) (int, error) {
	var s string
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
	} else {
		s = string(raw)
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
