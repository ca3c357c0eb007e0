// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sessionsrs realizes the client parkings resource, allowing
// clients to enter and exit the parkings through the REST APIs.
package sessionsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-parking/pkg/core/usecase/sessionsuc"
)

// MissingIDsMessage is reported if client_id or parking_id are not
// given in the request body.
const MissingIDsMessage = "client_id and parking_id required"

type resource struct {
	sessions *sessionsuc.UseCase
}

// Register instantiates a resource adapting the sessions use case
// instance with the relevant REST APIs including:
//  1. POST request to /client_parkings in order to enter a parking,
//  2. DELETE request to /client_parkings in order to exit a parking
//     and pay for the stay.
//
// Both requests take the client_id and parking_id in their JSON body.
func Register(r gin.IRouter, sessions *sessionsuc.UseCase) {
	rs := &resource{sessions: sessions}
	r.POST("client_parkings", rs.Enter)
	r.DELETE("client_parkings", rs.Exit)
}

type sessionReq struct {
	ClientID  *int64 `json:"client_id" binding:"required"`
	ParkingID *int64 `json:"parking_id" binding:"required"`
}

func (rs *resource) Enter(c *gin.Context) {
	req := &sessionReq{}
	if !serdser.Bind(c, req, MissingIDsMessage) {
		return
	}
	cp, err := rs.sessions.Enter(c, *req.ClientID, *req.ParkingID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cp)
}

func (rs *resource) Exit(c *gin.Context) {
	req := &sessionReq{}
	if !serdser.Bind(c, req, MissingIDsMessage) {
		return
	}
	ex, err := rs.sessions.Exit(c, *req.ClientID, *req.ParkingID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}
