// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package parkingsrs realizes the parkings resource, allowing the
// parking facilities to be registered, fetched, opened, and closed.
package parkingsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/usecase/parkingsuc"
)

type resource struct {
	parkings *parkingsuc.UseCase
}

// Register instantiates a resource adapting the parkings use case
// instance with the relevant REST APIs including:
//  1. POST request to /parkings in order to register a parking,
//  2. GET request to /parkings in order to list all parkings,
//  3. GET request to /parkings/:id in order to fetch one parking,
//  4. PATCH request to /parkings/:id in order to open or close it.
func Register(r gin.IRouter, parkings *parkingsuc.UseCase) {
	rs := &resource{parkings: parkings}
	r.POST("parkings", rs.CreateParking)
	r.GET("parkings", rs.ListParkings)
	r.GET("parkings/:id", rs.GetParking)
	r.PATCH("parkings/:id", rs.UpdateParking)
}

func (rs *resource) CreateParking(c *gin.Context) {
	req := rs.DserCreateParkingReq(c)
	if req == nil {
		return
	}
	p, err := rs.parkings.Create(c, req.Address, req.CountPlaces)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (rs *resource) ListParkings(c *gin.Context) {
	ps, err := rs.parkings.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

func (rs *resource) GetParking(c *gin.Context) {
	id, ok := serdser.ParseID(c, "id", model.ErrParkingNotFound)
	if !ok {
		return
	}
	p, err := rs.parkings.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (rs *resource) UpdateParking(c *gin.Context) {
	id, ok := serdser.ParseID(c, "id", model.ErrParkingNotFound)
	if !ok {
		return
	}
	req := &updateParkingReq{}
	if !serdser.Bind(c, req, "opened required") {
		return
	}
	p, err := rs.parkings.SetOpened(c, id, *req.Opened)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
