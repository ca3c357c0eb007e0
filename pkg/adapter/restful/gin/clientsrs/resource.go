// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsrs realizes the clients resource, allowing the
// clients registration and lookup REST APIs to be accepted and
// delegated to the clients use cases respectively.
package clientsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/usecase/clientsuc"
)

type resource struct {
	clients *clientsuc.UseCase
}

// Register instantiates a resource adapting the clients use case
// instance with the relevant REST APIs including:
//  1. GET request to /clients in order to list all clients,
//  2. GET request to /clients/:id in order to fetch one client,
//  3. POST request to /clients in order to register a client.
func Register(r gin.IRouter, clients *clientsuc.UseCase) {
	rs := &resource{clients: clients}
	r.GET("clients", rs.ListClients)
	r.GET("clients/:id", rs.GetClient)
	r.POST("clients", rs.CreateClient)
}

func (rs *resource) ListClients(c *gin.Context) {
	cs, err := rs.clients.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cs)
}

func (rs *resource) GetClient(c *gin.Context) {
	id, ok := serdser.ParseID(c, "id", model.ErrClientNotFound)
	if !ok {
		return
	}
	cl, err := rs.clients.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

type createClientReq struct {
	Name       string  `json:"name" binding:"required"`
	Surname    string  `json:"surname" binding:"required"`
	CreditCard *string `json:"credit_card"`
	CarNumber  *string `json:"car_number"`
}

func (rs *resource) CreateClient(c *gin.Context) {
	req := &createClientReq{}
	if !serdser.Bind(c, req, model.ErrClientNameRequired.Error()) {
		return
	}
	cl, err := rs.clients.Create(c, &model.Client{
		Name:       req.Name,
		Surname:    req.Surname,
		CreditCard: req.CreditCard,
		CarNumber:  req.CarNumber,
	})
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}
