// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tables contains the GORM annotated structs which describe
// the database tables. Models of the core layer do not depend on the
// table layout, so these structs are converted to/from them by the
// Model methods and the From functions.
package tables

import (
	"time"

	"github.com/momeni/clean-parking/pkg/core/model"
)

// All lists the tables in their creation order.
func All() []any {
	return []any{&Client{}, &Parking{}, &Session{}}
}

type Client struct {
	ID         int64   `gorm:"primaryKey"`
	Name       string  `gorm:"size:50;not null"`
	Surname    string  `gorm:"size:50;not null"`
	CreditCard *string `gorm:"size:50"`
	CarNumber  *string `gorm:"size:10"`
}

func (*Client) TableName() string {
	return "client"
}

func (c *Client) Model() *model.Client {
	return &model.Client{
		ID:         c.ID,
		Name:       c.Name,
		Surname:    c.Surname,
		CreditCard: c.CreditCard,
		CarNumber:  c.CarNumber,
	}
}

func FromClient(c *model.Client) *Client {
	return &Client{
		ID:         c.ID,
		Name:       c.Name,
		Surname:    c.Surname,
		CreditCard: c.CreditCard,
		CarNumber:  c.CarNumber,
	}
}

// Parking keeps the capacity invariant by two CHECK constraints,
// so a buggy update fails instead of corrupting the counter.
type Parking struct {
	ID                   int64  `gorm:"primaryKey"`
	Address              string `gorm:"size:100;not null"`
	Opened               bool   `gorm:"not null;default:true"`
	CountPlaces          int    `gorm:"not null;check:chk_parking_capacity,count_available_places <= count_places"`
	CountAvailablePlaces int    `gorm:"not null;check:chk_parking_available,count_available_places >= 0"`
}

func (*Parking) TableName() string {
	return "parking"
}

func (p *Parking) Model() *model.Parking {
	return &model.Parking{
		ID:                   p.ID,
		Address:              p.Address,
		Opened:               p.Opened,
		CountPlaces:          p.CountPlaces,
		CountAvailablePlaces: p.CountAvailablePlaces,
	}
}

func FromParking(p *model.Parking) *Parking {
	return &Parking{
		ID:                   p.ID,
		Address:              p.Address,
		Opened:               p.Opened,
		CountPlaces:          p.CountPlaces,
		CountAvailablePlaces: p.CountAvailablePlaces,
	}
}

// Session is stored in the client_parking table. The partial unique
// index allows at most one active session per client and parking,
// while closed sessions do not restrict later visits.
type Session struct {
	ID        int64      `gorm:"primaryKey"`
	ParkingID int64      `gorm:"not null;uniqueIndex:uniq_active_client_parking,priority:1,where:time_out IS NULL"`
	ClientID  int64      `gorm:"not null;uniqueIndex:uniq_active_client_parking,priority:2,where:time_out IS NULL"`
	TimeIn    time.Time  `gorm:"not null"`
	TimeOut   *time.Time `gorm:"index"`

	Client  *Client  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Parking *Parking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (*Session) TableName() string {
	return "client_parking"
}

func (s *Session) Model() *model.ClientParking {
	cp := &model.ClientParking{
		ID:        s.ID,
		ClientID:  s.ClientID,
		ParkingID: s.ParkingID,
		TimeIn:    s.TimeIn.UTC(),
	}
	if s.TimeOut != nil {
		out := s.TimeOut.UTC()
		cp.TimeOut = &out
	}
	return cp
}

func FromSession(cp *model.ClientParking) *Session {
	return &Session{
		ID:        cp.ID,
		ClientID:  cp.ClientID,
		ParkingID: cp.ParkingID,
		TimeIn:    cp.TimeIn.UTC(),
		TimeOut:   cp.TimeOut,
	}
}
