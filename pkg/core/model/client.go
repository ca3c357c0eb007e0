// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., json tags which are used
// by the REST resources) since adding more tags does not complicate
// definition of a struct, but can prevent unnecessary duplication.
// The database specific representations are kept in the repository
// packages though, so the table layout may evolve independently.
package model

import "strings"

// Client models a registered client of the parking operator.
// A client may optionally have a credit card on file (which is needed
// for paying when leaving a parking) and a car number.
type Client struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	CreditCard *string `json:"credit_card"`
	CarNumber  *string `json:"car_number"`
}

// Validate returns ErrClientNameRequired if either of the name or
// surname fields is empty (or only consists of white spaces).
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Surname) == "" {
		return ErrClientNameRequired
	}
	return nil
}

// CanPay reports if the client has a payment method on file.
func (c *Client) CanPay() bool {
	return c.CreditCard != nil && *c.CreditCard != ""
}
