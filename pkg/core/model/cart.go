// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// CartLineItem is one entry of a cart. It embeds a copy of the rented
// vehicle (as it was when the item was added), so later inventory
// changes do not alter it. TotalPrice is derived from the embedded
// vehicle price and Days and is recomputed on every mutation.
//
// StartDate is an ISO 8601 calendar date, e.g., "2025-06-01".
type CartLineItem struct {
	Vehicle    Vehicle `json:"car"`
	Days       int     `json:"days"`
	StartDate  string  `json:"startDate"`
	TotalPrice float64 `json:"totalPrice"`
}

// Cart is an ordered list of line items with at most one item per
// vehicle ID. Items are kept in their insertion order.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

// CartTotals contains the aggregate values of a cart. TotalItems is the
// number of line items (not the sum of rental days).
type CartTotals struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// Totals computes the aggregate values of c from its current items.
func (c *Cart) Totals() CartTotals {
	t := CartTotals{TotalItems: len(c.Items)}
	for _, item := range c.Items {
		t.TotalPrice += item.TotalPrice
	}
	return t
}

// CartView is a snapshot of a cart with its totals, as it is reported
// to the cart page.
type CartView struct {
	ID     string         `json:"id"`
	Items  []CartLineItem `json:"items"`
	Totals CartTotals     `json:"totals"`
}
