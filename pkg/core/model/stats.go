// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// CarStats summarizes the fleet. Change is relative to the previous
// period.
type CarStats struct {
	Total       int     `json:"total"`
	Available   int     `json:"available"`
	Maintenance int     `json:"maintenance"`
	Change      float64 `json:"change"`
}

// BookingStats summarizes the bookings of the current period.
type BookingStats struct {
	Total     int     `json:"total"`
	Active    int     `json:"active"`
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Canceled  int     `json:"canceled"`
	Change    float64 `json:"change"`
}

// UserStats summarizes the registered users.
type UserStats struct {
	Total  int     `json:"total"`
	Change float64 `json:"change"`
}

// RevenueStats compares the revenue of the current and previous
// months. Change is in percents.
type RevenueStats struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
	Currency string  `json:"currency"`
}

// DashboardStats is reported by the admin dashboard endpoint.
type DashboardStats struct {
	Cars     CarStats     `json:"cars"`
	Bookings BookingStats `json:"bookings"`
	Users    UserStats    `json:"users"`
	Revenue  RevenueStats `json:"revenue"`
}
