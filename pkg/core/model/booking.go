// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Valid values for the BookingStatus type.
const (
	BookingPending   BookingStatus = "pending"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCanceled  BookingStatus = "canceled"
)

// Validate returns nil if bs is a known booking status.
func (bs BookingStatus) Validate() error {
	switch bs {
	case BookingPending, BookingActive, BookingCompleted, BookingCanceled:
		return nil
	default:
		return fmt.Errorf("invalid booking status: %q", string(bs))
	}
}

// PaymentStatus is the payment state of a booking.
type PaymentStatus string

// Valid values for the PaymentStatus type.
const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate returns nil if ps is a known payment status.
func (ps PaymentStatus) Validate() error {
	switch ps {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return nil
	default:
		return fmt.Errorf("invalid payment status: %q", string(ps))
	}
}

// PaymentMethod is chosen by the customer during the checkout.
type PaymentMethod string

// Valid values for the PaymentMethod type.
const (
	PayByCard PaymentMethod = "card"
	PayByCash PaymentMethod = "cash"
)

// Validate returns nil if pm is a known payment method.
func (pm PaymentMethod) Validate() error {
	switch pm {
	case PayByCard, PayByCash:
		return nil
	default:
		return fmt.Errorf("invalid payment method: %q", string(pm))
	}
}

// Booking is a rental reservation as it is managed by the admin API.
// The car and customer may be reported either as IDs or as expanded
// records. CarID and CustomerID are always filled, while Car and
// Customer are only set when the server expanded them.
type Booking struct {
	ID            string        `json:"id,omitempty"`
	CarID         string        `json:"carId"`
	Car           *AdminCar     `json:"car,omitempty"`
	CustomerID    string        `json:"customerId,omitempty"`
	Customer      *User         `json:"customer,omitempty"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	TotalPrice    float64       `json:"totalPrice"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time    `json:"updatedAt,omitempty"`
}

// BookingPatch contains the optional fields of a partial booking
// update. Nil fields are left unchanged.
type BookingPatch struct {
	StartDate     *string        `json:"startDate,omitempty"`
	EndDate       *string        `json:"endDate,omitempty"`
	Status        *BookingStatus `json:"status,omitempty"`
	PaymentStatus *PaymentStatus `json:"paymentStatus,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
}

// BookingQuery lists the parameters of a paged bookings listing.
type BookingQuery struct {
	Page   int
	Limit  int
	Sort   string
	Status BookingStatus
}
