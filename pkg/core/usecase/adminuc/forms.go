// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminuc

import (
	"fmt"
	"time"

	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/model"
)

type credentialsForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type carForm struct {
	Brand        string  `validate:"required"`
	Model        string  `validate:"required"`
	Year         int     `validate:"gte=1950"`
	Transmission string  `validate:"required"`
	FuelType     string  `validate:"required"`
	PricePerDay  float64 `validate:"gte=1"`
	Status       string  `validate:"oneof=available unavailable maintenance"`
	LicensePlate string  `validate:"required"`
	Rating       float64 `validate:"gte=0,lte=5"`
}

type bookingForm struct {
	CarID         string  `validate:"required"`
	StartDate     string  `validate:"required,datetime=2006-01-02"`
	EndDate       string  `validate:"required,datetime=2006-01-02"`
	TotalPrice    float64 `validate:"gte=0"`
	Status        string  `validate:"oneof=pending active completed canceled"`
	PaymentStatus string  `validate:"oneof=pending paid refunded"`
	PaymentMethod string  `validate:"omitempty,oneof=card cash"`
}

func (uc *UseCase) validateCar(c *model.AdminCar) error {
	form := carForm{
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		PricePerDay:  c.PricePerDay,
		Status:       string(c.Status),
		LicensePlate: c.LicensePlate,
		Rating:       c.Rating,
	}
	if c.Transmission.Validate() == nil {
		form.Transmission = c.Transmission.String()
	}
	if c.FuelType.Validate() == nil {
		form.FuelType = c.FuelType.String()
	}
	if err := uc.validate.Struct(form); err != nil {
		return cerr.BadRequest(err)
	}
	if maxYear := uc.now().Year() + 1; c.Year > maxYear {
		return cerr.BadRequest(fmt.Errorf(
			"year (%d) is after %d", c.Year, maxYear,
		))
	}
	return nil
}

func (uc *UseCase) validateBooking(b *model.Booking) error {
	form := bookingForm{
		CarID:         b.CarID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: string(b.PaymentMethod),
	}
	if err := uc.validate.Struct(form); err != nil {
		return cerr.BadRequest(err)
	}
	start, _ := time.Parse(time.DateOnly, b.StartDate)
	end, _ := time.Parse(time.DateOnly, b.EndDate)
	if end.Before(start) {
		return cerr.BadRequest(fmt.Errorf(
			"end date (%s) is before start date (%s)",
			b.EndDate, b.StartDate,
		))
	}
	return nil
}

func applyCarPatch(c *model.AdminCar, p *model.CarPatch) {
	set(&c.Brand, p.Brand)
	set(&c.Model, p.Model)
	set(&c.Year, p.Year)
	set(&c.Transmission, p.Transmission)
	set(&c.FuelType, p.FuelType)
	set(&c.PricePerDay, p.PricePerDay)
	set(&c.Status, p.Status)
	set(&c.ImageURL, p.ImageURL)
	set(&c.LicensePlate, p.LicensePlate)
	set(&c.Description, p.Description)
	set(&c.Rating, p.Rating)
	if p.Features != nil {
		c.Features = p.Features
	}
}

func applyBookingPatch(b *model.Booking, p *model.BookingPatch) {
	set(&b.StartDate, p.StartDate)
	set(&b.EndDate, p.EndDate)
	set(&b.Status, p.Status)
	set(&b.PaymentStatus, p.PaymentStatus)
	set(&b.Notes, p.Notes)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
