// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// CarStatus is the back-office status of a car. Only available cars
// are offered in the storefront.
type CarStatus string

// Valid values for the CarStatus type. The empty string is only valid
// in queries, meaning "any status".
const (
	CarAvailable   CarStatus = "available"
	CarUnavailable CarStatus = "unavailable"
	CarMaintenance CarStatus = "maintenance"
)

// Validate returns nil if cs is a known car status.
func (cs CarStatus) Validate() error {
	switch cs {
	case CarAvailable, CarUnavailable, CarMaintenance:
		return nil
	default:
		return fmt.Errorf("invalid car status: %q", string(cs))
	}
}

// AdminCar is a car record as it is managed by the admin REST API.
// It carries the back-office fields (license plate, status, and
// timestamps) which are not shown in the storefront.
type AdminCar struct {
	ID           string       `json:"id,omitempty"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Transmission Transmission `json:"transmission"`
	FuelType     FuelType     `json:"fuelType"`
	PricePerDay  float64      `json:"pricePerDay"`
	Status       CarStatus    `json:"status"`
	ImageURL     string       `json:"imageUrl"`
	LicensePlate string       `json:"licensePlate"`
	Description  string       `json:"description,omitempty"`
	Features     []string     `json:"features"`
	Rating       float64      `json:"rating"`
	CreatedAt    *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
}

// Vehicle converts the ac admin car to its storefront form. The admin
// API does not report seats, so DefaultSeats is used.
func (ac *AdminCar) Vehicle() Vehicle {
	return Vehicle{
		ID:           ac.ID,
		Brand:        ac.Brand,
		Model:        ac.Model,
		Year:         ac.Year,
		Seats:        DefaultSeats,
		Transmission: ac.Transmission,
		FuelType:     ac.FuelType,
		PricePerDay:  ac.PricePerDay,
		Available:    ac.Status == CarAvailable,
		ImageURL:     ac.ImageURL,
		Features:     append([]string(nil), ac.Features...),
		Rating:       ac.Rating,
		Description:  ac.Description,
	}
}

// DefaultSeats is the seat count of vehicles whose source does not
// specify one.
const DefaultSeats = 5

// CarPatch contains the optional fields of a partial car update.
// Nil fields are left unchanged.
type CarPatch struct {
	Brand        *string       `json:"brand,omitempty"`
	Model        *string       `json:"model,omitempty"`
	Year         *int          `json:"year,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
	FuelType     *FuelType     `json:"fuelType,omitempty"`
	PricePerDay  *float64      `json:"pricePerDay,omitempty"`
	Status       *CarStatus    `json:"status,omitempty"`
	ImageURL     *string       `json:"imageUrl,omitempty"`
	LicensePlate *string       `json:"licensePlate,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Features     []string      `json:"features,omitempty"`
	Rating       *float64      `json:"rating,omitempty"`
}

// CarQuery lists the parameters of a paged cars listing request.
// Zero values are omitted from the request.
type CarQuery struct {
	Page   int
	Limit  int
	Sort   string
	Brand  string
	Status CarStatus
}

// PopularCar is a car along with its occupancy rate in percents.
type PopularCar struct {
	Car           AdminCar `json:"car"`
	OccupancyRate float64  `json:"occupancyRate"`
}

// UserRole is the role of a back-office user.
type UserRole string

// Valid values for the UserRole type.
const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
)

// User is a customer or a back-office user.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      UserRole   `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
}

// Credentials are used for logging into the admin API.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the outcome of a successful login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
