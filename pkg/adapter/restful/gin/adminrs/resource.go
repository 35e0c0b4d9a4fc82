// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminrs realizes the back-office resource which proxies the
// admin REST API after validating the submitted forms.
package adminrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/autorent/pkg/core/usecase/adminuc"
)

type resource struct {
	admin *adminuc.UseCase
}

// Register instantiates a resource adapting the admin use case and
// registers its endpoints under the admin sub-group of r.
func Register(r *gin.RouterGroup, admin *adminuc.UseCase) {
	rs := &resource{admin: admin}
	g := r.Group("admin")

	g.POST("auth/login", rs.Login)
	g.POST("auth/logout", rs.Logout)
	g.GET("auth/me", rs.Me)

	g.GET("cars", rs.ListCars)
	g.POST("cars", rs.CreateCar)
	g.GET("cars/popular", rs.PopularCars)
	g.GET("cars/:id", rs.Car)
	g.PATCH("cars/:id", rs.UpdateCar)
	g.DELETE("cars/:id", rs.DeleteCar)
	g.PATCH("cars/:id/availability", rs.ToggleAvailability)

	g.GET("bookings", rs.ListBookings)
	g.POST("bookings", rs.CreateBooking)
	g.GET("bookings/recent", rs.RecentBookings)
	g.GET("bookings/:id", rs.Booking)
	g.PATCH("bookings/:id", rs.UpdateBooking)
	g.DELETE("bookings/:id", rs.DeleteBooking)

	g.GET("dashboard/stats", rs.DashboardStats)
}

func (rs *resource) Login(c *gin.Context) {
	cred := rs.DserCredentialsReq(c)
	if cred == nil {
		return
	}
	s, err := rs.admin.Login(c, *cred)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rs *resource) Logout(c *gin.Context) {
	if err := rs.admin.Logout(c); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) Me(c *gin.Context) {
	u, err := rs.admin.CurrentUser(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (rs *resource) ListCars(c *gin.Context) {
	q := rs.DserCarQueryReq(c)
	if q == nil {
		return
	}
	p, err := rs.admin.Cars(c, *q)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (rs *resource) Car(c *gin.Context) {
	car, err := rs.admin.Car(c, c.Param("id"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) CreateCar(c *gin.Context) {
	car := rs.DserCarReq(c)
	if car == nil {
		return
	}
	created, err := rs.admin.CreateCar(c, car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rs *resource) UpdateCar(c *gin.Context) {
	p := rs.DserCarPatchReq(c)
	if p == nil {
		return
	}
	car, err := rs.admin.UpdateCar(c, c.Param("id"), p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) DeleteCar(c *gin.Context) {
	if err := rs.admin.DeleteCar(c, c.Param("id")); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) ToggleAvailability(c *gin.Context) {
	car, err := rs.admin.ToggleAvailability(c, c.Param("id"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) PopularCars(c *gin.Context) {
	limit, ok := rs.DserLimitReq(c)
	if !ok {
		return
	}
	cars, err := rs.admin.PopularCars(c, limit)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (rs *resource) ListBookings(c *gin.Context) {
	q := rs.DserBookingQueryReq(c)
	if q == nil {
		return
	}
	p, err := rs.admin.Bookings(c, *q)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (rs *resource) Booking(c *gin.Context) {
	b, err := rs.admin.Booking(c, c.Param("id"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (rs *resource) CreateBooking(c *gin.Context) {
	b := rs.DserBookingReq(c)
	if b == nil {
		return
	}
	created, err := rs.admin.CreateBooking(c, b)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rs *resource) UpdateBooking(c *gin.Context) {
	p := rs.DserBookingPatchReq(c)
	if p == nil {
		return
	}
	b, err := rs.admin.UpdateBooking(c, c.Param("id"), p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (rs *resource) DeleteBooking(c *gin.Context) {
	if err := rs.admin.DeleteBooking(c, c.Param("id")); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) RecentBookings(c *gin.Context) {
	limit, ok := rs.DserLimitReq(c)
	if !ok {
		return
	}
	bookings, err := rs.admin.RecentBookings(c, limit)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (rs *resource) DashboardStats(c *gin.Context) {
	s, err := rs.admin.DashboardStats(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
