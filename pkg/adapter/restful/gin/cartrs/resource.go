// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cartrs realizes the cart resource. Carts are identified by
// opaque IDs which are allocated by the POST /carts endpoint and kept
// by the storefront client.
package cartrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/autorent/pkg/core/usecase/cartuc"
)

type resource struct {
	cart *cartuc.UseCase
}

// Register instantiates a resource adapting the cart use case with
// these REST APIs:
//  1. POST /carts allocates a new empty cart,
//  2. GET /carts/:cid returns the line items and totals,
//  3. PUT /carts/:cid/items/:vid adds or replaces a line item,
//  4. PATCH /carts/:cid/items/:vid updates an existing line item,
//  5. DELETE /carts/:cid/items/:vid removes a line item,
//  6. DELETE /carts/:cid removes all line items, and
//  7. POST /carts/:cid/checkout turns the cart into bookings.
//
// The requested days are clamped into [1, max-days] before they are
// passed to the use case.
func Register(r *gin.RouterGroup, cart *cartuc.UseCase) {
	rs := &resource{cart: cart}
	r.POST("carts", rs.Create)
	r.GET("carts/:cid", rs.Get)
	r.PUT("carts/:cid/items/:vid", rs.PutItem)
	r.PATCH("carts/:cid/items/:vid", rs.PatchItem)
	r.DELETE("carts/:cid/items/:vid", rs.DeleteItem)
	r.DELETE("carts/:cid", rs.Clear)
	r.POST("carts/:cid/checkout", rs.Checkout)
}

func (rs *resource) Create(c *gin.Context) {
	v, err := rs.cart.Cart(c, uuid.NewString())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (rs *resource) Get(c *gin.Context) {
	v, err := rs.cart.Cart(c, c.Param("cid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) PutItem(c *gin.Context) {
	req := rs.DserItemReq(c)
	if req == nil {
		return
	}
	v, err := rs.cart.AddItem(
		c, c.Param("cid"), c.Param("vid"), req.Days, req.StartDate,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) PatchItem(c *gin.Context) {
	req := rs.DserItemReq(c)
	if req == nil {
		return
	}
	v, err := rs.cart.UpdateItem(
		c, c.Param("cid"), c.Param("vid"), req.Days, req.StartDate,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) DeleteItem(c *gin.Context) {
	v, err := rs.cart.RemoveItem(c, c.Param("cid"), c.Param("vid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) Clear(c *gin.Context) {
	v, err := rs.cart.Clear(c, c.Param("cid"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) Checkout(c *gin.Context) {
	req := rs.DserCheckoutReq(c)
	if req == nil {
		return
	}
	bookings, err := rs.cart.Checkout(c, c.Param("cid"), req.PaymentMethod)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
