// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package catalogrs realizes the catalog resource, allowing the
// storefront list and detail pages to query the catalog use case.
// Catalog preferences are kept per session, identified by the
// X-Session-ID request header.
package catalogrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/autorent/pkg/core/usecase/cataloguc"
)

type resource struct {
	catalog *cataloguc.UseCase
}

// Register instantiates a resource adapting the catalog use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/arweb/v1/catalog
//     in order to search, filter, sort, and paginate the vehicles,
//  2. GET request to /api/arweb/v1/catalog/facets
//     in order to list the filter panel choices,
//  3. GET request to /api/arweb/v1/catalog/cars/:id
//     in order to fetch one vehicle for the detail page,
//  4. GET request to /api/arweb/v1/catalog/preferences
//     in order to restore the list page state of a session, and
//  5. DELETE request to /api/arweb/v1/sessions/current
//     in order to forget the session preferences.
func Register(r *gin.RouterGroup, catalog *cataloguc.UseCase) {
	rs := &resource{catalog: catalog}
	r.GET("catalog", rs.Query)
	r.GET("catalog/facets", rs.Facets)
	r.GET("catalog/cars/:id", rs.Vehicle)
	r.GET("catalog/preferences", rs.Preferences)
	r.DELETE("sessions/current", rs.EndSession)
}

func (rs *resource) Query(c *gin.Context) {
	q := rs.DserQueryReq(c)
	if q == nil {
		return
	}
	sid := serdser.SessionID(c, true)
	res, err := rs.catalog.Query(c, sid, *q)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rs *resource) Facets(c *gin.Context) {
	f, err := rs.catalog.Facets(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (rs *resource) Vehicle(c *gin.Context) {
	v, err := rs.catalog.Vehicle(c, c.Param("id"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) Preferences(c *gin.Context) {
	sid := serdser.SessionID(c, false)
	c.JSON(http.StatusOK, rs.catalog.Preferences(c, sid))
}

func (rs *resource) EndSession(c *gin.Context) {
	sid := serdser.SessionID(c, false)
	if err := rs.catalog.EndSession(c, sid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
