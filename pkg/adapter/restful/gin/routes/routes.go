// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// registration of them on a gin-gonic engine.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/adminrs"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/cartrs"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/catalogrs"
	"github.com/momeni/autorent/pkg/core/usecase/adminuc"
	"github.com/momeni/autorent/pkg/core/usecase/cartuc"
	"github.com/momeni/autorent/pkg/core/usecase/cataloguc"
)

// BasePath is the common prefix of all REST APIs.
const BasePath = "/api/arweb/v1"

// Register instantiates a series of "resource" structs, from packages
// which are named like catalogrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// The admin use case is optional and its endpoints are only registered
// when admin is not nil (i.e., the admin API is configured).
func Register(
	e *gin.Engine,
	catalog *cataloguc.UseCase,
	cart *cartuc.UseCase,
	admin *adminuc.UseCase,
) {
	r := e.Group(BasePath)
	catalogrs.Register(r, catalog)
	cartrs.Register(r, cart)
	if admin != nil {
		adminrs.Register(r, admin)
	}
}
