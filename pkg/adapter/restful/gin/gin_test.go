// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/internal/test/dbcontainer"
	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/kvrp"
	"github.com/momeni/autorent/pkg/adapter/inventory/dbinv"
	"github.com/momeni/autorent/pkg/adapter/inventory/static"
	"github.com/momeni/autorent/pkg/adapter/kv/dbkv"
	"github.com/momeni/autorent/pkg/adapter/kv/memkv"
	"github.com/momeni/autorent/pkg/adapter/restful/gin"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/routes"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/usecase/cartuc"
	"github.com/momeni/autorent/pkg/core/usecase/cataloguc"
	"github.com/momeni/autorent/pkg/core/usecase/migrationuc"
	"github.com/stretchr/testify/suite"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool
	Gin  *gin.Engine

	store *dbkv.Store
	inv   *dbinv.Inventory
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pool, ok := dbcontainer.New(ctx, 60*time.Second, t)
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	cars, kv := carsrp.New(), kvrp.New()
	err := migrationuc.NewInitDB(igts.Pool, cars, kv).InitDev(
		igts.Ctx, static.Seed(),
	)
	igts.Require().NoError(err, "failed to initialize the database")

	igts.inv = dbinv.New(igts.Pool, cars)
	igts.store = dbkv.New(igts.Pool, kv)
	catalog, err := cataloguc.New(
		igts.inv, cataloguc.WithSessionStore(memkv.New()),
	)
	igts.Require().NoError(err)

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	routes.Register(igts.Gin, catalog, igts.newCartUseCase(), nil)
}

func (igts *IntegrationGinTestSuite) newCartUseCase() *cartuc.UseCase {
	uc, err := cartuc.New(igts.inv, igts.store)
	igts.Require().NoError(err, "cannot instantiate cart use case")
	return uc
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	method, path string, body any, res any,
) *httptest.ResponseRecorder {
	var b []byte
	if body != nil {
		var err error
		b, err = json.Marshal(body)
		igts.Require().NoError(err)
	}
	req, err := http.NewRequest(
		method, routes.BasePath+path, bytes.NewReader(b),
	)
	igts.Require().NoError(err, "cannot create request")
	req.Header.Add("Content-Type", "application/json")
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		igts.NoError(json.Unmarshal(w.Body.Bytes(), res), "body is not json")
	}
	return w
}

func (igts *IntegrationGinTestSuite) TestCatalogKeepsInventoryOrder() {
	res := &model.CatalogResult{}
	w := igts.sendReqRecvResp(http.MethodGet, "/catalog", nil, res)
	igts.Equal(http.StatusOK, w.Code)
	igts.Require().Len(res.Data, 5)
	for i, id := range []string{"1", "2", "3", "4", "5"} {
		igts.Equal(id, res.Data[i].ID)
	}
	igts.Equal(static.Seed()[0].Features, res.Data[0].Features)
}

func (igts *IntegrationGinTestSuite) TestCatalogFilters() {
	res := &model.CatalogResult{}
	w := igts.sendReqRecvResp(
		http.MethodGet,
		"/catalog?fuelTypes=petrol,electric&transmission=automatic&sort=price-desc",
		nil, res,
	)
	igts.Equal(http.StatusOK, w.Code)
	igts.Require().Len(res.Data, 2)
	igts.Equal("4", res.Data[0].ID)
	igts.Equal("1", res.Data[1].ID)
}

func (igts *IntegrationGinTestSuite) TestNotFound() {
	res := &struct{ Detail string }{}
	w := igts.sendReqRecvResp(http.MethodGet, "/catalog/cars/missing", nil, res)
	igts.Equal(http.StatusNotFound, w.Code)
	igts.Contains(res.Detail, "vehicle not found")
}

func (igts *IntegrationGinTestSuite) TestCartSurvivesRestart() {
	cid := "restart-cart"
	body := map[string]any{"days": 2, "startDate": "2025-06-01"}
	cv := &model.CartView{}
	w := igts.sendReqRecvResp(
		http.MethodPut, "/carts/"+cid+"/items/2", body, cv,
	)
	igts.Require().Equal(http.StatusOK, w.Code)
	igts.Equal(6400.0, cv.Totals.TotalPrice)

	restarted := igts.newCartUseCase()
	v, err := restarted.Cart(igts.Ctx, cid)
	igts.Require().NoError(err)
	igts.Equal(cv.Items, v.Items)
	igts.Equal(cv.Totals, v.Totals)
}

func (igts *IntegrationGinTestSuite) TestCorruptCartIsDiscarded() {
	cid := "corrupt-cart"
	err := igts.store.Set(igts.Ctx, "cart:"+cid, "{not json")
	igts.Require().NoError(err)

	cv := &model.CartView{}
	w := igts.sendReqRecvResp(http.MethodGet, "/carts/"+cid, nil, cv)
	igts.Equal(http.StatusOK, w.Code)
	igts.Empty(cv.Items)
	igts.Equal(model.CartTotals{}, cv.Totals)
}
