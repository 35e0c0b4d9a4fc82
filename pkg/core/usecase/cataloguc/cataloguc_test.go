// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"github.com/momeni/autorent/pkg/core/usecase/cataloguc"
	"github.com/stretchr/testify/suite"
)

type fakeInventory []model.Vehicle

func (inv fakeInventory) Vehicles(context.Context) ([]model.Vehicle, error) {
	return inv, nil
}

func (inv fakeInventory) Vehicle(_ context.Context, id string) (*model.Vehicle, error) {
	for _, v := range inv {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, repo.ErrVehicleNotFound
}

type fakeSessions struct {
	mu   sync.Mutex
	m    map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		m:    make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (s *fakeSessions) Get(_ context.Context, k string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.m[k]
	return v, ok, nil
}

func (s *fakeSessions) Set(ctx context.Context, k, v string) error {
	return s.SetTTL(ctx, k, v, 0)
}

func (s *fakeSessions) SetTTL(_ context.Context, k, v string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.m[k], s.ttls[k] = v, ttl
	return nil
}

func (s *fakeSessions) Delete(_ context.Context, k string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, k)
	return nil
}

type CatalogTestSuite struct {
	suite.Suite

	ctx      context.Context
	sessions *fakeSessions
	uc       *cataloguc.UseCase
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (cts *CatalogTestSuite) SetupTest() {
	cts.ctx = context.Background()
	cts.sessions = newFakeSessions()
	var err error
	cts.uc, err = cataloguc.New(
		fakeInventory(fleet()),
		cataloguc.WithSessionStore(cts.sessions),
		cataloguc.WithGridPageSize(1),
		cataloguc.WithListPageSize(3),
		cataloguc.WithMaxVisiblePages(3),
		cataloguc.WithPreferencesTTL(time.Hour),
	)
	cts.Require().NoError(err)
}

func (cts *CatalogTestSuite) TestOptions() {
	_, err := cataloguc.New(nil, cataloguc.WithGridPageSize(0))
	cts.Error(err)
	_, err = cataloguc.New(
		nil, cataloguc.WithListPageSize(2), cataloguc.WithListPageSize(3),
	)
	cts.Error(err, "repeated options are rejected")
	_, err = cataloguc.New(nil, cataloguc.WithCollationLanguage("not a tag!"))
	cts.Error(err)
	uc, err := cataloguc.New(nil)
	cts.Require().NoError(err)
	cts.Equal(cataloguc.DefaultGridPageSize, uc.PageSize(model.ViewGrid))
	cts.Equal(cataloguc.DefaultListPageSize, uc.PageSize(model.ViewList))
}

func (cts *CatalogTestSuite) TestQueryPipeline() {
	res, err := cts.uc.Query(cts.ctx, "", model.CatalogQuery{
		Search:   "o",
		Filters:  model.FilterCriteria{Transmission: model.TransmissionAutomatic},
		Sort:     model.SortPriceDesc,
		ViewMode: model.ViewList,
	})
	cts.Require().NoError(err)
	cts.Equal([]string{"4", "1"}, idsOf(res.Data))
	cts.Equal(2, res.Total)
	cts.Equal(1, res.TotalPages)
	cts.Equal(3, res.PageSize)
	cts.Equal(1, res.FilterCount)
	cts.Equal([]model.PageLink{{Page: 1}}, res.Window)
}

func (cts *CatalogTestSuite) TestPageBeyondTheEnd() {
	res, err := cts.uc.Query(cts.ctx, "", model.CatalogQuery{Page: 9})
	cts.Require().NoError(err)
	cts.Empty(res.Data)
	cts.Equal(4, res.TotalPages)
	cts.Equal(9, res.Page.Page)
}

func (cts *CatalogTestSuite) TestInvalidEnums() {
	_, err := cts.uc.Query(cts.ctx, "", model.CatalogQuery{Sort: 99})
	var ce *cerr.Error
	cts.Require().ErrorAs(err, &ce)
	cts.Equal(http.StatusBadRequest, ce.HTTPStatusCode)
}

func (cts *CatalogTestSuite) TestPageResetOnViewChange() {
	q := model.CatalogQuery{Page: 3}
	res, err := cts.uc.Query(cts.ctx, "s", q)
	cts.Require().NoError(err)
	cts.Equal(3, res.Page.Page)
	cts.Equal(time.Hour, cts.sessions.ttls["catalog-preferences:s"])

	q.Page = 0
	res, err = cts.uc.Query(cts.ctx, "s", q)
	cts.Require().NoError(err)
	cts.Equal(3, res.Page.Page, "stored page is continued")

	for name, change := range map[string]func(q *model.CatalogQuery){
		"search":  func(q *model.CatalogQuery) { q.Search = "a" },
		"filters": func(q *model.CatalogQuery) { q.Filters.Brand = "BMW" },
		"sort":    func(q *model.CatalogQuery) { q.Sort = model.SortYearAsc },
		"view":    func(q *model.CatalogQuery) { q.ViewMode = model.ViewList },
	} {
		cts.Run(name, func() {
			_, err := cts.uc.Query(cts.ctx, name, model.CatalogQuery{Page: 2})
			cts.Require().NoError(err)
			changed := model.CatalogQuery{Page: 2}
			change(&changed)
			res, err := cts.uc.Query(cts.ctx, name, changed)
			cts.Require().NoError(err)
			cts.Equal(1, res.Page.Page)
		})
	}
}

func (cts *CatalogTestSuite) TestPreferences() {
	p := cts.uc.Preferences(cts.ctx, "fresh")
	cts.Equal(&model.CatalogPreferences{Page: 1}, p)

	_, err := cts.uc.Query(cts.ctx, "s", model.CatalogQuery{
		Search: "golf", Sort: model.SortNameAsc, ViewMode: model.ViewList,
	})
	cts.Require().NoError(err)
	p = cts.uc.Preferences(cts.ctx, "s")
	cts.Equal("golf", p.Search)
	cts.Equal(model.SortNameAsc, p.Sort)
	cts.Equal(model.ViewList, p.ViewMode)

	cts.Require().NoError(cts.uc.EndSession(cts.ctx, "s"))
	cts.Equal(&model.CatalogPreferences{Page: 1}, cts.uc.Preferences(cts.ctx, "s"))
}

func (cts *CatalogTestSuite) TestMalformedPreferences() {
	cts.sessions.m["catalog-preferences:s"] = `{"page": "three"`
	res, err := cts.uc.Query(cts.ctx, "s", model.CatalogQuery{})
	cts.Require().NoError(err)
	cts.Equal(1, res.Page.Page)
	cts.Equal(&model.CatalogPreferences{Page: 1}, cts.uc.Preferences(cts.ctx, "x"))
}

func (cts *CatalogTestSuite) TestSessionStoreFailure() {
	cts.sessions.err = errors.New("connection refused")
	res, err := cts.uc.Query(cts.ctx, "s", model.CatalogQuery{Page: 2})
	cts.Require().NoError(err, "preferences failures are not fatal")
	cts.Equal(2, res.Page.Page)
}

func (cts *CatalogTestSuite) TestVehicle() {
	v, err := cts.uc.Vehicle(cts.ctx, "3")
	cts.Require().NoError(err)
	cts.Equal("Golf", v.Model)

	_, err = cts.uc.Vehicle(cts.ctx, "42")
	cts.ErrorIs(err, repo.ErrVehicleNotFound)
	var ce *cerr.Error
	cts.Require().ErrorAs(err, &ce)
	cts.Equal(http.StatusNotFound, ce.HTTPStatusCode)
}
