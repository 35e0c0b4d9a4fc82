// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cataloguc contains the catalog query engine and the catalog
// UseCase which serves the storefront list and detail pages.
//
// The engine consists of pure functions which work on a given list of
// vehicles: Search, ApplyFilters, Sort, Paginate, and
// BuildPaginationWindow. They never fail for empty or contradictory
// inputs and just produce empty results. The UseCase loads the
// inventory, runs the engine steps in order, and keeps the catalog
// preferences of each browsing session, so a changed search, filter,
// sort, or view mode resets the page number to one.
package cataloguc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/log"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"golang.org/x/text/language"
)

// UseCase represents the catalog use case. It holds the inventory
// source, an optional session store for the catalog preferences, and
// the catalog presentation settings.
type UseCase struct {
	inventory repo.Inventory
	sessions  repo.SessionStore

	gridPageSize   int
	listPageSize   int
	maxVisible     int
	compactVisible int
	lang           language.Tag
	langConfigured bool
	preferencesTTL time.Duration
}

// Default values of the catalog use case settings.
const (
	DefaultGridPageSize   = 6
	DefaultListPageSize   = 4
	DefaultMaxVisible     = 5
	DefaultCompactVisible = 3
	DefaultPreferencesTTL = 30 * time.Minute
)

// New instantiates a catalog use case which reads vehicles from the
// inv inventory. Optional settings are passed as functional options.
// Without a session store, the catalog preferences are not kept and
// every query is served as requested.
func New(inv repo.Inventory, opts ...Option) (*UseCase, error) {
	uc := &UseCase{inventory: inv}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.gridPageSize == 0 {
		uc.gridPageSize = DefaultGridPageSize
	}
	if uc.listPageSize == 0 {
		uc.listPageSize = DefaultListPageSize
	}
	if uc.maxVisible == 0 {
		uc.maxVisible = DefaultMaxVisible
	}
	if uc.compactVisible == 0 {
		uc.compactVisible = DefaultCompactVisible
	}
	if !uc.langConfigured {
		uc.lang = language.English
	}
	if uc.preferencesTTL == 0 {
		uc.preferencesTTL = DefaultPreferencesTTL
	}
	return uc, nil
}

// PageSize returns the number of vehicles per page in the vm view.
func (uc *UseCase) PageSize(vm model.ViewMode) int {
	if vm == model.ViewList {
		return uc.listPageSize
	}
	return uc.gridPageSize
}

// Query runs the q catalog query and returns the visible page along
// with its pagination window. When sessionID is not empty, preferences
// of that session are consulted and updated. If the search text,
// filters, sort key, or view mode of q differ from the stored ones,
// the page is reset to one. A non-positive page continues from the
// stored page (or the first page for a new session).
//
// Preferences storage failures are logged and do not fail the query.
func (uc *UseCase) Query(
	ctx context.Context, sessionID string, q model.CatalogQuery,
) (*model.CatalogResult, error) {
	if err := q.Sort.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	if err := q.ViewMode.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	q.Filters.Normalize()
	requested := q.Page
	q.Page = 1
	if sessionID != "" && uc.sessions != nil {
		prev, found := uc.loadPreferences(ctx, sessionID)
		switch {
		case found && !prev.SameView(&q):
			// the view is changed, so the first page is shown
		case requested >= 1:
			q.Page = requested
		case found && prev.Page >= 1:
			q.Page = prev.Page
		}
	} else if requested >= 1 {
		q.Page = requested
	}

	vehicles, err := uc.inventory.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}
	list := Search(vehicles, q.Search)
	list = ApplyFilters(list, q.Filters)
	list = Sort(list, q.Sort, WithCollation(uc.lang))

	size := uc.PageSize(q.ViewMode)
	totalPages := TotalPages(len(list), size)
	visible := uc.maxVisible
	if q.Compact {
		visible = uc.compactVisible
	}
	res := &model.CatalogResult{
		Page: model.Page[model.Vehicle]{
			Data:       Paginate(list, q.Page, size),
			Total:      len(list),
			Page:       q.Page,
			PageSize:   size,
			TotalPages: totalPages,
		},
		Window:      BuildPaginationWindow(q.Page, totalPages, visible),
		FilterCount: q.Filters.Count(),
		Query:       q,
	}
	if sessionID != "" && uc.sessions != nil {
		uc.storePreferences(ctx, sessionID, &model.CatalogPreferences{
			Search:   q.Search,
			Filters:  q.Filters,
			Sort:     q.Sort,
			ViewMode: q.ViewMode,
			Page:     q.Page,
		})
	}
	return res, nil
}

// Vehicle returns the id vehicle for the detail page. A missing vehicle
// is reported as a cerr.NotFound error.
func (uc *UseCase) Vehicle(
	ctx context.Context, id string,
) (*model.Vehicle, error) {
	v, err := uc.inventory.Vehicle(ctx, id)
	switch {
	case errors.Is(err, repo.ErrVehicleNotFound):
		return nil, cerr.NotFound(err)
	case err != nil:
		return nil, fmt.Errorf("loading vehicle %q: %w", id, err)
	}
	return v, nil
}

// Facets returns the filter panel choices of the current inventory.
func (uc *UseCase) Facets(ctx context.Context) (*model.Facets, error) {
	vehicles, err := uc.inventory.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}
	f := Facets(vehicles)
	return &f, nil
}

// Preferences returns the stored catalog preferences of the sessionID
// session. Missing or malformed preferences yield the defaults.
func (uc *UseCase) Preferences(
	ctx context.Context, sessionID string,
) *model.CatalogPreferences {
	if sessionID != "" && uc.sessions != nil {
		if p, found := uc.loadPreferences(ctx, sessionID); found {
			return p
		}
	}
	return &model.CatalogPreferences{Page: 1}
}

// EndSession forgets the catalog preferences of the sessionID session.
func (uc *UseCase) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" || uc.sessions == nil {
		return nil
	}
	if err := uc.sessions.Delete(ctx, preferencesKey(sessionID)); err != nil {
		return fmt.Errorf("deleting catalog preferences: %w", err)
	}
	return nil
}

func preferencesKey(sessionID string) string {
	return "catalog-preferences:" + sessionID
}

func (uc *UseCase) loadPreferences(
	ctx context.Context, sessionID string,
) (*model.CatalogPreferences, bool) {
	s, found, err := uc.sessions.Get(ctx, preferencesKey(sessionID))
	if err != nil {
		log.Warn(
			ctx, "failed to load catalog preferences",
			log.Session(sessionID), log.Err("err", err),
		)
		return nil, false
	}
	if !found {
		return nil, false
	}
	p := &model.CatalogPreferences{}
	if err := json.Unmarshal([]byte(s), p); err != nil {
		log.Warn(
			ctx, "discarding malformed catalog preferences",
			log.Session(sessionID), log.Err("err", err),
		)
		return nil, false
	}
	return p, true
}

func (uc *UseCase) storePreferences(
	ctx context.Context, sessionID string, p *model.CatalogPreferences,
) {
	b, err := json.Marshal(p)
	if err != nil {
		log.Error(
			ctx, "failed to marshal catalog preferences",
			log.Err("err", err),
		)
		return
	}
	err = uc.sessions.SetTTL(
		ctx, preferencesKey(sessionID), string(b), uc.preferencesTTL,
	)
	if err != nil {
		log.Warn(
			ctx, "failed to store catalog preferences",
			log.Session(sessionID), log.Err("err", err),
		)
	}
}
