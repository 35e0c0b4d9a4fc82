// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// CatalogPreferences keeps the catalog UI state of one browsing
// session. Unlike carts, preferences expire with their session.
type CatalogPreferences struct {
	Search   string         `json:"search"`
	Filters  FilterCriteria `json:"filters"`
	Sort     SortKey        `json:"sort"`
	ViewMode ViewMode       `json:"viewMode"`
	Page     int            `json:"page"`
}

// SameView reports whether p and q select the same list of vehicles
// (ignoring the page number). When they differ, a page number which
// was chosen for the old view is meaningless for the new view.
func (p *CatalogPreferences) SameView(q *CatalogQuery) bool {
	return p.Search == q.Search &&
		p.Sort == q.Sort &&
		p.ViewMode == q.ViewMode &&
		p.Filters.Equal(&q.Filters)
}
