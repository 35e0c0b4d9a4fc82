// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Page is a bounded slice of a longer list. Page is 1-based and Total
// is the length of the whole list.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize,omitempty"`
	TotalPages int `json:"totalPages"`
}

// PageLink is one entry of a pagination window. It either refers to a
// page number or is an ellipsis marker (with a zero Page) standing for
// a gap of hidden pages.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// CatalogQuery is one catalog request as it is issued by the storefront
// list page. A zero or negative Page is treated as the first page.
type CatalogQuery struct {
	Search   string         `json:"search"`
	Filters  FilterCriteria `json:"filters"`
	Sort     SortKey        `json:"sort"`
	ViewMode ViewMode       `json:"viewMode"`
	Page     int            `json:"page"`

	// Compact asks for a narrower pagination window (e.g., on mobile).
	Compact bool `json:"compact,omitempty"`
}

// CatalogResult is the visible slice of the catalog plus everything
// the list page needs in order to render its controls.
type CatalogResult struct {
	Page[Vehicle]

	Window      []PageLink   `json:"window"`
	FilterCount int          `json:"filterCount"`
	Query       CatalogQuery `json:"query"`
}

// Facets lists the distinct values which are present in an inventory.
// They are used for populating the filter panel choices.
type Facets struct {
	Brands        []string       `json:"brands"`
	Transmissions []Transmission `json:"transmissions"`
	FuelTypes     []FuelType     `json:"fuelTypes"`
	Features      []string       `json:"features"`
	MinPrice      float64        `json:"minPrice"`
	MaxPrice      float64        `json:"maxPrice"`
	MinYear       int            `json:"minYear"`
	MaxYear       int            `json:"maxYear"`
}
