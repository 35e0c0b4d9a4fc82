// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc

import "github.com/momeni/autorent/pkg/core/model"

// Paginate returns the page-th page (1-based) of the list when it is
// split into pageSize items pages. The last page may be shorter.
// Requesting a page beyond the last one (or a non-positive page or
// pageSize) yields an empty slice. The result shares its backing
// array with list.
func Paginate[T any](list []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(list) || start/pageSize != page-1 {
		return []T{}
	}
	end := min(start+pageSize, len(list))
	return list[start:end:end]
}

// TotalPages returns the number of pageSize items pages which are
// required for holding n items.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize < 1 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// windowEdge is the number of pages at each end of the page range which
// are shown contiguously when the current page is close to that end.
const windowEdge = 3

// BuildPaginationWindow computes the page links of a page selector.
// If totalPages fits in maxVisible, all pages are listed. Otherwise,
// the first and last pages are always listed. Near the start (current
// page <= 3), pages 2 and 3 follow the first page. Near the end, the
// two pages before the last page are listed. Elsewhere, the current
// page and its two neighbours are listed. Each gap of hidden pages is
// represented by exactly one ellipsis link and contiguous pages never
// get an ellipsis in between.
//
// The current page is clamped into the [1, totalPages] range. Zero
// totalPages yields no links.
func BuildPaginationWindow(
	current, totalPages, maxVisible int,
) []model.PageLink {
	if totalPages < 1 {
		return nil
	}
	current = max(1, min(current, totalPages))
	if totalPages <= maxVisible {
		links := make([]model.PageLink, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			links = append(links, model.PageLink{Page: p})
		}
		return links
	}
	var middle []int
	switch {
	case current <= windowEdge:
		middle = []int{2, 3}
	case current >= totalPages-windowEdge+1:
		middle = []int{totalPages - 2, totalPages - 1}
	default:
		middle = []int{current - 1, current, current + 1}
	}
	pages := append([]int{1}, middle...)
	pages = append(pages, totalPages)

	links := make([]model.PageLink, 0, len(pages)+2)
	prev := 0
	for _, p := range pages {
		if p <= prev || p > totalPages {
			continue
		}
		if prev != 0 && p > prev+1 {
			links = append(links, model.PageLink{Ellipsis: true})
		}
		links = append(links, model.PageLink{Page: p})
		prev = p
	}
	return links
}
