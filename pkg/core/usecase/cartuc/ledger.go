// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cartuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/log"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
)

// DateLayout is the ISO 8601 calendar date layout of start dates.
const DateLayout = time.DateOnly

var (
	// ErrNoLineItem indicates that a cart has no line item for the
	// requested vehicle.
	ErrNoLineItem = errors.New("no line item for the vehicle")

	// ErrInvalidDays indicates a non-positive rental length.
	ErrInvalidDays = errors.New("days must be a positive integer")

	// ErrInvalidStartDate indicates a start date which is not formatted
	// as an ISO 8601 calendar date.
	ErrInvalidStartDate = errors.New("start date is not a YYYY-MM-DD date")
)

// Ledger owns one cart and mirrors it into a durable key-value store.
// Each mutation serializes the whole cart and stores it before it
// returns. If storing fails, the in-memory cart is left unchanged and
// the error is returned, so memory and storage hold the same cart.
//
// Ledger is safe for concurrent use. Concurrent mutations are applied
// one at a time, in their locking order.
type Ledger struct {
	mu    sync.Mutex
	key   string
	store repo.KVStore
	cart  model.Cart
}

// Hydrate creates a Ledger for the cart which is stored under the key
// entry of the store. A missing entry yields an empty cart. A malformed
// entry is logged and discarded, also yielding an empty cart. Only
// storage read failures are returned as errors.
func Hydrate(
	ctx context.Context, store repo.KVStore, key string,
) (*Ledger, error) {
	l := &Ledger{key: key, store: store}
	s, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading cart %q: %w", key, err)
	}
	if !found {
		return l, nil
	}
	var items []model.CartLineItem
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		log.Warn(
			ctx, "discarding malformed stored cart",
			slog.String("key", key), log.Err("err", err),
		)
		return l, nil
	}
	l.cart.Items = dedup(items)
	return l, nil
}

// dedup keeps the last line item of each vehicle at the position of its
// first appearance, so a hand-edited storage entry cannot violate the
// one line item per vehicle rule. Item totals are recomputed and items
// with no vehicle ID or non-positive days are dropped.
func dedup(items []model.CartLineItem) []model.CartLineItem {
	out := make([]model.CartLineItem, 0, len(items))
	pos := make(map[string]int, len(items))
	for _, item := range items {
		if item.Vehicle.ID == "" || item.Days < 1 {
			continue
		}
		item = lineItem(item.Vehicle, item.Days, item.StartDate)
		if i, ok := pos[item.Vehicle.ID]; ok {
			out[i] = item
			continue
		}
		pos[item.Vehicle.ID] = len(out)
		out = append(out, item)
	}
	return out
}

// AddOrUpdate puts the v vehicle in the cart for the given number of
// days starting from startDate. If the cart already has a line item for
// v.ID, that item is replaced in place. It keeps its position, but its
// locked vehicle copy is refreshed with v. Otherwise, a new item is
// appended. The item total is always computed as v.PricePerDay * days.
//
// The days argument must be positive. Upper bounds are a caller policy
// and are not enforced here.
func (l *Ledger) AddOrUpdate(
	ctx context.Context, v model.Vehicle, days int, startDate string,
) error {
	if err := validateTerms(days, startDate); err != nil {
		return err
	}
	return l.mutate(ctx, func(items []model.CartLineItem) ([]model.CartLineItem, error) {
		item := lineItem(v, days, startDate)
		if i := indexOf(items, v.ID); i >= 0 {
			items[i] = item
			return items, nil
		}
		return append(items, item), nil
	})
}

// Update changes the rental terms of an existing line item. It reuses
// the vehicle copy which was locked when the item was added. If the
// cart has no item for vehicleID, an ErrNoLineItem (wrapped as a
// cerr.NotFound error) is returned and the cart is not changed.
func (l *Ledger) Update(
	ctx context.Context, vehicleID string, days int, startDate string,
) error {
	if err := validateTerms(days, startDate); err != nil {
		return err
	}
	return l.mutate(ctx, func(items []model.CartLineItem) ([]model.CartLineItem, error) {
		i := indexOf(items, vehicleID)
		if i < 0 {
			return nil, cerr.NotFound(
				fmt.Errorf("vehicle %q: %w", vehicleID, ErrNoLineItem),
			)
		}
		items[i] = lineItem(items[i].Vehicle, days, startDate)
		return items, nil
	})
}

// Remove deletes the line item of vehicleID. Removing a missing item is
// not an error, but the cart is stored anyway.
func (l *Ledger) Remove(ctx context.Context, vehicleID string) error {
	return l.mutate(ctx, func(items []model.CartLineItem) ([]model.CartLineItem, error) {
		return slices.DeleteFunc(items, func(item model.CartLineItem) bool {
			return item.Vehicle.ID == vehicleID
		}), nil
	})
}

// Clear removes all line items.
func (l *Ledger) Clear(ctx context.Context) error {
	return l.mutate(ctx, func([]model.CartLineItem) ([]model.CartLineItem, error) {
		return nil, nil
	})
}

// Items returns a copy of the current line items in their cart order.
func (l *Ledger) Items() []model.CartLineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneItems(l.cart.Items)
}

// Totals computes the number of line items and their total price from
// the current line items.
func (l *Ledger) Totals() model.CartTotals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cart.Totals()
}

// Snapshot returns the current items and totals, read atomically.
func (l *Ledger) Snapshot() (items []model.CartLineItem, t model.CartTotals) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneItems(l.cart.Items), l.cart.Totals()
}

func (l *Ledger) mutate(
	ctx context.Context,
	fn func(items []model.CartLineItem) ([]model.CartLineItem, error),
) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	items, err := fn(slices.Clone(l.cart.Items))
	if err != nil {
		return err
	}
	if err := l.persist(ctx, items); err != nil {
		return err
	}
	l.cart.Items = items
	return nil
}

func (l *Ledger) persist(ctx context.Context, items []model.CartLineItem) error {
	if items == nil {
		items = []model.CartLineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling cart: %w", err)
	}
	if err := l.store.Set(ctx, l.key, string(b)); err != nil {
		return fmt.Errorf("storing cart %q: %w", l.key, err)
	}
	return nil
}

func validateTerms(days int, startDate string) error {
	if days < 1 {
		return cerr.BadRequest(fmt.Errorf("%w: %d", ErrInvalidDays, days))
	}
	if _, err := time.Parse(DateLayout, startDate); err != nil {
		return cerr.BadRequest(
			fmt.Errorf("%w: %q", ErrInvalidStartDate, startDate),
		)
	}
	return nil
}

func lineItem(v model.Vehicle, days int, startDate string) model.CartLineItem {
	v.AdditionalImages = slices.Clone(v.AdditionalImages)
	v.Features = slices.Clone(v.Features)
	return model.CartLineItem{
		Vehicle:    v,
		Days:       days,
		StartDate:  startDate,
		TotalPrice: v.PricePerDay * float64(days),
	}
}

func indexOf(items []model.CartLineItem, vehicleID string) int {
	return slices.IndexFunc(items, func(item model.CartLineItem) bool {
		return item.Vehicle.ID == vehicleID
	})
}

func cloneItems(items []model.CartLineItem) []model.CartLineItem {
	out := make([]model.CartLineItem, len(items))
	for i, item := range items {
		out[i] = lineItem(item.Vehicle, item.Days, item.StartDate)
		out[i].TotalPrice = item.TotalPrice
	}
	return out
}
