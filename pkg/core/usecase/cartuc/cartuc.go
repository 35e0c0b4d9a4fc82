// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cartuc contains the cart Ledger and the cart UseCase.
// A Ledger owns one cart with at most one line item per vehicle and
// keeps it in a durable key-value store. The UseCase manages one
// Ledger per cart ID, resolves vehicles from the inventory, and turns
// carts into bookings during the checkout.
package cartuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/log"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
)

// DefaultMaxDays is the default upper bound of rental days which is
// applied by ClampDays callers.
const DefaultMaxDays = 30

var (
	// ErrEmptyCart indicates that an empty cart cannot be checked out.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidCartID indicates an empty or too long cart ID.
	ErrInvalidCartID = errors.New("invalid cart id")
)

// BookingSubmitter accepts the bookings which are created during the
// checkout. The admin API client implements it.
type BookingSubmitter interface {
	CreateBooking(ctx context.Context, b *model.Booking) (*model.Booking, error)
}

// UseCase represents the cart use case. It holds the inventory source
// for resolving vehicles, the durable store of carts, and an optional
// booking submitter. Ledgers are hydrated on their first use and kept
// for the lifetime of the UseCase.
type UseCase struct {
	inventory repo.Inventory
	store     repo.KVStore
	submitter BookingSubmitter
	maxDays   int

	mu      sync.Mutex
	ledgers map[string]*Ledger
}

// New instantiates a cart use case. Carts are kept in the store under
// "cart:<id>" keys.
func New(
	inv repo.Inventory, store repo.KVStore, opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		inventory: inv,
		store:     store,
		ledgers:   make(map[string]*Ledger),
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.maxDays == 0 {
		uc.maxDays = DefaultMaxDays
	}
	return uc, nil
}

// MaxDays returns the configured upper bound of rental days.
func (uc *UseCase) MaxDays() int {
	return uc.maxDays
}

// ClampDays limits days into the [1, maxDays] range. It implements
// the caller-side policy of the cart page, since the Ledger itself
// only rejects non-positive values.
func ClampDays(days, maxDays int) int {
	return max(1, min(days, maxDays))
}

const maxCartIDLen = 64

func cartKey(cartID string) string {
	return "cart:" + cartID
}

// Ledger returns the cartID ledger, hydrating it from the store if it
// is not loaded yet. The store is read without holding the ledgers
// lock, so a slow read only delays the first access of its own cart.
// When two callers hydrate the same cart concurrently, the first
// inserted ledger wins and the other one is discarded.
func (uc *UseCase) Ledger(ctx context.Context, cartID string) (*Ledger, error) {
	if cartID == "" || len(cartID) > maxCartIDLen {
		return nil, cerr.BadRequest(ErrInvalidCartID)
	}
	if l, ok := uc.loaded(cartID); ok {
		return l, nil
	}
	hydrated, err := Hydrate(ctx, uc.store, cartKey(cartID))
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if l, ok := uc.ledgers[cartID]; ok {
		return l, nil
	}
	uc.ledgers[cartID] = hydrated
	return hydrated, nil
}

func (uc *UseCase) loaded(cartID string) (*Ledger, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.ledgers[cartID]
	return l, ok
}

// Cart returns the current line items and totals of the cartID cart.
func (uc *UseCase) Cart(
	ctx context.Context, cartID string,
) (*model.CartView, error) {
	l, err := uc.Ledger(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return view(cartID, l), nil
}

// AddItem resolves the vehicleID vehicle from the inventory and puts it
// in the cartID cart for the given rental terms. Unknown vehicles are
// reported as cerr.NotFound errors.
func (uc *UseCase) AddItem(
	ctx context.Context,
	cartID, vehicleID string,
	days int,
	startDate string,
) (*model.CartView, error) {
	l, err := uc.Ledger(ctx, cartID)
	if err != nil {
		return nil, err
	}
	v, err := uc.inventory.Vehicle(ctx, vehicleID)
	switch {
	case errors.Is(err, repo.ErrVehicleNotFound):
		return nil, cerr.NotFound(err)
	case err != nil:
		return nil, fmt.Errorf("loading vehicle %q: %w", vehicleID, err)
	}
	if err = l.AddOrUpdate(ctx, *v, days, startDate); err != nil {
		return nil, err
	}
	return view(cartID, l), nil
}

// UpdateItem changes the rental terms of an existing line item.
func (uc *UseCase) UpdateItem(
	ctx context.Context,
	cartID, vehicleID string,
	days int,
	startDate string,
) (*model.CartView, error) {
	l, err := uc.Ledger(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err = l.Update(ctx, vehicleID, days, startDate); err != nil {
		return nil, err
	}
	return view(cartID, l), nil
}

// RemoveItem removes the vehicleID line item if it exists.
func (uc *UseCase) RemoveItem(
	ctx context.Context, cartID, vehicleID string,
) (*model.CartView, error) {
	l, err := uc.Ledger(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err = l.Remove(ctx, vehicleID); err != nil {
		return nil, err
	}
	return view(cartID, l), nil
}

// Clear removes all line items of the cartID cart.
func (uc *UseCase) Clear(
	ctx context.Context, cartID string,
) (*model.CartView, error) {
	l, err := uc.Ledger(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err = l.Clear(ctx); err != nil {
		return nil, err
	}
	return view(cartID, l), nil
}

// Checkout turns each line item of the cartID cart into a pending
// booking which is paid by the pm payment method. If a booking
// submitter is configured, bookings are submitted one by one and the
// cart is cleared only if all of them are accepted. Otherwise, the
// bookings are only returned and the cart is cleared.
func (uc *UseCase) Checkout(
	ctx context.Context, cartID string, pm model.PaymentMethod,
) ([]model.Booking, error) {
	if err := pm.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	l, err := uc.Ledger(ctx, cartID)
	if err != nil {
		return nil, err
	}
	items := l.Items()
	if len(items) == 0 {
		return nil, cerr.BadRequest(ErrEmptyCart)
	}
	bookings := make([]model.Booking, 0, len(items))
	for _, item := range items {
		b, err := booking(&item, pm)
		if err != nil {
			return nil, err
		}
		if uc.submitter != nil {
			created, err := uc.submitter.CreateBooking(ctx, b)
			if err != nil {
				log.Error(
					ctx, "checkout failed",
					log.Cart(cartID), log.Vehicle(item.Vehicle.ID),
					slog.Int("submitted", len(bookings)),
					log.Err("err", err),
				)
				return nil, fmt.Errorf(
					"submitting booking of vehicle %q: %w",
					item.Vehicle.ID, err,
				)
			}
			b = created
		}
		bookings = append(bookings, *b)
	}
	if err = l.Clear(ctx); err != nil {
		return nil, err
	}
	log.Info(
		ctx, "cart is checked out",
		log.Cart(cartID),
		slog.Int("bookings", len(bookings)),
	)
	return bookings, nil
}

func booking(
	item *model.CartLineItem, pm model.PaymentMethod,
) (*model.Booking, error) {
	start, err := time.Parse(DateLayout, item.StartDate)
	if err != nil {
		return nil, cerr.BadRequest(
			fmt.Errorf("%w: %q", ErrInvalidStartDate, item.StartDate),
		)
	}
	return &model.Booking{
		CarID:         item.Vehicle.ID,
		StartDate:     item.StartDate,
		EndDate:       start.AddDate(0, 0, item.Days).Format(DateLayout),
		TotalPrice:    item.TotalPrice,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
		PaymentMethod: pm,
	}, nil
}

func view(cartID string, l *Ledger) *model.CartView {
	items, totals := l.Snapshot()
	return &model.CartView{ID: cartID, Items: items, Totals: totals}
}
