// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cartuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the cart use case.
type Option func(uc *UseCase) error

// WithMaxDays option sets the upper bound of rental days which callers
// should apply using ClampDays.
func WithMaxDays(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("max days (%d) is not positive", n)
		}
		if uc.maxDays != 0 {
			return errors.New("max days is already configured")
		}
		uc.maxDays = n
		return nil
	}
}

// WithBookingSubmitter option makes the checkout to submit bookings
// using s. Without it, checkout only clears the cart.
func WithBookingSubmitter(s BookingSubmitter) Option {
	return func(uc *UseCase) error {
		if s == nil {
			return errors.New("booking submitter is nil")
		}
		if uc.submitter != nil {
			return errors.New("booking submitter is already configured")
		}
		uc.submitter = s
		return nil
	}
}
