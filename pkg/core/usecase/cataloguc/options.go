// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc

import (
	"errors"
	"fmt"
	"time"

	"github.com/momeni/autorent/pkg/core/repo"
	"golang.org/x/text/language"
)

// Option is a functional option for the catalog use case.
type Option func(uc *UseCase) error

// WithSessionStore option makes the catalog use case to keep the
// catalog preferences of each browsing session in the s store.
func WithSessionStore(s repo.SessionStore) Option {
	return func(uc *UseCase) error {
		if s == nil {
			return errors.New("session store is nil")
		}
		if uc.sessions != nil {
			return errors.New("session store is already configured")
		}
		uc.sessions = s
		return nil
	}
}

// WithGridPageSize option sets the number of vehicles per page in the
// grid view mode.
func WithGridPageSize(n int) Option {
	return positiveInt("grid page size", n, func(uc *UseCase) *int {
		return &uc.gridPageSize
	})
}

// WithListPageSize option sets the number of vehicles per page in the
// list view mode.
func WithListPageSize(n int) Option {
	return positiveInt("list page size", n, func(uc *UseCase) *int {
		return &uc.listPageSize
	})
}

// WithMaxVisiblePages option sets the number of pages which may be
// listed in a pagination window without ellipsis.
func WithMaxVisiblePages(n int) Option {
	return positiveInt("max visible pages", n, func(uc *UseCase) *int {
		return &uc.maxVisible
	})
}

// WithCompactVisiblePages is similar to WithMaxVisiblePages, but it is
// used for compact (mobile) pagination windows.
func WithCompactVisiblePages(n int) Option {
	return positiveInt("compact visible pages", n, func(uc *UseCase) *int {
		return &uc.compactVisible
	})
}

func positiveInt(name string, n int, field func(uc *UseCase) *int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("%s (%d) is not positive", name, n)
		}
		f := field(uc)
		if *f != 0 {
			return fmt.Errorf("%s is already configured", name)
		}
		*f = n
		return nil
	}
}

// WithCollationLanguage option sets the BCP 47 language tag whose
// collation rules are used by the name-asc sort key, e.g., "ru".
func WithCollationLanguage(lang string) Option {
	return func(uc *UseCase) error {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("parsing language %q: %w", lang, err)
		}
		if uc.langConfigured {
			return errors.New("collation language is already configured")
		}
		uc.lang, uc.langConfigured = tag, true
		return nil
	}
}

// WithPreferencesTTL option sets how long the catalog preferences of an
// idle session are kept.
func WithPreferencesTTL(ttl time.Duration) Option {
	return func(uc *UseCase) error {
		if d := int64(ttl); d <= 0 {
			return fmt.Errorf("ttl (%d) is not positive", d)
		}
		if uc.preferencesTTL != 0 {
			return errors.New("ttl is already configured")
		}
		uc.preferencesTTL = ttl
		return nil
	}
}
