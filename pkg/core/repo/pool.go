// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// ConnHandler receives a connection which is borrowed from a Pool.
// The connection must not be used after the handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool lends database connections to the db-backed inventory, the
// db-backed key/value store, and the database initialization use case.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}
