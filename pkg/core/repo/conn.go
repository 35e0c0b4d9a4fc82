// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// TxHandler receives a running transaction. Returning an error rolls
// the transaction back and returning nil commits it.
type TxHandler func(context.Context, Tx) error

// Conn is a single database connection. Its statements are committed
// one by one unless they are run in a transaction through Tx.
type Conn interface {
	Queryer
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn keeps a Tx from satisfying the Conn interface.
	IsConn()
}
