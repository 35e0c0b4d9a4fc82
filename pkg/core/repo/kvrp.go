// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// KVConnQueryer runs the key/value queries outside of a transaction.
type KVConnQueryer interface {
	KVQueryer
}

// KVTxQueryer runs the key/value queries in a transaction and may also
// create the entries table.
type KVTxQueryer interface {
	KVQueryer
	Migrate(ctx context.Context) error
}

// KVQueryer has the same semantics as the KVStore and additionally
// counts the stored entries.
type KVQueryer interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Count(ctx context.Context) (int64, error)
}

// KV is the key/value entries repository which backs the dbkv store.
type KV interface {
	Conn(Conn) KVConnQueryer
	Tx(Tx) KVTxQueryer
}
