// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx is a database transaction with the READ-COMMITTED isolation
// level (the postgres default). It must not be used concurrently.
type Tx interface {
	Queryer

	// IsTx keeps a Conn from satisfying the Tx interface.
	IsTx()
}
