// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationuc provides the database initialization use case.
// The InitDBUseCase creates the vehicles and key/value tables (or adds
// their missing columns) and optionally fills the vehicles table with
// a seed catalog, so a postgres inventory or storage can be used.
package migrationuc
