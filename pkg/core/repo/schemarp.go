// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Schema manages the database tables of the clients, parkings, and
// their sessions.
type Schema interface {
	// Create creates the missing tables, indices, and constraints.
	// Existing tables and their rows are left intact.
	Create(ctx context.Context, tx Tx) error
}
