// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the value types and helper functions
// which are shared by the configuration settings. Optional settings
// are kept as pointers, so a missing item can be told apart from an
// item which was set to its zero value explicitly.
package settings

// Default overwrites the (*t) pointer, if it is nil, in order to
// point to a newly allocated T instance holding the v value.
// If the (*t) pointer was not nil, Default will perform no action.
func Default[T any](t **T, v T) {
	if (*t) != nil {
		return
	}
	(*t) = &v
}

// Nil2Zero is like Default, using the zero value of T.
func Nil2Zero[T any](t **T) {
	var zero T
	Default(t, zero)
}
