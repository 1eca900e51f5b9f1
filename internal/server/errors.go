// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package server

import "errors"

var (
	errNoHTTPAddress = errors.New("no http address configured")
)
