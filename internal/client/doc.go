// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the session service, the catalog caches
// and the background refresh workers into a single process lifecycle.
package client
