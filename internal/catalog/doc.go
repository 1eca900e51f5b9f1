// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

// Package catalog holds the client's per-collection record caches and the
// derived-view computation the UI renders from.
//
// A [Cache] is the single source of truth for what the client currently
// believes a collection contains. It is mutated only through CRUD operations
// that round-trip to the server first: a record enters the cache only after
// a create succeeds, is replaced only with the server's returned
// representation after an update, and is removed only after a confirmed
// delete. [View] projects a cache snapshot through a [FilterState] into the
// ordered sequence of records a list screen shows.
package catalog
