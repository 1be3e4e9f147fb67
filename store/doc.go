// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the flat document stores behind the bot.

# Contract

Three logical stores exist: votes, results and config. Each is loaded
and saved as a whole document:

	votes, err := store.LoadVotes(backend)
	votes[userID] = ballot
	err = store.SaveVotes(backend, votes)

A store that has never been written loads as an empty document. A save
is a full overwrite - two concurrent load-modify-save cycles race, and
the last writer wins. With a handful of voters and a single admin this
is the accepted tradeoff; nothing here should be mistaken for a
transactional database.

# Backends

The STORE_BACKEND setting selects one of three implementations:

  - json (default): one JSON file per store, human-readable and
    trivially restorable
  - sqlite: one row per store in a local database file (modernc.org/sqlite,
    no cgo)
  - postgres: the same single-row layout on a shared server (lib/pq)

All three keep identical semantics; the SQL backends exist for hosts
where a managed database is easier to persist than a volume.

Malformed persisted content is an error with no recovery path. The
operator restores the file (or row) from a backup or deletes it.
*/
package store
