// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema for the SQL-backed stores.

A single document table maps a logical store name to its serialized
JSON body. The schema is intentionally flat: the store contract is
whole-document load and save, so the database never sees individual
ballots or results.

	if err := db.CreateSchema(conn); err != nil {
		...
	}

CreateSchema is idempotent and runs at startup for the sqlite and
postgres backends. The json backend needs no schema.
*/
package db
