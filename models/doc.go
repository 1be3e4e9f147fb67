// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and view types shared across the bot.

# Domain Types

The three persisted documents mirror the logical stores:

  - VoteDoc: participant id -> Ballot (predictions, wishes, completed flag)
  - ResultDoc: category id -> winning option text
  - BotConfig: optional deadline override

Option text is canonical identity. A ballot stores the option string
itself, never an index, so scoring survives keyboard reordering as long
as option text is stable.

# Catalog

The category catalog is immutable for a voting period. DefaultCatalog
returns the compiled-in list; LoadCatalog reads an override from a YAML
file for running the bot against a different ceremony.

# View Types

Reply, Keyboard and Button describe what a handler wants rendered.
Handlers never touch the transport; the telegram package translates
these into API calls.
*/
package models
