// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Picture Perfect bot.

Picture Perfect is a Telegram bot that collects award-ceremony
predictions: for each category every participant records who they
think will win and who they want to win, then gets scored against the
real outcomes once an admin enters them.

# Starting the Bot

The bot requires a Telegram token, via environment or flag:

	BOT_TOKEN=123:abc go run .

Or with flags:

	go run . -token 123:abc -b sqlite -d bot.db

# Configuration

Required settings:

  - BOT_TOKEN (-token): Telegram bot API token

Optional settings:

  - STORE_BACKEND (-b): json (default), sqlite or postgres
  - DATA_FILE / RESULTS_FILE / CONFIG_FILE: json store paths
  - DATABASE_URL (-d): connection string for SQL backends
  - ADMIN_IDS (-admins): user ids allowed to enter results
  - CATALOG_FILE (-catalog): YAML catalog overriding the compiled-in
    ceremony

# Architecture

The bot uses a handler-based architecture with dependency injection:

  - handlers: voting wizard, results editor, reports, scoring
  - router: command and callback-event dispatch
  - middleware: interaction logging and panic recovery
  - models: domain, catalog and view types
  - store: flat document stores (json file, sqlite or postgres)
  - db: schema for the SQL backends
  - deadline: submission cutoff policy
  - auth: admin allowlist
  - telegram: Bot API transport
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
