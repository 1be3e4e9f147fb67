// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing for the bot.

Configuration comes from CLI flags with environment-variable fallback.
The bot token is the only required setting:

	BOT_TOKEN=123:abc go run .

Or with flags:

	go run . -token 123:abc -b sqlite -d bot.db

# Settings

Required:

  - BOT_TOKEN (-token): Telegram bot API token

Optional:

  - STORE_BACKEND (-b): json (default), sqlite or postgres
  - DATA_FILE (-votes), RESULTS_FILE (-results), CONFIG_FILE (-config):
    store paths for the json backend
  - DATABASE_URL (-d): connection string for the sqlite/postgres backends
  - ADMIN_IDS (-admins): comma-separated user ids allowed to enter
    results; empty means no restriction
  - CATALOG_FILE (-catalog): YAML category catalog overriding the
    compiled-in ceremony
*/
package cliparse
