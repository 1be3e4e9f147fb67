// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the dispatch table for the bot.

Two entry points exist: Command for slash commands and Callback for
inline-button presses. Callback decodes the raw payload into a typed
event before any handler runs; handlers never re-parse strings. Every
route is wrapped with logging and panic recovery.

	d := router.New(backend, catalog, admins)
	replies, err := d.Command("start", user, nil)
	replies, err = d.Callback(user, "predict_0_3")
*/
package router
