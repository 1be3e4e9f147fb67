// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides wrappers around interaction handlers.

WithLogging logs start, completion and failure of every interaction
with the operation name and user id. WithRecovery turns a panic into a
returned error, isolating each interaction: a fault triggered by one
participant's input must never affect another participant's session.

	h := middleware.WithLogging("start", middleware.WithRecovery("start", next))
*/
package middleware
