// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package deadline decides whether the bot still accepts predictions.

The effective deadline is the admin-set override from the config store
when present, else the compiled-in default. All comparisons happen in
UTC; display converts to a fixed MSK offset.

	dl, err := deadline.Effective(cfg)
	open, info := deadline.Status(dl, time.Now())

Status is pure: callers pass now explicitly, so the boundary rule
(now == deadline is closed) is directly testable. Checks are evaluated
lazily per interaction; there is no timer that fires at the deadline.
*/
package deadline
