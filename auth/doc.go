// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides access control for admin surfaces.

Admin access is a plain id allowlist parsed from configuration:

	admins, err := auth.ParseAdminSet(os.Getenv("ADMIN_IDS"))
	if admins.Allows(userID) { ... }

An empty allowlist allows everyone. That fallback keeps a fresh dev
deployment usable without configuration, but production deployments
must set ADMIN_IDS or anyone can enter ceremony results.
*/
package auth
