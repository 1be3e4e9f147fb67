// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"fmt"
	"strconv"
	"strings"
)

// AdminSet holds the participant ids allowed on admin surfaces.
type AdminSet map[int64]struct{}

// ParseAdminSet parses a comma-separated id list. Blank entries are
// skipped; anything else non-numeric is an error so a typo in
// ADMIN_IDS fails at startup instead of silently widening access.
func ParseAdminSet(raw string) (AdminSet, error) {
	set := AdminSet{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", part, err)
		}
		set[id] = struct{}{}
	}
	return set, nil
}

// Allows reports whether the user may use admin surfaces. An empty set
// means no restriction is configured: deployments must set ADMIN_IDS
// to actually lock the editor down.
func (s AdminSet) Allows(id int64) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[id]
	return ok
}
