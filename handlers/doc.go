// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the interaction handlers for the bot.

# Handler Types

Each handler is a struct with store, catalog and session dependencies:

  - VoteHandler: the two-phase voting wizard (prediction + wish per
    category), revote and cancel
  - AdminHandler: the results editor and the deadline command
  - ReportHandler: my_votes, leaderboard and stats views

Handlers are created via constructor functions:

	sessions := handlers.NewSessions()
	vote := handlers.NewVoteHandler(backend, catalog, sessions)

They consume models.User plus a decoded Event and return []models.Reply;
the transport renders the replies. Handlers never see raw callback
payload strings.

# Events

Inline-button payloads decode exactly once, at the dispatch boundary:

	ev, err := handlers.ParseCallback(data)

A payload that does not decode, or that indexes outside the current
category's options, produces an "invalid selection" reply - stale and
tampered buttons must never crash an interaction or disturb another
participant's session.

# Wizard State

Session state (current category index, accumulated answers) lives in
the Sessions store, keyed by participant id, and is destroyed on
commit or cancel. Storage only ever sees completed ballots.

# Scoring

scoring.go holds the pure scoring functions:

	standings := handlers.ComputeStandings(results, votes)

Option text is compared trimmed and case-insensitive. Ranking is
deterministic: correct descending, participant id ascending.
*/
package handlers
