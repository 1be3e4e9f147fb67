// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Logical store names used by the persistence backend.
const (
	StoreVotes   = "votes"
	StoreResults = "results"
	StoreConfig  = "config"
)

// Domain types

// Ballot is one participant's full set of answers. Partial answers never
// reach storage; a ballot is written only on terminal commit, with
// Completed set.
type Ballot struct {
	Name        string            `json:"name"`
	Username    string            `json:"username"`
	Predictions map[string]string `json:"predictions"`
	Wishes      map[string]string `json:"wishes"`
	Completed   bool              `json:"completed"`
}

// VoteDoc is the vote store document: participant id -> ballot.
type VoteDoc map[string]Ballot

// ResultDoc is the result store document: category id -> winning option.
// Absence of a key means "not yet graded".
type ResultDoc map[string]string

// BotConfig is the config store document. An empty DeadlineUTC means
// "use the compiled-in default deadline".
type BotConfig struct {
	DeadlineUTC string `json:"deadline_utc,omitempty"`
}

// User identifies the participant behind one interaction.
type User struct {
	ID       int64
	Name     string
	Username string
}

// Report types

// Standing is one leaderboard row.
type Standing struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Correct     int    `json:"correct"`
	WishMatches int    `json:"wish_matches"`
	Graded      int    `json:"graded"`
	Percent     int    `json:"percent"`
}

// OptionCount is one option's pick count within a category.
type OptionCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

// CategoryStats aggregates the most-picked options for one category.
type CategoryStats struct {
	CategoryID     string        `json:"category_id"`
	Title          string        `json:"title"`
	TopPredictions []OptionCount `json:"top_predictions"`
	TopWishes      []OptionCount `json:"top_wishes"`
}

// BotCommand is one entry in the client's command menu.
type BotCommand struct {
	Name        string
	Description string
}

// View types

// Button is one inline keyboard button. Data is the callback payload
// decoded by handlers.ParseCallback on the way back in.
type Button struct {
	Label string
	Data  string
}

// Keyboard is an inline keyboard: rows of buttons.
type Keyboard struct {
	Rows [][]Button
}

// Reply is what a handler wants said back to the participant. Edit asks
// the transport to rewrite the message that carried the pressed button
// instead of sending a new one.
type Reply struct {
	Text     string
	Keyboard *Keyboard
	Edit     bool
}
