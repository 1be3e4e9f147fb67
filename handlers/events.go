// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadEvent marks a callback payload that does not decode to any
// known event. Stale and tampered buttons both land here.
var ErrBadEvent = errors.New("malformed callback payload")

type EventKind int

const (
	EventPredict EventKind = iota
	EventWish
	EventBack
	EventRevote
	EventShowVotes
	EventAdminCategory
	EventAdminWinner
	EventAdminBack
	EventAdminDone
)

// Event is a decoded button press. Payload strings are parsed exactly
// once, here; handlers only ever see typed events.
type Event struct {
	Kind          EventKind
	CategoryIndex int    // Predict, Wish, Back
	OptionIndex   int    // Predict, Wish, AdminWinner
	CategoryID    string // AdminCategory, AdminWinner
}

// Wire prefixes. Category ids may themselves contain underscores, so
// admin payloads are split from the right.
const (
	dataPredict    = "predict_"
	dataWish       = "wish_"
	dataBackPrefix = "back_"
	dataRevote     = "revote"
	dataShowVotes  = "showvotes"
	dataAdminCat   = "acat_"
	dataAdminWin   = "awin_"
	dataAdminBack  = "aback"
	dataAdminDone  = "adone"
)

// ParseCallback decodes a raw callback payload into an Event.
func ParseCallback(data string) (Event, error) {
	switch data {
	case dataRevote:
		return Event{Kind: EventRevote}, nil
	case dataShowVotes:
		return Event{Kind: EventShowVotes}, nil
	case dataAdminBack:
		return Event{Kind: EventAdminBack}, nil
	case dataAdminDone:
		return Event{Kind: EventAdminDone}, nil
	}

	switch {
	case strings.HasPrefix(data, dataPredict):
		idx, opt, err := parseIndexPair(data[len(dataPredict):])
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventPredict, CategoryIndex: idx, OptionIndex: opt}, nil

	case strings.HasPrefix(data, dataWish):
		idx, opt, err := parseIndexPair(data[len(dataWish):])
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventWish, CategoryIndex: idx, OptionIndex: opt}, nil

	case strings.HasPrefix(data, dataBackPrefix):
		// back_predict_<idx> or back_wish_<idx>; both step back the
		// same way, so the mode tag is only checked, not kept.
		rest := data[len(dataBackPrefix):]
		var idxStr string
		switch {
		case strings.HasPrefix(rest, dataPredict):
			idxStr = rest[len(dataPredict):]
		case strings.HasPrefix(rest, dataWish):
			idxStr = rest[len(dataWish):]
		default:
			return Event{}, ErrBadEvent
		}
		idx, err := parseIndex(idxStr)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventBack, CategoryIndex: idx}, nil

	case strings.HasPrefix(data, dataAdminCat):
		id := data[len(dataAdminCat):]
		if id == "" {
			return Event{}, ErrBadEvent
		}
		return Event{Kind: EventAdminCategory, CategoryID: id}, nil

	case strings.HasPrefix(data, dataAdminWin):
		rest := data[len(dataAdminWin):]
		cut := strings.LastIndex(rest, "_")
		if cut <= 0 {
			return Event{}, ErrBadEvent
		}
		opt, err := parseIndex(rest[cut+1:])
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventAdminWinner, CategoryID: rest[:cut], OptionIndex: opt}, nil
	}

	return Event{}, ErrBadEvent
}

func parseIndexPair(s string) (int, int, error) {
	cut := strings.IndexByte(s, '_')
	if cut <= 0 {
		return 0, 0, ErrBadEvent
	}
	idx, err := parseIndex(s[:cut])
	if err != nil {
		return 0, 0, err
	}
	opt, err := parseIndex(s[cut+1:])
	if err != nil {
		return 0, 0, err
	}
	return idx, opt, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrBadEvent
	}
	return n, nil
}

// Payload builders, the inverse of ParseCallback.

func predictData(idx, opt int) string { return fmt.Sprintf("%s%d_%d", dataPredict, idx, opt) }
func wishData(idx, opt int) string    { return fmt.Sprintf("%s%d_%d", dataWish, idx, opt) }

func backData(mode string, idx int) string {
	return fmt.Sprintf("%s%s%d", dataBackPrefix, mode, idx)
}

func adminCatData(id string) string { return dataAdminCat + id }

func adminWinData(id string, opt int) string {
	return fmt.Sprintf("%s%s_%d", dataAdminWin, id, opt)
}
