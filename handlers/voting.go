// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/picture-perfect/deadline"
	"github.com/danielhkuo/picture-perfect/models"
	"github.com/danielhkuo/picture-perfect/store"
)

// VoteHandler runs the two-phase voting wizard: for every category a
// prediction question, then a wish question. Answers accumulate in the
// participant's session and hit the vote store only on the terminal
// commit.
type VoteHandler struct {
	store    store.Backend
	catalog  models.Catalog
	sessions *Sessions
	now      func() time.Time
}

func NewVoteHandler(b store.Backend, catalog models.Catalog, sessions *Sessions) *VoteHandler {
	return &VoteHandler{store: b, catalog: catalog, sessions: sessions, now: time.Now}
}

// Start is the /start entry point. Branches:
//   - completed ballot, voting open: offer revise/review buttons
//   - completed ballot, voting closed: closed notice with report commands
//   - no ballot, voting closed: closed notice
//   - otherwise: intro plus the first prediction prompt
//
// Re-entry mid-session resets the session; the old prompt's buttons
// become stale and are rejected by the index check.
func (h *VoteHandler) Start(user models.User) ([]models.Reply, error) {
	dl, _, err := effectiveDeadline(h.store)
	if err != nil {
		return nil, err
	}
	open, info := deadline.Status(dl, h.now())

	votes, err := store.LoadVotes(h.store)
	if err != nil {
		return nil, err
	}
	entry := votes[userKey(user.ID)]

	if entry.Completed {
		if open {
			return []models.Reply{{
				Text: fmt.Sprintf(
					"*%s*\n\nYour predictions are already in.\nVoting closes in: *%s*\n\nYou can change your answers or review them:",
					eventHeader, info),
				Keyboard: &models.Keyboard{Rows: [][]models.Button{{
					{Label: "Change predictions", Data: dataRevote},
					{Label: "My answers", Data: dataShowVotes},
				}}},
			}}, nil
		}
		return replyText(fmt.Sprintf(
			"*%s*\n\n%s\n\n/my\\_votes — your predictions\n/leaderboard — the standings",
			eventHeader, info)), nil
	}

	if !open {
		return replyText(fmt.Sprintf(
			"*%s*\n\n%s\n\nToo late to take part this time.",
			eventHeader, info)), nil
	}

	sess := h.sessions.StartVote(user.ID)
	intro := fmt.Sprintf(
		"*%s*\n_98th ceremony · March 15, 2026_\n\n%s\n\nPredictions close in *%s*\n\nTwo questions for each of the *%d categories*:\n\n★  Who will win? — counts toward the standings\n✦  Who do you want to win? — just for fun\n\n%s\n\nHere we go →",
		eventHeader, divider, info, len(h.catalog), divider)
	return []models.Reply{{Text: intro}, h.promptPredict(sess, false)}, nil
}

// Predict handles an option press on a prediction question.
func (h *VoteHandler) Predict(user models.User, ev Event) ([]models.Reply, error) {
	sess, ok := h.sessions.Vote(user.ID)
	if !ok {
		return replyText("No voting session in progress. /start to begin."), nil
	}
	if ev.CategoryIndex != sess.Index {
		// Stale button from an earlier step; re-show where we are.
		return []models.Reply{h.currentPrompt(sess)}, nil
	}

	cat := h.catalog[sess.Index]
	chosen, ok := cat.Option(ev.OptionIndex)
	if !ok {
		return invalidSelection(), nil
	}

	sess.Predictions[cat.ID] = chosen
	return []models.Reply{h.promptWish(sess, chosen)}, nil
}

// Wish handles an option press on a wish question and advances to the
// next category, committing after the last one.
func (h *VoteHandler) Wish(user models.User, ev Event) ([]models.Reply, error) {
	sess, ok := h.sessions.Vote(user.ID)
	if !ok {
		return replyText("No voting session in progress. /start to begin."), nil
	}
	if ev.CategoryIndex != sess.Index {
		return []models.Reply{h.currentPrompt(sess)}, nil
	}

	cat := h.catalog[sess.Index]
	chosen, ok := cat.Option(ev.OptionIndex)
	if !ok {
		return invalidSelection(), nil
	}

	sess.Wishes[cat.ID] = chosen
	sess.Index++
	if sess.Index >= len(h.catalog) {
		return h.commit(user, sess)
	}
	return []models.Reply{h.promptPredict(sess, true)}, nil
}

// Back steps the wizard back one category: the current category's
// recorded prediction and wish are discarded and the previous
// category's prediction prompt is shown again. From the first
// category's wish step it falls back to that category's prediction
// prompt.
func (h *VoteHandler) Back(user models.User, ev Event) ([]models.Reply, error) {
	sess, ok := h.sessions.Vote(user.ID)
	if !ok {
		return replyText("No voting session in progress. /start to begin."), nil
	}
	if ev.CategoryIndex != sess.Index {
		return []models.Reply{h.currentPrompt(sess)}, nil
	}

	cur := h.catalog[sess.Index]
	delete(sess.Predictions, cur.ID)
	delete(sess.Wishes, cur.ID)
	if sess.Index > 0 {
		sess.Index--
	}
	return []models.Reply{h.promptPredict(sess, true)}, nil
}

// Revote restarts the wizard from scratch for a participant whose
// ballot is already committed. The commit at the end overwrites the
// old ballot wholesale.
func (h *VoteHandler) Revote(user models.User) ([]models.Reply, error) {
	dl, _, err := effectiveDeadline(h.store)
	if err != nil {
		return nil, err
	}
	if open, _ := deadline.Status(dl, h.now()); !open {
		h.sessions.EndVote(user.ID)
		return editText("Voting is already closed — predictions can no longer be changed."), nil
	}

	sess := h.sessions.StartVote(user.ID)
	return []models.Reply{h.promptPredict(sess, true)}, nil
}

// ShowVotes renders the caller's committed ballot in place.
func (h *VoteHandler) ShowVotes(user models.User) ([]models.Reply, error) {
	votes, err := store.LoadVotes(h.store)
	if err != nil {
		return nil, err
	}
	entry := votes[userKey(user.ID)]
	if !entry.Completed {
		return editText("You haven't voted yet. /start to begin."), nil
	}
	return editText("YOUR PREDICTIONS\n\n" +
		renderBallotLines(h.catalog, entry.Predictions, entry.Wishes)), nil
}

// Cancel abandons the session. Nothing was persisted, so nothing needs
// rolling back.
func (h *VoteHandler) Cancel(user models.User) ([]models.Reply, error) {
	h.sessions.EndVote(user.ID)
	return replyText("Voting cancelled. /start to begin again."), nil
}

// commit persists the finished ballot and ends the session.
func (h *VoteHandler) commit(user models.User, sess *voteSession) ([]models.Reply, error) {
	votes, err := store.LoadVotes(h.store)
	if err != nil {
		return nil, err
	}
	key := userKey(user.ID)
	isRevote := votes[key].Completed

	votes[key] = models.Ballot{
		Name:        user.Name,
		Username:    user.Username,
		Predictions: sess.Predictions,
		Wishes:      sess.Wishes,
		Completed:   true,
	}
	if err := store.SaveVotes(h.store, votes); err != nil {
		return nil, err
	}
	h.sessions.EndVote(user.ID)

	header := "PREDICTIONS RECORDED"
	if isRevote {
		header = "PREDICTIONS UPDATED"
	}
	summary := fmt.Sprintf("*%s*\n\n%s\n\n%s\n\n_Ceremony — March 15, 2026_\nAfter the winners are announced: /leaderboard",
		header,
		renderBallotLines(h.catalog, sess.Predictions, sess.Wishes),
		divider)
	return replyText(summary), nil
}

// currentPrompt re-renders the prompt matching the session's state:
// the wish question if the current category's prediction is recorded,
// else the prediction question.
func (h *VoteHandler) currentPrompt(sess *voteSession) models.Reply {
	cat := h.catalog[sess.Index]
	if chosen, ok := sess.Predictions[cat.ID]; ok {
		return h.promptWish(sess, chosen)
	}
	return h.promptPredict(sess, true)
}

func (h *VoteHandler) promptPredict(sess *voteSession, edit bool) models.Reply {
	cat := h.catalog[sess.Index]
	return models.Reply{
		Text: fmt.Sprintf("*%s*\n_%d / %d_\n\n★  Who takes the statuette?",
			strings.ToUpper(cat.Title), sess.Index+1, len(h.catalog)),
		Keyboard: h.wizardKeyboard(sess.Index, false),
		Edit:     edit,
	}
}

func (h *VoteHandler) promptWish(sess *voteSession, predicted string) models.Reply {
	cat := h.catalog[sess.Index]
	return models.Reply{
		Text: fmt.Sprintf("*%s*\n_%d / %d_\n\nYour prediction: `%s`\n\n✦  And who would you like to see win?",
			strings.ToUpper(cat.Title), sess.Index+1, len(h.catalog), predicted),
		Keyboard: h.wizardKeyboard(sess.Index, true),
		Edit:     true,
	}
}

// wizardKeyboard lists a category's options, one per row, plus a back
// row. Back is offered on every wish step and on prediction steps past
// the first category.
func (h *VoteHandler) wizardKeyboard(idx int, wish bool) *models.Keyboard {
	cat := h.catalog[idx]
	rows := make([][]models.Button, 0, len(cat.Options)+1)
	for i, opt := range cat.Options {
		data := predictData(idx, i)
		if wish {
			data = wishData(idx, i)
		}
		rows = append(rows, []models.Button{{Label: opt, Data: data}})
	}
	if wish || idx > 0 {
		mode := dataPredict
		if wish {
			mode = dataWish
		}
		rows = append(rows, []models.Button{{Label: "← Back", Data: backData(mode, idx)}})
	}
	return &models.Keyboard{Rows: rows}
}
