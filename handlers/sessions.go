// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "sync"

// voteSession is one participant's in-progress run through the wizard.
// It holds everything the wizard has collected so far; nothing here is
// persisted until the terminal commit, so an abandoned session leaves
// no trace in storage.
type voteSession struct {
	Index       int
	Predictions map[string]string
	Wishes      map[string]string
}

// adminSession is an in-progress results-editing conversation.
// AwaitingWinner holds the category being graded, or "" while the
// category list is showing.
type adminSession struct {
	AwaitingWinner string
}

// Sessions owns all ephemeral conversation state, keyed by participant
// id. Creation and destruction points are explicit: wizards create on
// entry and destroy on commit or cancel. The update loop delivers
// interactions sequentially; the mutex only keeps the maps safe should
// a transport ever deliver concurrently.
type Sessions struct {
	mu    sync.Mutex
	votes map[int64]*voteSession
	admin map[int64]*adminSession
}

func NewSessions() *Sessions {
	return &Sessions{
		votes: make(map[int64]*voteSession),
		admin: make(map[int64]*adminSession),
	}
}

// StartVote replaces any prior session with a fresh one at category 0.
func (s *Sessions) StartVote(id int64) *voteSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &voteSession{
		Predictions: make(map[string]string),
		Wishes:      make(map[string]string),
	}
	s.votes[id] = sess
	return sess
}

func (s *Sessions) Vote(id int64) (*voteSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.votes[id]
	return sess, ok
}

func (s *Sessions) EndVote(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.votes, id)
}

func (s *Sessions) StartAdmin(id int64) *adminSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &adminSession{}
	s.admin[id] = sess
	return sess
}

func (s *Sessions) Admin(id int64) (*adminSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.admin[id]
	return sess, ok
}

func (s *Sessions) EndAdmin(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.admin, id)
}
