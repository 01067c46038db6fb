// Package sequence derives the next human-facing slip number from the last
// value known to the store. The arithmetic is trivial; the contract is about
// staleness: no reservation is held between fetching the last number and
// submitting a record, so a proposed number is valid only as of the most
// recent fetch. After any submission, successful or not, the session must
// refresh before proposing again. Collisions across independent sessions are
// an accepted gap.
package sequence

import "errors"

// ErrStale means the last fetched value was consumed by a submission and a
// fresh fetch is required before proposing another number.
var ErrStale = errors.New("slip sequence is stale, refresh required")

// Next returns the slip number that follows lastKnown.
func Next(lastKnown int64) int64 {
	return lastKnown + 1
}

// Sequencer tracks one session's view of the slip sequence.
// It is not safe for concurrent use.
type Sequencer struct {
	last  int64
	stale bool
}

// NewSequencer starts a session with no fetched value; Refresh must be called
// before the first Propose.
func NewSequencer() *Sequencer {
	return &Sequencer{stale: true}
}

// Refresh records a freshly fetched last slip number and clears staleness.
func (s *Sequencer) Refresh(lastKnown int64) {
	s.last = lastKnown
	s.stale = false
}

// Propose returns the provisional next slip number. It fails with ErrStale
// when the session has submitted since the last Refresh.
func (s *Sequencer) Propose() (int64, error) {
	if s.stale {
		return 0, ErrStale
	}
	return Next(s.last), nil
}

// Invalidate marks the session stale. Call it after every submission attempt,
// whether it succeeded or failed, so a later Propose cannot reuse the value.
func (s *Sequencer) Invalidate() {
	s.stale = true
}
