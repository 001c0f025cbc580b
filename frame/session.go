package frame

import (
	"fmt"
	"sync"

	"github.com/Neumenon/ttree/ttree"
)

// Session tracks per-SID cursor state across a TF1 stream: the last
// sequence number seen, the last one acknowledged, and the state hash
// of the most recently applied document, so a receiver can detect
// sequence gaps and confirm a frame's Base hash before trusting it.
type Session struct {
	mu    sync.RWMutex
	sids  map[uint64]*SIDState
}

// SIDState holds cursor state for a single stream ID.
type SIDState struct {
	SID       uint64
	LastSeq   uint64
	LastAcked uint64
	StateHash [32]byte
	HasState  bool
	Doc       *ttree.Tree
	Final     bool
}

// NewSession creates an empty session tracker.
func NewSession() *Session {
	return &Session{sids: make(map[uint64]*SIDState)}
}

// Get returns the state for a SID, creating it if this is the first
// frame seen for that SID.
func (s *Session) Get(sid uint64) *SIDState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sids[sid]
	if !ok {
		state = &SIDState{SID: sid}
		s.sids[sid] = state
	}
	return state
}

// GetReadOnly returns the state for a SID without creating it.
func (s *Session) GetReadOnly(sid uint64) *SIDState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sids[sid]
}

// Delete drops tracked state for a SID.
func (s *Session) Delete(sid uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sids, sid)
}

// AllSIDs returns every SID currently tracked, in no particular order.
func (s *Session) AllSIDs() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sids := make([]uint64, 0, len(s.sids))
	for sid := range s.sids {
		sids = append(sids, sid)
	}
	return sids
}

// Track validates f's sequence number and, for a Doc frame carrying a
// Base hash, its base against the session's current state hash for
// that SID. On success it advances the cursor and returns nil.
func (s *Session) Track(f *Frame) error {
	state := s.Get(f.SID)

	if f.Seq != 0 && f.Seq <= state.LastSeq {
		return fmt.Errorf("frame: sequence not monotonic for sid %d: got %d, last was %d", f.SID, f.Seq, state.LastSeq)
	}
	if state.LastSeq > 0 && f.Seq != state.LastSeq+1 {
		return fmt.Errorf("frame: sequence gap for sid %d: expected %d, got %d", f.SID, state.LastSeq+1, f.Seq)
	}
	if f.HasBase() {
		if !state.HasState {
			return fmt.Errorf("frame: cannot verify base for sid %d: no prior state hash", f.SID)
		}
		if !VerifyBase(state.StateHash, *f.Base) {
			return &BaseMismatchError{Expected: *f.Base, Got: state.StateHash}
		}
	}

	state.LastSeq = f.Seq
	if f.IsFinal() {
		state.Final = true
	}
	return nil
}

// SetDoc records value as the SID's current document and updates its
// state hash. Call this after applying a decoded Doc frame.
func (s *Session) SetDoc(sid uint64, value *ttree.Tree) error {
	hash, err := StateHash(value)
	if err != nil {
		return err
	}
	state := s.Get(sid)
	state.Doc = value
	state.StateHash = hash
	state.HasState = true
	return nil
}

// Ack records that seq has been acknowledged for sid.
func (s *Session) Ack(sid, seq uint64) {
	state := s.Get(sid)
	if seq > state.LastAcked {
		state.LastAcked = seq
	}
}

// PendingAcks returns sequence numbers seen but not yet acknowledged
// for sid, oldest first.
func (s *Session) PendingAcks(sid uint64) []uint64 {
	state := s.GetReadOnly(sid)
	if state == nil || state.LastSeq <= state.LastAcked {
		return nil
	}
	pending := make([]uint64, 0, state.LastSeq-state.LastAcked)
	for seq := state.LastAcked + 1; seq <= state.LastSeq; seq++ {
		pending = append(pending, seq)
	}
	return pending
}

// NeedsResync reports whether sid has no confirmed state, either
// because no frame has been seen or because it has not been re-based
// since. A receiver in this state cannot verify future patch bases.
func (s *Session) NeedsResync(sid uint64) bool {
	state := s.GetReadOnly(sid)
	return state == nil || !state.HasState
}
