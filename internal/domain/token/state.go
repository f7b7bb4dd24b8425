package token

import "sync"

// Phase mirrors the submit control's lifecycle: idle -> loading -> succeeded|failed.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// State is the workflow status holder. Exactly one submission may be in
// flight at a time: Begin is the compare-and-set guard that stands in for
// the disabled submit button on the form.
type State struct {
	mu          sync.Mutex
	phase       Phase
	mintAddress string
	errMsg      string
}

func NewState() *State {
	return &State{phase: PhaseIdle}
}

// Begin moves the state to Loading and clears any previous result or error.
// It returns false when a submission is already in flight.
func (s *State) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseLoading {
		return false
	}
	s.phase = PhaseLoading
	s.mintAddress = ""
	s.errMsg = ""
	return true
}

// Succeed records the new mint's base58 address and clears Loading.
func (s *State) Succeed(mintAddress string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseSucceeded
	s.mintAddress = mintAddress
	s.errMsg = ""
}

// Fail records a human-readable message and clears Loading.
func (s *State) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseFailed
	s.mintAddress = ""
	s.errMsg = msg
}

// FailPrecondition records a validation failure from a request that never
// reached the chain. While a submission is Loading its outcome owns the
// state, so the message is dropped instead of clobbering the guard.
func (s *State) FailPrecondition(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseLoading {
		return
	}
	s.phase = PhaseFailed
	s.mintAddress = ""
	s.errMsg = msg
}

// Snapshot is a point-in-time copy of the state for rendering.
type Snapshot struct {
	Phase       Phase  `json:"phase"`
	Loading     bool   `json:"loading"`
	MintAddress string `json:"mintAddress,omitempty"`
	Error       string `json:"error,omitempty"`
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:       s.phase,
		Loading:     s.phase == PhaseLoading,
		MintAddress: s.mintAddress,
		Error:       s.errMsg,
	}
}
