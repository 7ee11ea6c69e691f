package core

import "errors"

// Phase is the lifecycle stage of a round.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhasePlaying
	PhaseFinished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// WinMessage is the feedback shown once a round is solved.
const WinMessage = "You win!"

// ErrNotPlaying is returned when a round is asked to start or pour from the
// wrong phase.
var ErrNotPlaying = errors.New("round is not in progress")

// Outcome describes what a single pick did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // out of range or wrong phase
	OutcomeSelected                // source chosen, waiting for destination
	OutcomePoured                  // one unit moved
	OutcomeRejected                // pour refused, feedback set
	OutcomeSolved                  // pour finished the round
)

// Round owns the roster, selection and phase of one game. All changes go
// through its methods; readers receive copies.
type Round struct {
	gen        *Generator
	difficulty Difficulty
	phase      Phase
	cups       Roster
	pending    int
	hasPending bool
	feedback   string
	moves      int
}

// NewRound creates a round in the Welcome phase.
func NewRound(gen *Generator) *Round {
	return &Round{gen: gen, difficulty: Medium}
}

// Start generates a fresh roster for d and enters Playing.
func (r *Round) Start(d Difficulty) error {
	cups, err := r.gen.Generate(d)
	if err != nil {
		return err
	}
	r.difficulty = d
	r.cups = cups
	r.phase = PhasePlaying
	r.moves = 0
	r.clearSelection()
	r.feedback = ""
	return nil
}

// Restart begins a new round at the same difficulty. It is only valid once
// the current round is finished.
func (r *Round) Restart() error {
	if r.phase != PhaseFinished {
		return ErrNotPlaying
	}
	return r.Start(r.difficulty)
}

// Pick feeds one zero-based cup index into the selection protocol.
// The first pick selects a source, the second attempts a pour. Selection is
// cleared after every pour attempt. Picks outside the roster reset the
// selection silently. Every pick clears the previous feedback.
func (r *Round) Pick(idx int) (Outcome, error) {
	if r.phase != PhasePlaying {
		return OutcomeIgnored, nil
	}
	r.feedback = ""
	if !r.cups.InRange(idx) {
		r.clearSelection()
		return OutcomeIgnored, nil
	}
	if !r.hasPending {
		r.pending, r.hasPending = idx, true
		return OutcomeSelected, nil
	}

	from := r.pending
	r.clearSelection()

	src, dst, err := Pour(&r.cups[from], &r.cups[idx])
	if err != nil {
		r.feedback = Feedback(err)
		return OutcomeRejected, err
	}
	r.cups[from], r.cups[idx] = src, dst
	r.moves++
	r.feedback = ""

	if IsSolved(r.cups) {
		r.phase = PhaseFinished
		r.feedback = WinMessage
		return OutcomeSolved, nil
	}
	return OutcomePoured, nil
}

// Cancel drops a pending source without pouring.
func (r *Round) Cancel() {
	r.clearSelection()
	if r.phase == PhasePlaying {
		r.feedback = ""
	}
}

func (r *Round) clearSelection() {
	r.pending, r.hasPending = 0, false
}

// Cups returns a deep copy of the roster.
func (r *Round) Cups() Roster { return r.cups.Clone() }

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Pending returns the selected source index, if any.
func (r *Round) Pending() (int, bool) { return r.pending, r.hasPending }

// Feedback returns the message for the last action, or "".
func (r *Round) Feedback() string { return r.feedback }

// Moves returns the number of successful pours this round.
func (r *Round) Moves() int { return r.moves }

// Difficulty returns the tier of the current or last round.
func (r *Round) Difficulty() Difficulty { return r.difficulty }
