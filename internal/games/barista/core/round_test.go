package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-barista/internal/games/barista/core"
)

// sortedRound starts a round whose roster is [RR][..]: no scrambling, so
// tests control every pour.
func sortedRound(t *testing.T) *core.Round {
	t.Helper()
	p := core.GenParams{
		Capacity:   2,
		Iterations: 0,
		Tiers: map[core.Difficulty]core.Tier{
			core.Easy: {Colors: []core.Liquid{core.LiquidRed}, EmptyCups: 1},
		},
	}
	r := core.NewRound(core.NewGenerator(p, nil))
	require.NoError(t, r.Start(core.Easy))
	return r
}

func TestRoundStartsInWelcome(t *testing.T) {
	r := core.NewRound(core.NewGenerator(core.DefaultGenParams(), core.NewRNG(1)))
	assert.Equal(t, core.PhaseWelcome, r.Phase())
	assert.Empty(t, r.Cups())

	out, err := r.Pick(0)
	assert.NoError(t, err)
	assert.Equal(t, core.OutcomeIgnored, out)

	require.NoError(t, r.Start(core.Medium))
	assert.Equal(t, core.PhasePlaying, r.Phase())
	assert.Len(t, r.Cups(), 8)
	assert.Equal(t, core.Medium, r.Difficulty())
}

func TestRoundPourAndWin(t *testing.T) {
	r := sortedRound(t)

	out, err := r.Pick(0)
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeSelected, out)
	idx, ok := r.Pending()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	out, err = r.Pick(1)
	require.NoError(t, err)
	assert.Equal(t, core.OutcomePoured, out)
	_, ok = r.Pending()
	assert.False(t, ok)
	assert.Equal(t, 1, r.Moves())
	assert.Equal(t, "[R.] [R.]", r.Cups().String())

	_, _ = r.Pick(1)
	out, err = r.Pick(0)
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeSolved, out)
	assert.Equal(t, core.PhaseFinished, r.Phase())
	assert.Equal(t, core.WinMessage, r.Feedback())
	assert.Equal(t, 2, r.Moves())

	out, _ = r.Pick(0)
	assert.Equal(t, core.OutcomeIgnored, out, "picks are ignored once finished")
}

func TestRoundRejectedPour(t *testing.T) {
	r := sortedRound(t)

	_, _ = r.Pick(0)
	out, err := r.Pick(0)
	assert.Equal(t, core.OutcomeRejected, out)
	assert.ErrorIs(t, err, core.ErrSelfPour)
	assert.Equal(t, "Cannot pour a cup into itself", r.Feedback())
	_, ok := r.Pending()
	assert.False(t, ok)
	assert.Equal(t, "[RR] [..]", r.Cups().String())
	assert.Equal(t, 0, r.Moves())

	_, _ = r.Pick(1)
	_, err = r.Pick(0)
	assert.ErrorIs(t, err, core.ErrDestinationFull)

	// a new selection clears the message
	_, _ = r.Pick(0)
	assert.Empty(t, r.Feedback())
}

func TestRoundOutOfRangeResetsSelection(t *testing.T) {
	r := sortedRound(t)

	_, _ = r.Pick(0)
	out, err := r.Pick(7)
	assert.NoError(t, err)
	assert.Equal(t, core.OutcomeIgnored, out)
	_, ok := r.Pending()
	assert.False(t, ok)
	assert.Empty(t, r.Feedback())

	out, _ = r.Pick(-1)
	assert.Equal(t, core.OutcomeIgnored, out)
}

func TestRoundOutOfRangeClearsFeedback(t *testing.T) {
	r := sortedRound(t)

	_, _ = r.Pick(0)
	out, err := r.Pick(0)
	require.ErrorIs(t, err, core.ErrSelfPour)
	require.Equal(t, core.OutcomeRejected, out)
	require.Equal(t, "Cannot pour a cup into itself", r.Feedback())

	out, err = r.Pick(7)
	assert.NoError(t, err)
	assert.Equal(t, core.OutcomeIgnored, out)
	assert.Empty(t, r.Feedback())
	_, ok := r.Pending()
	assert.False(t, ok)
}

func TestRoundNeverIndexesOutside(t *testing.T) {
	r := core.NewRound(core.NewGenerator(core.DefaultGenParams(), core.NewRNG(5)))
	require.NoError(t, r.Start(core.Hard))

	rng := core.NewRNG(11)
	n := len(r.Cups())
	for i := 0; i < 2000; i++ {
		pick := rng.Intn(n+6) - 3
		require.NotPanics(t, func() { _, _ = r.Pick(pick) })
		if idx, ok := r.Pending(); ok {
			require.True(t, idx >= 0 && idx < n)
		}
	}
	assert.Len(t, r.Cups(), n)
}

func TestRoundCancel(t *testing.T) {
	r := sortedRound(t)

	_, _ = r.Pick(0)
	r.Cancel()
	_, ok := r.Pending()
	assert.False(t, ok)

	out, _ := r.Pick(1)
	assert.Equal(t, core.OutcomeSelected, out, "cancel returns to no selection")
}

func TestRoundRestart(t *testing.T) {
	r := sortedRound(t)
	assert.ErrorIs(t, r.Restart(), core.ErrNotPlaying)

	_, _ = r.Pick(0)
	_, _ = r.Pick(1)
	_, _ = r.Pick(1)
	_, _ = r.Pick(0)
	require.Equal(t, core.PhaseFinished, r.Phase())

	require.NoError(t, r.Restart())
	assert.Equal(t, core.PhasePlaying, r.Phase())
	assert.Equal(t, 0, r.Moves())
	assert.Empty(t, r.Feedback())
	_, ok := r.Pending()
	assert.False(t, ok)
}

func TestRoundCupsIsCopy(t *testing.T) {
	r := sortedRound(t)
	cups := r.Cups()
	cups[0] = core.EmptyCup(2)

	assert.Equal(t, "[RR] [..]", r.Cups().String())
}
