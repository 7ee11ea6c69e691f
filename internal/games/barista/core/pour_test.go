package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-barista/internal/games/barista/core"
)

const (
	R = core.LiquidRed
	G = core.LiquidGreen
	B = core.LiquidBlue
	P = core.LiquidPink
)

func TestPourMovesOneUnit(t *testing.T) {
	src := core.NewCup(5, R, G, B)
	dst := core.NewCup(5, G, G, B)

	newSrc, newDst, err := core.Pour(&src, &dst)
	require.NoError(t, err)

	assert.Equal(t, []core.Liquid{R, G}, newSrc.Contents())
	assert.Equal(t, []core.Liquid{G, G, B, B}, newDst.Contents())
	assert.Equal(t, 5, newSrc.Capacity())
	assert.Equal(t, 5, newDst.Capacity())

	// arguments are untouched
	assert.Equal(t, []core.Liquid{R, G, B}, src.Contents())
	assert.Equal(t, []core.Liquid{G, G, B}, dst.Contents())
}

func TestPourIntoEmpty(t *testing.T) {
	src := core.NewCup(5, R)
	dst := core.EmptyCup(5)

	newSrc, newDst, err := core.Pour(&src, &dst)
	require.NoError(t, err)
	assert.True(t, newSrc.IsEmpty())
	assert.Equal(t, []core.Liquid{R}, newDst.Contents())
}

func TestPourSelf(t *testing.T) {
	cups := []core.Cup{
		core.EmptyCup(5),
		core.NewCup(5, R, G),
		core.FullCup(5, B),
	}
	for _, c := range cups {
		_, _, err := core.Pour(&c, &c)
		assert.ErrorIs(t, err, core.ErrSelfPour, "cup %s", c)

		_, _, err = core.PourUnrestricted(&c, &c)
		assert.ErrorIs(t, err, core.ErrSelfPour, "cup %s", c)
	}
}

func TestPourDistinctEmptyCups(t *testing.T) {
	a := core.EmptyCup(5)
	b := a

	_, _, err := core.Pour(&a, &b)
	assert.ErrorIs(t, err, core.ErrSourceEmpty)
}

func TestPourErrorOrder(t *testing.T) {
	tests := []struct {
		name string
		src  core.Cup
		dst  core.Cup
		want error
	}{
		{"full destination beats empty source", core.EmptyCup(2), core.FullCup(2, R), core.ErrDestinationFull},
		{"full destination beats mismatch", core.NewCup(2, G), core.FullCup(2, R), core.ErrDestinationFull},
		{"empty source", core.EmptyCup(5), core.NewCup(5, R), core.ErrSourceEmpty},
		{"empty source into empty", core.EmptyCup(5), core.EmptyCup(5), core.ErrSourceEmpty},
		{"color mismatch", core.NewCup(5, G), core.NewCup(5, R), core.ErrColorMismatch},
		{"zero capacity destination", core.NewCup(5, R), core.EmptyCup(0), core.ErrDestinationFull},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			newSrc, newDst, err := core.Pour(&tc.src, &tc.dst)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, newSrc.Equal(tc.src), "source changed on failure")
			assert.True(t, newDst.Equal(tc.dst), "destination changed on failure")
		})
	}
}

func TestPourUnrestrictedIgnoresColor(t *testing.T) {
	src := core.NewCup(5, P)
	dst := core.NewCup(5, R, R)

	_, _, err := core.Pour(&src, &dst)
	require.ErrorIs(t, err, core.ErrColorMismatch)

	newSrc, newDst, err := core.PourUnrestricted(&src, &dst)
	require.NoError(t, err)
	assert.True(t, newSrc.IsEmpty())
	assert.Equal(t, []core.Liquid{R, R, P}, newDst.Contents())
}

func TestPourUnrestrictedKeepsOtherChecks(t *testing.T) {
	empty := core.EmptyCup(3)
	full := core.FullCup(3, G)
	other := core.EmptyCup(3)

	_, _, err := core.PourUnrestricted(&empty, &other)
	assert.ErrorIs(t, err, core.ErrSourceEmpty)

	_, _, err = core.PourUnrestricted(&other, &full)
	assert.ErrorIs(t, err, core.ErrDestinationFull)
}

func TestPourResultsDoNotAlias(t *testing.T) {
	src := core.NewCup(5, R, R)
	dst := core.NewCup(5, R)

	newSrc, newDst, err := core.Pour(&src, &dst)
	require.NoError(t, err)

	again, _, err := core.Pour(&newSrc, &newDst)
	require.NoError(t, err)

	assert.True(t, again.IsEmpty())
	assert.Equal(t, []core.Liquid{R}, newSrc.Contents())
	assert.Equal(t, []core.Liquid{R, R}, src.Contents())
}

func TestFeedbackText(t *testing.T) {
	assert.Equal(t, "", core.Feedback(nil))
	assert.Equal(t, "Cannot pour a cup into itself", core.Feedback(core.ErrSelfPour))
	assert.Equal(t, "Destination cup has no space x_x", core.Feedback(core.ErrDestinationFull))
	assert.Equal(t, "Source cup has no liquid to give", core.Feedback(core.ErrSourceEmpty))
	assert.Equal(t, "Source and destination colors do not match", core.Feedback(core.ErrColorMismatch))
}

func TestNewCupOverfillPanics(t *testing.T) {
	assert.Panics(t, func() { core.NewCup(1, R, G) })
	assert.Panics(t, func() { core.NewCup(-1) })
}

func TestCupString(t *testing.T) {
	assert.Equal(t, "[RG...]", core.NewCup(5, R, G).String())
	assert.Equal(t, "[]", core.EmptyCup(0).String())
}

func TestLiquidParse(t *testing.T) {
	for _, l := range core.AllLiquids() {
		got, ok := core.ParseLiquid(l.String())
		require.True(t, ok, "liquid %s", l)
		assert.Equal(t, l, got)
	}

	_, ok := core.ParseLiquid("mauve")
	assert.False(t, ok)
	assert.Len(t, core.AllLiquids(), int(core.LiquidCount))
}
