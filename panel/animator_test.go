package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationRunInterpolation(t *testing.T) {
	tests := []struct {
		name     string
		dir      direction
		start    float64
		fraction float64
		want     float64
	}{
		{name: "open from closed start", dir: opening, start: 0, fraction: 0, want: 0},
		{name: "open from closed half", dir: opening, start: 0, fraction: 0.5, want: 0.5},
		{name: "open from quarter half", dir: opening, start: 0.25, fraction: 0.5, want: 0.625},
		{name: "open end", dir: opening, start: 0.25, fraction: 1, want: 1},
		{name: "close from open half", dir: closing, start: 1, fraction: 0.5, want: 0.5},
		{name: "close from half quarter", dir: closing, start: 0.5, fraction: 0.25, want: 0.375},
		{name: "close end", dir: closing, start: 0.8, fraction: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &animationRun{startProgress: tt.start, dir: tt.dir}
			assert.InDelta(t, tt.want, r.progressAt(tt.fraction), 1e-12)
		})
	}
}

func TestAnimationRunFractionClamps(t *testing.T) {
	r := &animationRun{elapsedTicks: 15}
	assert.Equal(t, 1.0, r.fraction(10))
	r.elapsedTicks = 5
	assert.Equal(t, 0.5, r.fraction(10))
	assert.Equal(t, 1.0, r.fraction(0))
}

func TestAnimatorTicksUntilFractionReachesOne(t *testing.T) {
	a := newAnimator("p", 4*time.Millisecond, time.Millisecond)
	run, cmd := a.start(opening, 0)
	require.NotNil(t, cmd)

	var got []float64
	for {
		p, more, ok := a.tick(run.id)
		require.True(t, ok)
		got = append(got, p)
		if !more {
			break
		}
	}
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, got)

	dir, ok := a.finish(run.id)
	assert.True(t, ok)
	assert.Equal(t, opening, dir)
	assert.False(t, a.animating())
}

func TestAnimatorIgnoresSupersededRun(t *testing.T) {
	a := newAnimator("p", 4*time.Millisecond, time.Millisecond)
	first, _ := a.start(opening, 0)
	a.tick(first.id)
	second, _ := a.start(closing, 0.25)

	_, _, ok := a.tick(first.id)
	assert.False(t, ok)
	_, ok = a.finish(first.id)
	assert.False(t, ok)

	dir, heading := a.heading()
	assert.True(t, heading)
	assert.Equal(t, closing, dir)

	p, _, ok := a.tick(second.id)
	assert.True(t, ok)
	assert.InDelta(t, 0.1875, p, 1e-12)
}

func TestAnimatorStartClampsProgress(t *testing.T) {
	a := newAnimator("p", time.Millisecond, time.Millisecond)
	run, _ := a.start(closing, 1.7)
	assert.Equal(t, 1.0, run.startProgress)
}
