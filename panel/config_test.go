package panel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "handler equals max", mutate: func(c *Config) { c.HandlerHeight = c.MaxHeight }},
		{name: "zero handler", mutate: func(c *Config) { c.HandlerHeight = 0 }},
		{name: "zero sensitivity", mutate: func(c *Config) { c.Sensitivity = 0 }},
		{name: "zero flick window", mutate: func(c *Config) { c.FlickWindow = 0 }},
		{name: "negative handler", mutate: func(c *Config) { c.HandlerHeight = -1 }, wantErr: true},
		{name: "max below handler", mutate: func(c *Config) { c.MaxHeight = c.HandlerHeight - 1 }, wantErr: true},
		{name: "nan max", mutate: func(c *Config) { c.MaxHeight = math.NaN() }, wantErr: true},
		{name: "infinite handler", mutate: func(c *Config) { c.HandlerHeight = math.Inf(1) }, wantErr: true},
		{name: "nan sensitivity", mutate: func(c *Config) { c.Sensitivity = math.NaN() }, wantErr: true},
		{name: "zero duration", mutate: func(c *Config) { c.AnimationDuration = 0 }, wantErr: true},
		{name: "negative tick", mutate: func(c *Config) { c.TickInterval = -time.Millisecond }, wantErr: true},
		{name: "negative flick window", mutate: func(c *Config) { c.FlickWindow = -1 }, wantErr: true},
		{name: "zero scroll settle", mutate: func(c *Config) { c.ScrollSettle = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPanicsOnInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.MaxHeight = 10
	requireConfigPanic(t, func() { New(nil, cfg) })
}

func TestSensitivityClamp(t *testing.T) {
	cfg := testConfig()
	cfg.Sensitivity = 0.5
	m := New(nil, cfg)
	assert.Zero(t, m.Config().Sensitivity)

	m.SetSensitivity(4)
	assert.Equal(t, 4.0, m.Config().Sensitivity)

	m.SetSensitivity(0.99)
	assert.Zero(t, m.Config().Sensitivity)

	m.SetSensitivity(-3)
	assert.Zero(t, m.Config().Sensitivity)

	requireConfigPanic(t, func() { m.SetSensitivity(math.NaN()) })
}

func TestSettersRejectInvalidValues(t *testing.T) {
	m := New(nil, testConfig())

	requireConfigPanic(t, func() { m.SetMaxHeight(39) })
	requireConfigPanic(t, func() { m.SetHandlerHeight(401) })
	requireConfigPanic(t, func() { m.SetHandlerHeight(-1) })
	requireConfigPanic(t, func() { m.SetAnimationDuration(0) })

	// Nothing was applied.
	assert.Equal(t, 40.0, m.Config().HandlerHeight)
	assert.Equal(t, 400.0, m.Config().MaxHeight)
	assert.Equal(t, 10*time.Millisecond, m.Config().AnimationDuration)
}

func TestHeightSettersReassertRestingHeight(t *testing.T) {
	m := New(nil, testConfig())
	rec := &recorder{}
	m.Subscribe(rec)

	m.SetHandlerHeight(50)
	assert.Equal(t, 50.0, m.Height())
	assert.Equal(t, []string{"height:50", "progress:0"}, rec.events)

	cfg := testConfig()
	cfg.Open = true
	open := New(nil, cfg)
	open.SetMaxHeight(300)
	assert.Equal(t, 300.0, open.Height())
	assert.Equal(t, 1.0, open.Progress())
	assert.True(t, open.IsOpen())
}

func TestSetAnimationDurationAppliesToAnimator(t *testing.T) {
	m := New(nil, testConfig())
	m.SetAnimationDuration(20 * time.Millisecond)
	require.NotNil(t, m.Open())
	assert.Equal(t, 20.0, m.anim.totalTicks())
}
