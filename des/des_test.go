package des_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbstools/hbstools/des"
)

func TestNew_InvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		params des.Params
	}{
		{"negative alpha", des.Params{Alpha: -0.1, Beta: 0.1, M: 5, Sleep: 0}},
		{"negative beta", des.Params{Alpha: 0.1, Beta: -0.1, M: 5, Sleep: 0}},
		{"zero m", des.Params{Alpha: 0.1, Beta: 0.1, M: 0, Sleep: 0}},
		{"negative sleep", des.Params{Alpha: 0.1, Beta: 0.1, M: 5, Sleep: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := des.New(tc.params)
			assert.ErrorIs(t, err, des.ErrInvalidParameter)
		})
	}
}

func TestStep_WarmUpThenSteadyState(t *testing.T) {
	d, err := des.New(des.Params{Alpha: 0.1, Beta: 0.1, M: 3, Sleep: 2})
	require.NoError(t, err)

	// m collect steps: never ready.
	for i := 0; i < 3; i++ {
		ready, _, err := d.Step(10)
		require.NoError(t, err)
		assert.False(t, ready)
	}
	// sleep update steps: never ready.
	for i := 0; i < 2; i++ {
		ready, _, err := d.Step(10)
		require.NoError(t, err)
		assert.False(t, ready)
	}
	// steady state: ready with a positive forecast.
	ready, lambda, err := d.Step(10)
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Greater(t, lambda, 0.0)
}

func TestStep_ZeroSleepEntersTestImmediatelyAfterCollect(t *testing.T) {
	d, err := des.New(des.Params{Alpha: 0.2, Beta: 0.0, M: 2, Sleep: 0})
	require.NoError(t, err)

	// m collect steps: never ready; the last one switches straight to test.
	for i := 0; i < 2; i++ {
		ready, _, err := d.Step(5)
		require.NoError(t, err)
		assert.False(t, ready)
	}

	ready, lambda, err := d.Step(5)
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Greater(t, lambda, 0.0)
}

func TestStep_CustomInitialLevel(t *testing.T) {
	s0 := 50.0
	b0 := 0.0
	d, err := des.New(des.Params{Alpha: 0.1, Beta: 0.1, M: 2, Sleep: 0, S0: &s0, B0: &b0})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, _, err := d.Step(50)
		require.NoError(t, err)
	}
	ready, lambda, err := d.Step(50)
	require.NoError(t, err)
	require.True(t, ready)
	assert.InDelta(t, 50.0, lambda, 5.0)
}
