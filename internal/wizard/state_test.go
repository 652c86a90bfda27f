package wizard

import (
	"errors"
	"testing"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atBagTagScanned returns a state ready for the dimensions step.
func atBagTagScanned(t *testing.T) State {
	t.Helper()
	s, err := State{}.CaptureBoardingPass("BP123")
	require.NoError(t, err)
	s, err = s.CaptureBagTag("TAG456")
	require.NoError(t, err)
	return s
}

func TestState_HappyPath(t *testing.T) {
	s0 := State{}
	s1, err := s0.CaptureBoardingPass("BP123")
	require.NoError(t, err)
	s2, err := s1.CaptureBagTag("TAG456")
	require.NoError(t, err)
	s3, err := s2.CaptureDimensions("50", "30", "15")
	require.NoError(t, err)

	want := State{
		Step:         StepDimensionsScanned,
		BoardingPass: "BP123",
		BagTag:       "TAG456",
		Dimensions:   model.Dimensions{Length: 50, Width: 30, Height: 15},
	}
	if diff := cmp.Diff(want, s3); diff != "" {
		t.Errorf("final state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, model.DecisionApproved, s3.Decision())

	// Earlier values are untouched by later transitions.
	assert.Equal(t, State{}, s0)
	assert.Equal(t, StepBoardingPassScanned, s1.Step)
	assert.Empty(t, s1.BagTag)
	assert.Equal(t, StepBagTagScanned, s2.Step)
	assert.Equal(t, model.Decision(""), s2.Decision())
}

func TestState_EmptyCodesKeepStep(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		s, err := State{}.CaptureBoardingPass(raw)
		require.Error(t, err)
		assert.Equal(t, State{}, s, "boarding pass %q", raw)

		s1, err := State{}.CaptureBoardingPass("BP1")
		require.NoError(t, err)
		s2, err := s1.CaptureBagTag(raw)
		require.Error(t, err)
		assert.Equal(t, s1, s2, "bag tag %q", raw)
	}
}

func TestState_CodesAreTrimmed(t *testing.T) {
	s, err := State{}.CaptureBoardingPass("  BP123 ")
	require.NoError(t, err)
	assert.Equal(t, "BP123", s.BoardingPass)
}

func TestState_InvalidDimensionsKeepStep(t *testing.T) {
	before := atBagTagScanned(t)
	for _, tc := range [][3]string{
		{"abc", "30", "15"},
		{"50", "", "15"},
		{"50", "30", "NaN"},
		{"", "", ""},
	} {
		after, err := before.CaptureDimensions(tc[0], tc[1], tc[2])
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve, "input %v", tc)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("input %v changed state (-before +after):\n%s", tc, diff)
		}
		assert.Equal(t, model.Decision(""), after.Decision())
	}
}

func TestState_Decisions(t *testing.T) {
	for _, tc := range []struct {
		l, w, h string
		want    model.Decision
	}{
		{"50", "30", "15", model.DecisionApproved},
		{"55", "40", "20", model.DecisionApproved},
		{"55.01", "40", "20", model.DecisionRefused},
		{"60", "30", "15", model.DecisionRefused},
		{"55", "41", "20", model.DecisionRefused},
		{"55", "40", "21", model.DecisionRefused},
	} {
		s, err := atBagTagScanned(t).CaptureDimensions(tc.l, tc.w, tc.h)
		require.NoError(t, err)
		assert.Equal(t, StepDimensionsScanned, s.Step)
		assert.Equal(t, tc.want, s.Decision(), "%s x %s x %s", tc.l, tc.w, tc.h)
		assert.Equal(t, tc.want, s.Summary().Decision)
	}
}

func TestState_DecisionFollowsDimensions(t *testing.T) {
	s, err := atBagTagScanned(t).CaptureDimensions("50", "30", "15")
	require.NoError(t, err)
	require.Equal(t, model.DecisionApproved, s.Decision())

	// A copy with other dimensions cannot carry a stale decision.
	s.Dimensions.Height = 25
	assert.Equal(t, model.DecisionRefused, s.Decision())
	assert.Equal(t, model.DecisionRefused, s.Summary().Decision)

	pending := State{Step: StepBagTagScanned, Dimensions: model.Dimensions{Length: 1, Width: 1, Height: 1}}
	assert.Equal(t, model.Decision(""), pending.Decision())
}

func TestState_WrongStep(t *testing.T) {
	idle := State{}
	_, err := idle.CaptureBagTag("TAG")
	assert.True(t, errors.Is(err, ErrWrongStep))
	_, err = idle.CaptureDimensions("1", "1", "1")
	assert.True(t, errors.Is(err, ErrWrongStep))

	done, err := atBagTagScanned(t).CaptureDimensions("1", "1", "1")
	require.NoError(t, err)
	for _, capture := range []func() (State, error){
		func() (State, error) { return done.CaptureBoardingPass("BP2") },
		func() (State, error) { return done.CaptureBagTag("TAG2") },
		func() (State, error) { return done.CaptureDimensions("99", "99", "99") },
	} {
		got, err := capture()
		require.ErrorIs(t, err, ErrWrongStep)
		assert.Equal(t, done, got)
	}
}

func TestStep_Labels(t *testing.T) {
	assert.Equal(t, "Scan Boarding Pass", StepIdle.Action())
	assert.Equal(t, "Scan Bag Tag", StepBoardingPassScanned.Action())
	assert.Equal(t, "Scan Bag Dimensions", StepBagTagScanned.Action())
	assert.Empty(t, StepDimensionsScanned.Action())
	assert.True(t, StepDimensionsScanned.Terminal())
	assert.False(t, StepBagTagScanned.Terminal())
	assert.Equal(t, "step(9)", Step(9).String())
}
