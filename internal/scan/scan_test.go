package scan

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/model"
	"github.com/flyaru/bagcheck-mobile-pwa/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanResult struct {
	value string
	ok    bool
}

func scanAll(t *testing.T, s wizard.Scanner, labels ...string) ([]scanResult, error) {
	t.Helper()
	var out []scanResult
	for _, label := range labels {
		v, ok, err := s.Scan(context.Background(), label)
		if err != nil {
			return out, err
		}
		out = append(out, scanResult{v, ok})
	}
	return out, nil
}

func TestLines_Scan(t *testing.T) {
	var prompts bytes.Buffer
	s := NewLines(strings.NewReader("BP123\n\n  \r\nTAG456\r\n50"), &prompts)

	got, err := scanAll(t, s, "boarding pass code", "bag tag", "bag tag", "bag tag", "length (cm)")
	require.NoError(t, err)
	assert.Equal(t, []scanResult{
		{"BP123", true},
		{"", false},
		{"", false},
		{"TAG456", true},
		{"50", true},
	}, got)

	lines := strings.Split(strings.TrimSuffix(prompts.String(), "\n"), "\n")
	assert.Equal(t, "Enter boarding pass code: ", lines[0])
	assert.Equal(t, "Enter length (cm): ", lines[len(lines)-1])

	_, _, err = s.Scan(context.Background(), "width (cm)")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestLines_NilOutput(t *testing.T) {
	s := NewLines(strings.NewReader("x\n"), nil)
	v, ok, err := s.Scan(context.Background(), "bag tag")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestLines_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewLines(strings.NewReader("x\n"), nil).Scan(ctx, "bag tag")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScript(t *testing.T) {
	s := ParseScript(" BP123, ,TAG456,50,30,15 ")
	assert.Equal(t, 6, s.Remaining())

	got, err := scanAll(t, s, "a", "b", "c", "d", "e", "f")
	require.NoError(t, err)
	assert.Equal(t, []scanResult{
		{"BP123", true}, {"", false}, {"TAG456", true},
		{"50", true}, {"30", true}, {"15", true},
	}, got)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, s.Labels())

	_, _, err = s.Scan(context.Background(), "g")
	assert.True(t, errors.Is(err, wizard.ErrInputClosed))
}

func TestParseScript_Empty(t *testing.T) {
	s := ParseScript("   ")
	assert.Equal(t, 0, s.Remaining())
}

func TestNew_NonTerminalUsesLines(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	require.NoError(t, err)
	defer f.Close()

	_, isLines := New(f, nil).(*Lines)
	assert.True(t, isLines)
}

func TestScript_DrivesWizard(t *testing.T) {
	view := &nopView{}
	final, err := wizard.NewRunner(ParseScript("BP123,TAG456,50,30,15"), view).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wizard.StepDimensionsScanned, final.Step)
	assert.Equal(t, "APPROVED", final.Decision().String())
}

type nopView struct{}

func (nopView) ShowStep(wizard.Step) error      { return nil }
func (nopView) ShowRejected(wizard.Step) error  { return nil }
func (nopView) ShowSummary(model.Summary) error { return nil }

func newTestEditor(input string) (*editor, *bytes.Buffer) {
	var echo bytes.Buffer
	return newEditor(strings.NewReader(input), &echo), &echo
}

func TestEditor_BurstKeepsEveryReading(t *testing.T) {
	e, echo := newTestEditor("50\r30\r15\r")

	var got []string
	for _, label := range []string{wizard.LabelLength, wizard.LabelWidth, wizard.LabelHeight} {
		v, ok, err := e.read(label)
		require.NoError(t, err, label)
		require.True(t, ok, label)
		got = append(got, v)
	}
	assert.Equal(t, []string{"50", "30", "15"}, got)
	assert.Contains(t, echo.String(), "Enter width (cm): ")
	assert.Contains(t, echo.String(), "Enter height (cm): ")

	_, _, err := e.read(wizard.LabelLength)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestEditor_EmptyLineIsCancelled(t *testing.T) {
	e, _ := newTestEditor("\r  \rTAG456\r")

	for i := 0; i < 2; i++ {
		v, ok, err := e.read(wizard.LabelBagTag)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	}
	v, ok, err := e.read(wizard.LabelBagTag)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "TAG456", v)
}

func TestEditor_ControlKeysCloseInput(t *testing.T) {
	for name, input := range map[string]string{
		"ctrl-d": "\x04",
		"ctrl-c": "BP1\x03",
	} {
		t.Run(name, func(t *testing.T) {
			e, _ := newTestEditor(input)
			_, _, err := e.read(wizard.LabelBoardingPass)
			assert.ErrorIs(t, err, ErrInputClosed)
		})
	}
}
