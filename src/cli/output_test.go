package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ratio/src/numeric/rational"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(valuesDiffer()))
	assert.Equal(t, ExitCommandError, GetExitCode(invalidInput(rational.ErrMalformed)))
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("unknown flag")))

	wrapped := fmt.Errorf("outer: %w", valuesDiffer())
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "values differ", valuesDiffer().Error())

	err := invalidInput(rational.ErrZeroDenominator)
	assert.Equal(t, "invalid rational: denominator cannot be zero", err.Error())
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestErrorCode(t *testing.T) {
	for _, tc := range []struct {
		input string
		code  string
	}{
		{"1/2/3", ErrCodeMalformed},
		{"x/2", ErrCodeNonNumeric},
		{"1/0", ErrCodeZeroDenominator},
	} {
		_, err := rational.Parse(tc.input)
		require.Error(t, err)
		assert.Equal(t, tc.code, errorCode(err), tc.input)
	}
	assert.Equal(t, ErrCodeGeneric, errorCode(errors.New("other")))
}

func TestNewRecord(t *testing.T) {
	r := rational.MustParse("4/2")

	got := newRecord("4/2", r, false)
	want := Record{Input: "4/2", Value: rational.MustParse("4/2"), Whole: false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "4/2 -> 4/2 (decimal)", got.String())

	got = newRecord("4/2", r, true)
	want = Record{Input: "4/2", Value: rational.MustParse("4/2"), Normalized: rational.MustParse("2/1"), Whole: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "4/2 -> 2/1 (whole)", got.String())
	assert.Equal(t, "4/2", r.String(), "stored value is not mutated")
}

func TestComparisonString(t *testing.T) {
	c := Comparison{Left: rational.MustParse("1/2"), Right: rational.MustParse("2/4")}
	assert.Equal(t, "1/2 != 2/4", c.String())

	c.Equal = true
	assert.Equal(t, "1/2 == 2/4", c.String())
}

func TestFormatterTextErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errOut}

	require.NoError(t, f.Error(ErrCodeGeneric, "boom", nil))
	assert.Empty(t, out.String())
	assert.Equal(t, "Error [E000]: boom\n", errOut.String())

	out.Reset()
	f.ErrWriter = nil
	require.NoError(t, f.Error(ErrCodeGeneric, "boom", nil))
	assert.Equal(t, "Error [E000]: boom\n", out.String())
}

func TestYAMLOutput(t *testing.T) {
	stdout, _, code := execute(t, "", "--format", "yaml", "normalize", "6/-4")
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string `yaml:"status"`
		Data   []struct {
			Input      string `yaml:"input"`
			Value      string `yaml:"value"`
			Normalized string `yaml:"normalized"`
			Whole      bool   `yaml:"whole"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "6/-4", resp.Data[0].Input)
	assert.Equal(t, "6/-4", resp.Data[0].Value)
	assert.Equal(t, "-3/2", resp.Data[0].Normalized)
	assert.False(t, resp.Data[0].Whole)
}

func TestYAMLErrorOutput(t *testing.T) {
	stdout, _, code := execute(t, "", "--format", "yaml", "parse", "5/0")
	require.Equal(t, ExitCommandError, code)

	var resp CLIResponse
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeZeroDenominator, resp.Error.Code)
}
