package rational

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type document struct {
	Ratio *Rational `json:"ratio" yaml:"ratio"`
	Label string    `json:"label" yaml:"label"`
}

func TestMarshalText(t *testing.T) {
	text, err := rat(6, -4).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "6/-4", string(text))

	var r Rational
	require.NoError(t, r.UnmarshalText([]byte("6/-4")))
	require.Equal(t, *rat(6, -4), r)

	require.ErrorIs(t, r.UnmarshalText([]byte("6/0")), ErrZeroDenominator)
	require.Equal(t, *rat(6, -4), r, "failed unmarshal leaves receiver untouched")
}

func TestJSON(t *testing.T) {
	in := document{Ratio: rat(6, -4), Label: "slope"}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"ratio":"6/-4","label":"slope"}`, string(data))

	var out document
	require.NoError(t, json.Unmarshal(data, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}

	require.Error(t, json.Unmarshal([]byte(`{"ratio":"1/2/3"}`), &out))
}

type valueDocument struct {
	Ratio Rational `json:"ratio" yaml:"ratio"`
}

func TestMarshalValueField(t *testing.T) {
	data, err := json.Marshal(valueDocument{Ratio: *rat(6, -4)})
	require.NoError(t, err)
	require.JSONEq(t, `{"ratio":"6/-4"}`, string(data))

	data, err = json.Marshal(valueDocument{Ratio: *rat(math.NaN(), 1)})
	require.NoError(t, err)
	require.JSONEq(t, `{"ratio":"NaN/1"}`, string(data))

	var out valueDocument
	require.NoError(t, json.Unmarshal([]byte(`{"ratio":"3/4"}`), &out))
	require.Equal(t, *rat(3, 4), out.Ratio)

	data, err = yaml.Marshal(valueDocument{Ratio: *rat(3, 4)})
	require.NoError(t, err)
	require.Contains(t, string(data), "ratio: 3/4")

	out = valueDocument{}
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Equal(t, *rat(3, 4), out.Ratio)
}

func TestYAML(t *testing.T) {
	in := document{Ratio: rat(3, 4), Label: "three quarters"}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(data), "ratio: 3/4")

	var out document
	require.NoError(t, yaml.Unmarshal(data, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("yaml round trip mismatch (-want +got):\n%s", diff)
	}

	require.Error(t, yaml.Unmarshal([]byte("ratio: abc/2\n"), &out))
}
