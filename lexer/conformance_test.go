package lexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// conformanceCase pins the exact token stream for a source snippet. Kinds
// are spelled as their String() form so the corpus stays readable.
type conformanceCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Tokens []struct {
		Kind string `yaml:"kind"`
		Text string `yaml:"text"`
	} `yaml:"tokens"`
}

func TestConformance(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "tokens.yaml"))
	require.NoError(t, err)

	var cases []conformanceCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	type flat struct{ Kind, Text string }
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			want := make([]flat, len(tc.Tokens))
			for i, tok := range tc.Tokens {
				want[i] = flat{tok.Kind, tok.Text}
			}

			var got []flat
			for _, tok := range Tokenize(tc.Source) {
				got = append(got, flat{tok.Kind.String(), tok.Text})
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
