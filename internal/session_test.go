package iris

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drakos74/iris-knn/internal/metrics"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/drakos74/iris-knn/user/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisSample = `petal_length,petal_width
1.0,1.0,setosa
1.2,1.1,setosa
5.0,5.0,virginica
4.5,1.5,versicolor
`

func testConfig(t *testing.T, content string) Config {
	dir := t.TempDir()
	path := filepath.Join(dir, "iris.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return Config{
		Dataset: path,
		Plot: Plot{
			File:   filepath.Join(dir, "iris.png"),
			Width:  2,
			Height: 2,
		},
	}
}

func TestSession_Run(t *testing.T) {

	type test struct {
		locale string
		input  string
		label  string
		output []string
		err    error
	}

	tests := map[string]test{
		"no": {
			input:  "no\n",
			output: []string{"Graph loading"},
		},
		"yes": {
			input:  "yes\n1.1\n1.1\n1\n",
			label:  "setosa",
			output: []string{"found an iris", "setosa"},
		},
		"yes-majority": {
			// one vote each, versicolor wins the tie
			input: "y\n4.8\n4.8\n3\n",
			label: "versicolor",
		},
		"retry-yes-no": {
			input:  "maybe\nYES\n5\n5\n1\n",
			label:  "virginica",
			output: []string{"Yes or No ?"},
		},
		"retry-numbers": {
			input:  "yes\nfour\n4.5\n1.5\n0\n1\n",
			label:  "versicolor",
			output: []string{"Invalid answer"},
		},
		"french": {
			locale: "fr",
			input:  "oui\n1.1\n1.1\n1\n",
			label:  "setosa",
			output: []string{"Vous avez probablement"},
		},
		"exhausted": {
			input: "maybe\nperhaps\nsure\n",
			err:   model.InvalidArgumentErr,
		},
		"no-answer": {
			input: "",
			err:   context.Canceled,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t, irisSample)
			cfg.Locale = tt.locale
			var out bytes.Buffer
			m := metrics.New()
			session, err := NewSession(cfg, local.NewConsole(strings.NewReader(tt.input), &out, 3), m)
			require.NoError(t, err)

			ctx := context.Background()
			if tt.input == "" {
				c, cnl := context.WithCancel(ctx)
				cnl()
				ctx = c
			}
			prediction, err := session.Run(ctx)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			for _, o := range tt.output {
				assert.Contains(t, out.String(), o)
			}
			if tt.label == "" {
				assert.Nil(t, prediction)
			} else {
				require.NotNil(t, prediction)
				assert.Equal(t, tt.label, prediction.Label)
			}
			_, err = os.Stat(session.cfg.Plot.File)
			assert.NoError(t, err)
		})
	}

}

func TestSession_Errors(t *testing.T) {

	t.Run("missing-dataset", func(t *testing.T) {
		cfg := testConfig(t, irisSample)
		cfg.Dataset = filepath.Join(t.TempDir(), "missing.csv")
		session, err := NewSession(cfg, local.NewConsole(strings.NewReader("no\n"), &bytes.Buffer{}, 3), metrics.New())
		require.NoError(t, err)
		_, err = session.Run(context.Background())
		assert.ErrorIs(t, err, model.IOErr)
	})

	t.Run("malformed-dataset", func(t *testing.T) {
		cfg := testConfig(t, "petal_length,petal_width\n1.0,setosa\n")
		session, err := NewSession(cfg, local.NewConsole(strings.NewReader("no\n"), &bytes.Buffer{}, 3), metrics.New())
		require.NoError(t, err)
		_, err = session.Run(context.Background())
		assert.ErrorIs(t, err, model.ParseErr)
	})

	t.Run("invalid-config", func(t *testing.T) {
		cfg := testConfig(t, irisSample)
		cfg.Locale = "xx"
		_, err := NewSession(cfg, local.NewConsole(strings.NewReader(""), &bytes.Buffer{}, 3), nil)
		assert.ErrorIs(t, err, model.InvalidArgumentErr)
	})

}
