package iris

import (
	"testing"
	"time"

	"github.com/drakos74/iris-knn/infra/config"
	"github.com/drakos74/iris-knn/internal/math/ml"
	"github.com/drakos74/iris-knn/internal/model"
	iristime "github.com/drakos74/iris-knn/internal/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {

	t.Run("defaults", func(t *testing.T) {
		var cfg Config
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "data/iris_2d.csv", cfg.Dataset)
		assert.Equal(t, "en", cfg.Locale)
		assert.Equal(t, 3, cfg.Attempts)
		assert.Equal(t, []string{"versicolor", "setosa", "virginica"}, cfg.Vote.Order)
		assert.Equal(t, 5, cfg.Vote.Neighbours)
		assert.Equal(t, "iris.png", cfg.Plot.File)
		assert.Equal(t, 6080, cfg.Server.Port)
		assert.Equal(t, 0.6, cfg.Evaluate.Split)
		assert.Equal(t, DefaultPalette(), cfg.Palette)
		assert.Len(t, cfg.Engines(), 5)
		assert.Equal(t, 100, cfg.Evaluate.Epochs)
		assert.Equal(t, 16, cfg.Server.History)
		assert.Equal(t, 5*time.Second, cfg.Server.Shutdown.Duration)
	})

	t.Run("file", func(t *testing.T) {
		var cfg Config
		require.NoError(t, config.Load("../infra/config/iris.json", &cfg))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, int64(44111342), cfg.Evaluate.Seed)
		assert.Equal(t, 100, cfg.Evaluate.Trees)
		assert.Equal(t, 200, cfg.Evaluate.Epochs)
		assert.Equal(t, 10*time.Second, cfg.Server.Shutdown.Duration)
		assert.Equal(t, 16, cfg.Server.History)
	})

	t.Run("default-order-copy", func(t *testing.T) {
		var cfg Config
		require.NoError(t, cfg.Validate())
		cfg.Vote.Order[0] = "virginica"

		var other Config
		require.NoError(t, other.Validate())
		assert.Equal(t, []string{"versicolor", "setosa", "virginica"}, other.Vote.Order)
		assert.Equal(t, []string{"versicolor", "setosa", "virginica"}, ml.DefaultOrder)
	})

	invalid := map[string]Config{
		"locale":     {Locale: "de"},
		"attempts":   {Attempts: -1},
		"neighbours": {Vote: Vote{Neighbours: -1}},
		"colour":     {Palette: map[string]string{"setosa": "mauve"}},
		"port":       {Server: Server{Port: 70000}},
		"split":      {Evaluate: Evaluate{Split: 1.5}},
		"history":    {Server: Server{History: -1}},
		"shutdown":   {Server: Server{Shutdown: iristime.Duration{Duration: -time.Second}}},
	}

	for name, cfg := range invalid {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, cfg.Validate(), model.InvalidArgumentErr)
		})
	}

}
