package iris

import (
	"fmt"
	"time"

	"github.com/drakos74/iris-knn/internal/graph"
	"github.com/drakos74/iris-knn/internal/locale"
	"github.com/drakos74/iris-knn/internal/math/ml"
	"github.com/drakos74/iris-knn/internal/model"
	iristime "github.com/drakos74/iris-knn/internal/time"
	"github.com/drakos74/iris-knn/user/local"
)

// Key is the config key of the iris binaries.
const Key = "iris"

const (
	defaultDataset    = "data/iris_2d.csv"
	defaultNeighbours = 5
	defaultPlotFile   = "iris.png"
	defaultPlotSize   = 6.0
	defaultPort       = 6080
	defaultSplit      = 0.6
	defaultSeed       = 44111342
	defaultTrees      = 100
	defaultEpochs     = 100
	defaultHistory    = 16
	defaultShutdown   = 5 * time.Second
	// Fallback is the colour of labels missing from the palette.
	Fallback = "blue"
)

// Vote configures the nearest neighbour vote.
type Vote struct {
	// Order resolves tied votes, first label wins.
	Order []string `json:"order"`
	// Neighbours is the k used when a request does not name one.
	Neighbours int `json:"neighbours"`
}

// Plot configures the rendered scatter plot.
type Plot struct {
	File   string  `json:"file"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Server configures the classification service.
type Server struct {
	Port int `json:"port"`
	// Shutdown bounds the graceful shutdown of the server.
	Shutdown iristime.Duration `json:"shutdown"`
	// History is the number of recent predictions the service keeps in memory.
	History int `json:"history"`
}

// Evaluate configures the engine comparison.
type Evaluate struct {
	Split      float64 `json:"split"`
	Seed       int64   `json:"seed"`
	Neighbours int     `json:"neighbours"`
	Trees      int     `json:"trees"`
	// Epochs is the number of passes the network engine makes over the training split.
	Epochs int `json:"epochs"`
}

// Config is the configuration of the iris binaries.
type Config struct {
	Dataset  string            `json:"dataset"`
	Locale   string            `json:"locale"`
	Attempts int               `json:"attempts"`
	Vote     Vote              `json:"vote"`
	Plot     Plot              `json:"plot"`
	Palette  map[string]string `json:"palette"`
	Server   Server            `json:"server"`
	Evaluate Evaluate          `json:"evaluate"`
}

// DefaultPalette colours the iris species.
func DefaultPalette() map[string]string {
	return map[string]string{
		"setosa":     "green",
		"virginica":  "red",
		"versicolor": "blue",
	}
}

// Validate fills in the defaults and checks the values.
func (c *Config) Validate() error {
	if c.Dataset == "" {
		c.Dataset = defaultDataset
	}
	if c.Locale == "" {
		c.Locale = locale.English
	}
	if _, err := locale.For(c.Locale); err != nil {
		return err
	}
	if c.Attempts < 0 {
		return fmt.Errorf("attempts cannot be negative, got %d: %w", c.Attempts, model.InvalidArgumentErr)
	}
	if c.Attempts == 0 {
		c.Attempts = local.DefaultAttempts
	}
	if len(c.Vote.Order) == 0 {
		c.Vote.Order = append([]string(nil), ml.DefaultOrder...)
	}
	if c.Vote.Neighbours < 0 {
		return fmt.Errorf("neighbours cannot be negative, got %d: %w", c.Vote.Neighbours, model.InvalidArgumentErr)
	}
	if c.Vote.Neighbours == 0 {
		c.Vote.Neighbours = defaultNeighbours
	}
	if c.Plot.File == "" {
		c.Plot.File = defaultPlotFile
	}
	if c.Plot.Width <= 0 {
		c.Plot.Width = defaultPlotSize
	}
	if c.Plot.Height <= 0 {
		c.Plot.Height = defaultPlotSize
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	}
	for label, colour := range c.Palette {
		if _, err := graph.Colour(colour); err != nil {
			return fmt.Errorf("invalid colour for '%s': %w", label, err)
		}
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: %w", c.Server.Port, model.InvalidArgumentErr)
	}
	if c.Server.Shutdown.Duration < 0 {
		return fmt.Errorf("shutdown cannot be negative, got %v: %w", c.Server.Shutdown.Duration, model.InvalidArgumentErr)
	}
	if c.Server.Shutdown.Duration == 0 {
		c.Server.Shutdown.Duration = defaultShutdown
	}
	if c.Server.History < 0 {
		return fmt.Errorf("history cannot be negative, got %d: %w", c.Server.History, model.InvalidArgumentErr)
	}
	if c.Server.History == 0 {
		c.Server.History = defaultHistory
	}
	if c.Evaluate.Split == 0 {
		c.Evaluate.Split = defaultSplit
	}
	if c.Evaluate.Split < 0 || c.Evaluate.Split >= 1 {
		return fmt.Errorf("split must be in (0,1), got %f: %w", c.Evaluate.Split, model.InvalidArgumentErr)
	}
	if c.Evaluate.Seed == 0 {
		c.Evaluate.Seed = defaultSeed
	}
	if c.Evaluate.Neighbours <= 0 {
		c.Evaluate.Neighbours = defaultNeighbours
	}
	if c.Evaluate.Trees <= 0 {
		c.Evaluate.Trees = defaultTrees
	}
	if c.Evaluate.Epochs <= 0 {
		c.Evaluate.Epochs = defaultEpochs
	}
	return nil
}

// Engines creates the engines compared by the evaluation.
func (c Config) Engines() []ml.Engine {
	return []ml.Engine{
		ml.NewNearestEngine(c.Evaluate.Neighbours, c.Vote.Order...),
		ml.NewGolearn(c.Evaluate.Neighbours),
		ml.NewGoml(c.Evaluate.Neighbours),
		ml.NewForest(c.Evaluate.Trees),
		ml.NewNet(c.Evaluate.Epochs),
	}
}

// PlotOptions returns the rendering options for the given strings.
func (c Config) PlotOptions(s locale.Strings) graph.Options {
	return graph.Options{
		Title:    s.Title,
		Palette:  c.Palette,
		Fallback: Fallback,
		Legend:   s.LegendName,
		Finding:  s.Finding,
		Width:    c.Plot.Width,
		Height:   c.Plot.Height,
	}
}
