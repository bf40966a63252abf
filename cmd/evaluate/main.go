package main

import (
	"fmt"
	"os"

	"github.com/drakos74/iris-knn/infra/config"
	iris "github.com/drakos74/iris-knn/internal"
	"github.com/drakos74/iris-knn/internal/dataset"
	"github.com/drakos74/iris-knn/internal/math/ml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	var cfg iris.Config
	config.MustLoad(iris.Key, &cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load dataset")
	}

	report, err := ml.Evaluate(ds, cfg.Evaluate.Split, cfg.Evaluate.Seed, cfg.Engines()...)
	if err != nil {
		log.Fatal().Err(err).Msg("could not evaluate engines")
	}

	report.Render(os.Stdout)
	for _, score := range report.Scores {
		fmt.Printf("\n%s\n%s\n", score.Engine, score.Summary)
	}
}
