package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/drakos74/iris-knn/infra/config"
	iris "github.com/drakos74/iris-knn/internal"
	"github.com/drakos74/iris-knn/internal/dataset"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func main() {
	ctx, cnl := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cnl()

	var cfg iris.Config
	config.MustLoad(iris.Key, &cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load dataset")
	}

	service, err := iris.NewService(cfg, ds, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create service")
	}

	if err := service.Server().Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
