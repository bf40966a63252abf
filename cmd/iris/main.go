package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/drakos74/iris-knn/infra/config"
	iris "github.com/drakos74/iris-knn/internal"
	"github.com/drakos74/iris-knn/user/local"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	ctx, cnl := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cnl()

	var cfg iris.Config
	config.MustLoad(iris.Key, &cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	session, err := iris.NewSession(cfg, local.NewConsole(os.Stdin, os.Stdout, cfg.Attempts), nil)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create session")
	}

	prediction, err := session.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}
	if prediction != nil {
		log.Debug().Str("id", prediction.ID).Str("label", prediction.Label).Msg("prediction")
	}
}
