package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/drakos74/free-grad/internal/math/ml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	path := flag.String("config", "", "yaml network config")
	data := flag.String("data", "classic", "built-in dataset, one of classic or sine")
	debug := flag.Bool("debug", false, "log every epoch")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := ml.DefaultConfig()
	if *path != "" {
		c, err := ml.LoadConfig(*path)
		if err != nil {
			log.Fatal().Err(err).Str("config", *path).Msg("could not load config")
		}
		cfg = c
	}

	ds, err := ml.NamedDataset(*data)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load dataset")
	}

	trainer, err := ml.NewTrainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create trainer")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if _, err := trainer.Train(ctx, ds.X, ds.Y); err != nil {
		log.Fatal().Err(err).Msg("could not train")
	}

	preds, err := trainer.Predict(ds.X)
	if err != nil {
		log.Fatal().Err(err).Msg("could not predict")
	}
	for i, p := range preds {
		fmt.Printf("x = %+v | y = %+v | prediction = %+v\n", ds.X[i], ds.Y[i], p)
	}
}
