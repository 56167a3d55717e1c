// Package main provides the scalartrain CLI.
//
// It trains a scalar MLP on one of the synthetic datasets and prints the
// loss and accuracy every few epochs:
//
//	scalartrain -dataset Xor -points 100 -hidden 3 -epochs 1000
//	scalartrain -config run.yaml -workers 4
//	scalartrain -dataset Circle -optimizer adam -rate 0.05
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/datasets"
	"github.com/born-ml/scalargrad/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	def := config.Default()

	configPath := flag.String("config", "", "YAML run configuration (flags override it)")
	dataset := flag.String("dataset", def.Dataset, "Dataset: "+strings.Join(datasets.Names(), ", "))
	points := flag.Int("points", def.Points, "Number of examples")
	dataSeed := flag.Int64("data-seed", def.DataSeed, "Seed for dataset sampling")
	hidden := flag.Int("hidden", def.Train.HiddenLayers, "Number of hidden layers")
	width := flag.Int("width", def.Train.HiddenSize, "Hidden layer width")
	optimizer := flag.String("optimizer", def.Train.Optimizer, "Optimizer: sgd or adam")
	rate := flag.Float64("rate", def.Train.LearningRate, "Learning rate")
	momentum := flag.Float64("momentum", def.Train.Momentum, "SGD momentum")
	epochs := flag.Int("epochs", def.Train.MaxEpochs, "Number of training epochs")
	seed := flag.Int64("seed", def.Train.Seed, "Seed for parameter initialization")
	workers := flag.Int("workers", def.Train.Workers, "Goroutines per epoch (0 = one per CPU)")
	logEvery := flag.Int("log-every", def.Train.LogEvery, "Log interval in epochs")
	dump := flag.Bool("dump-config", false, "Print the effective configuration as YAML and exit")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("scalartrain %s\n", version)
		return
	}

	cfg := def
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			cfg.Dataset = *dataset
		case "points":
			cfg.Points = *points
		case "data-seed":
			cfg.DataSeed = *dataSeed
		case "hidden":
			cfg.Train.HiddenLayers = *hidden
		case "width":
			cfg.Train.HiddenSize = *width
		case "optimizer":
			cfg.Train.Optimizer = *optimizer
		case "rate":
			cfg.Train.LearningRate = *rate
		case "momentum":
			cfg.Train.Momentum = *momentum
		case "epochs":
			cfg.Train.MaxEpochs = *epochs
		case "seed":
			cfg.Train.Seed = *seed
		case "workers":
			cfg.Train.Workers = *workers
		case "log-every":
			cfg.Train.LogEvery = *logEvery
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *dump {
		out, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("Failed to encode config: %v", err)
		}
		os.Stdout.Write(out) //nolint:errcheck,gosec // best-effort output
		return
	}

	data, err := cfg.Graph()
	if err != nil {
		log.Fatalf("Failed to build dataset: %v", err)
	}

	trainer, err := train.New(cfg.Train)
	if err != nil {
		log.Fatalf("Failed to create trainer: %v", err)
	}

	fmt.Printf("Dataset: %s (%d points, %d positive)\n", cfg.Dataset, data.N, data.Positives())
	fmt.Printf("Model: %d hidden x %d, %d parameters\n",
		cfg.Train.HiddenLayers, cfg.Train.HiddenSize, len(trainer.Model().Parameters()))
	fmt.Printf("Optimizer: %s lr=%g momentum=%g, %d epochs, %d workers\n",
		cfg.Train.Optimizer, cfg.Train.LearningRate, cfg.Train.Momentum, cfg.Train.MaxEpochs, cfg.Train.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := trainer.Train(ctx, data, train.DefaultLogFunc)
	if err != nil {
		stop()
		completed := 0
		if result != nil {
			completed = result.Epochs()
		}
		log.Fatalf("Training failed after %d epochs: %v", completed, err) //nolint:gocritic // stop called above
	}

	fmt.Printf("Final: loss %.4f, %d/%d correct\n", result.FinalLoss(), result.FinalCorrect(), data.N)
}
