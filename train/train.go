// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch gradient descent on a scalar MLP.
//
// Example:
//
//	import (
//	    "github.com/born-ml/scalargrad/datasets"
//	    "github.com/born-ml/scalargrad/nn"
//	    "github.com/born-ml/scalargrad/train"
//	)
//
//	func main() {
//	    data := datasets.Simple(50, nn.NewRand(1))
//
//	    trainer, err := train.New(train.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    result, err := trainer.Train(context.Background(), data, train.DefaultLogFunc)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.FinalCorrect(), "/", data.N)
//	}
package train

import (
	"github.com/born-ml/scalargrad/internal/train"
)

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerSGD  = train.OptimizerSGD
	OptimizerAdam = train.OptimizerAdam
)

// Config holds trainer hyperparameters.
type Config = train.Config

// DefaultConfig returns 2 hidden layers of width 8, lr 0.5, and 500 epochs.
func DefaultConfig() Config {
	return train.DefaultConfig()
}

// ScalarTrain trains a network on 2D binary classification data.
type ScalarTrain = train.ScalarTrain

// Result records per-epoch loss and accuracy.
type Result = train.Result

// New validates cfg and builds the initial model.
func New(cfg Config) (*ScalarTrain, error) {
	return train.New(cfg)
}

// LogFunc receives periodic training progress.
type LogFunc = train.LogFunc

// DefaultLogFunc prints progress to standard output.
func DefaultLogFunc(epoch int, totalLoss float64, correct int, losses []float64) {
	train.DefaultLogFunc(epoch, totalLoss, correct, losses)
}
