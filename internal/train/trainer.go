// Package train runs full-batch gradient descent on a scalar MLP.
//
// Each epoch builds an independent graph per example, backpropagates each
// example's loss scaled by 1/N into the shared parameter gradients, and then
// takes a single SGD step:
//
//	trainer, _ := train.New(train.DefaultConfig())
//	result, err := trainer.Train(ctx, datasets.Simple(50, rng), train.DefaultLogFunc)
package train

import (
	"context"
	"errors"
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/datasets"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
	"github.com/born-ml/scalargrad/internal/parallel"
)

// Result records per-epoch metrics of a training run.
type Result struct {
	Losses  []float64 // Total (unscaled) loss per epoch
	Correct []int     // Correctly classified examples per epoch
}

// Epochs returns the number of completed epochs.
func (r *Result) Epochs() int {
	return len(r.Losses)
}

// FinalLoss returns the last epoch's total loss, or 0 if none completed.
func (r *Result) FinalLoss() float64 {
	if len(r.Losses) == 0 {
		return 0
	}
	return r.Losses[len(r.Losses)-1]
}

// FinalCorrect returns the last epoch's correct count, or 0 if none completed.
func (r *Result) FinalCorrect() int {
	if len(r.Correct) == 0 {
		return 0
	}
	return r.Correct[len(r.Correct)-1]
}

// ScalarTrain trains an nn.Network on 2D binary classification data.
type ScalarTrain struct {
	cfg   Config
	model *nn.Network
}

// New validates cfg and builds an initial model from cfg.Seed.
func New(cfg Config) (*ScalarTrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("train: invalid config: %w", err)
	}
	s := &ScalarTrain{cfg: cfg}
	s.model = s.newModel()
	return s, nil
}

// Config returns the trainer configuration.
func (s *ScalarTrain) Config() Config {
	return s.cfg
}

// Model returns the current network.
func (s *ScalarTrain) Model() *nn.Network {
	return s.model
}

// RunOne evaluates the current model on one point.
func (s *ScalarTrain) RunOne(x [2]float64) *autodiff.Scalar {
	return s.model.Forward([]*autodiff.Scalar{
		autodiff.NewScalar(x[0], autodiff.WithName("x_1")),
		autodiff.NewScalar(x[1], autodiff.WithName("x_2")),
	})
}

// Train re-initializes the model from the configured seed and runs
// Config.MaxEpochs epochs over data.
//
// logFn may be nil. A shape or arithmetic failure in any example aborts
// training with an error wrapping nn.ErrShape or autodiff.ErrArithmetic.
// The returned Result covers every epoch completed before an error.
func (s *ScalarTrain) Train(ctx context.Context, data *datasets.Graph, logFn LogFunc) (*Result, error) {
	if err := validateData(data); err != nil {
		return nil, err
	}
	if logFn == nil {
		logFn = func(int, float64, int, []float64) {}
	}

	s.model = s.newModel()
	optimizer := s.newOptimizer()

	result := &Result{
		Losses:  make([]float64, 0, s.cfg.MaxEpochs),
		Correct: make([]int, 0, s.cfg.MaxEpochs),
	}

	for epoch := 1; epoch <= s.cfg.MaxEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		optimizer.ZeroGrad()

		totalLoss, correct, err := s.runEpoch(ctx, data)
		if err != nil {
			return result, fmt.Errorf("train: epoch %d: %w", epoch, err)
		}

		if err := guard(optimizer.Step); err != nil {
			return result, fmt.Errorf("train: epoch %d: %w", epoch, err)
		}

		result.Losses = append(result.Losses, totalLoss)
		result.Correct = append(result.Correct, correct)

		if epoch%s.cfg.LogEvery == 0 || epoch == s.cfg.MaxEpochs {
			logFn(epoch, totalLoss, correct, result.Losses)
		}
	}

	return result, nil
}

func (s *ScalarTrain) newModel() *nn.Network {
	return nn.NewNetwork(nn.NetworkConfig{
		HiddenLayers: s.cfg.HiddenLayers,
		InSize:       2,
		OutSize:      1,
		HiddenSize:   s.cfg.HiddenSize,
	}, nn.NewRand(s.cfg.Seed))
}

func (s *ScalarTrain) newOptimizer() optim.Optimizer {
	params := s.model.Parameters()
	if s.cfg.Optimizer == OptimizerAdam {
		return optim.NewAdam(params, optim.AdamConfig{LR: s.cfg.LearningRate})
	}
	return optim.NewSGD(params, optim.SGDConfig{
		LR:       s.cfg.LearningRate,
		Momentum: s.cfg.Momentum,
	})
}

// parallelConfig maps Config.Workers onto a parallel.Config. Zero workers
// keeps the CPU-count default.
func (s *ScalarTrain) parallelConfig(minChunk int) parallel.Config {
	cfg := parallel.DefaultConfig()
	if s.cfg.Workers > 0 {
		cfg.NumWorkers = s.cfg.Workers
		cfg.Enabled = s.cfg.Workers > 1
	}
	cfg.MinChunkSize = minChunk
	return cfg
}

// Predict returns the model output for every point, evaluated in parallel.
// No gradients are accumulated.
func (s *ScalarTrain) Predict(points [][2]float64) []float64 {
	out := make([]float64, len(points))
	parallel.For(len(points), func(i int) {
		out[i] = s.RunOne(points[i]).Value()
	}, s.parallelConfig(16))
	return out
}

// runEpoch accumulates gradients for every example into the model's
// parameters and returns the total loss and correct count.
func (s *ScalarTrain) runEpoch(ctx context.Context, data *datasets.Graph) (float64, int, error) {
	cfg := s.parallelConfig(1)
	chunks := parallel.Chunks(data.N, cfg)
	if len(chunks) <= 1 {
		var totalLoss float64
		var correct int
		err := guard(func() {
			totalLoss, correct = accumulate(s.model, data, 0, data.N)
		})
		return totalLoss, correct, err
	}

	// Per-chunk results, combined in chunk order once every worker is done so
	// the floating-point summation order never depends on scheduling.
	grads := make([][]float64, len(chunks))
	losses := make([]float64, len(chunks))
	corrects := make([]int, len(chunks))

	err := parallel.ForChunks(ctx, data.N, cfg, func(_ context.Context, chunk, start, end int) error {
		// Private Scalars per worker.
		replica := s.model.Clone()

		if err := guard(func() {
			losses[chunk], corrects[chunk] = accumulate(replica, data, start, end)
		}); err != nil {
			return err
		}

		params := replica.Parameters()
		grads[chunk] = make([]float64, len(params))
		for i, p := range params {
			grads[chunk][i] = p.Grad()
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	params := s.model.Parameters()
	var totalLoss float64
	var correct int
	for c := range chunks {
		for i, p := range params {
			p.Value().AccumulateGrad(grads[c][i])
		}
		totalLoss += losses[c]
		correct += corrects[c]
	}
	return totalLoss, correct, nil
}

// accumulate runs examples [start, end) through model, backpropagating each
// loss scaled by 1/N.
func accumulate(model *nn.Network, data *datasets.Graph, start, end int) (float64, int) {
	scale := 1.0 / float64(data.N)

	var totalLoss float64
	var correct int
	for i := start; i < end; i++ {
		x := data.X[i]
		out := model.Forward([]*autodiff.Scalar{
			autodiff.NewScalar(x[0]),
			autodiff.NewScalar(x[1]),
		})

		if nn.Correct(out, data.Y[i]) {
			correct++
		}

		loss := nn.BinaryCrossEntropy(out, data.Y[i])
		autodiff.BackwardWithSeed(loss, scale)
		totalLoss += loss.Value()
	}
	return totalLoss, correct
}

// guard converts shape and arithmetic panics raised by fn into errors.
// Any other panic is re-raised.
func guard(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && (errors.Is(e, nn.ErrShape) || errors.Is(e, autodiff.ErrArithmetic)) {
			err = e
			return
		}
		panic(r)
	}()

	fn()
	return nil
}

func validateData(data *datasets.Graph) error {
	if data == nil {
		return errors.New("train: nil dataset")
	}
	if len(data.X) != data.N || len(data.Y) != data.N {
		return fmt.Errorf("train: dataset has N=%d but %d points and %d labels", data.N, len(data.X), len(data.Y))
	}
	for i, y := range data.Y {
		if y != 0 && y != 1 {
			return fmt.Errorf("train: label %d at index %d is not 0 or 1", y, i)
		}
	}
	return nil
}
