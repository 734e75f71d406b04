package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
	"github.com/born-ml/micrograd/optim"
)

// Errors returned by parseLayers.
var (
	errEmptyLayers  = errors.New("no layers given")
	errInvalidLayer = errors.New("invalid layer size")
)

// trainConfig holds the train command flags.
type trainConfig struct {
	Epochs    int
	LR        float64
	Seed      uint64
	Layers    []int
	Optimizer string
	Momentum  float64
	Every     int
}

// trainResult summarizes a training run.
type trainResult struct {
	FirstLoss float64
	BestLoss  float64
	BestEpoch int
	Output    float64
}

// parseLayers parses a comma-separated list of positive layer sizes.
func parseLayers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errEmptyLayers
	}

	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errInvalidLayer, f, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w %q: must be positive", errInvalidLayer, f)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func runTrain(args []string, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stdout)
	epochs := fs.Int("epochs", 100, "Number of training epochs")
	lr := fs.Float64("lr", 1e-3, "Learning rate")
	seed := fs.Uint64("seed", 40, "Initialization seed")
	layers := fs.String("layers", "4,4,1", "Comma-separated layer sizes")
	optimizer := fs.String("optimizer", "sgd", "Optimizer: sgd or adam")
	momentum := fs.Float64("momentum", 0, "SGD momentum")
	every := fs.Int("every", 10, "Log every N epochs (0 = never)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseLayers(*layers)
	if err != nil {
		return fmt.Errorf("train: -layers: %w", err)
	}
	if *epochs <= 0 {
		return fmt.Errorf("train: -epochs must be positive, got %d", *epochs)
	}

	cfg := trainConfig{
		Epochs:    *epochs,
		LR:        *lr,
		Seed:      *seed,
		Layers:    sizes,
		Optimizer: *optimizer,
		Momentum:  *momentum,
		Every:     *every,
	}
	res, err := train(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "first loss: %.6f\n", res.FirstLoss)
	fmt.Fprintf(stdout, "best loss:  %.6f (epoch %d)\n", res.BestLoss, res.BestEpoch)
	fmt.Fprintf(stdout, "output:     %.6f\n", res.Output)
	return nil
}

// train fits an MLP(3 -> layers) to x = (2, 3, -1), target 3, and restores
// the parameters of the best epoch.
func train(cfg trainConfig, logger *log.Logger) (trainResult, error) {
	g := autodiff.NewGraphWithConfig(autodiff.Config{LearningRate: cfg.LR})
	model := nn.NewMLP(g, 3, cfg.Layers, nn.InitConfig{Seed: cfg.Seed})
	opt, err := optim.New(cfg.Optimizer, model.Parameters(), cfg.LR, cfg.Momentum)
	if err != nil {
		return trainResult{}, fmt.Errorf("train: %w", err)
	}
	logger.Printf("%s, %d parameters, %s lr=%g", model, nn.NumParameters(model), cfg.Optimizer, opt.GetLR())

	input := []float64{2, 3, -1}
	const target = 3.0

	forward := func() autodiff.Value {
		out := model.Forward(nn.Inputs(g, input))
		return nn.HalfSquaredError(out[0], g.Leaf(target))
	}

	var res trainResult
	var best []float64
	mark := g.Mark()
	for epoch := range cfg.Epochs {
		loss := forward()
		if epoch == 0 {
			res.FirstLoss = loss.Data()
		}
		if best == nil || loss.Data() < res.BestLoss {
			res.BestLoss, res.BestEpoch = loss.Data(), epoch
			best = nn.Snapshot(model)
		}

		opt.ZeroGrad()
		loss.Backward()
		if cfg.Every > 0 && epoch%cfg.Every == 0 {
			logger.Printf("epoch %d: loss=%.6f grad_norm=%.6f", epoch, loss.Data(), nn.GradNorm(model))
		}
		opt.Step()
		g.Release(mark)
	}

	if err := nn.Restore(model, best); err != nil {
		return trainResult{}, fmt.Errorf("train: %w", err)
	}

	g.StopRecording()
	res.Output = model.Forward(nn.Inputs(g, input))[0].Data()
	g.Release(mark)
	return res, nil
}
