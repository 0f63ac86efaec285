package selection

import (
	"runtime"
	"time"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/doccat/doccat/crossval"
	"github.com/doccat/doccat/errors"
	"github.com/doccat/doccat/workerpool"
)

// Model is a trained classifier: one dense feature row in, one label out.
type Model interface {
	PredictRow(row []float64) string
}

// Param is one hyperparameter configuration from a search grid. The selector
// treats it as opaque; only the TrainFunc interprets it.
type Param interface{}

// TrainFunc builds a Model from dense feature rows and their labels under one
// hyperparameter configuration.
type TrainFunc func(features [][]float64, labels []string, param Param) (Model, error)

// Options tunes SelectModel. The zero value runs one worker per CPU and logs
// nowhere.
type Options struct {
	// NumGo caps the number of concurrent trainings; <= 0 means one per CPU.
	NumGo  int
	Logger *zap.Logger
}

// ParamScore is the cross-validated outcome of one grid value.
type ParamScore struct {
	Param Param `json:"param"`

	// Accuracies holds each fold's holdout exact-match rate, in fold order.
	// Kappas holds the matching Cohen's kappa, a secondary reported metric
	// never used for selection.
	Accuracies []float64 `json:"accuracies"`
	Kappas     []float64 `json:"kappas"`

	Mean      float64 `json:"mean_accuracy"`
	Std       float64 `json:"std_accuracy"`
	MeanKappa float64 `json:"mean_kappa"`
}

// Result is the cross-validation table: one ParamScore per grid value, kept
// in grid order so iteration and tie-breaking stay deterministic.
type Result []ParamScore

// Best returns the entry with the highest mean accuracy. Ties go to the
// earliest grid position.
func (r Result) Best() ParamScore {
	best := 0
	for i := 1; i < len(r); i++ {
		if r[i].Mean > r[best].Mean {
			best = i
		}
	}
	return r[best]
}

// Selection is the outcome of SelectModel: the winning grid entry, the full
// cross-validation table, and a final model retrained on all rows with the
// winning param.
type Selection struct {
	Best   ParamScore
	Result Result
	Model  Model
}

// SelectModel cross-validates every grid value over folds and picks the one
// with the highest mean holdout accuracy, ties broken by grid order. Each
// (param, fold) training runs as an independent task on a worker pool scoped
// to this call and released when it returns. Aggregation starts only after
// every task has finished; if any task fails, the whole selection fails with
// a single error naming each failing (param, fold) pair, so partial results
// never skew a mean.
func SelectModel(features [][]float64, labels []string, folds []crossval.Fold, grid []Param, train TrainFunc, opts Options) (*Selection, error) {
	if len(grid) == 0 {
		return nil, errors.InvalidParamf("empty hyperparameter grid")
	}
	if len(folds) == 0 {
		return nil, errors.InvalidParamf("no folds")
	}
	if len(features) != len(labels) {
		return nil, errors.InvalidParamf("%d feature rows for %d labels", len(features), len(labels))
	}
	if train == nil {
		return nil, errors.InvalidParamf("nil train function")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	numGo := opts.NumGo
	if numGo <= 0 {
		numGo = runtime.NumCPU()
	}

	result := make(Result, len(grid))
	for pi, param := range grid {
		result[pi] = ParamScore{
			Param:      param,
			Accuracies: make([]float64, len(folds)),
			Kappas:     make([]float64, len(folds)),
		}
	}

	start := time.Now()
	pool := workerpool.New(numGo)
	defer pool.Stop()

	jobs := make([]workerpool.Job, 0, len(grid)*len(folds))
	for pi := range grid {
		for fi := range folds {
			pi, fi := pi, fi
			jobs = append(jobs, func() error {
				score, err := evaluateFold(features, labels, folds[fi], grid[pi], train)
				if err != nil {
					return errors.Wrapf(err, "param %v fold %d", grid[pi], fi)
				}
				// Each task owns its (param, fold) slot; no two share one.
				result[pi].Accuracies[fi] = score.accuracy
				result[pi].Kappas[fi] = score.kappa
				return nil
			})
		}
	}
	pool.Add(jobs)

	if err := pool.Wait(); err != nil {
		return nil, errors.Wrapf(err, "cross-validation failed")
	}

	for pi := range result {
		mean, err := stats.Mean(result[pi].Accuracies)
		if err != nil {
			return nil, errors.Wrapf(err, "aggregating accuracies for param %v", result[pi].Param)
		}
		std, err := stats.StandardDeviation(result[pi].Accuracies)
		if err != nil {
			return nil, errors.Wrapf(err, "aggregating accuracies for param %v", result[pi].Param)
		}
		kappa, err := stats.Mean(result[pi].Kappas)
		if err != nil {
			return nil, errors.Wrapf(err, "aggregating kappas for param %v", result[pi].Param)
		}
		result[pi].Mean = mean
		result[pi].Std = std
		result[pi].MeanKappa = kappa
	}

	best := result.Best()
	logger.Info("cross-validation complete",
		zap.Int("gridSize", len(grid)),
		zap.Int("folds", len(folds)),
		zap.Any("bestParam", best.Param),
		zap.Float64("bestMeanAccuracy", best.Mean),
		zap.Duration("took", time.Since(start)))

	model, err := train(features, labels, best.Param)
	if err != nil {
		return nil, errors.Wrapf(err, "retraining final model with param %v", best.Param)
	}

	return &Selection{Best: best, Result: result, Model: model}, nil
}

type foldScore struct {
	accuracy float64
	kappa    float64
}

func evaluateFold(features [][]float64, labels []string, fold crossval.Fold, param Param, train TrainFunc) (foldScore, error) {
	trainRows := make([][]float64, 0, len(fold.Train))
	trainLabels := make([]string, 0, len(fold.Train))
	for _, idx := range fold.Train {
		trainRows = append(trainRows, features[idx])
		trainLabels = append(trainLabels, labels[idx])
	}

	model, err := train(trainRows, trainLabels, param)
	if err != nil {
		return foldScore{}, err
	}

	actual := make([]string, 0, len(fold.Holdout))
	predicted := make([]string, 0, len(fold.Holdout))
	for _, idx := range fold.Holdout {
		actual = append(actual, labels[idx])
		predicted = append(predicted, model.PredictRow(features[idx]))
	}
	return foldScore{
		accuracy: Accuracy(actual, predicted),
		kappa:    Kappa(actual, predicted),
	}, nil
}
