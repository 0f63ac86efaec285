package experiment

import (
	"go.uber.org/zap"

	"github.com/doccat/doccat/corpus"
	"github.com/doccat/doccat/crossval"
	"github.com/doccat/doccat/decisiontree"
	"github.com/doccat/doccat/errors"
	"github.com/doccat/doccat/languagemodel"
	"github.com/doccat/doccat/selection"
	"github.com/doccat/doccat/termmatrix"
	"github.com/doccat/doccat/text"
	"github.com/doccat/doccat/tfidf"
)

// Config tunes a Run. Zero values fall back to the defaults below.
type Config struct {
	// TestFraction of each class is held out of all training. Default 0.3.
	TestFraction float64
	// Folds (k) and Repeats shape cross-validation. Defaults 5 and 1.
	Folds   int
	Repeats int
	// Seed drives the split and the fold shuffles.
	Seed int64
	// Grid is the hyperparameter search space; Train interprets its entries.
	// Defaults to a decision-tree depth/leaf grid trained by TreeTrainer.
	Grid  []selection.Param
	Train selection.TrainFunc
	// NumGo caps concurrent trainings; <= 0 means one per CPU.
	NumGo int
	// Baseline also trains the unigram language-model classifier on the
	// training split and reports its test accuracy.
	Baseline bool
	Logger   *zap.Logger
}

// TreeTrainer adapts the decision-tree trainer to the selector. Grid entries
// must be decisiontree.Params.
func TreeTrainer(features [][]float64, labels []string, param selection.Param) (selection.Model, error) {
	p, ok := param.(decisiontree.Params)
	if !ok {
		return nil, errors.InvalidParamf("hyperparameter has type %T, want decisiontree.Params", param)
	}
	return decisiontree.Train(features, labels, p)
}

// DefaultGrid is the search space used when Config.Grid is empty.
func DefaultGrid() []selection.Param {
	var grid []selection.Param
	for _, depth := range []int{4, 8, 16} {
		for _, minLeaf := range []int{1, 3} {
			grid = append(grid, decisiontree.Params{MaxDepth: depth, MinLeaf: minLeaf})
		}
	}
	return grid
}

// Run evaluates the raw-frequency and TF-IDF pipelines on docs: stratified
// train/test split, tokenize, vocabulary and matrices from the training
// split only, shared folds, one model selection per pipeline, then test
// accuracy with each pipeline's final model. The test split is projected
// onto the training vocabulary and weighted with the transformer fit on
// training counts, so nothing about the test set leaks into training.
func Run(docs corpus.Corpus, cfg Config) (*Report, error) {
	if cfg.TestFraction <= 0 {
		cfg.TestFraction = 0.3
	}
	if cfg.Folds <= 0 {
		cfg.Folds = 5
	}
	if cfg.Repeats <= 0 {
		cfg.Repeats = 1
	}
	if len(cfg.Grid) == 0 {
		cfg.Grid = DefaultGrid()
	}
	if cfg.Train == nil {
		cfg.Train = TreeTrainer
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	split, err := corpus.StratifiedSplit(docs, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Info("corpus split",
		zap.Int("documents", len(docs)),
		zap.Int("train", len(split.Train)),
		zap.Int("test", len(split.Test)))

	trainSeqs := split.Train.Tokenize()
	testSeqs := split.Test.Tokenize()
	trainLabels := split.Train.Labels()
	testLabels := split.Test.Labels()

	vocab, err := termmatrix.BuildVocabulary(trainSeqs)
	if err != nil {
		return nil, err
	}
	trainMatrix := termmatrix.BuildMatrix(trainSeqs, vocab)
	testMatrix := termmatrix.BuildMatrix(testSeqs, vocab)
	logger.Info("vocabulary built", zap.Int("terms", vocab.Size()))

	folds, err := crossval.Stratified(trainLabels, cfg.Folds, cfg.Repeats, cfg.Seed)
	if err != nil {
		return nil, err
	}

	opts := selection.Options{NumGo: cfg.NumGo, Logger: logger}

	report := &Report{
		Documents: len(docs),
		TrainSize: len(split.Train),
		TestSize:  len(split.Test),
		Classes:   docs.Classes(),
		VocabSize: vocab.Size(),
		Folds:     len(folds),
	}

	report.RawFreq, err = evalPipeline(PipelineRawFreq,
		trainMatrix.Dense(), testMatrix.Dense(),
		trainLabels, testLabels, folds, cfg.Grid, cfg.Train, opts, logger)
	if err != nil {
		return nil, err
	}

	transformer, err := tfidf.Fit(trainMatrix)
	if err != nil {
		return nil, err
	}
	trainWeights, err := transformer.Transform(trainMatrix)
	if err != nil {
		return nil, err
	}
	testWeights, err := transformer.Transform(testMatrix)
	if err != nil {
		return nil, err
	}

	report.TFIDF, err = evalPipeline(PipelineTFIDF,
		trainWeights.Dense(), testWeights.Dense(),
		trainLabels, testLabels, folds, cfg.Grid, cfg.Train, opts, logger)
	if err != nil {
		return nil, err
	}

	// The winner is decided by selected mean CV accuracy; a tie keeps the
	// simpler raw-frequency pipeline.
	report.Winner = PipelineRawFreq
	if report.TFIDF.CVMean > report.RawFreq.CVMean {
		report.Winner = PipelineTFIDF
	}

	if cfg.Baseline {
		baseline, err := evalBaseline(trainSeqs, trainLabels, testSeqs, testLabels)
		if err != nil {
			return nil, err
		}
		report.Baseline = baseline
		logger.Info("baseline evaluated", zap.Float64("testAccuracy", baseline.TestAccuracy))
	}

	logger.Info("experiment complete",
		zap.String("winner", report.Winner),
		zap.Float64("rawCVMean", report.RawFreq.CVMean),
		zap.Float64("tfidfCVMean", report.TFIDF.CVMean))
	return report, nil
}

func evalPipeline(name string, trainFeatures, testFeatures [][]float64, trainLabels, testLabels []string, folds []crossval.Fold, grid []selection.Param, train selection.TrainFunc, opts selection.Options, logger *zap.Logger) (PipelineResult, error) {
	sel, err := selection.SelectModel(trainFeatures, trainLabels, folds, grid, train, opts)
	if err != nil {
		return PipelineResult{}, errors.Wrapf(err, "%s pipeline", name)
	}

	predicted := make([]string, len(testFeatures))
	for i, row := range testFeatures {
		predicted[i] = sel.Model.PredictRow(row)
	}
	result := PipelineResult{
		Pipeline:     name,
		BestParam:    sel.Best.Param,
		CVMean:       sel.Best.Mean,
		CVStd:        sel.Best.Std,
		CVKappa:      sel.Best.MeanKappa,
		TestAccuracy: selection.Accuracy(testLabels, predicted),
		Scores:       sel.Result,
	}
	logger.Info("pipeline evaluated",
		zap.String("pipeline", name),
		zap.Any("bestParam", result.BestParam),
		zap.Float64("cvMean", result.CVMean),
		zap.Float64("testAccuracy", result.TestAccuracy))
	return result, nil
}

func evalBaseline(trainSeqs []text.Tokens, trainLabels []string, testSeqs []text.Tokens, testLabels []string) (*BaselineResult, error) {
	scorer, err := languagemodel.TrainScorer(trainSeqs, trainLabels)
	if err != nil {
		return nil, errors.Wrapf(err, "training baseline")
	}
	predicted := make([]string, len(testSeqs))
	for i, seq := range testSeqs {
		predicted[i] = scorer.Classify(seq)
	}
	return &BaselineResult{
		TestAccuracy: selection.Accuracy(testLabels, predicted),
	}, nil
}
