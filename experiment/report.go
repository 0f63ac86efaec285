package experiment

import "github.com/doccat/doccat/selection"

// Pipeline names as they appear in reports.
const (
	PipelineRawFreq = "rawfreq"
	PipelineTFIDF   = "tfidf"
)

// PipelineResult holds one pipeline's selection outcome and its accuracy on
// the held-out test split.
type PipelineResult struct {
	Pipeline     string           `json:"pipeline"`
	BestParam    selection.Param  `json:"best_param"`
	CVMean       float64          `json:"cv_mean_accuracy"`
	CVStd        float64          `json:"cv_std_accuracy"`
	CVKappa      float64          `json:"cv_mean_kappa"`
	TestAccuracy float64          `json:"test_accuracy"`
	Scores       selection.Result `json:"scores"`
}

// BaselineResult reports the unigram language-model classifier.
type BaselineResult struct {
	TestAccuracy float64 `json:"test_accuracy"`
}

// Report is the full outcome of one experiment Run.
type Report struct {
	Documents int      `json:"documents"`
	TrainSize int      `json:"train_size"`
	TestSize  int      `json:"test_size"`
	Classes   []string `json:"classes"`
	VocabSize int      `json:"vocab_size"`
	Folds     int      `json:"folds"`

	RawFreq PipelineResult `json:"rawfreq"`
	TFIDF   PipelineResult `json:"tfidf"`
	// Winner names the pipeline with the higher selected cross-validation
	// mean accuracy; ties go to rawfreq.
	Winner string `json:"winner"`

	Baseline *BaselineResult `json:"baseline,omitempty"`
}
