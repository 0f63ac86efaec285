package languagemodel

import (
	"math"

	spooky "github.com/dgryski/go-spooky"

	"github.com/doccat/doccat/errors"
	"github.com/doccat/doccat/text"
)

const (
	wordVecLen = 1001
	alpha      = 0.01
)

// Scorer computes p(class|tokens) ~ p(tokens|class) * p(class), with one
// unigram language model per class and the prior taken from the class's share
// of the training documents. It is the sanity-floor baseline next to the
// decision-tree pipelines: no vocabulary, no folds, just token statistics.
type Scorer struct {
	Prior          map[string]float64
	LanguageModels map[string]*LanguageModel
}

// TrainScorer builds a class-conditional unigram scorer from token sequences
// and the label of each sequence.
func TrainScorer(seqs []text.Tokens, labels []string) (*Scorer, error) {
	if len(seqs) != len(labels) {
		return nil, errors.InvalidParamf("%d token sequences for %d labels", len(seqs), len(labels))
	}
	if len(seqs) == 0 {
		return nil, errors.InvalidParamf("no training documents")
	}

	lms := &Scorer{
		Prior:          make(map[string]float64),
		LanguageModels: make(map[string]*LanguageModel),
	}
	for i, seq := range seqs {
		class := labels[i]
		lms.Prior[class]++

		lm, exists := lms.LanguageModels[class]
		if !exists {
			lm = &LanguageModel{}
			lms.LanguageModels[class] = lm
		}
		lm.addTokens(seq)
	}
	lms.train()
	return lms, nil
}

// train converts document counts into log priors and trains each class model.
func (lms *Scorer) train() {
	var sum float64
	for _, c := range lms.Prior {
		sum += c
	}
	logSum := math.Log(sum)
	for class, lm := range lms.LanguageModels {
		lms.Prior[class] = math.Log(lms.Prior[class]) - logSum
		lm.train()
	}
}

// Posterior returns p(class|tokens) for every class.
func (lms *Scorer) Posterior(tokens text.Tokens) map[string]float64 {
	var justScores []float64
	scores := make(map[string]float64)
	for class, prior := range lms.Prior {
		scores[class] = prior + lms.LanguageModels[class].LogLikelihood(tokens)
		justScores = append(justScores, scores[class])
	}
	logSum := logSumExp(justScores)
	for class, s := range scores {
		scores[class] = math.Exp(s - logSum)
	}
	return scores
}

// Classify returns the class with the highest posterior. Score ties go to
// the alphabetically first class name.
func (lms *Scorer) Classify(tokens text.Tokens) string {
	var best string
	bestScore := math.Inf(-1)
	for class, prior := range lms.Prior {
		score := prior + lms.LanguageModels[class].LogLikelihood(tokens)
		if score > bestScore || (score == bestScore && class < best) {
			best = class
			bestScore = score
		}
	}
	return best
}

// LanguageModel is a unigram language model over a fixed-length vector of
// hashed word buckets.
type LanguageModel struct {
	WordHashVec [wordVecLen]float64
}

func (lm *LanguageModel) addTokens(tokens text.Tokens) {
	for _, t := range tokens {
		id := spooky.Hash64([]byte(t))
		lm.WordHashVec[id%wordVecLen]++
	}
}

func (lm *LanguageModel) alphaSmooth() {
	for i := range lm.WordHashVec {
		lm.WordHashVec[i] += alpha
	}
}

func (lm *LanguageModel) normalize() {
	logTotalWordCount := math.Log(sum(lm.WordHashVec[:]))
	for i := range lm.WordHashVec {
		lm.WordHashVec[i] = math.Log(lm.WordHashVec[i]) - logTotalWordCount
	}
}

// train smooths the word counts and converts them to log probabilities.
func (lm *LanguageModel) train() {
	lm.alphaSmooth()
	lm.normalize()
}

// LogLikelihood returns the log likelihood of an array of words, i.e,
// p(W|model) = \prod p(w_1|model) p(w_2|model) ...
func (lm *LanguageModel) LogLikelihood(ws text.Tokens) float64 {
	var score float64
	for _, w := range ws {
		id := spooky.Hash64([]byte(w))
		score += lm.WordHashVec[id%wordVecLen]
	}
	return score
}
