package text

import (
	"bufio"
	"bytes"
	"strings"
	"unicode"

	porterstemmer "github.com/kiteco/go-porterstemmer"
)

// TokenFunc defines a type of function that takes in an array of tokens and
// returns an array of tokens.
type TokenFunc func(Tokens) Tokens

// Tokens represents a slice of strings
type Tokens []string

// Processor consists of a list of text processing rules.
type Processor struct {
	filters []TokenFunc
}

// DocumentProcessor normalizes the token stream of one document, in the order the
// classification pipeline depends on: drop numeric and symbol artifacts, lowercase,
// remove stop words, stem.
var DocumentProcessor = NewProcessor(RemoveNumeric, Lower, RemoveStopWords, Stem)

// NewProcessor takes a list of TokenFuncs to instantiate a Processor.
func NewProcessor(funcs ...TokenFunc) *Processor {
	f := &Processor{}
	for _, fn := range funcs {
		f.filters = append(f.filters, fn)
	}
	return f
}

// Apply applies a list of TokenFunc to transform the input tokens
func (f *Processor) Apply(ts Tokens) Tokens {
	for _, fn := range f.filters {
		ts = fn(ts)
	}
	return ts
}

// Tokenize segments a text string into word-like tokens. Punctuation and symbols
// delimit tokens; the tokens themselves are returned untouched.
func Tokenize(s string) Tokens {
	s = Normalize(s)

	buf := bytes.NewBufferString(s)
	scanner := bufio.NewScanner(buf)
	scanner.Split(bufio.ScanWords)

	var tokens Tokens
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	return tokens
}

// TokenizeDocument turns one raw document into its normalized term sequence:
// Tokenize followed by DocumentProcessor. A document whose text is empty or
// entirely filtered away yields an empty sequence, not an error.
func TokenizeDocument(s string) Tokens {
	return DocumentProcessor.Apply(Tokenize(s))
}

// RemoveNumeric drops tokens that contain no letter: purely numeric tokens and
// whatever symbol artifacts survived segmentation.
func RemoveNumeric(ts Tokens) Tokens {
	var filteredTokens Tokens
	for _, t := range ts {
		if strings.IndexFunc(t, unicode.IsLetter) >= 0 {
			filteredTokens = append(filteredTokens, t)
		}
	}
	return filteredTokens
}

// RemoveStopWords removes stop words from a TokenStream
func RemoveStopWords(ts Tokens) Tokens {
	var filteredTokens Tokens
	for _, t := range ts {
		if !skip(t) {
			filteredTokens = append(filteredTokens, t)
		}
	}
	return filteredTokens
}

// Lower converts all tokens to lower case
func Lower(ts Tokens) Tokens {
	for i, t := range ts {
		ts[i] = strings.ToLower(t)
	}
	return ts
}

// Stem extracts and returns the stems of each token in the input token stream
func Stem(ts Tokens) Tokens {
	for i, t := range ts {
		ts[i] = porterstemmer.StemString(t)
	}
	return ts
}

// Uniquify returns the set of unique tokens in a token stream
func Uniquify(ts Tokens) Tokens {
	var uniqueTokens Tokens
	seen := make(map[string]struct{})
	for _, t := range ts {
		if _, exists := seen[t]; !exists {
			uniqueTokens = append(uniqueTokens, t)
			seen[t] = struct{}{}
		}
	}
	return uniqueTokens
}

var stopWords = StopWords()

// skip determines whether a word should be removed (or skipped).
func skip(w string) bool {
	_, skip := stopWords[w]
	return skip
}
