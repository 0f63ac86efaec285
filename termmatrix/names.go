package termmatrix

import (
	"strings"
	"unicode"
)

// FeatureName maps a vocabulary term to a name usable as a model feature
// identifier: letters and digits pass through, every other rune becomes '_',
// and a leading digit gets an "x" prefix. The mapping is pure and
// deterministic; BuildVocabulary rejects any collision instead of resolving
// it silently.
func FeatureName(term string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, term)
	if name == "" {
		return "_"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "x" + name
	}
	return name
}
