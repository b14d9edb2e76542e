package porter

import (
	"strings"

	"github.com/reiver/go-porterstemmer"
)

// Stemmer applies the Porter (1980) suffix-stripping rules.
type Stemmer struct{}

func New() *Stemmer {
	return &Stemmer{}
}

// Stem returns word unchanged when the library cannot stem it; StemString
// indexes past the start of inputs such as "eed".
func (s *Stemmer) Stem(word string) (stem string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			stem = strings.ToLower(word)
		}
	}()
	return porterstemmer.StemString(word)
}
