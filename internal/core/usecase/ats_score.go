package usecase

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
	"github.com/kirillkom/placement-predictor/internal/core/ports"
)

const (
	// DefaultCalibrationBoost lifts the raw weighted sum towards the scores
	// commercial ATS tools report. It is a tuning knob, not a derived value.
	DefaultCalibrationBoost = 1.15
	// DefaultFeedbackThreshold is the match ratio below which a category gets
	// an improvement suggestion.
	DefaultFeedbackThreshold = 0.4

	maxATSScore = 100.0
	// Words this short are left unstemmed.
	minStemLength = 3
)

type ScoringTunables struct {
	CalibrationBoost  float64
	FeedbackThreshold float64
	// PhraseMatching lets a multi-word keyword match a contiguous run of
	// stemmed words. When off, a multi-word keyword is looked up as one
	// token and never matches.
	PhraseMatching bool
}

func DefaultScoringTunables() ScoringTunables {
	return ScoringTunables{
		CalibrationBoost:  DefaultCalibrationBoost,
		FeedbackThreshold: DefaultFeedbackThreshold,
	}
}

func (t ScoringTunables) normalize() ScoringTunables {
	out := t
	def := DefaultScoringTunables()
	if out.CalibrationBoost <= 0 || math.IsNaN(out.CalibrationBoost) || math.IsInf(out.CalibrationBoost, 0) {
		out.CalibrationBoost = def.CalibrationBoost
	}
	if out.FeedbackThreshold <= 0 || out.FeedbackThreshold > 1 || math.IsNaN(out.FeedbackThreshold) {
		out.FeedbackThreshold = def.FeedbackThreshold
	}
	return out
}

type stemmedCategory struct {
	category domain.KeywordCategory
	// phrases holds one stemmed word sequence per keyword.
	phrases [][]string
}

// CategoryScorer scores text against weighted keyword categories. Keywords
// are stemmed once at construction; the scorer is read-only afterwards and
// safe for concurrent use.
type CategoryScorer struct {
	stemmer    ports.Stemmer
	tunables   ScoringTunables
	categories []stemmedCategory
}

func NewCategoryScorer(stemmer ports.Stemmer, categories []domain.KeywordCategory, tunables ScoringTunables) *CategoryScorer {
	s := &CategoryScorer{
		stemmer:  stemmer,
		tunables: tunables.normalize(),
	}
	s.categories = make([]stemmedCategory, 0, len(categories))
	for _, category := range categories {
		phrases := make([][]string, 0, len(category.Keywords))
		for _, keyword := range category.Keywords {
			phrase := s.stemTokens(tokenizeWords(keyword))
			if len(phrase) == 0 {
				continue
			}
			phrases = append(phrases, phrase)
		}
		s.categories = append(s.categories, stemmedCategory{category: category, phrases: phrases})
	}
	return s
}

func (s *CategoryScorer) Tunables() ScoringTunables {
	return s.tunables
}

// Score computes per-category scores, the calibrated composite and feedback.
func (s *CategoryScorer) Score(text string) domain.ATSReport {
	tokens := s.stemTokens(tokenizeWords(text))
	index := newTokenIndex(tokens)

	report := domain.ATSReport{
		Categories: make([]domain.CategoryScore, 0, len(s.categories)),
		Feedback:   []string{},
	}

	var raw float64
	for _, sc := range s.categories {
		matched := 0
		for _, phrase := range sc.phrases {
			if len(phrase) > 1 && !s.tunables.PhraseMatching {
				continue
			}
			if index.contains(phrase) {
				matched++
			}
		}
		total := len(sc.category.Keywords)
		ratio := 0.0
		if total > 0 {
			ratio = float64(matched) / float64(total)
		}
		score := ratio * 100
		raw += score * sc.category.Weight

		report.Categories = append(report.Categories, domain.CategoryScore{
			Name:    sc.category.Name,
			Weight:  sc.category.Weight,
			Matched: matched,
			Total:   total,
			Ratio:   ratio,
			Score:   score,
		})

		if ratio < s.tunables.FeedbackThreshold {
			report.Feedback = append(report.Feedback, feedbackFor(sc.category.Name))
		}
	}

	report.Composite = s.calibrate(raw)
	return report
}

func (s *CategoryScorer) calibrate(raw float64) float64 {
	calibrated := math.Round(raw*s.tunables.CalibrationBoost*100) / 100
	return math.Min(calibrated, maxATSScore)
}

func (s *CategoryScorer) stemTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len([]rune(token)) < minStemLength || s.stemmer == nil {
			out = append(out, token)
			continue
		}
		out = append(out, s.stemmer.Stem(token))
	}
	return out
}

func feedbackFor(category string) string {
	return fmt.Sprintf("Consider adding more %s to your resume.", strings.ReplaceAll(category, "_", " "))
}

// tokenIndex answers "does this stemmed word sequence occur in the text".
type tokenIndex struct {
	tokens    []string
	positions map[string][]int
}

func newTokenIndex(tokens []string) tokenIndex {
	positions := make(map[string][]int, len(tokens))
	for i, token := range tokens {
		positions[token] = append(positions[token], i)
	}
	return tokenIndex{tokens: tokens, positions: positions}
}

func (ix tokenIndex) contains(phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
	for _, start := range ix.positions[phrase[0]] {
		if start+len(phrase) > len(ix.tokens) {
			continue
		}
		found := true
		for offset := 1; offset < len(phrase); offset++ {
			if ix.tokens[start+offset] != phrase[offset] {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

// tokenizeWords lower-cases s and splits it on anything that is not a
// letter, digit, '+' or '#', so "C++" and "C#" survive as tokens.
func tokenizeWords(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, 64)
	var b strings.Builder
	for _, r := range s {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}
