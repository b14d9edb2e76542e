package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	MinGrade = 0.0
	MaxGrade = 10.0
)

// gradePatterns are tried in order; the first one whose first match parses
// into [MinGrade, MaxGrade] wins.
var gradePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:cgpa|gpa)[\s:]*([0-9]{1,2}(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?:cgpa|gpa)[\s:]*([0-9]{1,2}(?:\.[0-9]{1,2})?)\s*/\s*10`),
	regexp.MustCompile(`(?:aggregate|score)[\s:]*([0-9]{1,2}(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`grade point average[\s:]*([0-9]{1,2}(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`cumulative grade point average[\s:]*([0-9]{1,2}(?:\.[0-9]{1,2})?)`),
}

// ExtractGrade looks for a CGPA-like value in resume text. The second return
// value is false when no pattern yields an in-range number.
func ExtractGrade(text string) (float64, bool) {
	lower := strings.ToLower(text)
	for _, pattern := range gradePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if value < MinGrade || value > MaxGrade {
			continue
		}
		return value, true
	}
	return 0, false
}
