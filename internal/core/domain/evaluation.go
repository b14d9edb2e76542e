package domain

import "io"

type Outcome string

const (
	OutcomeExcellent        Outcome = "excellent"
	OutcomeGoodChance       Outcome = "good_chance"
	OutcomeNeedsImprovement Outcome = "needs_improvement"
)

type ValueSource string

const (
	SourceExtracted ValueSource = "extracted"
	SourceResume    ValueSource = "resume"
	SourceManual    ValueSource = "manual"
)

type Prediction struct {
	Outcome     Outcome `json:"outcome"`
	Message     string  `json:"message"`
	Competitive bool    `json:"competitive"`
}

type CategoryScore struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Matched int     `json:"matched"`
	Total   int     `json:"total"`
	Ratio   float64 `json:"ratio"`
	Score   float64 `json:"score"`
}

type ATSReport struct {
	Categories []CategoryScore `json:"categories"`
	Composite  float64         `json:"composite"`
	Feedback   []string        `json:"feedback"`
}

// EvaluationRequest carries one form submission. Filename is empty when no
// resume was uploaded; GradeInput and ScoreInput are the raw manual fields.
type EvaluationRequest struct {
	Filename   string
	Content    io.Reader
	GradeInput string
	ScoreInput string
}

func (r EvaluationRequest) HasResume() bool {
	return r.Filename != "" && r.Content != nil
}

type Evaluation struct {
	ResumeUploaded bool            `json:"resume_uploaded"`
	Grade          float64         `json:"cgpa"`
	GradeSource    ValueSource     `json:"cgpa_source"`
	ATSScore       float64         `json:"ats_score"`
	ScoreSource    ValueSource     `json:"ats_score_source"`
	Prediction     Prediction      `json:"prediction"`
	Feedback       []string        `json:"feedback"`
	Categories     []CategoryScore `json:"categories,omitempty"`
}
