package usecase

import "testing"

func TestExtractGrade(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{name: "cgpa with colon", text: "CGPA: 8.5/10", want: 8.5, found: true},
		{name: "gpa without separator", text: "GPA 9", want: 9, found: true},
		{name: "two decimals", text: "Overall cgpa:9.25", want: 9.25, found: true},
		{name: "aggregate label", text: "Aggregate: 7.8 in final year", want: 7.8, found: true},
		{name: "score label", text: "score 6.5", want: 6.5, found: true},
		{name: "grade point average", text: "Grade Point Average 8.1", want: 8.1, found: true},
		{name: "no label", text: "Bachelor of Technology, 2024", found: false},
		{name: "empty", text: "", found: false},
		{name: "out of range is absent", text: "cgpa: 15", found: false},
		{name: "out of range falls through to next pattern", text: "CGPA: 15, aggregate 8.2", want: 8.2, found: true},
		{name: "first match per pattern only", text: "gpa 12 and later gpa 8", found: false},
		{name: "boundary ten", text: "cgpa 10.0", want: 10, found: true},
		{name: "boundary zero", text: "gpa: 0", want: 0, found: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractGrade(tc.text)
			if ok != tc.found {
				t.Fatalf("ExtractGrade(%q) found = %v, want %v (value %v)", tc.text, ok, tc.found, got)
			}
			if ok && got != tc.want {
				t.Fatalf("ExtractGrade(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractGradeIdempotent(t *testing.T) {
	text := "Cumulative Grade Point Average: 8.76 / 10"
	v1, ok1 := ExtractGrade(text)
	v2, ok2 := ExtractGrade(text)
	if v1 != v2 || ok1 != ok2 {
		t.Fatalf("results differ: (%v,%v) vs (%v,%v)", v1, ok1, v2, ok2)
	}
	if !ok1 || v1 != 8.76 {
		t.Fatalf("expected 8.76, got (%v,%v)", v1, ok1)
	}
}
