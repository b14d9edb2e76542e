package domain

type KeywordCategory struct {
	Name     string
	Weight   float64
	Keywords []string
}

// DefaultKeywordCategories returns the resume keyword table. Weights sum to 1.
// A fresh slice is returned on every call so callers cannot mutate the table.
func DefaultKeywordCategories() []KeywordCategory {
	return []KeywordCategory{
		{
			Name:   "technical_skills",
			Weight: 0.35,
			Keywords: []string{
				"python", "java", "javascript", "html", "css", "sql", "machine learning",
				"data analysis", "aws", "docker", "git", "react", "node", "mongodb",
				"c++", "numpy", "pandas", "tensorflow", "pytorch", "spring", "django",
			},
		},
		{
			Name:   "soft_skills",
			Weight: 0.25,
			Keywords: []string{
				"leadership", "teamwork", "communication", "problem solving",
				"analytical", "initiative", "project management",
			},
		},
		{
			Name:     "education",
			Weight:   0.2,
			Keywords: []string{"bachelor", "master", "phd", "degree", "university", "college"},
		},
		{
			Name:   "experience",
			Weight: 0.2,
			Keywords: []string{
				"experience", "internship", "project", "developed", "implemented",
				"managed", "led", "created", "achieved",
			},
		},
	}
}
