package models

// DimensionScore is one scored review dimension with model feedback
type DimensionScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Recommendation is a prioritized improvement suggestion from the CV review
type Recommendation struct {
	Priority  string `json:"priority"` // "high", "medium", "low"
	Section   string `json:"section"`  // Which section this applies to
	Current   string `json:"current"`  // Current state/content
	Suggested string `json:"suggested"`
	Reasoning string `json:"reasoning"`
}

// ReviewAnalysis is the fixed-shape result of the CV review feature
type ReviewAnalysis struct {
	OverallScore    int              `json:"overall_score"`
	JobFitPercent   int              `json:"job_fit_percent"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	Dimensions      []DimensionScore `json:"dimensions"`
	Recommendations []Recommendation `json:"recommendations"`
	NextSteps       []string         `json:"next_steps"`
}
