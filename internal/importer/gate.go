package importer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"resumeforge/pkg/models"
)

// The plausibility gate decides whether unstructured input looks like a
// resume before any model call is spent on it. Six cheap signals are scored;
// fewer than two, or a text dominated by off-domain vocabulary, is rejected.

const minPlausibilitySignals = 2

var (
	emailPattern = regexp.MustCompile(`[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d[\d\s().-]{7,}\d)`)
	yearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// sectionHeadings are the words resumes use to head their blocks
var sectionHeadings = []string{
	"experience", "education", "skills", "summary", "projects",
	"certifications", "awards", "languages", "volunteer", "objective",
	"employment", "qualifications", "publications", "references",
}

// positiveLexicon is resume-domain vocabulary beyond the headings
var positiveLexicon = []string{
	"university", "degree", "bachelor", "master", "internship",
	"managed", "developed", "led", "responsibilities", "team",
	"engineer", "analyst", "designed", "implemented", "graduated",
}

// negativeLexicon marks documents that are clearly something else
var negativeLexicon = []string{
	"invoice", "receipt", "order total", "terms of service",
	"privacy policy", "ingredients", "recipe", "lorem ipsum",
	"dear sir", "unsubscribe", "shipping address",
}

// GateResult is the outcome of one plausibility check
type GateResult struct {
	Plausible bool     `json:"plausible"`
	Score     int      `json:"score"`
	Signals   []string `json:"signals"`
	Reason    string   `json:"reason,omitempty"`
}

// CheckPlausibility scores raw text against the resume signals. HTML input is
// reduced to its visible text first.
func CheckPlausibility(raw string) GateResult {
	text := visibleText(raw)
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	var result GateResult

	if emailPattern.MatchString(text) {
		result.Signals = append(result.Signals, "email")
	}
	if phonePattern.MatchString(text) {
		result.Signals = append(result.Signals, "phone")
	}
	if yearPattern.MatchString(text) {
		result.Signals = append(result.Signals, "dates")
	}
	if countHits(lower, sectionHeadings) >= 2 {
		result.Signals = append(result.Signals, "section_headings")
	}
	if countHits(lower, positiveLexicon) >= 3 {
		result.Signals = append(result.Signals, "resume_vocabulary")
	}
	if len(words) >= 50 && len(words) <= 5000 {
		result.Signals = append(result.Signals, "length")
	}

	result.Score = len(result.Signals)

	negatives := countHits(lower, negativeLexicon)
	switch {
	case result.Score < minPlausibilitySignals:
		result.Reason = "content does not look like a resume"
	case negatives >= 2 && negatives >= result.Score:
		result.Reason = "content looks like a different kind of document"
	default:
		result.Plausible = true
	}
	return result
}

// CheckDocumentPlausibility scores an extracted document on its structure.
// The same 2-of-6 rule as the text gate, applied after the model call so the
// vision path (which never sees raw text) is gated too.
func CheckDocumentPlausibility(doc *models.ResumeDocument) GateResult {
	var result GateResult

	if doc.Basics.Email.Value != "" || doc.Basics.Phone.Value != "" || len(doc.Basics.Links) > 0 {
		result.Signals = append(result.Signals, "contact_info")
	}
	for _, exp := range doc.Experience {
		if exp.CompanyName != "" || exp.Title != "" {
			result.Signals = append(result.Signals, "experience")
			break
		}
	}
	for _, edu := range doc.Education {
		if edu.InstitutionName != "" || edu.Degree != "" {
			result.Signals = append(result.Signals, "education")
			break
		}
	}
	for _, proj := range doc.Projects {
		if proj.Name != "" || proj.Description != "" {
			result.Signals = append(result.Signals, "projects")
			break
		}
	}
	for _, skill := range doc.Skills {
		if skill.Name != "" {
			result.Signals = append(result.Signals, "skills")
			break
		}
	}
	if len(strings.Fields(doc.Summary)) >= 10 {
		result.Signals = append(result.Signals, "summary")
	}

	result.Score = len(result.Signals)
	if result.Score < minPlausibilitySignals {
		result.Reason = "extracted content does not look like a resume"
	} else {
		result.Plausible = true
	}
	return result
}

func countHits(lower string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return hits
}

// visibleText reduces HTML input to its rendered text; plain text passes
// through untouched
func visibleText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, "<") || !strings.Contains(trimmed, ">") {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	doc.Find("script, style, noscript").Remove()
	text := doc.Text()
	if strings.TrimSpace(text) == "" {
		return raw
	}
	return text
}
