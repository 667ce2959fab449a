package models

// SectionID identifies one reorderable/renderable block of a resume
type SectionID string

const (
	SectionBasics         SectionID = "basics"
	SectionSummary        SectionID = "summary"
	SectionExperience     SectionID = "experience"
	SectionEducation      SectionID = "education"
	SectionProjects       SectionID = "projects"
	SectionSkills         SectionID = "skills"
	SectionLanguages      SectionID = "languages"
	SectionCertifications SectionID = "certifications"
	SectionAwards         SectionID = "awards"
	SectionVolunteering   SectionID = "volunteering"
)

// ReorderableSections is the closed set of section ids the user may reorder.
// Basics is pinned first and never part of the sequence.
var ReorderableSections = []SectionID{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionSkills,
	SectionLanguages,
	SectionCertifications,
	SectionAwards,
	SectionVolunteering,
}

// DefaultSectionTitles maps section ids to their English display names
var DefaultSectionTitles = map[SectionID]string{
	SectionSummary:        "Summary",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionProjects:       "Projects",
	SectionSkills:         "Skills",
	SectionLanguages:      "Languages",
	SectionCertifications: "Certifications",
	SectionAwards:         "Awards",
	SectionVolunteering:   "Volunteering",
}

// IsReorderable reports whether the given id belongs to the reorderable set
func IsReorderable(id SectionID) bool {
	for _, s := range ReorderableSections {
		if s == id {
			return true
		}
	}
	return false
}

// ContactField is a single contact value with an optional line-break display flag
type ContactField struct {
	Value      string `json:"value"`
	BreakAfter bool   `json:"break_after,omitempty"`
}

// Link represents one external link in the basics header
type Link struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	URL        string `json:"url" validate:"omitempty,absolute_url"`
	BreakAfter bool   `json:"break_after,omitempty"`
}

// Basics holds the resume header: identity, contact fields and alignment
type Basics struct {
	Name      string       `json:"name" validate:"required,min=1"`
	Title     string       `json:"title"`
	Email     ContactField `json:"email"`
	Phone     ContactField `json:"phone"`
	Location  ContactField `json:"location"`
	Links     []Link       `json:"links" validate:"dive"`
	Alignment string       `json:"alignment" validate:"omitempty,oneof=start center end"`
}

// Experience represents one work experience entry
type Experience struct {
	ID               string `json:"id"`
	CompanyName      string `json:"company_name" validate:"required,min=1"`
	Title            string `json:"title" validate:"required,min=1"`
	Location         string `json:"location"`
	StartDate        string `json:"start_date" validate:"required,min=1"`
	EndDate          string `json:"end_date"`
	CurrentlyWorking bool   `json:"currently_working"`
	Summary          string `json:"summary"`
}

// Education represents one education entry
type Education struct {
	ID                string `json:"id"`
	InstitutionName   string `json:"institution_name" validate:"required,min=1"`
	Degree            string `json:"degree"`
	FieldOfStudy      string `json:"field_of_study"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	CurrentlyStudying bool   `json:"currently_studying"`
	Summary           string `json:"summary"`
}

// Project represents one project entry with an ordered keyword list
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required,min=1"`
	Description string   `json:"description"`
	URL         string   `json:"url" validate:"omitempty,absolute_url"`
	Keywords    []string `json:"keywords"`
	Summary     string   `json:"summary"`
}

// Skill represents one skill group with an ordered keyword list
type Skill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" validate:"required,min=1"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// Language represents one spoken language entry
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,min=1"`
	Proficiency string `json:"proficiency"`
}

// Certification represents one certification entry
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required,min=1"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url" validate:"omitempty,absolute_url"`
}

// Award represents one award entry
type Award struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required,min=1"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// Volunteering represents one volunteering entry
type Volunteering struct {
	ID           string `json:"id"`
	Organization string `json:"organization" validate:"required,min=1"`
	Role         string `json:"role"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Summary      string `json:"summary"`
}

// ResumeDocument is the canonical, user-owned resume content.
// Every list item carries a unique id assigned at creation and never reused
// after deletion.
type ResumeDocument struct {
	Basics         Basics               `json:"basics"`
	Summary        string               `json:"summary"`
	Experience     []Experience         `json:"experience" validate:"dive"`
	Education      []Education          `json:"education" validate:"dive"`
	Projects       []Project            `json:"projects" validate:"dive"`
	Skills         []Skill              `json:"skills" validate:"dive"`
	Languages      []Language           `json:"languages" validate:"dive"`
	Certifications []Certification      `json:"certifications" validate:"dive"`
	Awards         []Award              `json:"awards" validate:"dive"`
	Volunteering   []Volunteering       `json:"volunteering" validate:"dive"`
	SectionTitles  map[SectionID]string `json:"section_titles,omitempty"`
}

// SectionTitle returns the display title for a section, falling back to the
// English default when no override is set
func (d *ResumeDocument) SectionTitle(id SectionID) string {
	if d.SectionTitles != nil {
		if t, ok := d.SectionTitles[id]; ok && t != "" {
			return t
		}
	}
	return DefaultSectionTitles[id]
}

// SectionEmpty reports whether the backing list/field of a section holds no
// renderable content. Empty sections are omitted from the preview entirely.
func (d *ResumeDocument) SectionEmpty(id SectionID) bool {
	switch id {
	case SectionBasics:
		return false
	case SectionSummary:
		return d.Summary == ""
	case SectionExperience:
		return len(d.Experience) == 0
	case SectionEducation:
		return len(d.Education) == 0
	case SectionProjects:
		return len(d.Projects) == 0
	case SectionSkills:
		return len(d.Skills) == 0
	case SectionLanguages:
		return len(d.Languages) == 0
	case SectionCertifications:
		return len(d.Certifications) == 0
	case SectionAwards:
		return len(d.Awards) == 0
	case SectionVolunteering:
		return len(d.Volunteering) == 0
	default:
		return true
	}
}

// ResumeEnvelope is the self-export format: the one JSON object this service
// produces for "download as JSON" and accepts back through structured import
type ResumeEnvelope struct {
	Document     ResumeDocument       `json:"document"`
	Settings     PresentationSettings `json:"settings"`
	SectionOrder []SectionID          `json:"section_order"`
}
