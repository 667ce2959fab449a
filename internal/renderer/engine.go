package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"resumeforge/pkg/models"
)

// RenderMode selects preview chrome (zoom, page-break indicators) or the bare
// print layout the PDF pipeline consumes
type RenderMode string

const (
	ModePreview RenderMode = "preview"
	ModeExport  RenderMode = "export"
)

// Engine renders resume documents into standalone HTML
type Engine struct {
	tmpl *template.Template
}

// NewEngine creates an engine with the resume template parsed once
func NewEngine() *Engine {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}
	return &Engine{
		tmpl: template.Must(template.New("resume").Funcs(funcMap).Parse(resumeTemplate)),
	}
}

// Render produces the full HTML page for a document. Pure: same inputs, same
// output. Sections render in the given order, basics always leads, and empty
// sections are omitted entirely.
func (e *Engine) Render(doc *models.ResumeDocument, settings models.PresentationSettings, order []models.SectionID, mode RenderMode) (string, error) {
	vm := buildViewModel(doc, settings, order, mode)

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, vm); err != nil {
		return "", fmt.Errorf("render resume: %w", err)
	}
	return buf.String(), nil
}

// ===== View model =====

type ContactVM struct {
	Value      string
	Href       string
	BreakAfter bool
}

type LinkVM struct {
	Label      string
	Href       string
	BreakAfter bool
}

type BasicsVM struct {
	Name      string
	Title     string
	Alignment string
	Contacts  []ContactVM
	Links     []LinkVM
}

type ExperienceVM struct {
	Title    string
	Company  string
	Location string
	Period   string
	Summary  template.HTML
}

type EducationVM struct {
	Institution string
	Degree      string
	Field       string
	Period      string
	Summary     template.HTML
}

type ProjectVM struct {
	Name        string
	Description string
	URL         string
	Keywords    []string
	Summary     template.HTML
}

type SkillVM struct {
	Name     string
	Level    string
	Keywords []string
}

type LanguageVM struct {
	Name        string
	Proficiency string
}

type CertificationVM struct {
	Name   string
	Issuer string
	Date   string
	URL    string
}

type AwardVM struct {
	Name    string
	Issuer  string
	Date    string
	Summary template.HTML
}

type VolunteeringVM struct {
	Organization string
	Role         string
	Period       string
	Summary      template.HTML
}

// SectionVM is one rendered section. Kind matches the section id; only the
// matching payload field is populated.
type SectionVM struct {
	ID    string
	Title string
	Kind  string

	Summary        template.HTML
	Experience     []ExperienceVM
	Education      []EducationVM
	Projects       []ProjectVM
	Skills         []SkillVM
	Languages      []LanguageVM
	Certifications []CertificationVM
	Awards         []AwardVM
	Volunteering   []VolunteeringVM
}

// StylesVM carries the resolved presentation values the template interpolates
type StylesVM struct {
	FontFamily       template.CSS
	FontSizePx       float64
	LineHeight       float64
	SectionSpacingPx float64
	PageWidthPx      int
	PageHeightPx     int
	PageMarginPx     int
	PageMarginMM     float64
	PrintableHeight  int
	Zoom             float64
	ShowBreaks       bool
	BreakOverlayCSS  template.CSS
}

type ViewModel struct {
	Mode     string
	Styles   StylesVM
	Basics   BasicsVM
	Sections []SectionVM
}

func buildViewModel(doc *models.ResumeDocument, settings models.PresentationSettings, order []models.SectionID, mode RenderMode) ViewModel {
	marginPx := MMToPx(settings.PageMarginMM)

	vm := ViewModel{
		Mode: string(mode),
		Styles: StylesVM{
			FontFamily:       template.CSS(cssFontFamily(settings.FontFamily, string(settings.FontCategory))),
			FontSizePx:       settings.FontSize,
			LineHeight:       settings.LineHeight,
			SectionSpacingPx: settings.SectionSpacing,
			PageWidthPx:      PageWidthPx(),
			PageHeightPx:     PageHeightPx(),
			PageMarginPx:     marginPx,
			PageMarginMM:     settings.PageMarginMM,
			PrintableHeight:  PageHeightPx() - 2*marginPx,
			Zoom:             settings.Zoom,
			ShowBreaks:       mode == ModePreview && settings.ShowPageBreaks,
		},
		Basics: buildBasicsVM(doc.Basics),
	}
	if vm.Styles.ShowBreaks {
		vm.Styles.BreakOverlayCSS = breakOverlayCSS(marginPx, vm.Styles.PrintableHeight)
	}

	for _, id := range order {
		if !models.IsReorderable(id) || doc.SectionEmpty(id) {
			continue
		}
		vm.Sections = append(vm.Sections, buildSectionVM(doc, id))
	}
	return vm
}

func buildBasicsVM(b models.Basics) BasicsVM {
	alignment := b.Alignment
	if alignment == "" {
		alignment = "start"
	}

	vm := BasicsVM{
		Name:      b.Name,
		Title:     b.Title,
		Alignment: alignment,
	}

	if b.Email.Value != "" {
		vm.Contacts = append(vm.Contacts, ContactVM{
			Value:      b.Email.Value,
			Href:       "mailto:" + b.Email.Value,
			BreakAfter: b.Email.BreakAfter,
		})
	}
	if b.Phone.Value != "" {
		vm.Contacts = append(vm.Contacts, ContactVM{
			Value:      b.Phone.Value,
			Href:       "tel:" + strings.ReplaceAll(b.Phone.Value, " ", ""),
			BreakAfter: b.Phone.BreakAfter,
		})
	}
	if b.Location.Value != "" {
		vm.Contacts = append(vm.Contacts, ContactVM{
			Value:      b.Location.Value,
			BreakAfter: b.Location.BreakAfter,
		})
	}

	for _, l := range b.Links {
		label := l.Label
		if label == "" {
			label = l.URL
		}
		vm.Links = append(vm.Links, LinkVM{Label: label, Href: l.URL, BreakAfter: l.BreakAfter})
	}
	return vm
}

func buildSectionVM(doc *models.ResumeDocument, id models.SectionID) SectionVM {
	sec := SectionVM{
		ID:    string(id),
		Title: doc.SectionTitle(id),
		Kind:  string(id),
	}

	switch id {
	case models.SectionSummary:
		sec.Summary = richHTML(doc.Summary)
	case models.SectionExperience:
		for _, x := range doc.Experience {
			sec.Experience = append(sec.Experience, ExperienceVM{
				Title:    x.Title,
				Company:  x.CompanyName,
				Location: x.Location,
				Period:   formatPeriod(x.StartDate, x.EndDate, x.CurrentlyWorking),
				Summary:  richHTML(x.Summary),
			})
		}
	case models.SectionEducation:
		for _, x := range doc.Education {
			sec.Education = append(sec.Education, EducationVM{
				Institution: x.InstitutionName,
				Degree:      x.Degree,
				Field:       x.FieldOfStudy,
				Period:      formatPeriod(x.StartDate, x.EndDate, x.CurrentlyStudying),
				Summary:     richHTML(x.Summary),
			})
		}
	case models.SectionProjects:
		for _, x := range doc.Projects {
			sec.Projects = append(sec.Projects, ProjectVM{
				Name:        x.Name,
				Description: x.Description,
				URL:         x.URL,
				Keywords:    x.Keywords,
				Summary:     richHTML(x.Summary),
			})
		}
	case models.SectionSkills:
		for _, x := range doc.Skills {
			sec.Skills = append(sec.Skills, SkillVM{Name: x.Name, Level: x.Level, Keywords: x.Keywords})
		}
	case models.SectionLanguages:
		for _, x := range doc.Languages {
			sec.Languages = append(sec.Languages, LanguageVM{Name: x.Name, Proficiency: x.Proficiency})
		}
	case models.SectionCertifications:
		for _, x := range doc.Certifications {
			sec.Certifications = append(sec.Certifications, CertificationVM{
				Name: x.Name, Issuer: x.Issuer, Date: x.Date, URL: x.URL,
			})
		}
	case models.SectionAwards:
		for _, x := range doc.Awards {
			sec.Awards = append(sec.Awards, AwardVM{
				Name: x.Name, Issuer: x.Issuer, Date: x.Date, Summary: richHTML(x.Summary),
			})
		}
	case models.SectionVolunteering:
		for _, x := range doc.Volunteering {
			sec.Volunteering = append(sec.Volunteering, VolunteeringVM{
				Organization: x.Organization,
				Role:         x.Role,
				Period:       formatPeriod(x.StartDate, x.EndDate, false),
				Summary:      richHTML(x.Summary),
			})
		}
	}
	return sec
}

// richHTML sanitizes user-authored rich text and marks it safe for direct
// interpolation. Safety comes from the sanitizer allow-list, nothing else.
func richHTML(raw string) template.HTML {
	return template.HTML(SanitizeRichText(raw))
}

// breakOverlayCSS positions the indicator overlay over the printable area and
// draws one dashed-red line per physical page boundary
func breakOverlayCSS(marginPx, printableHeight int) template.CSS {
	return template.CSS(fmt.Sprintf(
		"top: %dpx; bottom: %dpx; background-image: repeating-linear-gradient(to bottom, transparent 0px, transparent %dpx, rgba(220, 53, 69, 0.55) %dpx, rgba(220, 53, 69, 0.55) %dpx);",
		marginPx, marginPx, printableHeight-1, printableHeight-1, printableHeight,
	))
}

// formatPeriod joins a start and end date with an en dash, substituting
// "Present" while the entry is marked current
func formatPeriod(start, end string, current bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}
