package store

import (
	"fmt"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// Command is one typed mutation of the resume document. All writes to a
// session's document flow through commands, so invalid partial shapes are
// rejected before anything is merged.
type Command interface {
	// apply mutates the document in place and returns the id of the affected
	// list item, if any
	apply(doc *models.ResumeDocument) (string, error)
}

// SetBasics replaces the basics header wholesale
type SetBasics struct {
	Basics models.Basics
}

func (c SetBasics) apply(doc *models.ResumeDocument) (string, error) {
	doc.Basics = c.Basics
	return "", nil
}

// SetSummary replaces the rich-text summary
type SetSummary struct {
	Summary string
}

func (c SetSummary) apply(doc *models.ResumeDocument) (string, error) {
	doc.Summary = c.Summary
	return "", nil
}

// SetSectionTitle overrides the display name of one section. An empty title
// restores the English default.
type SetSectionTitle struct {
	Section models.SectionID
	Title   string
}

func (c SetSectionTitle) apply(doc *models.ResumeDocument) (string, error) {
	if !models.IsReorderable(c.Section) {
		return "", fmt.Errorf("section %q has no title override", c.Section)
	}
	if doc.SectionTitles == nil {
		doc.SectionTitles = make(map[models.SectionID]string)
	}
	if c.Title == "" {
		delete(doc.SectionTitles, c.Section)
	} else {
		doc.SectionTitles[c.Section] = c.Title
	}
	return "", nil
}

// ReplaceDocument swaps the entire document, used by the import pipeline.
// Replacement is all-or-nothing; the caller validates first.
type ReplaceDocument struct {
	Document models.ResumeDocument
}

func (c ReplaceDocument) apply(doc *models.ResumeDocument) (string, error) {
	*doc = c.Document
	return "", nil
}

// AppendListItem appends one item to a list section with a freshly generated
// unique id. The item payload must match the section's concrete type.
type AppendListItem struct {
	Section models.SectionID
	Item    interface{}
}

func (c AppendListItem) apply(doc *models.ResumeDocument) (string, error) {
	id := utils.GenerateItemID()

	switch c.Section {
	case models.SectionExperience:
		item, ok := c.Item.(models.Experience)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Experience = append(doc.Experience, item)
	case models.SectionEducation:
		item, ok := c.Item.(models.Education)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Education = append(doc.Education, item)
	case models.SectionProjects:
		item, ok := c.Item.(models.Project)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Projects = append(doc.Projects, item)
	case models.SectionSkills:
		item, ok := c.Item.(models.Skill)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Skills = append(doc.Skills, item)
	case models.SectionLanguages:
		item, ok := c.Item.(models.Language)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Languages = append(doc.Languages, item)
	case models.SectionCertifications:
		item, ok := c.Item.(models.Certification)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Certifications = append(doc.Certifications, item)
	case models.SectionAwards:
		item, ok := c.Item.(models.Award)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Awards = append(doc.Awards, item)
	case models.SectionVolunteering:
		item, ok := c.Item.(models.Volunteering)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		item.ID = id
		doc.Volunteering = append(doc.Volunteering, item)
	default:
		return "", fmt.Errorf("section %q is not a list section", c.Section)
	}

	return id, nil
}

// ReplaceListItem replaces the item with the given id, preserving that id
type ReplaceListItem struct {
	Section models.SectionID
	ItemID  string
	Item    interface{}
}

func (c ReplaceListItem) apply(doc *models.ResumeDocument) (string, error) {
	switch c.Section {
	case models.SectionExperience:
		item, ok := c.Item.(models.Experience)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Experience {
			if doc.Experience[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Experience[i] = item
				return c.ItemID, nil
			}
		}
	case models.SectionEducation:
		item, ok := c.Item.(models.Education)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Education {
			if doc.Education[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Education[i] = item
				return c.ItemID, nil
			}
		}
	case models.SectionProjects:
		item, ok := c.Item.(models.Project)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Projects {
			if doc.Projects[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Projects[i] = item
				return c.ItemID, nil
			}
		}
	case models.SectionSkills:
		item, ok := c.Item.(models.Skill)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Skills {
			if doc.Skills[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Skills[i] = item
				return c.ItemID, nil
			}
		}
	case models.SectionLanguages:
		item, ok := c.Item.(models.Language)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Languages {
			if doc.Languages[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Languages[i] = item
				return c.ItemID, nil
			}
		}
	case models.SectionCertifications:
		item, ok := c.Item.(models.Certification)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Certifications {
			if doc.Certifications[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Certifications[i] = item
				return c.ItemID, nil
			}
		}
	case models.SectionAwards:
		item, ok := c.Item.(models.Award)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Awards {
			if doc.Awards[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Awards[i] = item
				return c.ItemID, nil
			}
		}
	case models.SectionVolunteering:
		item, ok := c.Item.(models.Volunteering)
		if !ok {
			return "", wrongItemType(c.Section, c.Item)
		}
		for i := range doc.Volunteering {
			if doc.Volunteering[i].ID == c.ItemID {
				item.ID = c.ItemID
				doc.Volunteering[i] = item
				return c.ItemID, nil
			}
		}
	default:
		return "", fmt.Errorf("section %q is not a list section", c.Section)
	}

	return "", fmt.Errorf("item %q not found in section %q", c.ItemID, c.Section)
}

// RemoveListItem removes the item with the given id. The id is retired and
// never reassigned.
type RemoveListItem struct {
	Section models.SectionID
	ItemID  string
}

func (c RemoveListItem) apply(doc *models.ResumeDocument) (string, error) {
	switch c.Section {
	case models.SectionExperience:
		for i := range doc.Experience {
			if doc.Experience[i].ID == c.ItemID {
				doc.Experience = append(doc.Experience[:i], doc.Experience[i+1:]...)
				return c.ItemID, nil
			}
		}
	case models.SectionEducation:
		for i := range doc.Education {
			if doc.Education[i].ID == c.ItemID {
				doc.Education = append(doc.Education[:i], doc.Education[i+1:]...)
				return c.ItemID, nil
			}
		}
	case models.SectionProjects:
		for i := range doc.Projects {
			if doc.Projects[i].ID == c.ItemID {
				doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
				return c.ItemID, nil
			}
		}
	case models.SectionSkills:
		for i := range doc.Skills {
			if doc.Skills[i].ID == c.ItemID {
				doc.Skills = append(doc.Skills[:i], doc.Skills[i+1:]...)
				return c.ItemID, nil
			}
		}
	case models.SectionLanguages:
		for i := range doc.Languages {
			if doc.Languages[i].ID == c.ItemID {
				doc.Languages = append(doc.Languages[:i], doc.Languages[i+1:]...)
				return c.ItemID, nil
			}
		}
	case models.SectionCertifications:
		for i := range doc.Certifications {
			if doc.Certifications[i].ID == c.ItemID {
				doc.Certifications = append(doc.Certifications[:i], doc.Certifications[i+1:]...)
				return c.ItemID, nil
			}
		}
	case models.SectionAwards:
		for i := range doc.Awards {
			if doc.Awards[i].ID == c.ItemID {
				doc.Awards = append(doc.Awards[:i], doc.Awards[i+1:]...)
				return c.ItemID, nil
			}
		}
	case models.SectionVolunteering:
		for i := range doc.Volunteering {
			if doc.Volunteering[i].ID == c.ItemID {
				doc.Volunteering = append(doc.Volunteering[:i], doc.Volunteering[i+1:]...)
				return c.ItemID, nil
			}
		}
	default:
		return "", fmt.Errorf("section %q is not a list section", c.Section)
	}

	return "", fmt.Errorf("item %q not found in section %q", c.ItemID, c.Section)
}

func wrongItemType(section models.SectionID, item interface{}) error {
	return fmt.Errorf("item payload %T does not match section %q", item, section)
}
