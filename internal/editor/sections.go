package editor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"resumeforge/pkg/models"
)

// ListSections is the set of sections backed by an item list. Basics and
// summary are singular and edited through their own commands.
var ListSections = []models.SectionID{
	models.SectionExperience,
	models.SectionEducation,
	models.SectionProjects,
	models.SectionSkills,
	models.SectionLanguages,
	models.SectionCertifications,
	models.SectionAwards,
	models.SectionVolunteering,
}

// IsListSection reports whether the section holds a list of items
func IsListSection(section models.SectionID) bool {
	for _, s := range ListSections {
		if s == section {
			return true
		}
	}
	return false
}

// EmptyItem returns a zero-valued item of the section's concrete type, used
// to prefill the dialog for a new entry
func EmptyItem(section models.SectionID) (interface{}, error) {
	switch section {
	case models.SectionExperience:
		return models.Experience{}, nil
	case models.SectionEducation:
		return models.Education{}, nil
	case models.SectionProjects:
		return models.Project{}, nil
	case models.SectionSkills:
		return models.Skill{}, nil
	case models.SectionLanguages:
		return models.Language{}, nil
	case models.SectionCertifications:
		return models.Certification{}, nil
	case models.SectionAwards:
		return models.Award{}, nil
	case models.SectionVolunteering:
		return models.Volunteering{}, nil
	default:
		return nil, fmt.Errorf("section %q is not a list section", section)
	}
}

// DecodeItem unmarshals a raw JSON payload into the section's concrete item
// type. Unknown fields are rejected so client typos surface immediately.
func DecodeItem(section models.SectionID, data json.RawMessage) (interface{}, error) {
	var target interface{}
	switch section {
	case models.SectionExperience:
		target = &models.Experience{}
	case models.SectionEducation:
		target = &models.Education{}
	case models.SectionProjects:
		target = &models.Project{}
	case models.SectionSkills:
		target = &models.Skill{}
	case models.SectionLanguages:
		target = &models.Language{}
	case models.SectionCertifications:
		target = &models.Certification{}
	case models.SectionAwards:
		target = &models.Award{}
	case models.SectionVolunteering:
		target = &models.Volunteering{}
	default:
		return nil, fmt.Errorf("section %q is not a list section", section)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, fmt.Errorf("invalid %s item: %w", section, err)
	}
	return reflect.ValueOf(target).Elem().Interface(), nil
}

// FindItem returns a copy of the identified item, or an error when the id is
// absent from the section
func FindItem(doc *models.ResumeDocument, section models.SectionID, itemID string) (interface{}, error) {
	switch section {
	case models.SectionExperience:
		for _, it := range doc.Experience {
			if it.ID == itemID {
				return it, nil
			}
		}
	case models.SectionEducation:
		for _, it := range doc.Education {
			if it.ID == itemID {
				return it, nil
			}
		}
	case models.SectionProjects:
		for _, it := range doc.Projects {
			if it.ID == itemID {
				return it, nil
			}
		}
	case models.SectionSkills:
		for _, it := range doc.Skills {
			if it.ID == itemID {
				return it, nil
			}
		}
	case models.SectionLanguages:
		for _, it := range doc.Languages {
			if it.ID == itemID {
				return it, nil
			}
		}
	case models.SectionCertifications:
		for _, it := range doc.Certifications {
			if it.ID == itemID {
				return it, nil
			}
		}
	case models.SectionAwards:
		for _, it := range doc.Awards {
			if it.ID == itemID {
				return it, nil
			}
		}
	case models.SectionVolunteering:
		for _, it := range doc.Volunteering {
			if it.ID == itemID {
				return it, nil
			}
		}
	default:
		return nil, fmt.Errorf("section %q is not a list section", section)
	}
	return nil, fmt.Errorf("item %q not found in section %q", itemID, section)
}
