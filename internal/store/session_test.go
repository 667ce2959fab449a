package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func TestReorderIsArrayMove(t *testing.T) {
	order := DefaultSectionOrder()

	// summary experience education projects skills ... -> move skills to summary's slot
	moved := Reorder(order, models.SectionSkills, models.SectionSummary)
	assert.Equal(t, models.SectionSkills, moved[0])
	assert.Equal(t, models.SectionSummary, moved[1])
	assert.True(t, ValidOrder(moved))

	// input slice untouched
	assert.Equal(t, models.SectionSummary, order[0])
}

func TestReorderNoOpCases(t *testing.T) {
	order := DefaultSectionOrder()

	assert.Equal(t, order, Reorder(order, models.SectionSkills, models.SectionSkills))
	assert.Equal(t, order, Reorder(order, "references", models.SectionSkills))
}

func TestNormalizeOrderRepairsImportedSequences(t *testing.T) {
	repaired := NormalizeOrder([]models.SectionID{
		models.SectionSkills,
		"references", // foreign
		models.SectionSkills, // duplicate
		models.SectionSummary,
	})

	require.True(t, ValidOrder(repaired))
	assert.Equal(t, models.SectionSkills, repaired[0])
	assert.Equal(t, models.SectionSummary, repaired[1])
}

func TestSessionReorderRejectsBasicsAndUnknown(t *testing.T) {
	sess := NewSession("r1")

	assert.Error(t, sess.Reorder(models.SectionBasics, models.SectionSkills))
	assert.Error(t, sess.Reorder(models.SectionSkills, "references"))
	assert.NoError(t, sess.Reorder(models.SectionSkills, models.SectionSummary))
	assert.Equal(t, models.SectionSkills, sess.SectionOrder()[0])
}

func TestApplyListCommandsAssignAndPreserveIDs(t *testing.T) {
	sess := NewSession("r1")

	id, err := sess.Apply(AppendListItem{
		Section: models.SectionExperience,
		Item: models.Experience{
			CompanyName:      "Acme",
			Title:            "Engineer",
			StartDate:        "2020-01",
			CurrentlyWorking: true,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = sess.Apply(ReplaceListItem{
		Section: models.SectionExperience,
		ItemID:  id,
		Item: models.Experience{
			CompanyName:      "Acme Corp",
			Title:            "Senior Engineer",
			StartDate:        "2020-01",
			CurrentlyWorking: true,
		},
	})
	require.NoError(t, err)

	doc := sess.Document()
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, id, doc.Experience[0].ID)
	assert.Equal(t, "Acme Corp", doc.Experience[0].CompanyName)

	_, err = sess.Apply(RemoveListItem{Section: models.SectionExperience, ItemID: "exp_missing"})
	assert.Error(t, err)

	_, err = sess.Apply(RemoveListItem{Section: models.SectionExperience, ItemID: id})
	require.NoError(t, err)
	assert.Empty(t, sess.Document().Experience)
}

func TestUpdateSettingsClamps(t *testing.T) {
	sess := NewSession("r1")

	size := 99.0
	zoom := 0.01
	updated := sess.UpdateSettings(models.UpdateSettingsRequest{FontSize: &size, Zoom: &zoom})

	assert.Equal(t, models.SettingsRanges[models.SettingFontSize].Max, updated.FontSize)
	assert.Equal(t, models.SettingsRanges[models.SettingZoom].Min, updated.Zoom)
}

func TestResetZoomBreakpoints(t *testing.T) {
	tests := []struct {
		width int
		want  float64
	}{
		{width: 480, want: 0.4},
		{width: 800, want: 0.55},
		{width: 1280, want: 0.7},
		{width: 1920, want: 0.85},
	}

	for _, tt := range tests {
		sess := NewSession("r1")
		assert.Equal(t, tt.want, sess.ResetZoom(tt.width).Zoom)
	}
}

func TestReplaceAllClampsAndNormalizes(t *testing.T) {
	sess := NewSession("r1")

	env := models.ResumeEnvelope{
		Document: models.ResumeDocument{
			Basics: models.Basics{Name: "Jane Doe"},
		},
		Settings: models.PresentationSettings{
			FontFamily: "Inter",
			FontSize:   99,
			Zoom:       5,
		},
		SectionOrder: []models.SectionID{models.SectionSkills, "references"},
	}
	sess.ReplaceAll(env)

	assert.Equal(t, models.SettingsRanges[models.SettingFontSize].Max, sess.Settings().FontSize)
	assert.True(t, ValidOrder(sess.SectionOrder()))
	assert.Equal(t, models.SectionSkills, sess.SectionOrder()[0])
}

func TestSessionNotifiesSubscribers(t *testing.T) {
	sess := NewSession("r1")

	var got []string
	sess.Subscribe(func(resumeID string) { got = append(got, resumeID) })

	_, err := sess.Apply(SetSummary{Summary: "Hello"})
	require.NoError(t, err)
	require.NoError(t, sess.Reorder(models.SectionSkills, models.SectionSummary))

	assert.Equal(t, []string{"r1", "r1"}, got)
}

func TestManagerRestoresPersistedSessions(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	mgr := NewManager(repo)

	sess, err := mgr.Session(ctx, "r1")
	require.NoError(t, err)

	_, err = sess.Apply(SetBasics{Basics: models.Basics{Name: "Jane Doe"}})
	require.NoError(t, err)
	require.NoError(t, mgr.Save(ctx, sess))

	// A second manager over the same repository restores the saved state
	restored, err := NewManager(repo).Session(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", restored.Document().Basics.Name)

	// Unknown ids start fresh instead of erroring
	fresh, err := mgr.Session(ctx, "r2")
	require.NoError(t, err)
	assert.Empty(t, fresh.Document().Basics.Name)
}
