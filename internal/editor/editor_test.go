package editor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

func TestDialogSubmitAppendsNewItemWithFreshID(t *testing.T) {
	sess := store.NewSession("resume-1")

	dlg, err := Open(sess, models.SectionSkills, "")
	require.NoError(t, err)
	require.NoError(t, dlg.SetDraft(models.Skill{Name: "Go", Keywords: []string{"concurrency"}}))

	itemID, err := dlg.Submit()
	require.NoError(t, err)
	assert.NotEmpty(t, itemID)
	assert.False(t, dlg.Open())

	doc := sess.Document()
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, itemID, doc.Skills[0].ID)
	assert.Equal(t, "Go", doc.Skills[0].Name)
}

func TestDialogSubmitReplacePreservesID(t *testing.T) {
	sess := store.NewSession("resume-1")
	itemID, err := sess.Apply(store.AppendListItem{
		Section: models.SectionExperience,
		Item: models.Experience{
			CompanyName:      "Acme",
			Title:            "Engineer",
			StartDate:        "2020-01",
			CurrentlyWorking: true,
		},
	})
	require.NoError(t, err)

	dlg, err := Open(sess, models.SectionExperience, itemID)
	require.NoError(t, err)

	draft := dlg.Draft().(models.Experience)
	assert.Equal(t, "Acme", draft.CompanyName)

	draft.Title = "Staff Engineer"
	require.NoError(t, dlg.SetDraft(draft))

	returnedID, err := dlg.Submit()
	require.NoError(t, err)
	assert.Equal(t, itemID, returnedID)

	doc := sess.Document()
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, itemID, doc.Experience[0].ID)
	assert.Equal(t, "Staff Engineer", doc.Experience[0].Title)
}

func TestDialogSubmitRejectsInvalidDraftAndStaysOpen(t *testing.T) {
	sess := store.NewSession("resume-1")

	dlg, err := Open(sess, models.SectionExperience, "")
	require.NoError(t, err)
	require.NoError(t, dlg.SetDraft(models.Experience{Title: "Engineer"}))

	_, err = dlg.Submit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company_name: Required")
	assert.True(t, dlg.Open())

	assert.Empty(t, sess.Document().Experience)
}

func TestDialogCancelDiscardsDraft(t *testing.T) {
	sess := store.NewSession("resume-1")

	dlg, err := Open(sess, models.SectionAwards, "")
	require.NoError(t, err)
	require.NoError(t, dlg.SetDraft(models.Award{Name: "Best Paper"}))

	dlg.Cancel()
	assert.False(t, dlg.Open())
	assert.Empty(t, sess.Document().Awards)

	_, err = dlg.Submit()
	assert.Error(t, err)
}

func TestOpenRejectsNonListSection(t *testing.T) {
	sess := store.NewSession("resume-1")

	_, err := Open(sess, models.SectionSummary, "")
	assert.Error(t, err)
}

func TestOpenUnknownItemID(t *testing.T) {
	sess := store.NewSession("resume-1")

	_, err := Open(sess, models.SectionSkills, "missing")
	assert.Error(t, err)
}

func TestDecodeItemRejectsUnknownFields(t *testing.T) {
	_, err := DecodeItem(models.SectionSkills, json.RawMessage(`{"name":"Go","rank":3}`))
	assert.Error(t, err)
}

func TestDecodeItemRoundTrip(t *testing.T) {
	item, err := DecodeItem(models.SectionProjects,
		json.RawMessage(`{"name":"ResumeForge","url":"https://example.com","keywords":["go"]}`))
	require.NoError(t, err)

	proj, ok := item.(models.Project)
	require.True(t, ok)
	assert.Equal(t, "ResumeForge", proj.Name)
	assert.Equal(t, []string{"go"}, proj.Keywords)
}

func TestCommitKeywordsSingleEntry(t *testing.T) {
	out := CommitKeywords(nil, "Go")
	assert.Equal(t, []string{"Go"}, out)
}

func TestCommitKeywordsPasteSplitsOnCommas(t *testing.T) {
	out := CommitKeywords([]string{"Go"}, "Rust, Python,  TypeScript ")
	assert.Equal(t, []string{"Go", "Rust", "Python", "TypeScript"}, out)
}

func TestCommitKeywordsDropsExactDuplicates(t *testing.T) {
	out := CommitKeywords([]string{"Go"}, "Go, go, Go")
	assert.Equal(t, []string{"Go", "go"}, out)
}

func TestCommitKeywordsIgnoresEmptyTokens(t *testing.T) {
	out := CommitKeywords(nil, " , ,, ")
	assert.Empty(t, out)
}

func TestRemoveKeyword(t *testing.T) {
	out := RemoveKeyword([]string{"a", "b", "c"}, 1)
	assert.Equal(t, []string{"a", "c"}, out)

	assert.Equal(t, []string{"a", "c"}, RemoveKeyword(out, 5))
	assert.Equal(t, []string{"a", "c"}, RemoveKeyword(out, -1))
}
