package service

import (
	"testing"

	"portfolio_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []model.LearningItem {
	return []model.LearningItem{
		{
			Title: "go course", Type: model.ItemCourse, Privacy: model.PrivacyPublic,
			Date: day("2025-01-15"), Tags: []string{"backend"}, Skills: []string{"Go"},
		},
		{
			Title: "secret project", Type: model.ItemProject, Privacy: model.PrivacyPrivate,
			Date: day("2025-03-01"), Tags: []string{"backend", "db"}, Skills: []string{"SQL"},
		},
		{
			Title: "ui note", Type: model.ItemNote, Privacy: model.PrivacyPublic,
			Date: day("2025-06-10"), Tags: []string{"frontend"}, Skills: []string{"CSS"},
		},
	}
}

func TestFilterItemsNoFilters(t *testing.T) {
	items := testItems()
	filtered := FilterItems(items, model.ViewFilters{})
	assert.Len(t, filtered, 3)
}

func TestFilterItemsByType(t *testing.T) {
	filtered := FilterItems(testItems(), model.ViewFilters{
		Types: []model.ItemType{model.ItemCourse, model.ItemNote},
	})
	require.Len(t, filtered, 2)
	assert.Equal(t, "go course", filtered[0].Title)
	assert.Equal(t, "ui note", filtered[1].Title)
}

func TestFilterItemsByPrivacy(t *testing.T) {
	filtered := FilterItems(testItems(), model.ViewFilters{
		Privacy: []model.PrivacyLevel{model.PrivacyPrivate},
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "secret project", filtered[0].Title)
}

func TestFilterItemsByTagsAndSkills(t *testing.T) {
	filtered := FilterItems(testItems(), model.ViewFilters{Tags: []string{"backend"}})
	assert.Len(t, filtered, 2)

	// tags 和 skills 条件同时给出时必须同时满足
	filtered = FilterItems(testItems(), model.ViewFilters{
		Tags:   []string{"backend"},
		Skills: []string{"SQL"},
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "secret project", filtered[0].Title)
}

func TestFilterItemsByDateRange(t *testing.T) {
	filtered := FilterItems(testItems(), model.ViewFilters{
		DateStart: "2025-02-01",
		DateEnd:   "2025-04-01",
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "secret project", filtered[0].Title)
}

func TestFilterItemsDoesNotMutateInput(t *testing.T) {
	items := testItems()
	FilterItems(items, model.ViewFilters{Types: []model.ItemType{model.ItemCourse}})
	assert.Len(t, items, 3)
}

func TestRemoveString(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, removeString([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a"}, removeString([]string{"a"}, "x"))
	assert.Empty(t, removeString(nil, "x"))
}
