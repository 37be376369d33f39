package service

import (
	"testing"
	"time"

	"portfolio_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildTimelineOrdering(t *testing.T) {
	items := []model.LearningItem{
		{Title: "older item", Date: day("2025-01-10")},
		{Title: "newer item", Date: day("2025-03-01")},
	}
	milestones := []model.Milestone{
		{Title: "milestone", Date: day("2025-02-01")},
	}

	events := BuildTimeline(items, milestones)
	require.Len(t, events, 3)

	assert.Equal(t, "newer item", events[0].Item.Title)
	assert.Equal(t, "milestone", events[1].Milestone.Title)
	assert.Equal(t, "older item", events[2].Item.Title)
}

func TestBuildTimelineSameDateItemBeforeMilestone(t *testing.T) {
	d := day("2025-05-20")
	items := []model.LearningItem{{Title: "item", Date: d}}
	milestones := []model.Milestone{{Title: "milestone", Date: d}}

	// 入参顺序不影响结果：同一天条目永远排在里程碑前
	events := BuildTimeline(items, milestones)
	require.Len(t, events, 2)
	assert.Equal(t, EventItem, events[0].Kind)
	assert.Equal(t, EventMilestone, events[1].Kind)
}

func TestBuildTimelineStableWithinKind(t *testing.T) {
	d := day("2025-05-20")
	items := []model.LearningItem{
		{Title: "first", Date: d},
		{Title: "second", Date: d},
		{Title: "third", Date: d},
	}

	events := BuildTimeline(items, nil)
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Item.Title)
	assert.Equal(t, "second", events[1].Item.Title)
	assert.Equal(t, "third", events[2].Item.Title)
}

func TestBuildTimelineEmpty(t *testing.T) {
	events := BuildTimeline(nil, nil)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestBuildTimelineDoesNotMutateInputs(t *testing.T) {
	items := []model.LearningItem{
		{Title: "a", Date: day("2025-01-01")},
		{Title: "b", Date: day("2025-02-01")},
	}

	BuildTimeline(items, nil)
	assert.Equal(t, "a", items[0].Title)
	assert.Equal(t, "b", items[1].Title)
}

func TestBuildProgress(t *testing.T) {
	items := []model.LearningItem{
		{Achieved: true},
		{Achieved: false},
		{Achieved: true},
		{Achieved: false},
	}
	milestones := []model.Milestone{
		{Title: "done", Date: day("2025-01-01"), Achieved: true},
		{Title: "later", Date: day("2025-06-01"), Achieved: false},
		{Title: "sooner", Date: day("2025-03-01"), Achieved: false},
	}

	progress := BuildProgress(items, milestones)
	assert.Equal(t, 4, progress.TotalItems)
	assert.Equal(t, 2, progress.CompletedItems)
	assert.Equal(t, 50.0, progress.Percent)
	// 未达成里程碑里日期最早的
	assert.Equal(t, "sooner", progress.NextMilestone)
}

func TestBuildProgressZeroItems(t *testing.T) {
	progress := BuildProgress(nil, nil)
	assert.Equal(t, 0, progress.TotalItems)
	assert.Equal(t, 0.0, progress.Percent)
	assert.Empty(t, progress.NextMilestone)
}
