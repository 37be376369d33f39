package service

import (
	"sync"
	"testing"

	"portfolio_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsEmptyPortfolio(t *testing.T) {
	stats := ComputeStats(nil, nil, 5)

	assert.Equal(t, 0, stats.TotalItems)
	assert.Equal(t, 0, stats.SkillCount)
	assert.Empty(t, stats.TopSkills)
	// 零分母场景必须得到 0 而不是 NaN
	assert.Equal(t, 0.0, stats.LearningProgress.CompletionPercent)
	assert.Equal(t, 0.0, stats.AverageRating)
}

func TestComputeStatsAggregation(t *testing.T) {
	items := []model.LearningItem{
		{
			Type:          model.ItemProject,
			Achieved:      false,
			Collaborators: []string{"alice", "bob"},
			Bookmarks:     3,
			Comments:      2,
			Feedback: []model.Feedback{
				{Content: "不错", Rating: 4},
				{Content: "加油", Rating: 0}, // 未评分，不计入平均
			},
		},
		{
			Type:      model.ItemCourse,
			Achieved:  true,
			Bookmarks: 1,
			Feedback: []model.Feedback{
				{Content: "很好", Rating: 2},
			},
		},
		{
			Type:                  model.ItemProject,
			Achieved:              true, // 已完成的专案不算 active
			Collaborators:         []string{"bob"},
			CollaborationRequests: 4,
		},
	}
	skills := []model.Skill{
		{
			Name: "Go", Level: 4,
			Milestones: []model.Milestone{{Achieved: true}, {Achieved: false}},
		},
		{
			Name: "SQL", Level: 2,
			Milestones: []model.Milestone{{Achieved: true}, {Achieved: true}},
		},
	}

	stats := ComputeStats(items, skills, 5)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.SkillCount)
	assert.Equal(t, 2, stats.CollaborationCount)
	assert.Equal(t, 1, stats.LearningProgress.ActiveProjects)

	assert.Equal(t, 4, stats.Interactions.TotalBookmarks)
	assert.Equal(t, 2, stats.Interactions.TotalComments)
	assert.Equal(t, 4, stats.Interactions.TotalCollaborationRequests)

	// bob 在两个条目中出现，只计一次
	assert.Equal(t, 2, stats.Social.Partners)
	assert.Equal(t, 3, stats.Social.CollaborationItems)
	assert.Equal(t, 3, stats.Social.FeedbackReceived)

	// (4+2)/2，Rating 为 0 的回馈不参与
	assert.Equal(t, 3.0, stats.AverageRating)

	assert.Equal(t, 4, stats.LearningProgress.TotalMilestones)
	assert.Equal(t, 3, stats.LearningProgress.CompletedMilestones)
	assert.Equal(t, 75.0, stats.LearningProgress.CompletionPercent)
}

func TestComputeStatsIdempotent(t *testing.T) {
	items := []model.LearningItem{
		{Type: model.ItemProject, Collaborators: []string{"carol"}, Bookmarks: 2},
	}
	skills := []model.Skill{
		{Name: "Go", Level: 3, Milestones: []model.Milestone{{Achieved: true}}},
	}

	first := ComputeStats(items, skills, 5)
	second := ComputeStats(items, skills, 5)
	assert.Equal(t, first, second)
}

func TestTopSkillNamesOrdering(t *testing.T) {
	skills := []model.Skill{
		{Name: "Rust", Level: 3, RelatedItems: []string{"a"}},
		{Name: "Go", Level: 5, RelatedItems: []string{"a", "b"}},
		{Name: "Python", Level: 5, RelatedItems: []string{"a", "b", "c"}},
		// Python 同级但关联更多，排在 Go 前面
		{Name: "C", Level: 5, RelatedItems: []string{"x", "y"}},
		// C 与 Go 同级同关联数，按名字升序 C 在前
		{Name: "SQL", Level: 1},
		{Name: "Bash", Level: 2},
	}

	names := topSkillNames(skills, 5)
	assert.Equal(t, []string{"Python", "C", "Go", "Rust", "Bash"}, names)
}

func TestTopSkillNamesTruncation(t *testing.T) {
	skills := []model.Skill{
		{Name: "A", Level: 1},
		{Name: "B", Level: 2},
		{Name: "C", Level: 3},
	}

	assert.Len(t, topSkillNames(skills, 2), 2)
	assert.Equal(t, []string{"C", "B"}, topSkillNames(skills, 2))
	// topN 大于技能数时全量返回
	assert.Len(t, topSkillNames(skills, 10), 3)
}

func TestStatsServiceTopSkillLimitSwap(t *testing.T) {
	svc := NewStatsService(nil, nil, 5)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i <= 200; i++ {
				svc.SetTopSkillLimit(i)
			}
		}()
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.GreaterOrEqual(t, svc.TopSkillLimit(), 1)
			}
		}()
	}
	wg.Wait()

	svc.SetTopSkillLimit(3)
	assert.Equal(t, 3, svc.TopSkillLimit())
}
