package service

import (
	"math"
	"sync"
	"testing"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecommenderConfig() config.RecommenderConfig {
	return config.RecommenderConfig{
		HoursPerWeek:         5.0,
		HoursPerEpisode:      0.5,
		PlanningHorizonWeeks: 4,
	}
}

func TestWeightResources(t *testing.T) {
	counts := model.StyleCounts{Visual: 2, Auditory: 1, Kinesthetic: 1}
	resources := []model.Resource{
		{Title: "v", Style: model.StyleVisual},
		{Title: "a", Style: model.StyleAuditory},
		{Title: "k", Style: model.StyleKinesthetic},
	}

	weighted := WeightResources(counts, resources)
	require.Len(t, weighted, 3)
	assert.Equal(t, 0.5, weighted[0].Weight)
	assert.Equal(t, 0.25, weighted[1].Weight)
	assert.Equal(t, 0.25, weighted[2].Weight)
}

func TestWeightResourcesZeroAnswers(t *testing.T) {
	resources := []model.Resource{{Title: "v", Style: model.StyleVisual}}

	weighted := WeightResources(model.StyleCounts{}, resources)
	require.Len(t, weighted, 1)
	// 零答案时权重为 0，不是 NaN
	assert.Equal(t, 0.0, weighted[0].Weight)
}

func TestRankResourcesExactDifficultyFilter(t *testing.T) {
	weighted := []RecommendedResource{
		{Resource: model.Resource{Title: "b", Difficulty: model.Beginner}},
		{Resource: model.Resource{Title: "i", Difficulty: model.Intermediate}},
		{Resource: model.Resource{Title: "a", Difficulty: model.Advanced}},
	}

	// 精确匹配：beginner 用户看不到 intermediate 资源，反之亦然
	ranked := RankResources(weighted, model.Beginner)
	require.Len(t, ranked, 1)
	assert.Equal(t, "b", ranked[0].Title)
}

func TestRankResourcesScoreFormula(t *testing.T) {
	weighted := []RecommendedResource{
		{
			Resource: model.Resource{Title: "low", Difficulty: model.Beginner, Rating: 3.0, ReviewCount: 9},
			Weight:   0.2,
		},
		{
			Resource: model.Resource{Title: "high", Difficulty: model.Beginner, Rating: 4.8, ReviewCount: 999},
			Weight:   0.6,
		},
	}

	ranked := RankResources(weighted, model.Beginner)
	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Title)

	wantHigh := (0.6*5 + 4.8) * math.Log10(1000)
	assert.InDelta(t, wantHigh, ranked[0].Score, 1e-9)
	wantLow := (0.2*5 + 3.0) * math.Log10(10)
	assert.InDelta(t, wantLow, ranked[1].Score, 1e-9)
}

func TestRankResourcesStableOnEqualScore(t *testing.T) {
	weighted := []RecommendedResource{
		{Resource: model.Resource{Title: "first", Difficulty: model.Beginner, Rating: 4.0, ReviewCount: 99}, Weight: 0.5},
		{Resource: model.Resource{Title: "second", Difficulty: model.Beginner, Rating: 4.0, ReviewCount: 99}, Weight: 0.5},
	}

	ranked := RankResources(weighted, model.Beginner)
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Title)
	assert.Equal(t, "second", ranked[1].Title)
}

func TestEstimateHours(t *testing.T) {
	cfg := testRecommenderConfig()
	tests := []struct {
		duration  string
		wantHours float64
		wantKnown bool
	}{
		{"2小時", 2, true},
		{"3小时", 3, true},
		{"1.5 hours", 1.5, true},
		{"4週", 20, true},
		{"2周", 10, true},
		{"2 weeks", 10, true},
		{"10集", 5, true},
		{"8 episodes", 4, true},
		{"自定進度", 0, false},
		{"", 0, false},
		{"3天", 0, false}, // 有数字但单位不识别
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			hours, known := EstimateHours(tt.duration, cfg)
			assert.Equal(t, tt.wantHours, hours)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestSelectWithinBudgetGreedy(t *testing.T) {
	cfg := testRecommenderConfig()
	ranked := []RecommendedResource{
		{Resource: model.Resource{Title: "a", Duration: "3小時"}},
		{Resource: model.Resource{Title: "b", Duration: "2小時"}},
		{Resource: model.Resource{Title: "c", Duration: "4小時"}}, // 超预算，在此截断
		{Resource: model.Resource{Title: "d", Duration: "1小時"}}, // 不会越过 c 被收录
	}

	selected, planned := SelectWithinBudget(ranked, 6, cfg)
	require.Len(t, selected, 2)
	assert.Equal(t, "a", selected[0].Title)
	assert.Equal(t, "b", selected[1].Title)
	assert.Equal(t, 5.0, planned)
}

func TestSelectWithinBudgetUnknownDurationIncluded(t *testing.T) {
	cfg := testRecommenderConfig()
	ranked := []RecommendedResource{
		{Resource: model.Resource{Title: "self-paced", Duration: "自定進度"}},
		{Resource: model.Resource{Title: "timed", Duration: "2小時"}},
	}

	// 无法识别的时长按 0 小时计入而不是丢弃，但会被标记
	selected, planned := SelectWithinBudget(ranked, 2, cfg)
	require.Len(t, selected, 2)
	assert.False(t, selected[0].DurationKnown)
	assert.Equal(t, 0.0, selected[0].EstimatedHours)
	assert.True(t, selected[1].DurationKnown)
	assert.Equal(t, 2.0, planned)
}

func TestRecommendResourcesPipeline(t *testing.T) {
	cfg := testRecommenderConfig()
	counts := model.StyleCounts{Visual: 3}
	catalog := []model.Resource{
		{Title: "visual course", Style: model.StyleVisual, Difficulty: model.Beginner,
			Duration: "4週", Rating: 4.7, ReviewCount: 800},
		{Title: "podcast", Style: model.StyleAuditory, Difficulty: model.Beginner,
			Duration: "10集", Rating: 4.6, ReviewCount: 500},
		{Title: "advanced only", Style: model.StyleVisual, Difficulty: model.Advanced,
			Duration: "2小時", Rating: 5.0, ReviewCount: 100},
	}

	selected, budget, planned := RecommendResources(counts, catalog, model.Beginner, 10, cfg)

	// 预算 = 每周时数 × 计划周期
	assert.Equal(t, 40.0, budget)
	require.Len(t, selected, 2)
	// visual 权重 1.0 得分最高
	assert.Equal(t, "visual course", selected[0].Title)
	assert.Equal(t, "podcast", selected[1].Title)
	assert.Equal(t, 25.0, planned) // 4週=20h + 10集=5h
}

func TestRecommendationServiceConfigSwap(t *testing.T) {
	svc := NewRecommendationService(nil, nil, config.RecommenderConfig{
		HoursPerWeek:         1,
		HoursPerEpisode:      1,
		PlanningHorizonWeeks: 1,
	})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 2; i <= 200; i++ {
				svc.SetConfig(config.RecommenderConfig{
					HoursPerWeek:         float64(i),
					HoursPerEpisode:      float64(i),
					PlanningHorizonWeeks: i,
				})
			}
		}()
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				// 快照内部必须一致，不能出现一半新一半旧的参数
				cfg := svc.Config()
				assert.Equal(t, cfg.HoursPerWeek, cfg.HoursPerEpisode)
				assert.Equal(t, float64(cfg.PlanningHorizonWeeks), cfg.HoursPerWeek)
			}
		}()
	}
	wg.Wait()
}
