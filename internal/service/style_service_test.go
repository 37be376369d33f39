package service

import (
	"testing"
	"time"

	"portfolio_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAnswers(t *testing.T) {
	tests := []struct {
		name         string
		answers      []model.LearningStyle
		wantCounts   model.StyleCounts
		wantDominant model.LearningStyle
	}{
		{
			name:         "clear winner",
			answers:      []model.LearningStyle{model.StyleKinesthetic, model.StyleKinesthetic, model.StyleVisual},
			wantCounts:   model.StyleCounts{Visual: 1, Kinesthetic: 2},
			wantDominant: model.StyleKinesthetic,
		},
		{
			name:         "tie between visual and auditory picks visual",
			answers:      []model.LearningStyle{model.StyleAuditory, model.StyleVisual},
			wantCounts:   model.StyleCounts{Visual: 1, Auditory: 1},
			wantDominant: model.StyleVisual,
		},
		{
			name:         "tie between auditory and kinesthetic picks auditory",
			answers:      []model.LearningStyle{model.StyleKinesthetic, model.StyleAuditory},
			wantCounts:   model.StyleCounts{Auditory: 1, Kinesthetic: 1},
			wantDominant: model.StyleAuditory,
		},
		{
			name:         "three-way tie picks visual",
			answers:      []model.LearningStyle{model.StyleKinesthetic, model.StyleAuditory, model.StyleVisual},
			wantCounts:   model.StyleCounts{Visual: 1, Auditory: 1, Kinesthetic: 1},
			wantDominant: model.StyleVisual,
		},
		{
			name:         "empty answers default to visual",
			answers:      nil,
			wantCounts:   model.StyleCounts{},
			wantDominant: model.StyleVisual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, dominant, err := ScoreAnswers(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCounts, counts)
			assert.Equal(t, tt.wantDominant, dominant)
		})
	}
}

func TestScoreAnswersRejectsUnknownStyle(t *testing.T) {
	_, _, err := ScoreAnswers([]model.LearningStyle{model.StyleVisual, "tactile"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tactile")
}

func TestScoreAnswersDeterministic(t *testing.T) {
	answers := []model.LearningStyle{
		model.StyleVisual, model.StyleAuditory, model.StyleVisual,
		model.StyleKinesthetic, model.StyleAuditory,
	}

	counts1, dominant1, err := ScoreAnswers(answers)
	require.NoError(t, err)
	counts2, dominant2, err := ScoreAnswers(answers)
	require.NoError(t, err)

	assert.Equal(t, counts1, counts2)
	assert.Equal(t, dominant1, dominant2)
}

func TestStyleSnapshotKeepsTimestamp(t *testing.T) {
	submittedAt := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	snap := styleSnapshot{
		Visual:        2,
		Auditory:      1,
		Kinesthetic:   0,
		DominantStyle: model.StyleVisual,
		Timestamp:     submittedAt,
	}

	profile := snap.profile(7)
	// 缓存命中和数据库回退必须给出同样的提交时间
	assert.Equal(t, submittedAt, profile.CreatedAt)
	assert.Equal(t, uint(7), profile.UserID)
	assert.Equal(t, 2, profile.Visual)
	assert.Equal(t, 1, profile.Auditory)
	assert.Equal(t, model.StyleVisual, profile.DominantStyle)
}
