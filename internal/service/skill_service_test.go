package service

import (
	"testing"
	"time"

	"portfolio_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneFromRequest(t *testing.T) {
	m, err := milestoneFromRequest(1, MilestoneRequest{
		Title: "完成第一個項目",
		Date:  "2026-01-15",
		Type:  "project",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), m.PortfolioID)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), m.Date)
	require.NotNil(t, m.Type)
	assert.Equal(t, model.MilestoneProject, *m.Type)
}

func TestMilestoneFromRequestOptionalType(t *testing.T) {
	m, err := milestoneFromRequest(1, MilestoneRequest{
		Title: "開始學習 Go",
		Date:  "2026-02-01",
	})
	require.NoError(t, err)
	// 类型留空时保持 nil，不能塞枚举之外的空串
	assert.Nil(t, m.Type)
}

func TestMilestoneFromRequestRejectsUnknownType(t *testing.T) {
	_, err := milestoneFromRequest(1, MilestoneRequest{
		Title: "x",
		Date:  "2026-02-01",
		Type:  "reward",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reward")
}

func TestMilestoneFromRequestRejectsBadDate(t *testing.T) {
	_, err := milestoneFromRequest(1, MilestoneRequest{
		Title: "x",
		Date:  "15/01/2026",
	})
	require.Error(t, err)
}
