package service

import (
	"sort"
	"time"

	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
)

type TimelineEventKind string

const (
	EventItem      TimelineEventKind = "item"
	EventMilestone TimelineEventKind = "milestone"
)

// TimelineEvent 条目和里程碑合并后的单条时间线事件
type TimelineEvent struct {
	Kind      TimelineEventKind   `json:"kind"`
	Date      time.Time           `json:"date"`
	Item      *model.LearningItem `json:"item,omitempty"`
	Milestone *model.Milestone    `json:"milestone,omitempty"`
}

// TimelineProgress 时间线进度块
type TimelineProgress struct {
	CompletedItems int     `json:"completedItems"`
	TotalItems     int     `json:"totalItems"`
	Percent        float64 `json:"percent"` // totalItems 为 0 时定义为 0
	CurrentPhase   string  `json:"currentPhase,omitempty"`
	NextMilestone  string  `json:"nextMilestone,omitempty"`
}

// Timeline 合并时间线视图
type Timeline struct {
	Events   []TimelineEvent  `json:"events"`
	Progress TimelineProgress `json:"progress"`
}

// BuildTimeline 把条目和里程碑合并成按日期降序的事件序列。
// 纯函数，不修改入参，每次调用返回新切片。
// 必须用稳定排序：同一日期下条目排在里程碑之前，同类事件保持原有相对顺序，
// 任意打乱同时间戳事件属于正确性错误而非风格问题。
func BuildTimeline(items []model.LearningItem, milestones []model.Milestone) []TimelineEvent {
	events := make([]TimelineEvent, 0, len(items)+len(milestones))
	for i := range items {
		events = append(events, TimelineEvent{
			Kind: EventItem,
			Date: items[i].Date,
			Item: &items[i],
		})
	}
	for i := range milestones {
		events = append(events, TimelineEvent{
			Kind:      EventMilestone,
			Date:      milestones[i].Date,
			Milestone: &milestones[i],
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.After(events[j].Date)
		}
		// 同日期：条目在前，里程碑在后
		return events[i].Kind == EventItem && events[j].Kind == EventMilestone
	})
	return events
}

// BuildProgress 由条目序列派生进度块，零条目时百分比为 0
func BuildProgress(items []model.LearningItem, milestones []model.Milestone) TimelineProgress {
	progress := TimelineProgress{TotalItems: len(items)}
	for i := range items {
		if items[i].Achieved {
			progress.CompletedItems++
		}
	}
	if progress.TotalItems > 0 {
		progress.Percent = float64(progress.CompletedItems) / float64(progress.TotalItems) * 100
	}

	// 下一个未达成的里程碑（按日期升序找最早的）
	var next *model.Milestone
	for i := range milestones {
		m := &milestones[i]
		if m.Achieved {
			continue
		}
		if next == nil || m.Date.Before(next.Date) {
			next = m
		}
	}
	if next != nil {
		progress.NextMilestone = next.Title
	}
	return progress
}

type TimelineService struct {
	PortfolioRepo *repository.PortfolioRepository
	SkillRepo     *repository.SkillRepository
}

func NewTimelineService(portfolioRepo *repository.PortfolioRepository, skillRepo *repository.SkillRepository) *TimelineService {
	return &TimelineService{
		PortfolioRepo: portfolioRepo,
		SkillRepo:     skillRepo,
	}
}

// GetTimeline 取出条目和全部里程碑（技能级 + 作品集级）构建时间线
func (s *TimelineService) GetTimeline(userID uint) (*Timeline, error) {
	portfolio, err := s.PortfolioRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	milestones, err := s.SkillRepo.FindMilestonesByPortfolioID(portfolio.ID)
	if err != nil {
		return nil, err
	}

	return &Timeline{
		Events:   BuildTimeline(portfolio.Items, milestones),
		Progress: BuildProgress(portfolio.Items, milestones),
	}, nil
}

// LearningPlan 按达成状态拆分的里程碑清单（学习计划视图）
type LearningPlan struct {
	Current   []model.Milestone `json:"current"`
	Completed []model.Milestone `json:"completed"`
	Total     int               `json:"total"`
}

func (s *TimelineService) GetLearningPlan(userID uint) (*LearningPlan, error) {
	portfolio, err := s.PortfolioRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	milestones, err := s.SkillRepo.FindMilestonesByPortfolioID(portfolio.ID)
	if err != nil {
		return nil, err
	}

	plan := &LearningPlan{
		Current:   []model.Milestone{},
		Completed: []model.Milestone{},
		Total:     len(milestones),
	}
	for _, m := range milestones {
		if m.Achieved {
			plan.Completed = append(plan.Completed, m)
		} else {
			plan.Current = append(plan.Current, m)
		}
	}
	// 未完成的按日期升序，最近要做的排前面
	sort.SliceStable(plan.Current, func(i, j int) bool {
		return plan.Current[i].Date.Before(plan.Current[j].Date)
	})
	return plan, nil
}
