package service

import (
	"sort"
	"sync"

	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
)

// ComputeStats 从条目和技能重算作品集统计。
// 纯函数且幂等：不修改入参，相同输入两次调用结果逐位相同。
// 所有比值计算都带零分母保护，绝不向调用方传出 NaN/Inf。
func ComputeStats(items []model.LearningItem, skills []model.Skill, topN int) model.PortfolioStats {
	stats := model.PortfolioStats{
		TotalItems: len(items),
		SkillCount: len(skills),
		TopSkills:  []string{},
	}

	partners := make(map[string]struct{})
	ratingSum, ratingCount := 0, 0

	for i := range items {
		item := &items[i]
		if item.HasCollaborators() {
			stats.CollaborationCount++
		}
		if item.Type == model.ItemProject && !item.Achieved {
			stats.LearningProgress.ActiveProjects++
		}

		stats.Interactions.TotalBookmarks += item.Bookmarks
		stats.Interactions.TotalComments += item.Comments
		stats.Interactions.TotalCollaborationRequests += item.CollaborationRequests

		if item.HasCollaborators() || len(item.Feedback) > 0 {
			stats.Social.CollaborationItems++
			for _, p := range item.Collaborators {
				partners[p] = struct{}{}
			}
			stats.Social.FeedbackReceived += len(item.Feedback)
		}
		for _, fb := range item.Feedback {
			if fb.Rating > 0 {
				ratingSum += fb.Rating
				ratingCount++
			}
		}
	}
	stats.Social.Partners = len(partners)

	for i := range skills {
		skill := &skills[i]
		stats.LearningProgress.TotalMilestones += len(skill.Milestones)
		for _, m := range skill.Milestones {
			if m.Achieved {
				stats.LearningProgress.CompletedMilestones++
			}
		}
	}

	// 零分母保护：没有里程碑/评分时比值定义为 0
	if stats.LearningProgress.TotalMilestones > 0 {
		stats.LearningProgress.CompletionPercent =
			float64(stats.LearningProgress.CompletedMilestones) / float64(stats.LearningProgress.TotalMilestones) * 100
	}
	if ratingCount > 0 {
		stats.AverageRating = float64(ratingSum) / float64(ratingCount)
	}

	stats.TopSkills = topSkillNames(skills, topN)
	return stats
}

// topSkillNames 等级降序，同级按关联条目数降序，再按名字升序，截断到 topN
func topSkillNames(skills []model.Skill, topN int) []string {
	ranked := make([]model.Skill, len(skills))
	copy(ranked, skills)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Level != ranked[j].Level {
			return ranked[i].Level > ranked[j].Level
		}
		if len(ranked[i].RelatedItems) != len(ranked[j].RelatedItems) {
			return len(ranked[i].RelatedItems) > len(ranked[j].RelatedItems)
		}
		return ranked[i].Name < ranked[j].Name
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}
	return names
}

type StatsService struct {
	PortfolioRepo *repository.PortfolioRepository
	SkillRepo     *repository.SkillRepository

	mu            sync.RWMutex
	topSkillLimit int
}

func NewStatsService(portfolioRepo *repository.PortfolioRepository, skillRepo *repository.SkillRepository, topSkillLimit int) *StatsService {
	return &StatsService{
		PortfolioRepo: portfolioRepo,
		SkillRepo:     skillRepo,
		topSkillLimit: topSkillLimit,
	}
}

// TopSkillLimit 截断数量可被配置热更新协程改写，读写都走带锁的访问器
func (s *StatsService) TopSkillLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.topSkillLimit
}

func (s *StatsService) SetTopSkillLimit(limit int) {
	s.mu.Lock()
	s.topSkillLimit = limit
	s.mu.Unlock()
}

// Recompute 重算统计并覆盖缓存。缓存只是展示加速，与重算结果不一致时一律以重算为准。
func (s *StatsService) Recompute(userID uint) (*model.PortfolioStats, error) {
	portfolio, err := s.PortfolioRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.SkillRepo.FindByPortfolioID(portfolio.ID)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(portfolio.Items, skills, s.TopSkillLimit())
	if err := s.PortfolioRepo.UpdateStatsCache(portfolio.ID, stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
