package service

import (
	"time"

	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/util"

	"gorm.io/gorm"
)

type SkillService struct {
	SkillRepo        *repository.SkillRepository
	PortfolioService *PortfolioService
}

func NewSkillService(skillRepo *repository.SkillRepository, portfolioService *PortfolioService) *SkillService {
	return &SkillService{
		SkillRepo:        skillRepo,
		PortfolioService: portfolioService,
	}
}

func (s *SkillService) GetSkills(userID uint) ([]model.Skill, error) {
	portfolio, err := s.PortfolioService.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}
	return s.SkillRepo.FindByPortfolioID(portfolio.ID)
}

type SkillRequest struct {
	Name         string   `json:"name" binding:"required"`
	Level        int      `json:"level" binding:"required"`
	RelatedItems []string `json:"relatedItems"`
	StartDate    string   `json:"startDate"` // YYYY-MM-DD
}

// CreateSkill 技能名在作品集内唯一
func (s *SkillService) CreateSkill(userID uint, req SkillRequest) (*model.Skill, error) {
	portfolio, err := s.PortfolioService.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}

	if err := model.ValidateSkillLevel(req.Level); err != nil {
		return nil, err
	}

	if _, err := s.SkillRepo.FindByName(portfolio.ID, req.Name); err == nil {
		return nil, util.ErrSkillExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	skill := &model.Skill{
		PortfolioID:  portfolio.ID,
		Name:         req.Name,
		Level:        req.Level,
		RelatedItems: req.RelatedItems,
	}
	if req.StartDate != "" {
		start, err := time.Parse(util.DateFormat, req.StartDate)
		if err != nil {
			return nil, err
		}
		skill.StartDate = &start
	}

	if err := s.SkillRepo.Create(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) findOwnedSkill(userID uint, skillID uint) (*model.Skill, error) {
	portfolio, err := s.PortfolioService.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}
	skill, err := s.SkillRepo.FindByID(skillID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSkillNotFound
	}
	if err != nil {
		return nil, err
	}
	if skill.PortfolioID != portfolio.ID {
		return nil, util.ErrPermissionDenied
	}
	return skill, nil
}

func (s *SkillService) UpdateLevel(userID uint, skillID uint, level int) (*model.Skill, error) {
	if err := model.ValidateSkillLevel(level); err != nil {
		return nil, err
	}

	skill, err := s.findOwnedSkill(userID, skillID)
	if err != nil {
		return nil, err
	}

	skill.Level = level
	if err := s.SkillRepo.Update(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) Endorse(userID uint, skillID uint) (*model.Skill, error) {
	skill, err := s.findOwnedSkill(userID, skillID)
	if err != nil {
		return nil, err
	}

	skill.Endorsements++
	if err := s.SkillRepo.Update(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

type MilestoneRequest struct {
	Title        string   `json:"title" binding:"required"`
	Date         string   `json:"date" binding:"required"` // YYYY-MM-DD
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	RelatedItems []string `json:"relatedItems"`
	Achieved     bool     `json:"achieved"`
}

// milestoneFromRequest 组装里程碑。类型是可选字段，留空时保持 nil，
// 落库为 NULL 而不是枚举之外的空串。
func milestoneFromRequest(portfolioID uint, req MilestoneRequest) (*model.Milestone, error) {
	date, err := time.Parse(util.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	milestone := &model.Milestone{
		PortfolioID:  portfolioID,
		Title:        req.Title,
		Date:         date,
		Description:  req.Description,
		Achieved:     req.Achieved,
		RelatedItems: req.RelatedItems,
	}
	if req.Type != "" {
		milestoneType, err := model.ParseMilestoneType(req.Type)
		if err != nil {
			return nil, err
		}
		milestone.Type = &milestoneType
	}
	return milestone, nil
}

// AddMilestone 在技能下新增里程碑（skillID 为 0 时挂到作品集时间线）
func (s *SkillService) AddMilestone(userID uint, skillID uint, req MilestoneRequest) (*model.Milestone, error) {
	portfolio, err := s.PortfolioService.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}

	milestone, err := milestoneFromRequest(portfolio.ID, req)
	if err != nil {
		return nil, err
	}
	if skillID != 0 {
		skill, err := s.findOwnedSkill(userID, skillID)
		if err != nil {
			return nil, err
		}
		milestone.SkillID = &skill.ID
	}

	if err := s.SkillRepo.CreateMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

// AchieveMilestone 标记里程碑达成。达成是单向的：已达成的里程碑不允许回退，
// 尝试回退会返回 ErrMilestoneRevert（旧版前端没有强制该约束，这里选择强制）。
func (s *SkillService) AchieveMilestone(userID uint, milestoneID string, achieved bool) (*model.Milestone, error) {
	portfolio, err := s.PortfolioService.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}

	milestone, err := s.SkillRepo.FindMilestoneByID(milestoneID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrMilestoneNotFound
	}
	if err != nil {
		return nil, err
	}
	if milestone.PortfolioID != portfolio.ID {
		return nil, util.ErrPermissionDenied
	}

	if milestone.Achieved && !achieved {
		return nil, util.ErrMilestoneRevert
	}
	if milestone.Achieved == achieved {
		return milestone, nil
	}

	milestone.Achieved = achieved
	if err := s.SkillRepo.UpdateMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}
