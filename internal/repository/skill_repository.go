package repository

import (
	"portfolio_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) Update(skill *model.Skill) error {
	return r.DB.Save(skill).Error
}

func (r *SkillRepository) FindByID(skillID uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("milestones.date ASC")
	}).First(&skill, skillID).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) FindByName(portfolioID uint, name string) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.Where("portfolio_id = ? AND name = ?", portfolioID, name).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) FindByPortfolioID(portfolioID uint) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.DB.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("milestones.date ASC")
	}).Where("portfolio_id = ?", portfolioID).
		Order("level DESC, name ASC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *SkillRepository) CreateMilestone(milestone *model.Milestone) error {
	return r.DB.Create(milestone).Error
}

func (r *SkillRepository) UpdateMilestone(milestone *model.Milestone) error {
	return r.DB.Save(milestone).Error
}

func (r *SkillRepository) FindMilestoneByID(milestoneID string) (*model.Milestone, error) {
	var milestone model.Milestone
	err := r.DB.Where("id = ?", milestoneID).First(&milestone).Error
	if err != nil {
		return nil, err
	}
	return &milestone, nil
}

// FindMilestonesByPortfolioID 取技能级和作品集级的全部里程碑
func (r *SkillRepository) FindMilestonesByPortfolioID(portfolioID uint) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := r.DB.Where("portfolio_id = ?", portfolioID).
		Order("date DESC").
		Find(&milestones).Error
	if err != nil {
		return nil, err
	}
	return milestones, nil
}
