package model

import (
	"fmt"
	"time"
)

// Skill 作品集内唯一命名的技能，只升级或补充里程碑，不删除
// swagger:model Skill
type Skill struct {
	BaseModel
	PortfolioID  uint     `gorm:"uniqueIndex:idx_portfolio_skill;not null" json:"portfolioId"`
	Name         string   `gorm:"size:100;uniqueIndex:idx_portfolio_skill;not null" json:"name"`
	Level        int      `gorm:"default:1" json:"level"` // 1~5
	RelatedItems []string `gorm:"type:json;serializer:json" json:"relatedItems"`

	// 成长记录
	StartDate    *time.Time  `json:"startDate,omitempty"`
	Endorsements int         `gorm:"default:0" json:"endorsements"`
	Milestones   []Milestone `gorm:"foreignKey:SkillID" json:"milestones"`
}

func (Skill) TableName() string {
	return "skills"
}

const (
	SkillLevelMin = 1
	SkillLevelMax = 5
)

func ValidateSkillLevel(level int) error {
	if level < SkillLevelMin || level > SkillLevelMax {
		return fmt.Errorf("skill level must be between %d and %d, got %d", SkillLevelMin, SkillLevelMax, level)
	}
	return nil
}

type MilestoneType string

const (
	MilestoneSkill       MilestoneType = "skill"
	MilestoneProject     MilestoneType = "project"
	MilestoneAchievement MilestoneType = "achievement"
)

func ParseMilestoneType(s string) (MilestoneType, error) {
	switch MilestoneType(s) {
	case MilestoneSkill, MilestoneProject, MilestoneAchievement:
		return MilestoneType(s), nil
	}
	return "", fmt.Errorf("unknown milestone type: %q", s)
}

// Milestone 带日期的成就标记，挂在某个技能下或直接挂在作品集时间线上。
// Achieved 只能从 false 变为 true，不允许回退（见 SkillService.AchieveMilestone）。
// swagger:model Milestone
type Milestone struct {
	UUIDBase
	PortfolioID  uint          `gorm:"index;not null" json:"portfolioId"`
	SkillID      *uint         `gorm:"index" json:"skillId,omitempty"` // 为空时表示作品集级里程碑
	Title        string        `gorm:"size:255;not null" json:"title"`
	Date         time.Time     `gorm:"index;not null" json:"date"`
	Description  string        `gorm:"type:text" json:"description,omitempty"`
	Achieved     bool           `gorm:"default:false" json:"achieved"`
	Type         *MilestoneType `gorm:"type:enum('skill','project','achievement')" json:"type,omitempty"` // 可选，缺省落库为 NULL
	RelatedItems []string       `gorm:"type:json;serializer:json" json:"relatedItems,omitempty"`
}

func (Milestone) TableName() string {
	return "milestones"
}
