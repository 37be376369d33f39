package model

import "fmt"

// ViewType 展示模式，闭合枚举（原先松散的字符串分支重构为带校验的变体）
type ViewType string

const (
	ViewGrid     ViewType = "grid"
	ViewTimeline ViewType = "timeline"
	ViewDetailed ViewType = "detailed"
	ViewSkills   ViewType = "skills"
	ViewSocial   ViewType = "social"
	ViewProjects ViewType = "projects"
)

func ParseViewType(s string) (ViewType, error) {
	switch ViewType(s) {
	case ViewGrid, ViewTimeline, ViewDetailed, ViewSkills, ViewSocial, ViewProjects:
		return ViewType(s), nil
	}
	return "", fmt.Errorf("unknown view type: %q", s)
}

type TemplateName string

const (
	TemplateMinimal      TemplateName = "minimal"
	TemplateCreative     TemplateName = "creative"
	TemplateProfessional TemplateName = "professional"
	TemplateTechnical    TemplateName = "technical"
)

func ParseTemplateName(s string) (TemplateName, error) {
	switch TemplateName(s) {
	case TemplateMinimal, TemplateCreative, TemplateProfessional, TemplateTechnical:
		return TemplateName(s), nil
	}
	return "", fmt.Errorf("unknown template: %q", s)
}

// ViewLayout 布局开关
type ViewLayout struct {
	Columns           int  `json:"columns,omitempty"`
	ShowMilestones    bool `json:"showMilestones"`
	ShowInteractions  bool `json:"showInteractions"`
	ShowCollaborators bool `json:"showCollaborators"`
	ShowProgress      bool `json:"showProgress"`
}

// ViewFilters 条目过滤条件，空字段表示不过滤
type ViewFilters struct {
	Tags      []string       `json:"tags,omitempty"`
	Skills    []string       `json:"skills,omitempty"`
	Types     []ItemType     `json:"types,omitempty"`
	Privacy   []PrivacyLevel `json:"privacy,omitempty"`
	DateStart string         `json:"dateStart,omitempty"` // YYYY-MM-DD
	DateEnd   string         `json:"dateEnd,omitempty"`
}

// PortfolioView 当前展示设定
type PortfolioView struct {
	Type     ViewType     `json:"type"`
	Template TemplateName `json:"template,omitempty"`
	Layout   ViewLayout   `json:"layout"`
	Filters  ViewFilters  `json:"filters"`
}

// DefaultView 新作品集的初始视图
func DefaultView() PortfolioView {
	return PortfolioView{
		Type:     ViewGrid,
		Template: TemplateMinimal,
		Layout: ViewLayout{
			Columns:           2,
			ShowMilestones:    true,
			ShowInteractions:  true,
			ShowCollaborators: true,
			ShowProgress:      true,
		},
	}
}

// Portfolio 聚合根，每个用户一份
// swagger:model Portfolio
type Portfolio struct {
	BaseModel
	UserID uint          `gorm:"uniqueIndex;not null" json:"userId"`
	View   PortfolioView `gorm:"type:json;serializer:json" json:"currentView"`

	// 缓存的派生统计，仅作展示加速；读取时总是重算覆盖，不以缓存为准
	StatsCache PortfolioStats `gorm:"type:json;serializer:json" json:"stats"`

	Items      []LearningItem `gorm:"foreignKey:PortfolioID" json:"items"`
	Skills     []Skill        `gorm:"foreignKey:PortfolioID" json:"skills"`
	Milestones []Milestone    `gorm:"foreignKey:PortfolioID" json:"-"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

// LearningProgress 里程碑与专案进度
type LearningProgress struct {
	TotalMilestones     int     `json:"totalMilestones"`
	CompletedMilestones int     `json:"completedMilestones"`
	ActiveProjects      int     `json:"activeProjects"`
	CompletionPercent   float64 `json:"completionPercent"` // 0~100，无里程碑时为 0
}

// InteractionTotals 各条目互动计数之和
type InteractionTotals struct {
	TotalBookmarks             int `json:"totalBookmarks"`
	TotalComments              int `json:"totalComments"`
	TotalCollaborationRequests int `json:"totalCollaborationRequests"`
}

// SocialSummary 协作概览（社交视图）
type SocialSummary struct {
	CollaborationItems int `json:"collaborationItems"` // 有协作者或回馈的条目数
	Partners           int `json:"partners"`           // 去重后的协作伙伴数
	FeedbackReceived   int `json:"feedbackReceived"`
}

// PortfolioStats 作品集统计，完全由 items/skills 派生
// swagger:model PortfolioStats
type PortfolioStats struct {
	TotalItems         int               `json:"totalItems"`
	SkillCount         int               `json:"skillCount"`
	CollaborationCount int               `json:"collaborationCount"`
	TopSkills          []string          `json:"topSkills"`
	AverageRating      float64           `json:"averageRating"` // 回馈平均分，无评分时为 0
	LearningProgress   LearningProgress  `json:"learningProgress"`
	Interactions       InteractionTotals `json:"interactions"`
	Social             SocialSummary     `json:"social"`
}
