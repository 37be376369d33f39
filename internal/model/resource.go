package model

import "fmt"

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Beginner, Intermediate, Advanced:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

type ResourceType string

const (
	ResVideo    ResourceType = "video"
	ResArticle  ResourceType = "article"
	ResCourse   ResourceType = "course"
	ResBook     ResourceType = "book"
	ResProject  ResourceType = "project"
	ResWorkshop ResourceType = "workshop"
)

func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResVideo, ResArticle, ResCourse, ResBook, ResProject, ResWorkshop:
		return ResourceType(s), nil
	}
	return "", fmt.Errorf("unknown resource type: %q", s)
}

// Topic 推荐主题
// swagger:model Topic
type Topic struct {
	BaseModel
	Code          string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Description   string     `gorm:"type:text" json:"description"`
	Difficulty    Difficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	Prerequisites []string   `gorm:"type:json;serializer:json" json:"prerequisites"`
	Enabled       bool       `gorm:"default:true" json:"enabled"`

	Resources []Resource `gorm:"foreignKey:TopicID" json:"resources,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// Resource 推荐资源目录条目，按主题和学习风格分类的只读参考数据
// swagger:model Resource
type Resource struct {
	BaseModel
	TopicID     uint          `gorm:"index;not null" json:"topicId"`
	Style       LearningStyle `gorm:"type:enum('visual','auditory','kinesthetic');not null" json:"style"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Type        ResourceType  `gorm:"type:enum('video','article','course','book','project','workshop');not null" json:"type"`
	URL         string        `gorm:"size:255;not null" json:"url"`
	Duration    string        `gorm:"size:50" json:"duration"` // 如 "4週" / "3小時" / "10集"
	Difficulty  Difficulty    `gorm:"type:enum('beginner','intermediate','advanced');not null" json:"difficulty"`
	Tags        []string      `gorm:"type:json;serializer:json" json:"tags"`
	Rating      float64       `gorm:"default:0" json:"rating"` // 0.0~5.0
	ReviewCount int           `gorm:"default:0" json:"reviews"`
}

func (Resource) TableName() string {
	return "resources"
}
