package model

import "fmt"

// LearningStyle 学习风格标签
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
)

// StylePriority 风格的固定枚举顺序，计数持平时按该顺序取第一个。
// 朴素的 "取最大值" 归约会依赖遍历顺序，平局时结果不确定，这里必须显式定义。
var StylePriority = []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic}

func ParseLearningStyle(s string) (LearningStyle, error) {
	switch LearningStyle(s) {
	case StyleVisual, StyleAuditory, StyleKinesthetic:
		return LearningStyle(s), nil
	}
	return "", fmt.Errorf("unknown learning style: %q", s)
}

// StyleCounts 每种风格命中的测验答案数
type StyleCounts struct {
	Visual      int `json:"visual"`
	Auditory    int `json:"auditory"`
	Kinesthetic int `json:"kinesthetic"`
}

func (c StyleCounts) Total() int {
	return c.Visual + c.Auditory + c.Kinesthetic
}

// Of 返回指定风格的计数
func (c StyleCounts) Of(style LearningStyle) int {
	switch style {
	case StyleVisual:
		return c.Visual
	case StyleAuditory:
		return c.Auditory
	case StyleKinesthetic:
		return c.Kinesthetic
	}
	return 0
}

// StyleProfile 一次完整测验的结果快照，创建后不可变；新测验产生新记录（latest-wins）
// swagger:model StyleProfile
type StyleProfile struct {
	BaseModel
	UserID        uint          `gorm:"index;not null" json:"userId"`
	Visual        int           `gorm:"default:0" json:"visual"`
	Auditory      int           `gorm:"default:0" json:"auditory"`
	Kinesthetic   int           `gorm:"default:0" json:"kinesthetic"`
	DominantStyle LearningStyle `gorm:"type:enum('visual','auditory','kinesthetic');not null" json:"dominantStyle"`
}

func (StyleProfile) TableName() string {
	return "style_profiles"
}

func (p *StyleProfile) Counts() StyleCounts {
	return StyleCounts{Visual: p.Visual, Auditory: p.Auditory, Kinesthetic: p.Kinesthetic}
}

// QuizOption 测验题选项，value 为对应的学习风格
type QuizOption struct {
	Style LearningStyle `json:"value"`
	Text  string        `json:"text"`
}

// QuizQuestion 学习风格测验题库
// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	Text    string       `gorm:"size:255;not null" json:"text"`
	Sort    int          `gorm:"default:0" json:"sort"`
	Enabled bool         `gorm:"default:true" json:"enabled"`
	Options []QuizOption `gorm:"type:json;serializer:json" json:"options"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
