package model

import (
	"fmt"
	"time"
)

type ItemType string

const (
	ItemCourse     ItemType = "course"
	ItemProject    ItemType = "project"
	ItemNote       ItemType = "note"
	ItemResearch   ItemType = "research"
	ItemInternship ItemType = "internship"
)

func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemCourse, ItemProject, ItemNote, ItemResearch, ItemInternship:
		return ItemType(s), nil
	}
	return "", fmt.Errorf("unknown item type: %q", s)
}

type PrivacyLevel string

const (
	PrivacyPublic      PrivacyLevel = "public"
	PrivacyPrivate     PrivacyLevel = "private"
	PrivacyConnections PrivacyLevel = "connections"
)

func ParsePrivacyLevel(s string) (PrivacyLevel, error) {
	switch PrivacyLevel(s) {
	case PrivacyPublic, PrivacyPrivate, PrivacyConnections:
		return PrivacyLevel(s), nil
	}
	return "", fmt.Errorf("unknown privacy level: %q", s)
}

type MediaType string

const (
	MediaImage        MediaType = "image"
	MediaVideo        MediaType = "video"
	MediaDocument     MediaType = "document"
	MediaCode         MediaType = "code"
	MediaPresentation MediaType = "presentation"
	MediaFigma        MediaType = "figma"
	MediaGithub       MediaType = "github"
	MediaNotion       MediaType = "notion"
)

func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaImage, MediaVideo, MediaDocument, MediaCode,
		MediaPresentation, MediaFigma, MediaGithub, MediaNotion:
		return MediaType(s), nil
	}
	return "", fmt.Errorf("unknown media type: %q", s)
}

// LearningItem 学习条目（课程/专案/笔记/研究/实习），归属于唯一的作品集
// swagger:model LearningItem
type LearningItem struct {
	UUIDBase
	PortfolioID uint         `gorm:"index;not null" json:"portfolioId"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Type        ItemType     `gorm:"type:enum('course','project','note','research','internship');not null" json:"type"`
	Date        time.Time    `gorm:"index;not null" json:"date"`
	Tags        []string     `gorm:"type:json;serializer:json" json:"tags"`
	Skills      []string     `gorm:"type:json;serializer:json" json:"skills"` // 技能名引用，非所有权
	Privacy     PrivacyLevel `gorm:"type:enum('public','private','connections');default:'public'" json:"privacy"`
	ContentText string       `gorm:"type:text" json:"contentText"`
	Achieved    bool         `gorm:"default:false" json:"achieved"`

	Collaborators []string `gorm:"type:json;serializer:json" json:"collaborators"`

	// 互动计数器
	Bookmarks             int `gorm:"default:0" json:"bookmarks"`
	Comments              int `gorm:"default:0" json:"comments"`
	CollaborationRequests int `gorm:"default:0" json:"collaborationRequests"`

	Media    []MediaRef `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"media"`
	Feedback []Feedback `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"feedback"`
}

func (LearningItem) TableName() string {
	return "learning_items"
}

// HasCollaborators 判断是否为协作项目
func (i *LearningItem) HasCollaborators() bool {
	return len(i.Collaborators) > 0
}

// MediaRef 条目内容中的有序媒体引用
// swagger:model MediaRef
type MediaRef struct {
	UUIDBase
	ItemID     string    `gorm:"index;type:varchar(36);not null" json:"itemId"`
	Sort       int       `gorm:"default:0" json:"sort"`
	Type       MediaType `gorm:"type:enum('image','video','document','code','presentation','figma','github','notion');not null" json:"type"`
	URL        string    `gorm:"size:255;not null" json:"url"`
	Title      string    `gorm:"size:255" json:"title"`
	PreviewURL string    `gorm:"size:255" json:"previewUrl"`
	EmbedCode  string    `gorm:"type:text" json:"embedCode,omitempty"`
	Duration   float64   `gorm:"default:0" json:"duration"`  // 视频时长（秒），上传时由 ffmpeg 探测
	Thumbnail  string    `gorm:"size:255" json:"thumbnail"` // 视频缩略图URL
}

func (MediaRef) TableName() string {
	return "media_refs"
}

// Feedback 条目收到的回馈，只追加不修改
// swagger:model Feedback
type Feedback struct {
	UUIDBase
	ItemID  string `gorm:"index;type:varchar(36);not null" json:"itemId"`
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`
	Rating  int    `gorm:"default:0" json:"rating,omitempty"` // 1~5，0 表示未评分
}

func (Feedback) TableName() string {
	return "feedbacks"
}
