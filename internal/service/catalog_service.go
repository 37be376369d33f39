package service

import (
	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/util"

	"gorm.io/gorm"
)

// CatalogService 推荐目录与测验题库的管理端维护
type CatalogService struct {
	ResourceRepo *repository.ResourceRepository
	StyleRepo    *repository.StyleRepository
}

func NewCatalogService(resourceRepo *repository.ResourceRepository, styleRepo *repository.StyleRepository) *CatalogService {
	return &CatalogService{
		ResourceRepo: resourceRepo,
		StyleRepo:    styleRepo,
	}
}

type TopicRequest struct {
	Code          string   `json:"code" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	Prerequisites []string `json:"prerequisites"`
}

func (s *CatalogService) CreateTopic(req TopicRequest) (*model.Topic, error) {
	topic := &model.Topic{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Prerequisites: req.Prerequisites,
		Enabled:       true,
	}
	if req.Difficulty != "" {
		difficulty, err := model.ParseDifficulty(req.Difficulty)
		if err != nil {
			return nil, err
		}
		topic.Difficulty = difficulty
	}

	if err := s.ResourceRepo.CreateTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *CatalogService) UpdateTopic(code string, req TopicRequest) (*model.Topic, error) {
	topic, err := s.ResourceRepo.FindTopicByCode(code)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}

	topic.Name = req.Name
	topic.Description = req.Description
	topic.Prerequisites = req.Prerequisites
	if req.Difficulty != "" {
		difficulty, err := model.ParseDifficulty(req.Difficulty)
		if err != nil {
			return nil, err
		}
		topic.Difficulty = difficulty
	}

	if err := s.ResourceRepo.UpdateTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

type ResourceRequest struct {
	Style       string   `json:"style" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	URL         string   `json:"url" binding:"required"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty" binding:"required"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviews"`
}

func (s *CatalogService) AddResource(topicCode string, req ResourceRequest) (*model.Resource, error) {
	topic, err := s.ResourceRepo.FindTopicByCode(topicCode)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}

	style, err := model.ParseLearningStyle(req.Style)
	if err != nil {
		return nil, err
	}
	resType, err := model.ParseResourceType(req.Type)
	if err != nil {
		return nil, err
	}
	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	resource := &model.Resource{
		TopicID:     topic.ID,
		Style:       style,
		Title:       req.Title,
		Type:        resType,
		URL:         req.URL,
		Duration:    req.Duration,
		Difficulty:  difficulty,
		Tags:        req.Tags,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
	}
	if err := s.ResourceRepo.CreateResource(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *CatalogService) UpdateResource(resourceID uint, req ResourceRequest) (*model.Resource, error) {
	resource, err := s.ResourceRepo.FindResourceByID(resourceID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	style, err := model.ParseLearningStyle(req.Style)
	if err != nil {
		return nil, err
	}
	resType, err := model.ParseResourceType(req.Type)
	if err != nil {
		return nil, err
	}
	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	resource.Style = style
	resource.Title = req.Title
	resource.Type = resType
	resource.URL = req.URL
	resource.Duration = req.Duration
	resource.Difficulty = difficulty
	resource.Tags = req.Tags
	resource.Rating = req.Rating
	resource.ReviewCount = req.ReviewCount

	if err := s.ResourceRepo.UpdateResource(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *CatalogService) DeleteResource(resourceID uint) error {
	if _, err := s.ResourceRepo.FindResourceByID(resourceID); err == gorm.ErrRecordNotFound {
		return util.ErrItemNotFound
	} else if err != nil {
		return err
	}
	return s.ResourceRepo.DeleteResource(resourceID)
}

type QuestionRequest struct {
	Text    string             `json:"text" binding:"required"`
	Sort    int                `json:"sort"`
	Options []model.QuizOption `json:"options" binding:"required"`
}

func (s *CatalogService) CreateQuestion(req QuestionRequest) (*model.QuizQuestion, error) {
	for _, opt := range req.Options {
		if _, err := model.ParseLearningStyle(string(opt.Style)); err != nil {
			return nil, err
		}
	}

	question := &model.QuizQuestion{
		Text:    req.Text,
		Sort:    req.Sort,
		Enabled: true,
		Options: req.Options,
	}
	if err := s.StyleRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CatalogService) UpdateQuestion(questionID uint, req QuestionRequest) (*model.QuizQuestion, error) {
	for _, opt := range req.Options {
		if _, err := model.ParseLearningStyle(string(opt.Style)); err != nil {
			return nil, err
		}
	}

	question, err := s.StyleRepo.FindQuestionByID(questionID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	question.Text = req.Text
	question.Sort = req.Sort
	question.Options = req.Options
	if err := s.StyleRepo.UpdateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CatalogService) DeleteQuestion(questionID uint) error {
	return s.StyleRepo.DeleteQuestion(questionID)
}
