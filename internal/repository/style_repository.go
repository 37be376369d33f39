package repository

import (
	"portfolio_backend/internal/model"

	"gorm.io/gorm"
)

type StyleRepository struct {
	DB *gorm.DB
}

func NewStyleRepository(db *gorm.DB) *StyleRepository {
	return &StyleRepository{DB: db}
}

func (r *StyleRepository) CreateProfile(profile *model.StyleProfile) error {
	return r.DB.Create(profile).Error
}

func (r *StyleRepository) FindLatestByUserID(userID uint) (*model.StyleProfile, error) {
	var profile model.StyleProfile
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *StyleRepository) FindAllByUserID(userID uint) ([]model.StyleProfile, error) {
	var profiles []model.StyleProfile
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *StyleRepository) ListQuestions() ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("enabled = ?", true).
		Order("sort ASC, id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *StyleRepository) CreateQuestion(question *model.QuizQuestion) error {
	return r.DB.Create(question).Error
}

func (r *StyleRepository) FindQuestionByID(questionID uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := r.DB.First(&question, questionID).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *StyleRepository) UpdateQuestion(question *model.QuizQuestion) error {
	return r.DB.Save(question).Error
}

func (r *StyleRepository) DeleteQuestion(questionID uint) error {
	return r.DB.Delete(&model.QuizQuestion{}, questionID).Error
}
