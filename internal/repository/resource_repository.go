package repository

import (
	"portfolio_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) ListTopics() ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.Where("enabled = ?", true).Order("code ASC").Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

// FindTopicByCode 取主题及其按创建顺序排列的资源目录。
// 资源顺序即目录原序，推荐排序的稳定平局规则依赖它。
func (r *ResourceRepository) FindTopicByCode(code string) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.Preload("Resources", func(db *gorm.DB) *gorm.DB {
		return db.Order("resources.id ASC")
	}).Where("code = ? AND enabled = ?", code, true).
		First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *ResourceRepository) CreateTopic(topic *model.Topic) error {
	return r.DB.Create(topic).Error
}

func (r *ResourceRepository) UpdateTopic(topic *model.Topic) error {
	return r.DB.Save(topic).Error
}

func (r *ResourceRepository) CreateResource(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) UpdateResource(resource *model.Resource) error {
	return r.DB.Save(resource).Error
}

func (r *ResourceRepository) FindResourceByID(resourceID uint) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.First(&resource, resourceID).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *ResourceRepository) DeleteResource(resourceID uint) error {
	return r.DB.Delete(&model.Resource{}, resourceID).Error
}
