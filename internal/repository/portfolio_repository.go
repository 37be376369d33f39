package repository

import (
	"portfolio_backend/internal/model"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	DB *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{DB: db}
}

func (r *PortfolioRepository) Create(portfolio *model.Portfolio) error {
	return r.DB.Create(portfolio).Error
}

// FindByUserID 取用户作品集，条目按日期降序并预载媒体/回馈
func (r *PortfolioRepository) FindByUserID(userID uint) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("learning_items.date DESC")
		}).
		Preload("Items.Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("media_refs.sort ASC")
		}).
		Preload("Items.Feedback", func(db *gorm.DB) *gorm.DB {
			return db.Order("feedbacks.created_at ASC")
		}).
		Where("user_id = ?", userID).
		First(&portfolio).Error
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

func (r *PortfolioRepository) UpdateView(portfolioID uint, view model.PortfolioView) error {
	return r.DB.Model(&model.Portfolio{}).Where("id = ?", portfolioID).
		Update("view", view).Error
}

func (r *PortfolioRepository) UpdateStatsCache(portfolioID uint, stats model.PortfolioStats) error {
	return r.DB.Model(&model.Portfolio{}).Where("id = ?", portfolioID).
		Update("stats_cache", stats).Error
}

func (r *PortfolioRepository) CreateItem(item *model.LearningItem) error {
	return r.DB.Create(item).Error
}

func (r *PortfolioRepository) FindItemByID(itemID string) (*model.LearningItem, error) {
	var item model.LearningItem
	err := r.DB.
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("media_refs.sort ASC")
		}).
		Preload("Feedback", func(db *gorm.DB) *gorm.DB {
			return db.Order("feedbacks.created_at ASC")
		}).
		Where("id = ?", itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepository) UpdateItem(item *model.LearningItem) error {
	return r.DB.Save(item).Error
}

// DeleteItem 删除条目及其媒体/回馈（数据库层级联）
func (r *PortfolioRepository) DeleteItem(tx *gorm.DB, itemID string) error {
	return tx.Delete(&model.LearningItem{}, "id = ?", itemID).Error
}

func (r *PortfolioRepository) AddFeedback(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

func (r *PortfolioRepository) AddMedia(media *model.MediaRef) error {
	return r.DB.Create(media).Error
}

// IncrBookmarks 原子递增书签计数
func (r *PortfolioRepository) IncrBookmarks(itemID string) error {
	return r.DB.Model(&model.LearningItem{}).Where("id = ?", itemID).
		UpdateColumn("bookmarks", gorm.Expr("bookmarks + 1")).Error
}

func (r *PortfolioRepository) IncrComments(itemID string) error {
	return r.DB.Model(&model.LearningItem{}).Where("id = ?", itemID).
		UpdateColumn("comments", gorm.Expr("comments + 1")).Error
}

func (r *PortfolioRepository) IncrCollaborationRequests(itemID string) error {
	return r.DB.Model(&model.LearningItem{}).Where("id = ?", itemID).
		UpdateColumn("collaboration_requests", gorm.Expr("collaboration_requests + 1")).Error
}
