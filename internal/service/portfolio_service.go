package service

import (
	"time"

	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/util"

	"gorm.io/gorm"
)

type PortfolioService struct {
	PortfolioRepo *repository.PortfolioRepository
	SkillRepo     *repository.SkillRepository
	UserRepo      *repository.UserRepository
	StatsService  *StatsService
	DB            *gorm.DB
}

func NewPortfolioService(
	portfolioRepo *repository.PortfolioRepository,
	skillRepo *repository.SkillRepository,
	userRepo *repository.UserRepository,
	statsService *StatsService,
	db *gorm.DB,
) *PortfolioService {
	return &PortfolioService{
		PortfolioRepo: portfolioRepo,
		SkillRepo:     skillRepo,
		UserRepo:      userRepo,
		StatsService:  statsService,
		DB:            db,
	}
}

// EnsurePortfolio 取用户作品集，不存在时创建空的
func (s *PortfolioService) EnsurePortfolio(userID uint) (*model.Portfolio, error) {
	portfolio, err := s.PortfolioRepo.FindByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		portfolio = &model.Portfolio{
			UserID: userID,
			View:   model.DefaultView(),
		}
		if err := s.PortfolioRepo.Create(portfolio); err != nil {
			return nil, err
		}
		return portfolio, nil
	}
	if err != nil {
		return nil, err
	}
	return portfolio, nil
}

// PortfolioOverview 作品集 + 实时重算的统计
type PortfolioOverview struct {
	Portfolio *model.Portfolio      `json:"portfolio"`
	Skills    []model.Skill         `json:"skills"`
	Stats     *model.PortfolioStats `json:"stats"`
}

// GetOverview 统计总是现算，缓存值不作为权威数据返回
func (s *PortfolioService) GetOverview(userID uint) (*PortfolioOverview, error) {
	portfolio, err := s.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.SkillRepo.FindByPortfolioID(portfolio.ID)
	if err != nil {
		return nil, err
	}

	stats, err := s.StatsService.Recompute(userID)
	if err != nil {
		return nil, err
	}
	portfolio.StatsCache = *stats

	return &PortfolioOverview{
		Portfolio: portfolio,
		Skills:    skills,
		Stats:     stats,
	}, nil
}

type ViewRequest struct {
	Type     string            `json:"type" binding:"required"`
	Template string            `json:"template"`
	Layout   model.ViewLayout  `json:"layout"`
	Filters  model.ViewFilters `json:"filters"`
}

// UpdateView 校验后更新当前视图设定（展示模式为闭合枚举，入口处校验一次）
func (s *PortfolioService) UpdateView(userID uint, req ViewRequest) (*model.PortfolioView, error) {
	portfolio, err := s.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}

	viewType, err := model.ParseViewType(req.Type)
	if err != nil {
		return nil, err
	}

	view := model.PortfolioView{
		Type:    viewType,
		Layout:  req.Layout,
		Filters: req.Filters,
	}
	if req.Template != "" {
		template, err := model.ParseTemplateName(req.Template)
		if err != nil {
			return nil, err
		}
		view.Template = template
	}
	for _, t := range req.Filters.Types {
		if _, err := model.ParseItemType(string(t)); err != nil {
			return nil, err
		}
	}
	for _, p := range req.Filters.Privacy {
		if _, err := model.ParsePrivacyLevel(string(p)); err != nil {
			return nil, err
		}
	}

	if err := s.PortfolioRepo.UpdateView(portfolio.ID, view); err != nil {
		return nil, err
	}
	return &view, nil
}

// FilterItems 按视图过滤条件筛选条目。纯函数，返回新切片，不修改入参。
func FilterItems(items []model.LearningItem, filters model.ViewFilters) []model.LearningItem {
	matched := make([]model.LearningItem, 0, len(items))
	for _, item := range items {
		if len(filters.Types) > 0 && !containsItemType(filters.Types, item.Type) {
			continue
		}
		if len(filters.Privacy) > 0 && !containsPrivacy(filters.Privacy, item.Privacy) {
			continue
		}
		if len(filters.Tags) > 0 && !intersects(filters.Tags, item.Tags) {
			continue
		}
		if len(filters.Skills) > 0 && !intersects(filters.Skills, item.Skills) {
			continue
		}
		if filters.DateStart != "" {
			if start, err := time.Parse(util.DateFormat, filters.DateStart); err == nil && item.Date.Before(start) {
				continue
			}
		}
		if filters.DateEnd != "" {
			if end, err := time.Parse(util.DateFormat, filters.DateEnd); err == nil && item.Date.After(end) {
				continue
			}
		}
		matched = append(matched, item)
	}
	return matched
}

func containsItemType(list []model.ItemType, t model.ItemType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func containsPrivacy(list []model.PrivacyLevel, p model.PrivacyLevel) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}

func intersects(want, have []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, v := range have {
		set[v] = struct{}{}
	}
	for _, v := range want {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

type ItemRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Type          string   `json:"type" binding:"required"`
	Date          string   `json:"date" binding:"required"` // YYYY-MM-DD
	Tags          []string `json:"tags"`
	Skills        []string `json:"skills"`
	Privacy       string   `json:"privacy"`
	ContentText   string   `json:"contentText"`
	Collaborators []string `json:"collaborators"`
	Achieved      bool     `json:"achieved"`
}

func (req *ItemRequest) toModel() (*model.LearningItem, error) {
	itemType, err := model.ParseItemType(req.Type)
	if err != nil {
		return nil, err
	}

	privacy := model.PrivacyPublic
	if req.Privacy != "" {
		if privacy, err = model.ParsePrivacyLevel(req.Privacy); err != nil {
			return nil, err
		}
	}

	date, err := time.Parse(util.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	return &model.LearningItem{
		Title:         req.Title,
		Description:   req.Description,
		Type:          itemType,
		Date:          date,
		Tags:          req.Tags,
		Skills:        req.Skills,
		Privacy:       privacy,
		ContentText:   req.ContentText,
		Collaborators: req.Collaborators,
		Achieved:      req.Achieved,
	}, nil
}

func (s *PortfolioService) CreateItem(userID uint, req ItemRequest) (*model.LearningItem, error) {
	portfolio, err := s.EnsurePortfolio(userID)
	if err != nil {
		return nil, err
	}

	item, err := req.toModel()
	if err != nil {
		return nil, err
	}
	item.PortfolioID = portfolio.ID

	if err := s.PortfolioRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// findOwnedItem 取条目并校验归属
func (s *PortfolioService) findOwnedItem(userID uint, itemID string) (*model.LearningItem, *model.Portfolio, error) {
	portfolio, err := s.EnsurePortfolio(userID)
	if err != nil {
		return nil, nil, err
	}
	item, err := s.PortfolioRepo.FindItemByID(itemID)
	if err == gorm.ErrRecordNotFound {
		return nil, nil, util.ErrItemNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if item.PortfolioID != portfolio.ID {
		return nil, nil, util.ErrPermissionDenied
	}
	return item, portfolio, nil
}

func (s *PortfolioService) GetItem(userID uint, itemID string) (*model.LearningItem, error) {
	item, _, err := s.findOwnedItem(userID, itemID)
	return item, err
}

func (s *PortfolioService) UpdateItem(userID uint, itemID string, req ItemRequest) (*model.LearningItem, error) {
	item, _, err := s.findOwnedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	updated, err := req.toModel()
	if err != nil {
		return nil, err
	}

	item.Title = updated.Title
	item.Description = updated.Description
	item.Type = updated.Type
	item.Date = updated.Date
	item.Tags = updated.Tags
	item.Skills = updated.Skills
	item.Privacy = updated.Privacy
	item.ContentText = updated.ContentText
	item.Collaborators = updated.Collaborators
	item.Achieved = updated.Achieved

	if err := s.PortfolioRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem 删除条目，并在同一事务里把技能和里程碑的条目引用剪掉，
// 避免留下悬空的 relatedItems。
func (s *PortfolioService) DeleteItem(userID uint, itemID string) error {
	_, portfolio, err := s.findOwnedItem(userID, itemID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.PortfolioRepo.DeleteItem(tx, itemID); err != nil {
			return err
		}

		var skills []model.Skill
		if err := tx.Where("portfolio_id = ?", portfolio.ID).Find(&skills).Error; err != nil {
			return err
		}
		for i := range skills {
			pruned := removeString(skills[i].RelatedItems, itemID)
			if len(pruned) != len(skills[i].RelatedItems) {
				skills[i].RelatedItems = pruned
				if err := tx.Save(&skills[i]).Error; err != nil {
					return err
				}
			}
		}

		var milestones []model.Milestone
		if err := tx.Where("portfolio_id = ?", portfolio.ID).Find(&milestones).Error; err != nil {
			return err
		}
		for i := range milestones {
			pruned := removeString(milestones[i].RelatedItems, itemID)
			if len(pruned) != len(milestones[i].RelatedItems) {
				milestones[i].RelatedItems = pruned
				if err := tx.Save(&milestones[i]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func removeString(list []string, target string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}

type FeedbackRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating"`
}

// AddFeedback 回馈只追加；评分可选，给了就必须在 1~5
func (s *PortfolioService) AddFeedback(userID uint, itemID string, req FeedbackRequest) (*model.Feedback, error) {
	item, err := s.PortfolioRepo.FindItemByID(itemID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		return nil, util.ErrInvalidRating
	}

	feedback := &model.Feedback{
		ItemID:  item.ID,
		UserID:  userID,
		Content: req.Content,
		Rating:  req.Rating,
	}
	if err := s.PortfolioRepo.AddFeedback(feedback); err != nil {
		return nil, err
	}

	// 回馈数同步进互动计数器，数据库侧原子递增
	if err := s.PortfolioRepo.IncrComments(item.ID); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *PortfolioService) Bookmark(itemID string) error {
	if _, err := s.PortfolioRepo.FindItemByID(itemID); err == gorm.ErrRecordNotFound {
		return util.ErrItemNotFound
	} else if err != nil {
		return err
	}
	return s.PortfolioRepo.IncrBookmarks(itemID)
}

func (s *PortfolioService) RequestCollaboration(itemID string) error {
	if _, err := s.PortfolioRepo.FindItemByID(itemID); err == gorm.ErrRecordNotFound {
		return util.ErrItemNotFound
	} else if err != nil {
		return err
	}
	return s.PortfolioRepo.IncrCollaborationRequests(itemID)
}

// SharePayload 导出/分享工具消费的数据快照，文件生成完全在服务之外
type SharePayload struct {
	Name     string               `json:"name"`
	Headline string               `json:"headline,omitempty"`
	Bio      string               `json:"bio,omitempty"`
	Avatar   string               `json:"avatar,omitempty"`
	Stats    model.PortfolioStats `json:"stats"`
	Items    []ShareItem          `json:"items"`
}

type ShareItem struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        model.ItemType `json:"type"`
	Date        string         `json:"date"`
	Tags        []string       `json:"tags,omitempty"`
}

// BuildSharePayload 只输出公开条目的标题/描述/统计
func (s *PortfolioService) BuildSharePayload(userID uint) (*SharePayload, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	overview, err := s.GetOverview(userID)
	if err != nil {
		return nil, err
	}

	payload := &SharePayload{
		Name:     user.Name,
		Headline: user.Headline,
		Bio:      user.Bio,
		Avatar:   user.Avatar,
		Stats:    *overview.Stats,
		Items:    []ShareItem{},
	}
	for _, item := range overview.Portfolio.Items {
		if item.Privacy != model.PrivacyPublic {
			continue
		}
		payload.Items = append(payload.Items, ShareItem{
			Title:       item.Title,
			Description: item.Description,
			Type:        item.Type,
			Date:        item.Date.Format(util.DateFormat),
			Tags:        item.Tags,
		})
	}
	return payload, nil
}
