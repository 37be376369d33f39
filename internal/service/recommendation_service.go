package service

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/util"
	"portfolio_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecommendedResource 推荐结果中的单条资源，附带匹配权重与估算时长
type RecommendedResource struct {
	model.Resource
	Weight         float64 `json:"weight"` // 风格匹配度 0~1，前端显示为百分比
	Score          float64 `json:"score"`
	EstimatedHours float64 `json:"estimatedHours"`
	DurationKnown  bool    `json:"durationKnown"` // false 表示时长格式无法识别，按 0 小时计入
}

// Recommendation 一次推荐的完整输出
type Recommendation struct {
	Topic        string                `json:"topic"`
	Style        model.LearningStyle   `json:"dominantStyle"`
	BudgetHours  float64               `json:"budgetHours"`
	PlannedHours float64               `json:"plannedHours"`
	Resources    []RecommendedResource `json:"resources"`
}

// WeightResources 按学习风格给目录资源分配权重：weight = 该风格答案数 / 总答案数。
// 总答案数为 0 时权重为 0，避免 NaN。不修改入参。
func WeightResources(counts model.StyleCounts, resources []model.Resource) []RecommendedResource {
	total := counts.Total()
	weighted := make([]RecommendedResource, 0, len(resources))
	for _, r := range resources {
		w := 0.0
		if total > 0 {
			w = float64(counts.Of(r.Style)) / float64(total)
		}
		weighted = append(weighted, RecommendedResource{Resource: r, Weight: w})
	}
	return weighted
}

// RankResources 过滤并排序：
//  1. 只保留难度与用户等级完全一致的资源（精确匹配，不是 "不高于"）；
//  2. score = (weight*5 + rating) * log10(reviews+1)，降序；
//  3. 稳定排序，得分相同保持目录原序。
func RankResources(weighted []RecommendedResource, userLevel model.Difficulty) []RecommendedResource {
	ranked := make([]RecommendedResource, 0, len(weighted))
	for _, r := range weighted {
		if r.Difficulty != userLevel {
			continue
		}
		r.Score = (r.Weight*5 + r.Rating) * math.Log10(float64(r.ReviewCount)+1)
		ranked = append(ranked, r)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// EstimateHours 把目录里的时长字符串换算成小时。
// 支持 "N週/N周/N weeks"、"N小時/N小时/N hours"、"N集/N episodes"；
// 无法识别的格式按 0 小时计（已知的近似处理：宁可放进预算也不丢弃条目），
// 返回的第二个值标记格式是否被识别。
func EstimateHours(duration string, cfg config.RecommenderConfig) (float64, bool) {
	n, ok := leadingNumber(duration)
	if !ok {
		return 0, false
	}
	switch {
	case strings.Contains(duration, "週"), strings.Contains(duration, "周"),
		strings.Contains(strings.ToLower(duration), "week"):
		return n * cfg.HoursPerWeek, true
	case strings.Contains(duration, "小時"), strings.Contains(duration, "小时"),
		strings.Contains(strings.ToLower(duration), "hour"):
		return n, true
	case strings.Contains(duration, "集"),
		strings.Contains(strings.ToLower(duration), "episode"):
		return n * cfg.HoursPerEpisode, true
	}
	return 0, false
}

func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SelectWithinBudget 贪心截取：按排名顺序累加估算时长，超出预算的条目直接停止，
// 不会部分收录某条资源，也不会越过超预算的条目去收录后面更小的。
func SelectWithinBudget(ranked []RecommendedResource, budgetHours float64, cfg config.RecommenderConfig) ([]RecommendedResource, float64) {
	selected := make([]RecommendedResource, 0, len(ranked))
	planned := 0.0
	for _, r := range ranked {
		hours, known := EstimateHours(r.Duration, cfg)
		if planned+hours > budgetHours {
			break
		}
		r.EstimatedHours = hours
		r.DurationKnown = known
		planned += hours
		selected = append(selected, r)
	}
	return selected, planned
}

// RecommendResources 完整推荐流水线：加权 → 过滤排序 → 时间盒截取。
// 纯函数，所有外部数据由调用方提供。
func RecommendResources(
	counts model.StyleCounts,
	catalog []model.Resource,
	userLevel model.Difficulty,
	weeklyHours float64,
	cfg config.RecommenderConfig,
) ([]RecommendedResource, float64, float64) {
	budget := weeklyHours * float64(cfg.PlanningHorizonWeeks)
	ranked := RankResources(WeightResources(counts, catalog), userLevel)
	selected, planned := SelectWithinBudget(ranked, budget, cfg)
	return selected, budget, planned
}

type RecommendationService struct {
	ResourceRepo *repository.ResourceRepository
	StyleService *StyleService

	mu  sync.RWMutex
	cfg config.RecommenderConfig
}

func NewRecommendationService(resourceRepo *repository.ResourceRepository, styleService *StyleService, cfg config.RecommenderConfig) *RecommendationService {
	return &RecommendationService{
		ResourceRepo: resourceRepo,
		StyleService: styleService,
		cfg:          cfg,
	}
}

// Config 返回计算参数的一致快照。参数可能被配置热更新协程替换，
// 读写都必须经过带锁的访问器。
func (s *RecommendationService) Config() config.RecommenderConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *RecommendationService) SetConfig(cfg config.RecommenderConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Recommend 取当前风格画像和主题目录后执行纯计算流水线
func (s *RecommendationService) Recommend(userID uint, topicCode string, userLevel model.Difficulty, weeklyHours float64) (*Recommendation, error) {
	if weeklyHours <= 0 {
		return nil, util.ErrInvalidWeeklyHours
	}

	profile, err := s.StyleService.GetCurrent(userID)
	if err != nil {
		return nil, err
	}

	topic, err := s.ResourceRepo.FindTopicByCode(topicCode)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}

	selected, budget, planned := RecommendResources(profile.Counts(), topic.Resources, userLevel, weeklyHours, s.Config())

	for _, r := range selected {
		if !r.DurationKnown {
			logger.Log.Warn("unrecognized resource duration, estimated as zero hours",
				zap.Uint("resourceId", r.Resource.ID),
				zap.String("duration", r.Duration))
		}
	}

	return &Recommendation{
		Topic:        topic.Code,
		Style:        profile.DominantStyle,
		BudgetHours:  budget,
		PlannedHours: planned,
		Resources:    selected,
	}, nil
}

func (s *RecommendationService) ListTopics() ([]model.Topic, error) {
	return s.ResourceRepo.ListTopics()
}
