package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/util"
	"portfolio_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScoreAnswers 把一串测验答案归约为风格计数和主导风格。
// 纯函数：不依赖外部状态，同样输入必得同样输出。
// 主导风格取计数最大者，持平时按 visual > auditory > kinesthetic 的固定顺序取先者；
// 空答案时计数全为 0，主导风格取默认的 visual。
func ScoreAnswers(answers []model.LearningStyle) (model.StyleCounts, model.LearningStyle, error) {
	var counts model.StyleCounts
	for i, a := range answers {
		switch a {
		case model.StyleVisual:
			counts.Visual++
		case model.StyleAuditory:
			counts.Auditory++
		case model.StyleKinesthetic:
			counts.Kinesthetic++
		default:
			return model.StyleCounts{}, "", fmt.Errorf("answer %d: unknown learning style %q", i, a)
		}
	}

	dominant := model.StylePriority[0]
	best := counts.Of(dominant)
	for _, style := range model.StylePriority[1:] {
		if counts.Of(style) > best {
			dominant = style
			best = counts.Of(style)
		}
	}
	return counts, dominant, nil
}

type StyleService struct {
	StyleRepo *repository.StyleRepository
	Redis     *redis.Client
}

func NewStyleService(styleRepo *repository.StyleRepository, rdb *redis.Client) *StyleService {
	return &StyleService{
		StyleRepo: styleRepo,
		Redis:     rdb,
	}
}

// currentStyleKey 当前风格快照的 Redis 键
func currentStyleKey(userID uint) string {
	return fmt.Sprintf("style:current:%d", userID)
}

// styleSnapshot 对外持久化的 "当前风格" 快照格式
type styleSnapshot struct {
	Visual        int                 `json:"visual"`
	Auditory      int                 `json:"auditory"`
	Kinesthetic   int                 `json:"kinesthetic"`
	DominantStyle model.LearningStyle `json:"dominantStyle"`
	Timestamp     time.Time           `json:"timestamp"`
}

// profile 还原快照为风格画像，提交时间保留在 CreatedAt 上
func (snap styleSnapshot) profile(userID uint) *model.StyleProfile {
	return &model.StyleProfile{
		BaseModel:     model.BaseModel{CreatedAt: snap.Timestamp},
		UserID:        userID,
		Visual:        snap.Visual,
		Auditory:      snap.Auditory,
		Kinesthetic:   snap.Kinesthetic,
		DominantStyle: snap.DominantStyle,
	}
}

type QuizSubmission struct {
	Answers []string `json:"answers" binding:"required"`
}

// SubmitQuiz 记录一次测验：历史表追加一条不可变记录，并刷新 latest-wins 快照缓存
func (s *StyleService) SubmitQuiz(userID uint, req QuizSubmission) (*model.StyleProfile, error) {
	answers := make([]model.LearningStyle, 0, len(req.Answers))
	for _, raw := range req.Answers {
		style, err := model.ParseLearningStyle(raw)
		if err != nil {
			return nil, err
		}
		answers = append(answers, style)
	}

	counts, dominant, err := ScoreAnswers(answers)
	if err != nil {
		return nil, err
	}

	profile := &model.StyleProfile{
		UserID:        userID,
		Visual:        counts.Visual,
		Auditory:      counts.Auditory,
		Kinesthetic:   counts.Kinesthetic,
		DominantStyle: dominant,
	}

	if err := s.StyleRepo.CreateProfile(profile); err != nil {
		return nil, err
	}

	s.cacheSnapshot(profile)
	return profile, nil
}

func (s *StyleService) cacheSnapshot(profile *model.StyleProfile) {
	snap := styleSnapshot{
		Visual:        profile.Visual,
		Auditory:      profile.Auditory,
		Kinesthetic:   profile.Kinesthetic,
		DominantStyle: profile.DominantStyle,
		Timestamp:     profile.CreatedAt,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), currentStyleKey(profile.UserID), data, 0).Err(); err != nil {
		logger.Log.Warn("failed to cache style snapshot", zap.Uint("userId", profile.UserID), zap.Error(err))
	}
}

// GetCurrent 先查缓存，未命中时回退到数据库最新一条
func (s *StyleService) GetCurrent(userID uint) (*model.StyleProfile, error) {
	data, err := s.Redis.Get(context.Background(), currentStyleKey(userID)).Bytes()
	if err == nil {
		var snap styleSnapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return snap.profile(userID), nil
		}
	}

	profile, err := s.StyleRepo.FindLatestByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrNoStyleProfile
	}
	if err != nil {
		return nil, err
	}

	s.cacheSnapshot(profile)
	return profile, nil
}

func (s *StyleService) GetHistory(userID uint) ([]model.StyleProfile, error) {
	return s.StyleRepo.FindAllByUserID(userID)
}

func (s *StyleService) GetQuestions() ([]model.QuizQuestion, error) {
	return s.StyleRepo.ListQuestions()
}
