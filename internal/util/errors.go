package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPortfolioNotFound  = errors.New("portfolio not found")
	ErrItemNotFound       = errors.New("learning item not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillExists        = errors.New("skill already exists in portfolio")
	ErrMilestoneNotFound  = errors.New("milestone not found")
	ErrMilestoneRevert    = errors.New("achieved milestone cannot be reverted")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrNoStyleProfile     = errors.New("learning style quiz not completed yet")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidWeeklyHours = errors.New("weekly hours must be positive")
)
