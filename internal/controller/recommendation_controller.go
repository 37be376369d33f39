package controller

import (
	"strconv"

	"portfolio_backend/internal/model"
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// @Summary 获取主题目录
// @Description 可供推荐的学习主题列表
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/recommendations/topics [get]
func (c *RecommendationController) ListTopics(ctx *gin.Context) {
	topics, err := c.RecommendationService.ListTopics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// @Summary 获取学习资源推荐
// @Description 按学习风格加权、难度精确过滤、评分排序后按周预算截取
// @Tags 推荐
// @Produce json
// @Security ApiKeyAuth
// @Param topic query string true "主题编码"
// @Param level query string true "用户难度等级 beginner/intermediate/advanced"
// @Param weeklyHours query number true "每周学习时数"
// @Success 200 {object} util.Response
// @Router /api/recommendations [get]
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	topicCode := ctx.Query("topic")
	if topicCode == "" {
		util.BadRequest(ctx, "topic is required")
		return
	}
	level, err := model.ParseDifficulty(ctx.Query("level"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	weeklyHours, err := strconv.ParseFloat(ctx.Query("weeklyHours"), 64)
	if err != nil {
		util.BadRequest(ctx, "weeklyHours must be a number")
		return
	}

	recommendation, err := c.RecommendationService.Recommend(claims.UserID, topicCode, level, weeklyHours)
	if err != nil {
		switch err {
		case util.ErrInvalidWeeklyHours:
			util.BadRequest(ctx, err.Error())
		case util.ErrNoStyleProfile, util.ErrTopicNotFound:
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, recommendation)
}
