package controller

import (
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	PortfolioService *service.PortfolioService
	StatsService     *service.StatsService
	TimelineService  *service.TimelineService
}

func NewPortfolioController(
	portfolioService *service.PortfolioService,
	statsService *service.StatsService,
	timelineService *service.TimelineService,
) *PortfolioController {
	return &PortfolioController{
		PortfolioService: portfolioService,
		StatsService:     statsService,
		TimelineService:  timelineService,
	}
}

// @Summary 获取作品集总览
// @Description 返回作品集、技能列表和实时重算的统计数据
// @Tags 作品集
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/portfolio [get]
func (c *PortfolioController) GetOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.PortfolioService.GetOverview(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary 更新展示视图
// @Description 设置作品集的展示模式、模板和过滤条件
// @Tags 作品集
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param view body service.ViewRequest true "视图设定"
// @Success 200 {object} util.Response
// @Router /api/portfolio/view [put]
func (c *PortfolioController) UpdateView(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ViewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.PortfolioService.UpdateView(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, view)
}

// @Summary 获取统计数据
// @Description 重算并返回作品集聚合统计
// @Tags 作品集
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/portfolio/stats [get]
func (c *PortfolioController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.StatsService.Recompute(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 获取学习时间线
// @Description 条目与里程碑合并后的时间线视图，含进度块
// @Tags 作品集
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/portfolio/timeline [get]
func (c *PortfolioController) GetTimeline(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if _, err := c.PortfolioService.EnsurePortfolio(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	timeline, err := c.TimelineService.GetTimeline(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, timeline)
}

// @Summary 获取学习计划
// @Description 里程碑按达成状态拆分的计划视图
// @Tags 作品集
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/portfolio/learning-plan [get]
func (c *PortfolioController) GetLearningPlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if _, err := c.PortfolioService.EnsurePortfolio(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	plan, err := c.TimelineService.GetLearningPlan(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}

// @Summary 导出分享数据
// @Description 生成只含公开条目的分享快照，供前端导出 PDF 或分享链接
// @Tags 作品集
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/portfolio/share [get]
func (c *PortfolioController) Share(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	payload, err := c.PortfolioService.BuildSharePayload(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, payload)
}
