package controller

import (
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StyleController struct {
	StyleService *service.StyleService
}

func NewStyleController(styleService *service.StyleService) *StyleController {
	return &StyleController{StyleService: styleService}
}

// @Summary 获取测验题目
// @Description 学习风格测验的启用题目，按排序字段返回
// @Tags 学习风格
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/learning-style/questions [get]
func (c *StyleController) GetQuestions(ctx *gin.Context) {
	questions, err := c.StyleService.GetQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 提交风格测验
// @Description 答案归约为风格计数与主导风格，历史记录只追加
// @Tags 学习风格
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param answers body service.QuizSubmission true "答案列表"
// @Success 201 {object} util.Response
// @Router /api/learning-style/submit [post]
func (c *StyleController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.StyleService.SubmitQuiz(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, profile)
}

// @Summary 获取当前学习风格
// @Description 最近一次测验结果，优先走缓存
// @Tags 学习风格
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/learning-style/current [get]
func (c *StyleController) GetCurrent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.StyleService.GetCurrent(claims.UserID)
	if err != nil {
		if err == util.ErrNoStyleProfile {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 获取测验历史
// @Tags 学习风格
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/learning-style/history [get]
func (c *StyleController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.StyleService.GetHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}
