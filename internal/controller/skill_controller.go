package controller

import (
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{SkillService: skillService}
}

func mapSkillError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrSkillNotFound, util.ErrMilestoneNotFound:
		util.NotFound(ctx, err.Error())
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	case util.ErrSkillExists, util.ErrMilestoneRevert:
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 获取技能列表
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/portfolio/skills [get]
func (c *SkillController) GetSkills(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	skills, err := c.SkillService.GetSkills(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// @Summary 创建技能
// @Description 技能名在同一作品集内唯一
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param skill body service.SkillRequest true "技能信息"
// @Success 201 {object} util.Response
// @Router /api/portfolio/skills [post]
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.SkillService.CreateSkill(claims.UserID, req)
	if err != nil {
		mapSkillError(ctx, err)
		return
	}
	util.Created(ctx, skill)
}

type LevelRequest struct {
	Level int `json:"level" binding:"required"`
}

// @Summary 更新技能等级
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "技能 ID"
// @Param level body LevelRequest true "等级 1~5"
// @Success 200 {object} util.Response
// @Router /api/portfolio/skills/{id}/level [put]
func (c *SkillController) UpdateLevel(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.SkillService.UpdateLevel(claims.UserID, util.MustParseUint(ctx.Param("id")), req.Level)
	if err != nil {
		mapSkillError(ctx, err)
		return
	}
	util.Success(ctx, skill)
}

// @Summary 认可技能
// @Description 技能认可数 +1
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "技能 ID"
// @Success 200 {object} util.Response
// @Router /api/portfolio/skills/{id}/endorse [post]
func (c *SkillController) Endorse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	skill, err := c.SkillService.Endorse(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		mapSkillError(ctx, err)
		return
	}
	util.Success(ctx, skill)
}

// @Summary 添加里程碑
// @Description skillId 为 0 时挂到作品集时间线而非具体技能
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "技能 ID，0 表示作品集级"
// @Param milestone body service.MilestoneRequest true "里程碑内容"
// @Success 201 {object} util.Response
// @Router /api/portfolio/skills/{id}/milestones [post]
func (c *SkillController) AddMilestone(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.MilestoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	milestone, err := c.SkillService.AddMilestone(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		mapSkillError(ctx, err)
		return
	}
	util.Created(ctx, milestone)
}

type AchieveRequest struct {
	Achieved *bool `json:"achieved" binding:"required"`
}

// @Summary 标记里程碑达成
// @Description 达成是单向的，已达成的里程碑不允许回退
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "里程碑 ID"
// @Param body body AchieveRequest true "达成状态"
// @Success 200 {object} util.Response
// @Router /api/milestones/{id}/achieve [patch]
func (c *SkillController) AchieveMilestone(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AchieveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	milestone, err := c.SkillService.AchieveMilestone(claims.UserID, ctx.Param("id"), *req.Achieved)
	if err != nil {
		mapSkillError(ctx, err)
		return
	}
	util.Success(ctx, milestone)
}
