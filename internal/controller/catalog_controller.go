package controller

import (
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController 管理端：维护推荐目录与测验题库
type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary 创建学习主题
// @Tags 目录管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param topic body service.TopicRequest true "主题信息"
// @Success 201 {object} util.Response
// @Router /api/admin/topics [post]
func (c *CatalogController) CreateTopic(ctx *gin.Context) {
	var req service.TopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.CatalogService.CreateTopic(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, topic)
}

// @Summary 更新学习主题
// @Tags 目录管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "主题编码"
// @Param topic body service.TopicRequest true "主题信息"
// @Success 200 {object} util.Response
// @Router /api/admin/topics/{code} [put]
func (c *CatalogController) UpdateTopic(ctx *gin.Context) {
	var req service.TopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.CatalogService.UpdateTopic(ctx.Param("code"), req)
	if err != nil {
		if err == util.ErrTopicNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, topic)
}

// @Summary 向主题添加资源
// @Tags 目录管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param code path string true "主题编码"
// @Param resource body service.ResourceRequest true "资源信息"
// @Success 201 {object} util.Response
// @Router /api/admin/topics/{code}/resources [post]
func (c *CatalogController) AddResource(ctx *gin.Context) {
	var req service.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.CatalogService.AddResource(ctx.Param("code"), req)
	if err != nil {
		if err == util.ErrTopicNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, resource)
}

// @Summary 更新资源
// @Tags 目录管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源 ID"
// @Param resource body service.ResourceRequest true "资源信息"
// @Success 200 {object} util.Response
// @Router /api/admin/resources/{id} [put]
func (c *CatalogController) UpdateResource(ctx *gin.Context) {
	var req service.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.CatalogService.UpdateResource(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if err == util.ErrItemNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, resource)
}

// @Summary 删除资源
// @Tags 目录管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/resources/{id} [delete]
func (c *CatalogController) DeleteResource(ctx *gin.Context) {
	if err := c.CatalogService.DeleteResource(util.MustParseUint(ctx.Param("id"))); err != nil {
		if err == util.ErrItemNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 创建测验题目
// @Tags 目录管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body service.QuestionRequest true "题目与选项"
// @Success 201 {object} util.Response
// @Router /api/admin/questions [post]
func (c *CatalogController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.CatalogService.CreateQuestion(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, question)
}

// @Summary 更新测验题目
// @Tags 目录管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目 ID"
// @Param question body service.QuestionRequest true "题目与选项"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *CatalogController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.CatalogService.UpdateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if err == util.ErrItemNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, question)
}

// @Summary 删除测验题目
// @Tags 目录管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目 ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *CatalogController) DeleteQuestion(ctx *gin.Context) {
	if err := c.CatalogService.DeleteQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
