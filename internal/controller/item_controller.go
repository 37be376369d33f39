package controller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"portfolio_backend/internal/service"
	"portfolio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	PortfolioService *service.PortfolioService
	MediaService     *service.MediaService
}

func NewItemController(portfolioService *service.PortfolioService, mediaService *service.MediaService) *ItemController {
	return &ItemController{
		PortfolioService: portfolioService,
		MediaService:     mediaService,
	}
}

// mapItemError 把服务层哨兵错误映射到 HTTP 状态码
func mapItemError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrItemNotFound:
		util.NotFound(ctx, err.Error())
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	case util.ErrInvalidRating:
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 获取条目列表
// @Description 返回当前视图过滤条件下的学习条目
// @Tags 学习条目
// @Produce json
// @Security ApiKeyAuth
// @Param filtered query bool false "是否套用视图过滤条件"
// @Success 200 {object} util.Response
// @Router /api/portfolio/items [get]
func (c *ItemController) ListItems(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	portfolio, err := c.PortfolioService.EnsurePortfolio(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	items := portfolio.Items
	if ctx.DefaultQuery("filtered", "false") == "true" {
		items = service.FilterItems(items, portfolio.View.Filters)
	}
	util.Success(ctx, items)
}

// @Summary 创建学习条目
// @Tags 学习条目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param item body service.ItemRequest true "条目内容"
// @Success 201 {object} util.Response
// @Router /api/portfolio/items [post]
func (c *ItemController) CreateItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.PortfolioService.CreateItem(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, item)
}

// @Summary 获取单个条目
// @Tags 学习条目
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "条目 ID"
// @Success 200 {object} util.Response
// @Router /api/portfolio/items/{id} [get]
func (c *ItemController) GetItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	item, err := c.PortfolioService.GetItem(claims.UserID, ctx.Param("id"))
	if err != nil {
		mapItemError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// @Summary 更新条目
// @Tags 学习条目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "条目 ID"
// @Param item body service.ItemRequest true "条目内容"
// @Success 200 {object} util.Response
// @Router /api/portfolio/items/{id} [put]
func (c *ItemController) UpdateItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.PortfolioService.UpdateItem(claims.UserID, ctx.Param("id"), req)
	if err != nil {
		mapItemError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// @Summary 删除条目
// @Description 删除条目并清理技能与里程碑中对它的引用
// @Tags 学习条目
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "条目 ID"
// @Success 200 {object} util.Response
// @Router /api/portfolio/items/{id} [delete]
func (c *ItemController) DeleteItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PortfolioService.DeleteItem(claims.UserID, ctx.Param("id")); err != nil {
		mapItemError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 添加回馈
// @Tags 学习条目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "条目 ID"
// @Param feedback body service.FeedbackRequest true "回馈内容"
// @Success 201 {object} util.Response
// @Router /api/portfolio/items/{id}/feedback [post]
func (c *ItemController) AddFeedback(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.PortfolioService.AddFeedback(claims.UserID, ctx.Param("id"), req)
	if err != nil {
		mapItemError(ctx, err)
		return
	}
	util.Created(ctx, feedback)
}

// @Summary 收藏条目
// @Tags 学习条目
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "条目 ID"
// @Success 200 {object} util.Response
// @Router /api/portfolio/items/{id}/bookmark [post]
func (c *ItemController) Bookmark(ctx *gin.Context) {
	if err := c.PortfolioService.Bookmark(ctx.Param("id")); err != nil {
		mapItemError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"bookmarked": true})
}

// @Summary 发起协作请求
// @Tags 学习条目
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "条目 ID"
// @Success 200 {object} util.Response
// @Router /api/portfolio/items/{id}/collaboration-request [post]
func (c *ItemController) RequestCollaboration(ctx *gin.Context) {
	if err := c.PortfolioService.RequestCollaboration(ctx.Param("id")); err != nil {
		mapItemError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"requested": true})
}

// @Summary 上传条目媒体
// @Description 上传图片/视频/文档并挂到条目；视频会探测时长并生成缩略图
// @Tags 学习条目
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "条目 ID"
// @Param file formData file true "媒体文件"
// @Param type formData string true "媒体类型 image/video/document/link"
// @Param title formData string false "媒体标题"
// @Success 201 {object} util.Response
// @Router /api/portfolio/items/{id}/media/upload [post]
func (c *ItemController) UploadMedia(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "media file is required")
		return
	}

	// 先落到临时文件，ffmpeg 探测需要本地路径
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload_%d_%s", claims.UserID, filepath.Base(file.Filename)))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = util.MimeOctetStream
	}

	media, err := c.MediaService.AttachUpload(ctx.Request.Context(), claims.UserID, ctx.Param("id"), service.MediaUploadRequest{
		MediaType: ctx.PostForm("type"),
		Title:     ctx.PostForm("title"),
		LocalPath: tmpPath,
		Filename:  file.Filename,
		MimeType:  mimeType,
	})
	if err != nil {
		if err == util.ErrItemNotFound || err == util.ErrPermissionDenied {
			mapItemError(ctx, err)
			return
		}
		util.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	util.Created(ctx, media)
}
