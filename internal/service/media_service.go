package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"portfolio_backend/internal/model"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/util"
	"portfolio_backend/pkg/logger"

	"go.uber.org/zap"
)

// MediaService 条目媒体上传：落到对象存储，视频额外用 ffmpeg 探测时长并截缩略图
type MediaService struct {
	PortfolioRepo    *repository.PortfolioRepository
	PortfolioService *PortfolioService
	Storage          *StorageService
}

func NewMediaService(portfolioRepo *repository.PortfolioRepository, portfolioService *PortfolioService, storage *StorageService) *MediaService {
	return &MediaService{
		PortfolioRepo:    portfolioRepo,
		PortfolioService: portfolioService,
		Storage:          storage,
	}
}

type MediaUploadRequest struct {
	MediaType string
	Title     string
	LocalPath string // 控制器已保存的临时文件
	Filename  string
	MimeType  string
}

// AttachUpload 上传媒体文件并挂到条目上
func (s *MediaService) AttachUpload(ctx context.Context, userID uint, itemID string, req MediaUploadRequest) (*model.MediaRef, error) {
	item, err := s.PortfolioService.GetItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	mediaType, err := model.ParseMediaType(req.MediaType)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(req.Filename)
	objectName := fmt.Sprintf("media/%s/%s%s", item.ID, model.GenerateUUID(), ext)

	url, err := s.Storage.UploadFile(ctx, objectName, req.LocalPath, req.MimeType)
	if err != nil {
		return nil, err
	}

	media := &model.MediaRef{
		ItemID: item.ID,
		Sort:   len(item.Media),
		Type:   mediaType,
		URL:    url,
		Title:  req.Title,
	}

	if mediaType == model.MediaVideo || strings.HasPrefix(req.MimeType, util.MimeVideo) {
		s.probeVideo(ctx, media, req.LocalPath, objectName)
	}

	if err := s.PortfolioRepo.AddMedia(media); err != nil {
		return nil, err
	}
	return media, nil
}

// probeVideo 探测失败只降级记录日志，不影响上传本身
func (s *MediaService) probeVideo(ctx context.Context, media *model.MediaRef, localPath, objectName string) {
	info, err := util.GetVideoInfo(localPath)
	if err != nil {
		logger.Log.Warn("video probe failed", zap.String("path", localPath), zap.Error(err))
		return
	}
	media.Duration = info.Duration

	thumbPath := localPath + ".thumb.jpg"
	if err := util.GenerateVideoThumbnail(localPath, thumbPath); err != nil {
		logger.Log.Warn("thumbnail generation failed", zap.String("path", localPath), zap.Error(err))
		return
	}
	defer os.Remove(thumbPath)

	thumbObject := strings.TrimSuffix(objectName, filepath.Ext(objectName)) + "_thumb.jpg"
	url, err := s.Storage.UploadFile(ctx, thumbObject, thumbPath, "image/jpeg")
	if err != nil {
		logger.Log.Warn("thumbnail upload failed", zap.Error(err))
		return
	}
	media.Thumbnail = url
}
