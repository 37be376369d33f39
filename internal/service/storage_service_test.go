package service

import (
	"testing"

	"portfolio_backend/internal/config"
	"portfolio_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStorageServiceLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = "uploads"

	svc := NewStorageService(cfg)
	_, ok := svc.Provider.(*LocalStorageProvider)
	require.True(t, ok)
	assert.Equal(t, "/uploads/a.png", svc.GetURL("a.png"))
}

func TestNewStorageServiceMinioInitFailureFallsBackToLocal(t *testing.T) {
	logger.Log = zap.NewNop()

	cfg := &config.Config{}
	cfg.Storage.Type = "minio"
	cfg.Storage.MinioEndpoint = "not a valid endpoint"
	cfg.Storage.LocalPath = "uploads"

	// 客户端初始化失败时回退到本地存储，失败原因会被记录
	svc := NewStorageService(cfg)
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}
