package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: info.BuildVersion(),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
