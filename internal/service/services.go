package service

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// Services groups the server-side services used by the HTTP handler.
type Services struct {
	SyncService    SyncService
	AppInfoService AppInfoService
}

func NewServices(changeLog store.ChangeLog, cfg config.ServerConfig, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SyncService:    NewSyncService(changeLog, cfg, logger),
		AppInfoService: appInfo,
	}, nil
}
