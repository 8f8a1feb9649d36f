package http

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// hashKey enables HashSHA256 body verification when non-empty
	hashKey string
	// token enables bearer authentication when non-empty
	token string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  cfg.HashKey,
		token:    cfg.Token,
		logger:   logger,
	}
}
