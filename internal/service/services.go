package service

import (
	"github.com/MKhiriev/go-study-keeper/internal/config"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
}

func NewServices(repositories *store.Repositories, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg.App, logger),
		DocumentService: NewDocumentService(repositories.DocumentRepository, logger),
	}
}
