package services

import (
	"skaters_backend/internal/auth"
	"skaters_backend/internal/email"
	"skaters_backend/internal/imageprocessor"
	"skaters_backend/internal/repositories"
	"skaters_backend/internal/storage"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService   AuthService
	SkaterService SkaterService
	AdminService  AdminService
	PhotoService  PhotoService
}

// Dependencies are the infrastructure pieces the services are built from.
type Dependencies struct {
	SkaterRepo repositories.SkaterRepository
	Storage    storage.Storage
	Processor  *imageprocessor.Processor
	Codec      *auth.TokenCodec
	Notifier   email.Notifier
	Photo      PhotoConfig
	AdminEmail string
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	photos := NewPhotoService(deps.Storage, deps.Processor, deps.Photo)

	return &ServiceContainer{
		AuthService:   NewAuthService(deps.SkaterRepo, photos, deps.Codec, deps.AdminEmail),
		SkaterService: NewSkaterService(deps.SkaterRepo),
		AdminService:  NewAdminService(deps.SkaterRepo, deps.Notifier),
		PhotoService:  photos,
	}
}
