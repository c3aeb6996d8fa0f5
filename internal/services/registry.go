package services

import (
	"wagenmarkt_backend/internal/email"
	"wagenmarkt_backend/internal/repositories"
)

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	CatalogService CatalogService
	ListingService ListingService
}

func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	catalogRepo := repositories.NewCatalogRepository()
	listingRepo := repositories.NewListingRepository()

	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo, profileRepo, refreshTokenRepo, emailProvider),
		ProfileService: NewProfileService(profileRepo),
		CatalogService: NewCatalogService(catalogRepo),
		ListingService: NewListingService(listingRepo, catalogRepo),
	}
}
