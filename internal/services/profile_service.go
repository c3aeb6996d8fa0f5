package services

import (
	"wagenmarkt_backend/internal/models"
	"wagenmarkt_backend/internal/repositories"
	"wagenmarkt_backend/internal/services/dto"
	"wagenmarkt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*models.Profile, error)
	UpdateMyProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateMyProfile only ever touches the caller's own row; the user id
// comes from the token, not the request.
func (s *ProfileServiceImpl) UpdateMyProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(db, userID)
	if err != nil {
		return nil, err
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone

	if err := s.profileRepo.Update(db, profile); err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(db, userID)
}
