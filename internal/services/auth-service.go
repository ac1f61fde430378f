package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/filestorage"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthServiceInterface interface {
	SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.AuthResponseDTO, error)
	SignIn(ctx context.Context, payload dto.SignInDTO) (*dto.AuthResponseDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error)
	SignOut(ctx context.Context, userID uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, payload dto.UpdateProfileDTO) (*entities.Profile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, file io.Reader) (*entities.Profile, error)
}

type AuthService struct {
	profiles   repositories.ProfileRepositoryInterface
	cache      repositories.CacheRepositoryInterface
	jwtService service.JWTService
	storage    filestorage.FileStorage
	bucket     string
	logger     *zap.Logger
}

func NewAuthService(
	profiles repositories.ProfileRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	storage filestorage.FileStorage,
	bucket string,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		profiles:   profiles,
		cache:      cache,
		jwtService: jwtService,
		storage:    storage,
		bucket:     bucket,
		logger:     logger,
	}
}

func (s *AuthService) SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.AuthResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	if _, err := s.profiles.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &entities.Profile{
		ID:           uuid.New(),
		Email:        email,
		FullName:     null.StringFrom(payload.FullName),
		Role:         constants.RoleTechnician,
		PasswordHash: string(hash),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, profile)
}

func (s *AuthService) SignIn(ctx context.Context, payload dto.SignInDTO) (*dto.AuthResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, profile)
}

// Refresh rotates the token pair. The presented token must match the one
// stored for the user, so a stolen old token dies on first rotation.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.cache.GetRefreshToken(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if stored != refreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	profile, err := s.profiles.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, profile)
}

func (s *AuthService) SignOut(ctx context.Context, userID uuid.UUID) error {
	return s.cache.DeleteRefreshToken(ctx, userID)
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.fillAvatar(profile)
	return profile, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, payload dto.UpdateProfileDTO) (*entities.Profile, error) {
	if err := s.profiles.Update(ctx, userID, payload); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// UploadAvatar stores the image under the user's own prefix and removes the
// previously stored file, if any.
func (s *AuthService) UploadAvatar(ctx context.Context, userID uuid.UUID, file io.Reader) (*entities.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%s/%d.jpg", userID, time.Now().UnixMilli())
	publicPath, err := s.storage.Save(file, s.bucket, objectName)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateAvatarURL(ctx, userID, publicPath); err != nil {
		return nil, err
	}

	// Drop the old file only once the profile points at the new one.
	if profile.AvatarURL.Valid && profile.AvatarURL.String != "" {
		if err := s.storage.Delete(profile.AvatarURL.String); err != nil {
			s.logger.Warn("failed to delete previous avatar",
				zap.String("path", profile.AvatarURL.String),
				zap.Error(err),
			)
		}
	}
	return s.GetProfile(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, profile *entities.Profile) (*dto.AuthResponseDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(profile.ID, profile.Role)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetRefreshToken(ctx, profile.ID, refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	s.fillAvatar(profile)
	return &dto.AuthResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// fillAvatar substitutes a deterministic generated image for accounts that
// never uploaded one, so clients always get a renderable URL.
func (s *AuthService) fillAvatar(profile *entities.Profile) {
	if !profile.AvatarURL.Valid || profile.AvatarURL.String == "" {
		seed := profile.FullName.String
		if seed == "" {
			seed = profile.Email
		}
		profile.AvatarURL = null.StringFrom(utils.AvatarURL("", seed))
	}
}
