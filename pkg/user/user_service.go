package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/entities"
	"github.com/pibich/Akivili-UAS/internal/utils"
	"github.com/pibich/Akivili-UAS/internal/utils/mailing"
	"github.com/pibich/Akivili-UAS/internal/utils/storage"
	"github.com/pibich/Akivili-UAS/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	purposeVerifyEmail   = "verify_email"
	purposeResetPassword = "reset_password"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		VerifyEmail(ctx context.Context, token string) error
		Me(ctx context.Context, userID string) (*domain.ProfileResponse, error)
		UpdatePassword(ctx context.Context, userID string, req domain.UpdatePasswordRequest) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		UploadAvatar(ctx context.Context, userID string, req domain.UploadAvatarRequest) (*domain.UploadAvatarResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, domain.ErrUsernameAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sendVerificationEmail(user); err != nil {
		log.Printf("error sending verification email to %s: %v", user.Email, err)
	}

	return &domain.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) sendVerificationEmail(user *entities.User) error {
	token, err := s.jwtService.GeneratePurposeToken(map[string]any{
		"user_id": user.ID.String(),
		"purpose": purposeVerifyEmail,
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Halo %s,</p><p>Klik link berikut untuk verifikasi akun Akivili kamu:</p><p><a href=%q>Verifikasi Email</a></p>",
		user.Username, verifyURL,
	)
	return mailing.SendMail(user.Email, "Verifikasi Akun Akivili", body)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	// The login form accepts either a username or an email; usernames are
	// resolved to their account first.
	var (
		user *entities.User
		err  error
	)
	if strings.Contains(req.Username, "@") {
		user, err = s.userRepository.GetUserByEmail(ctx, req.Username)
	} else {
		user, err = s.userRepository.GetUserByUsername(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidatePurposeToken(token)
	if err != nil {
		return err
	}
	if claims["purpose"] != purposeVerifyEmail {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	profile, err := s.ensureProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: profile.DisplayName,
		AvatarURL:   displayURL(profile.AvatarURL),
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}, nil
}

// ensureProfile creates the profile row on first authenticated load; the
// display name defaults to the local part of the email.
func (s *userService) ensureProfile(ctx context.Context, user *entities.User) (*entities.Profile, error) {
	profile, err := s.userRepository.GetProfileByID(ctx, user.ID.String())
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = &entities.Profile{
		ID:          user.ID,
		DisplayName: strings.SplitN(user.Email, "@", 2)[0],
	}
	if err := s.userRepository.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID string, req domain.UpdatePasswordRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GeneratePurposeToken(map[string]any{
		"user_id": user.ID.String(),
		"purpose": purposeResetPassword,
	}, 30*time.Minute)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Halo %s,</p><p>Klik link berikut untuk mereset password kamu:</p><p><a href=%q>Reset Password</a></p><p>Link berlaku 30 menit.</p>",
		user.Username, resetURL,
	)
	return mailing.SendMail(user.Email, "Reset Password Akivili", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidatePurposeToken(req.Token)
	if err != nil {
		return err
	}
	if claims["purpose"] != purposeResetPassword {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UploadAvatar(ctx context.Context, userID string, req domain.UploadAvatarRequest) (*domain.UploadAvatarResponse, error) {
	if req.Image == nil {
		return nil, domain.ErrAvatarFileMissing
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	profile, err := s.ensureProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	// Deleting the previous blob is best-effort: the new object always
	// gets a fresh timestamped key, so a leftover old blob is harmless.
	if profile.AvatarURL != "" {
		oldKey := s.s3.GetObjectKeyFromLink(profile.AvatarURL)
		if oldKey != "" {
			if err := s.s3.DeleteFile(oldKey); err != nil {
				log.Printf("error deleting old avatar %s: %v", oldKey, err)
			}
		}
	}

	fileName := fmt.Sprintf("%s/avatar_%d", userID, time.Now().UnixMilli())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "avatars", storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	publicURL := s.s3.GetPublicLinkKey(objectKey)

	// The profile row only changes after the upload succeeded, so a
	// failed upload leaves the previous avatar in place.
	if _, err := s.userRepository.UpdateProfileAvatar(ctx, userID, publicURL); err != nil {
		return nil, err
	}

	return &domain.UploadAvatarResponse{
		AvatarURL:  publicURL,
		DisplayURL: displayURL(publicURL),
	}, nil
}

// displayURL suffixes a cache-busting timestamp so clients never show a
// stale cached image after an overwrite.
func displayURL(avatarURL string) string {
	if avatarURL == "" {
		return ""
	}
	return fmt.Sprintf("%s?t=%d", avatarURL, time.Now().UnixMilli())
}
