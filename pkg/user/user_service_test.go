package user

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/pibich/Akivili-UAS/domain"
	"github.com/pibich/Akivili-UAS/entities"
	"github.com/pibich/Akivili-UAS/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users    map[string]*entities.User
	profiles map[string]*entities.Profile

	avatarUpdates int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:    make(map[string]*entities.User),
		profiles: make(map[string]*entities.Profile),
	}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetProfileByID(_ context.Context, id string) (*entities.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *fakeUserRepository) CreateProfile(_ context.Context, profile *entities.Profile) error {
	r.profiles[profile.ID.String()] = profile
	return nil
}

func (r *fakeUserRepository) UpdateProfileAvatar(_ context.Context, id string, avatarURL string) (*entities.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.avatarUpdates++
	profile.AvatarURL = avatarURL
	return profile, nil
}

type fakeS3 struct {
	uploadErr error
	uploaded  []string
	deleted   []string
}

func (s *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	key := dir + "/" + fileName + ".jpg"
	s.uploaded = append(s.uploaded, key)
	return key, nil
}

func (s *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (s *fakeS3) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (s *fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.region.amazonaws.com/")
}

func newTestService(repo *fakeUserRepository, s3 *fakeS3) UserService {
	return NewUserService(repo, jwt.NewJWTService(), s3)
}

func seedUser(repo *fakeUserRepository, password string) *entities.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &entities.User{
		ID:       uuid.New(),
		Username: "trailblazer",
		Email:    "trailblazer@example.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	repo.users[user.ID.String()] = user
	return user
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "secret123")
	service := newTestService(repo, &fakeS3{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "someone-else",
		Email:    "trailblazer@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "trailblazer",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := newTestService(repo, &fakeS3{})

	resp, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "stelle",
		Email:    "stelle@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	assert.Equal(t, domain.RoleUser, stored.Role)
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "secret123")
	service := newTestService(repo, &fakeS3{})

	for _, identifier := range []string{"trailblazer", "trailblazer@example.com"} {
		resp, err := service.Login(context.Background(), domain.LoginRequest{
			Username: identifier,
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, domain.RoleUser, resp.Role)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(repo, "secret123")
	service := newTestService(repo, &fakeS3{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "trailblazer",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeCreatesProfileLazily(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	service := newTestService(repo, &fakeS3{})

	resp, err := service.Me(context.Background(), user.ID.String())
	require.NoError(t, err)

	// Display name defaults to the local part of the email.
	assert.Equal(t, "trailblazer", resp.DisplayName)
	assert.Empty(t, resp.AvatarURL)
	require.Contains(t, repo.profiles, user.ID.String())
}

func TestMeUnknownUser(t *testing.T) {
	service := newTestService(newFakeUserRepository(), &fakeS3{})

	_, err := service.Me(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUploadAvatarMissingFile(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	service := newTestService(repo, &fakeS3{})

	_, err := service.UploadAvatar(context.Background(), user.ID.String(), domain.UploadAvatarRequest{})
	assert.ErrorIs(t, err, domain.ErrAvatarFileMissing)
}

func TestUploadAvatarReplacesOldBlob(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	repo.profiles[user.ID.String()] = &entities.Profile{
		ID:        user.ID,
		AvatarURL: "https://bucket.s3.region.amazonaws.com/avatars/old_key.jpg",
	}
	s3 := &fakeS3{}
	service := newTestService(repo, s3)

	resp, err := service.UploadAvatar(context.Background(), user.ID.String(), domain.UploadAvatarRequest{
		Image: &multipart.FileHeader{Filename: "me.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"avatars/old_key.jpg"}, s3.deleted)
	require.Len(t, s3.uploaded, 1)
	assert.Equal(t, resp.AvatarURL, repo.profiles[user.ID.String()].AvatarURL)
	assert.Contains(t, resp.DisplayURL, "?t=")
}

func TestUploadAvatarFailureLeavesProfileUntouched(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	repo.profiles[user.ID.String()] = &entities.Profile{
		ID:        user.ID,
		AvatarURL: "https://bucket.s3.region.amazonaws.com/avatars/old_key.jpg",
	}
	s3 := &fakeS3{uploadErr: errors.New("upload failed")}
	service := newTestService(repo, s3)

	_, err := service.UploadAvatar(context.Background(), user.ID.String(), domain.UploadAvatarRequest{
		Image: &multipart.FileHeader{Filename: "me.jpg"},
	})
	require.Error(t, err)

	assert.Zero(t, repo.avatarUpdates)
	assert.Equal(t,
		"https://bucket.s3.region.amazonaws.com/avatars/old_key.jpg",
		repo.profiles[user.ID.String()].AvatarURL,
	)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	service := newTestService(newFakeUserRepository(), &fakeS3{})

	err := service.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{
		Email: "ghost@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdatePassword(t *testing.T) {
	repo := newFakeUserRepository()
	user := seedUser(repo, "secret123")
	service := newTestService(repo, &fakeS3{})

	err := service.UpdatePassword(context.Background(), user.ID.String(), domain.UpdatePasswordRequest{
		Password: "new-secret",
	})
	require.NoError(t, err)

	stored := repo.users[user.ID.String()]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("new-secret")))
}
