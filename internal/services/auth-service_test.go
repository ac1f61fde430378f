package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

// stubProfileRepo and stubFileStorage append to a shared op log so tests can
// assert the order of storage and profile writes.
type stubProfileRepo struct {
	profile      *entities.Profile
	ops          *[]string
	failOnAvatar error
}

func (s *stubProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	copied := *s.profile
	return &copied, nil
}

func (s *stubProfileRepo) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	return nil, errNotFoundForTest()
}

func (s *stubProfileRepo) Create(ctx context.Context, profile *entities.Profile) error {
	return nil
}

func (s *stubProfileRepo) Update(ctx context.Context, id uuid.UUID, payload dto.UpdateProfileDTO) error {
	return nil
}

func (s *stubProfileRepo) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error {
	if s.failOnAvatar != nil {
		return s.failOnAvatar
	}
	*s.ops = append(*s.ops, "update:"+avatarURL)
	s.profile.AvatarURL = null.StringFrom(avatarURL)
	return nil
}

type stubFileStorage struct {
	ops *[]string
}

func (s *stubFileStorage) Save(file io.Reader, bucket, objectName string) (string, error) {
	path := "/uploads/" + bucket + "/" + objectName
	*s.ops = append(*s.ops, "save:"+path)
	return path, nil
}

func (s *stubFileStorage) Delete(publicPath string) error {
	*s.ops = append(*s.ops, "delete:"+publicPath)
	return nil
}

func newAvatarFixture(profile *entities.Profile) (*AuthService, *stubProfileRepo, *[]string) {
	ops := &[]string{}
	profiles := &stubProfileRepo{profile: profile, ops: ops}
	storage := &stubFileStorage{ops: ops}
	svc := NewAuthService(profiles, nil, nil, storage, "avatars", zap.NewNop()).(*AuthService)
	return svc, profiles, ops
}

func TestUploadAvatarReplacesOldFileAfterProfileUpdate(t *testing.T) {
	userID := uuid.New()
	oldPath := "/uploads/avatars/" + userID.String() + "/1.jpg"
	svc, _, ops := newAvatarFixture(&entities.Profile{
		ID:        userID,
		Email:     "tech@gearguard.local",
		AvatarURL: null.StringFrom(oldPath),
	})

	_, err := svc.UploadAvatar(context.Background(), userID, strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	require.Len(t, *ops, 3)
	assert.True(t, strings.HasPrefix((*ops)[0], "save:"))
	assert.True(t, strings.HasPrefix((*ops)[1], "update:"))
	assert.Equal(t, "delete:"+oldPath, (*ops)[2])
}

func TestUploadAvatarKeepsOldFileWhenProfileUpdateFails(t *testing.T) {
	userID := uuid.New()
	oldPath := "/uploads/avatars/" + userID.String() + "/1.jpg"
	svc, profiles, ops := newAvatarFixture(&entities.Profile{
		ID:        userID,
		Email:     "tech@gearguard.local",
		AvatarURL: null.StringFrom(oldPath),
	})
	profiles.failOnAvatar = errors.New("update failed")

	_, err := svc.UploadAvatar(context.Background(), userID, strings.NewReader("jpeg bytes"))
	require.Error(t, err)

	// the still-referenced old file must survive a failed URL write
	for _, op := range *ops {
		assert.False(t, strings.HasPrefix(op, "delete:"), op)
	}
}

func TestUploadAvatarFirstUploadDeletesNothing(t *testing.T) {
	userID := uuid.New()
	svc, _, ops := newAvatarFixture(&entities.Profile{ID: userID, Email: "tech@gearguard.local"})

	_, err := svc.UploadAvatar(context.Background(), userID, strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	for _, op := range *ops {
		assert.False(t, strings.HasPrefix(op, "delete:"), op)
	}
}
