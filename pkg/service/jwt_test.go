package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/constants"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, time.Hour*24)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, constants.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, constants.RoleManager, accessClaims.Role)
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, time.Hour)

	access, _, err := svc.GenerateTokens(uuid.New(), constants.RoleTechnician)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := NewJWTService("secret-a", time.Hour, time.Hour)
	other := NewJWTService("secret-b", time.Hour, time.Hour)

	access, _, err := other.GenerateTokens(uuid.New(), constants.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
