package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/auth"
	"rentezi-backend/internal/config"
	"rentezi-backend/internal/models"
)

func testJWTManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "rentezi-backend-test"
	return auth.NewJWTManager(cfg)
}

func validSignupRequest() *models.SignupRequest {
	return &models.SignupRequest{
		FirstName: "Wanjiru",
		LastName:  "Kamau",
		Email:     "wanjiru@example.com",
		IDNumber:  "32716654",
		Password:  "hunter22",
		Role:      models.RoleTenant,
	}
}

func TestSignup_CreatesActiveUserWithToken(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())

	resp, err := svc.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsActive)
	assert.NotEqual(t, "hunter22", resp.User.PasswordHash, "password must be hashed")
	assert.Equal(t, "Wanjiru Kamau", resp.User.FullName())
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)

	dup := validSignupRequest()
	dup.IDNumber = "11111111"
	_, err = svc.Signup(ctx, dup)
	assert.True(t, apperr.IsValidation(err))
}

func TestSignup_RejectsDuplicateIDNumber(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)

	dup := validSignupRequest()
	dup.Email = "other@example.com"
	_, err = svc.Signup(ctx, dup)
	assert.True(t, apperr.IsValidation(err))
}

func TestSignup_Validation(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())
	ctx := context.Background()

	req := validSignupRequest()
	req.Email = ""
	_, err := svc.Signup(ctx, req)
	assert.True(t, apperr.IsValidation(err))

	req = validSignupRequest()
	req.Role = "manager"
	_, err = svc.Signup(ctx, req)
	assert.True(t, apperr.IsValidation(err))

	req = validSignupRequest()
	req.Password = "short"
	_, err = svc.Signup(ctx, req)
	assert.True(t, apperr.IsValidation(err))
}

func TestLogin_Succeeds(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "wanjiru@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "wanjiru@example.com", Password: "wrong-pass"})
	assert.True(t, apperr.IsForbidden(err))
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	assert.True(t, apperr.IsForbidden(err), "unknown email must not be distinguishable from a bad password")
}

func TestLogin_SuspendedAccount(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testJWTManager())
	ctx := context.Background()

	resp, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)
	store.users[resp.User.ID].IsActive = false

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "wanjiru@example.com", Password: "hunter22"})
	assert.True(t, apperr.IsForbidden(err))
}

func TestListTenants_FiltersToTenantRole(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)

	landlord := validSignupRequest()
	landlord.Email = "owner@example.com"
	landlord.IDNumber = "22222222"
	landlord.Role = models.RoleLandlord
	_, err = svc.Signup(ctx, landlord)
	require.NoError(t, err)

	tenants, err := svc.ListTenants(ctx, landlordActor)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "wanjiru@example.com", tenants[0].Email)
}

func TestListTenants_TenantForbidden(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testJWTManager())

	_, err := svc.ListTenants(context.Background(), tenantActor)
	assert.True(t, apperr.IsForbidden(err))
}

func TestLogin_TokenRoundTrips(t *testing.T) {
	jwtManager := testJWTManager()
	svc := NewUserService(newFakeUserStore(), jwtManager)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, validSignupRequest())
	require.NoError(t, err)

	claims, err := jwtManager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleTenant, claims.Role)
}
