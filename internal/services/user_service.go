package services

import (
	"context"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/auth"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/cache"
	"rentezi-backend/internal/models"
)

type UserService struct {
	Repo       UserStore
	JWTManager *auth.JWTManager
}

func NewUserService(repo UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

// Signup registers a new user and returns a token for the created account
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" || req.IDNumber == "" {
		return nil, apperr.Validation("first name, last name, email, id number and password are required")
	}
	if !models.ValidRole(req.Role) {
		return nil, apperr.Validation("role must be tenant, landlord or admin")
	}

	// Email and national ID number are globally unique
	if existing, _ := s.Repo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, apperr.Validation("user with this email already exists")
	}
	if existing, _ := s.Repo.GetByIDNumber(ctx, req.IDNumber); existing != nil {
		return nil, apperr.Validation("user with this id number already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		IDNumber:     req.IDNumber,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		IsActive:     true,
		IsVerified:   true, // No verification flow yet
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// ListTenants returns all tenant accounts, for the unit-assignment picker
func (s *UserService) ListTenants(ctx context.Context, actor authz.Actor) ([]*models.User, error) {
	if err := authz.Decide(actor, authz.ActionListTenants, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByRole(ctx, models.RoleTenant)
}

// Login authenticates a user and returns a JWT token
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Forbidden("invalid email or password")
	}

	// Skip the bcrypt compare when these credentials were verified recently.
	// The key carries the stored hash, so a changed password misses the cache.
	if cachedID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password, user.PasswordHash); !ok || cachedID != int64(user.ID) {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, apperr.Forbidden("invalid email or password")
		}
		cache.CacheAuth(ctx, req.Email, req.Password, user.PasswordHash, int64(user.ID))
	}

	if !user.IsActive {
		return nil, apperr.Forbidden("account suspended")
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}
