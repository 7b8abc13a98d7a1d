package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saralchem/orderdesk/internal/cache"
	"github.com/saralchem/orderdesk/internal/config"
	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles staff login, tokens and account management.
type AuthService struct {
	cfg       *config.Config
	staffRepo repository.StaffRepository
}

// NewAuthService creates an auth service.
func NewAuthService(cfg *config.Config, staffRepo repository.StaffRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		staffRepo: staffRepo,
	}
}

// HashPassword hashes a password with bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a password against its hash.
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword checks a password against the configured policy.
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// JWTClaims is the token payload for a staff session.
type JWTClaims struct {
	StaffID      uint   `json:"staff_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	IsSuper      bool   `json:"is_super"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a signed token for a staff account.
func (s *AuthService) GenerateJWT(staff *models.Staff) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)

	claims := JWTClaims{
		StaffID:      staff.ID,
		Username:     staff.Username,
		Role:         staff.Role,
		IsSuper:      staff.IsSuper,
		TokenVersion: staff.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT validates and decodes a staff token.
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(username, password string) (*models.Staff, string, time.Time, error) {
	staff, err := s.staffRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if staff == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.VerifyPassword(staff.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(staff)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	staff.LastLoginAt = &now
	if err := s.staffRepo.UpdateLastLogin(staff.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetStaffAuthState(context.Background(), cache.BuildStaffAuthState(staff))

	return staff, token, expiresAt, nil
}

// ChangePassword rotates a staff password and invalidates issued tokens.
func (s *AuthService) ChangePassword(staffID uint, oldPassword, newPassword string) error {
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("%w: id=%d", ErrStaffNotFound, staffID)
	}

	if err := s.VerifyPassword(staff.PasswordHash, oldPassword); err != nil {
		return ErrInvalidCredentials
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	staff.PasswordHash = hashedPassword
	now := time.Now()
	staff.TokenVersion++
	staff.TokenInvalidBefore = &now
	if err := s.staffRepo.Update(staff); err != nil {
		return err
	}
	_ = cache.SetStaffAuthState(context.Background(), cache.BuildStaffAuthState(staff))
	return nil
}

// StaffInput is the create/update payload for an operator account.
type StaffInput struct {
	Username string
	Password string
	Role     string
}

// ListStaff lists operator accounts.
func (s *AuthService) ListStaff() ([]models.Staff, error) {
	return s.staffRepo.List()
}

// CreateStaff registers an operator account with a workflow role.
func (s *AuthService) CreateStaff(input StaffInput) (*models.Staff, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		return nil, newValidationError("username", "is required")
	}
	if !validRole(input.Role) {
		return nil, newValidationError("role", "must be one of sales, warehouse, admin, manager")
	}
	if err := s.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	existing, err := s.staffRepo.GetByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username=%s", ErrStaffExists, input.Username)
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	staff := models.Staff{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := s.staffRepo.Create(&staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

// UpdateStaffRole changes an account's workflow role. Tokens already issued
// are invalidated so the old role cannot linger in a live session.
func (s *AuthService) UpdateStaffRole(staffID uint, role string) (*models.Staff, error) {
	if !validRole(role) {
		return nil, newValidationError("role", "must be one of sales, warehouse, admin, manager")
	}
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrStaffNotFound, staffID)
	}

	now := time.Now()
	staff.Role = role
	staff.TokenVersion++
	staff.TokenInvalidBefore = &now
	if err := s.staffRepo.Update(staff); err != nil {
		return nil, err
	}
	_ = cache.SetStaffAuthState(context.Background(), cache.BuildStaffAuthState(staff))
	return staff, nil
}

// DeleteStaff removes an operator account.
func (s *AuthService) DeleteStaff(staffID uint) error {
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return fmt.Errorf("%w: id=%d", ErrStaffNotFound, staffID)
	}
	if staff.IsSuper {
		return newValidationError("staff", "the built-in super account cannot be deleted")
	}
	if err := s.staffRepo.Delete(staffID); err != nil {
		return err
	}
	_ = cache.DelStaffAuthState(context.Background(), staffID)
	return nil
}

func validRole(role string) bool {
	switch role {
	case constants.RoleSales, constants.RoleWarehouse, constants.RoleAdmin, constants.RoleManager:
		return true
	}
	return false
}
