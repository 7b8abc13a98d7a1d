package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/saralchem/orderdesk/internal/config"
	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"
	"github.com/saralchem/orderdesk/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Staff{}); err != nil {
		t.Fatalf("migrate staff failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "unit-test-secret-key-0123456789abcdef"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewAuthService(cfg, repository.NewStaffRepository(db)), db
}

func createStaff(t *testing.T, svc *AuthService, username, password, role string) *models.Staff {
	t.Helper()
	staff, err := svc.CreateStaff(StaffInput{Username: username, Password: password, Role: role})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	return staff
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthServiceTest(t)
	createStaff(t, svc, "sunita", "orderdesk123", constants.RoleSales)

	staff, token, expiresAt, err := svc.Login("sunita", "orderdesk123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatal("login must return a token and expiry")
	}
	if staff.LastLoginAt == nil {
		t.Fatal("login must stamp last_login_at")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.StaffID != staff.ID || claims.Role != constants.RoleSales {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, _, _, err := svc.Login("sunita", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password must fail with ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "orderdesk123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user must fail with ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateStaffValidation(t *testing.T) {
	svc, _ := newAuthServiceTest(t)
	createStaff(t, svc, "sunita", "orderdesk123", constants.RoleSales)

	_, err := svc.CreateStaff(StaffInput{Username: "sunita", Password: "orderdesk123", Role: constants.RoleSales})
	if !errors.Is(err, ErrStaffExists) {
		t.Fatalf("duplicate username must fail, got %v", err)
	}
	_, err = svc.CreateStaff(StaffInput{Username: "intern", Password: "orderdesk123", Role: "superuser"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown role must fail, got %v", err)
	}
	_, err = svc.CreateStaff(StaffInput{Username: "intern", Password: "short", Role: constants.RoleSales})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak password must fail, got %v", err)
	}
}

func TestChangePasswordRevokesOldTokens(t *testing.T) {
	svc, db := newAuthServiceTest(t)
	staff := createStaff(t, svc, "sunita", "orderdesk123", constants.RoleSales)

	if err := svc.ChangePassword(staff.ID, "wrong", "newpassword1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong old password must fail, got %v", err)
	}
	if err := svc.ChangePassword(staff.ID, "orderdesk123", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password must fail, got %v", err)
	}
	if err := svc.ChangePassword(staff.ID, "orderdesk123", "newpassword1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	var updated models.Staff
	if err := db.First(&updated, staff.ID).Error; err != nil {
		t.Fatalf("reload staff failed: %v", err)
	}
	if updated.TokenVersion != staff.TokenVersion+1 {
		t.Fatalf("token version must bump, want %d got %d", staff.TokenVersion+1, updated.TokenVersion)
	}
	if updated.TokenInvalidBefore == nil {
		t.Fatal("token invalid-before must be stamped")
	}

	if _, _, _, err := svc.Login("sunita", "newpassword1"); err != nil {
		t.Fatalf("login with the new password failed: %v", err)
	}
}

func TestUpdateStaffRole(t *testing.T) {
	svc, _ := newAuthServiceTest(t)
	staff := createStaff(t, svc, "sunita", "orderdesk123", constants.RoleSales)

	updated, err := svc.UpdateStaffRole(staff.ID, constants.RoleManager)
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if updated.Role != constants.RoleManager {
		t.Fatalf("role want %s got %s", constants.RoleManager, updated.Role)
	}
	if updated.TokenVersion != staff.TokenVersion+1 {
		t.Fatal("role change must revoke outstanding tokens")
	}

	if _, err := svc.UpdateStaffRole(staff.ID, "root"); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown role must fail, got %v", err)
	}
	if _, err := svc.UpdateStaffRole(999, constants.RoleSales); !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("missing staff must fail, got %v", err)
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	cases := []struct {
		password string
		ok       bool
	}{
		{"Orderdesk1", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if tc.ok && err != nil {
			t.Fatalf("%q should pass, got %v", tc.password, err)
		}
		if !tc.ok && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%q should fail with ErrWeakPassword, got %v", tc.password, err)
		}
	}

	// An empty policy accepts anything.
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy must accept, got %v", err)
	}
}
