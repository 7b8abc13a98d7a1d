package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/saralchem/orderdesk/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// StaffAuthState is a server-side snapshot of a staff account's auth
// fields, cached to avoid a DB read on every authenticated request.
// TokenInvalidBefore is a Unix timestamp in seconds, 0 when unset.
type StaffAuthState struct {
	StaffID            uint   `json:"staff_id"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	IsSuper            bool   `json:"is_super"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	UpdatedAt          int64  `json:"updated_at"`
}

func staffAuthStateKey(staffID uint) string {
	return fmt.Sprintf("auth:staff:%d", staffID)
}

// BuildStaffAuthState builds a snapshot from a staff model.
func BuildStaffAuthState(staff *models.Staff) *StaffAuthState {
	if staff == nil {
		return nil
	}
	state := &StaffAuthState{
		StaffID:      staff.ID,
		Username:     staff.Username,
		Role:         staff.Role,
		IsSuper:      staff.IsSuper,
		TokenVersion: staff.TokenVersion,
		UpdatedAt:    time.Now().Unix(),
	}
	if staff.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = staff.TokenInvalidBefore.Unix()
	}
	return state
}

// GetStaffAuthState reads a snapshot. The bool reports a cache hit.
func GetStaffAuthState(ctx context.Context, staffID uint) (*StaffAuthState, bool, error) {
	if staffID == 0 {
		return nil, false, nil
	}
	var state StaffAuthState
	hit, err := GetJSON(ctx, staffAuthStateKey(staffID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetStaffAuthState stores a snapshot.
func SetStaffAuthState(ctx context.Context, state *StaffAuthState) error {
	if state == nil || state.StaffID == 0 {
		return nil
	}
	return SetJSON(ctx, staffAuthStateKey(state.StaffID), state, authStateCacheTTL)
}

// DelStaffAuthState drops a snapshot, forcing the next request to reload.
func DelStaffAuthState(ctx context.Context, staffID uint) error {
	if staffID == 0 {
		return nil
	}
	return Del(ctx, staffAuthStateKey(staffID))
}
