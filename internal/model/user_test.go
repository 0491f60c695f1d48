package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The password hash must never appear in serialized output, regardless of how
// the record left storage.
func TestUser_PasswordNeverSerialized(t *testing.T) {
	user := User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleAdmin,
		IsActive:     true,
	}

	data, err := json.Marshal(user)
	assert.NoError(t, err)

	out := string(data)
	assert.NotContains(t, strings.ToLower(out), "password")
	assert.NotContains(t, out, user.PasswordHash)
	assert.Contains(t, out, "test@example.com")
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("owner").Valid())
	assert.False(t, Role("").Valid())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range []Category{CategoryWeb, CategoryMobile, CategoryDesign, CategoryOther} {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("painting").Valid())
}

func TestContactStatus_Valid(t *testing.T) {
	for _, s := range []ContactStatus{ContactStatusNew, ContactStatusRead, ContactStatusResponded} {
		assert.True(t, s.Valid())
	}
	assert.False(t, ContactStatus("archived").Valid())
}
