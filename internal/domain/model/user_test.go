package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		name string
		role string
		want bool
	}{
		{name: "admin role", role: RoleAdmin, want: true},
		{name: "operator role", role: RoleOperator, want: false},
		{name: "empty role", role: "", want: false},
		{name: "unknown role", role: "superuser", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{Role: tt.role}
			assert.Equal(t, tt.want, user.IsAdmin())
		})
	}
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	user := User{
		Email:    "dock@example.com",
		Username: "dock-3",
		Password: "$2a$10$secret-hash",
		Role:     RoleOperator,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret-hash")
	assert.Contains(t, string(data), "dock@example.com")
}
