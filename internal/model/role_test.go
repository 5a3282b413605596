package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		ok       bool
	}{
		{"admin", RoleAdmin, true},
		{"student", RoleStudent, true},
		{"instructor", RoleInstructor, true},
		{"INSTRUCTOR", RoleInstructor, true},
		{"  Student ", RoleStudent, true},
		{"superuser", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestRolePrefix(t *testing.T) {
	assert.Equal(t, "adm", RoleAdmin.Prefix())
	assert.Equal(t, "stu", RoleStudent.Prefix())
	assert.Equal(t, "ins", RoleInstructor.Prefix())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleInstructor.Valid())
	assert.False(t, Role("superuser").Valid())
}
