package auth_test

import (
	"testing"

	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/auth"
	"github.com/stretchr/testify/assert"
)

func TestRoleChecks(t *testing.T) {
	tests := []struct {
		name            string
		role            int
		passReader      bool
		passContributor bool
		passAdmin       bool
	}{
		{"anonymous", models.RoleNone, false, false, false},
		{"reader", models.RoleReader, true, false, false},
		{"contributor", models.RoleContributor, true, true, false},
		{"admin", models.RoleAdmin, true, true, true},
		{"above admin", 9, true, true, true},
		{"negative role", -1, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCheck(t, tt.passReader, auth.CheckReader(tt.role))
			assertCheck(t, tt.passContributor, auth.CheckContributor(tt.role))
			assertCheck(t, tt.passAdmin, auth.CheckAdmin(tt.role))
		})
	}
}

func assertCheck(t *testing.T, pass bool, err error) {
	t.Helper()
	if pass {
		assert.NoError(t, err)
	} else {
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	}
}
