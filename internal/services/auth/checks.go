package auth

import "github.com/killallgit/podscribe-api/internal/models"

// Role checks are pure threshold comparisons, decoupled from however the
// role was obtained (token claims, user row). Admin implies contributor
// implies reader.

// CheckReader requires role >= reader
func CheckReader(role int) error {
	return checkRole(role, models.RoleReader)
}

// CheckContributor requires role >= contributor
func CheckContributor(role int) error {
	return checkRole(role, models.RoleContributor)
}

// CheckAdmin requires role >= admin
func CheckAdmin(role int) error {
	return checkRole(role, models.RoleAdmin)
}

func checkRole(role, minimum int) error {
	if role >= minimum {
		return nil
	}
	return ErrUnauthorized
}
