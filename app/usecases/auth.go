package usecases

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/IanAndy202/Hotel-App/app/entities"
)

// RedirectPathForRole is where a user lands right after logging in.
func RedirectPathForRole(role string) string {
	switch role {
	case entities.RoleReceptionist:
		return "/dashboard"
	case entities.RoleHousekeeping:
		return "/cleaning-requests"
	default:
		return "/"
	}
}

// passwordMatches accepts the stored password as plaintext, or as a bcrypt hash.
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
