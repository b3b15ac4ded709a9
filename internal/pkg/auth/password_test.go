package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testPasswordManager() *PasswordManager {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = bcrypt.MinCost
	return NewPasswordManager(cfg)
}

func TestPasswordManager_HashAndVerify(t *testing.T) {
	pm := testPasswordManager()

	hash, err := pm.HashPassword("admin12345")
	require.NoError(t, err)
	require.NotEqual(t, "admin12345", hash)

	require.NoError(t, pm.VerifyPassword("admin12345", hash))
	require.Error(t, pm.VerifyPassword("wrong-password", hash))
}

func TestPasswordManager_ValidatePassword(t *testing.T) {
	pm := testPasswordManager()

	require.Error(t, pm.ValidatePassword("short"))
	require.Error(t, pm.ValidatePassword(strings.Repeat("x", 129)))
	require.NoError(t, pm.ValidatePassword("admin12345"))

	// Hashing refuses passwords that fail validation
	_, err := pm.HashPassword("short")
	require.Error(t, err)
}
