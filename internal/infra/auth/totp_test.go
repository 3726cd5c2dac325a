package auth

import (
	"testing"
	"time"

	"stampshop/internal/domain/constants"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPVerifier_Verify(t *testing.T) {
	verifier, err := NewTOTPVerifier(newTestConfig("secret"))
	require.NoError(t, err)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	verifier.(*totpVerifier).now = func() time.Time { return now }

	current, err := totp.GenerateCode("JBSWY3DPEHPK3PXP", now)
	require.NoError(t, err)
	previous, err := totp.GenerateCode("JBSWY3DPEHPK3PXP", now.Add(-30*time.Second))
	require.NoError(t, err)
	stale, err := totp.GenerateCode("JBSWY3DPEHPK3PXP", now.Add(-5*time.Minute))
	require.NoError(t, err)

	assert.True(t, verifier.Verify(current))
	assert.True(t, verifier.Verify(previous))
	assert.False(t, verifier.Verify(stale))
	assert.False(t, verifier.Verify("12345"))
	assert.False(t, verifier.Verify(""))
}

func TestNewTOTPVerifier_RequiresSecret(t *testing.T) {
	cfg := newTestConfig("secret")
	cfg.Admin.TOTPSecret = ""

	verifier, err := NewTOTPVerifier(cfg)
	assert.Error(t, err)
	assert.Nil(t, verifier)
}

func TestGenerateEnrollment(t *testing.T) {
	enrollment, err := GenerateEnrollment("Supreme Stamps", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, enrollment.Secret)
	assert.Contains(t, enrollment.URL, "otpauth://totp/")

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	assert.True(t, totp.Validate(code, enrollment.Secret))
}

func TestTOTP_CodeLengthMatchesAdminLogin(t *testing.T) {
	enrollment, err := GenerateEnrollment("Supreme Stamps", "admin")
	require.NoError(t, err)
	assert.Contains(t, enrollment.URL, "digits=6")

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	assert.Len(t, code, constants.AdminCodeLength)
}
