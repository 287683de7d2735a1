package auth

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPService(t *testing.T) {
	service := &TOTPService{}

	secret, url, err := service.Generate("user-42")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Contains(t, url, "otpauth://totp/")

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	assert.True(t, service.Validate(code, secret))
	assert.False(t, service.Validate("000000", "JBSWY3DPEHPK3PXP"+"JBSWY3DPEHPK3PXP"))
	assert.False(t, service.Validate("", secret))
	assert.False(t, service.Validate(code, ""))
}
