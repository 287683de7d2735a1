package auth

import (
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

//go:generate mockgen -source=totp.go -destination=mock_totp.go -package=auth

type TOTPServiceInterface interface {
	Generate(accountName string) (secret, url string, err error)
	Validate(code, secret string) bool
}

type TOTPService struct{}

func (s *TOTPService) Generate(accountName string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      30,
		SecretSize:  32,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

func (s *TOTPService) Validate(code, secret string) bool {
	if code == "" || secret == "" {
		return false
	}
	return totp.Validate(code, secret)
}
