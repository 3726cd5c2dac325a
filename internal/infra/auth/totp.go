package auth

import (
	"time"

	"stampshop/config"
	"stampshop/internal/domain/constants"
	"stampshop/internal/domain/service"
	"stampshop/internal/errors"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

type totpVerifier struct {
	secret string
	now    func() time.Time
}

// NewTOTPVerifier checks admin codes against the shared TOTP secret.
func NewTOTPVerifier(cfg *config.Config) (service.OTPVerifier, error) {
	if cfg.Admin == nil || cfg.Admin.TOTPSecret == "" {
		return nil, errors.New("admin totp secret must be provided")
	}

	return &totpVerifier{
		secret: cfg.Admin.TOTPSecret,
		now:    time.Now,
	}, nil
}

// Verify accepts the current code and one step of clock skew either side.
func (v *totpVerifier) Verify(code string) bool {
	ok, err := totp.ValidateCustom(code, v.secret, v.now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.Digits(constants.AdminCodeLength),
		Algorithm: otp.AlgorithmSHA1,
	})

	return err == nil && ok
}

// Enrollment is a freshly generated admin secret and its provisioning URI.
type Enrollment struct {
	Secret string
	URL    string
}

// GenerateEnrollment creates a new TOTP secret for an authenticator app.
func GenerateEnrollment(issuer, account string) (*Enrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
		Digits:      otp.Digits(constants.AdminCodeLength),
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate totp secret")
	}

	return &Enrollment{
		Secret: key.Secret(),
		URL:    key.URL(),
	}, nil
}
