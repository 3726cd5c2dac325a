// Package qrcode renders PNG QR codes for order tracking links and admin
// TOTP enrollment.
package qrcode

import (
	"net/url"
	"strings"

	"stampshop/config"
	"stampshop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// Keyed by the conventional QR level letters.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	trackingURL string
	size        int
	level       qrcode.RecoveryLevel
}

func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	svc := &qrcodeService{
		trackingURL: "/track",
		size:        defaultSize,
		level:       qrcode.Medium,
	}
	if cfg.App != nil {
		svc.trackingURL = strings.TrimRight(cfg.App.BaseURL, "/") + "/track"
	}
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			svc.size = cfg.QRCode.Size
		}
		svc.level = recoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return svc
}

// recoveryLevel falls back to M for anything it does not recognise.
func recoveryLevel(name string) qrcode.RecoveryLevel {
	if level, ok := recoveryLevels[strings.ToUpper(name)]; ok {
		return level
	}

	return qrcode.Medium
}

func (s *qrcodeService) TrackingURL(friendlyID string) string {
	return s.trackingURL + "?id=" + url.QueryEscape(friendlyID)
}

func (s *qrcodeService) GenerateTrackingQR(friendlyID string) ([]byte, error) {
	if friendlyID == "" {
		return nil, errors.New("qrcode: friendly id is required")
	}

	return s.GeneratePNG(s.TrackingURL(friendlyID))
}

func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	code, err := qrcode.New(content, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "qrcode: encode")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "qrcode: render png")
	}

	return png, nil
}
