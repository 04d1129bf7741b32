// Package qrcode renders links as scannable PNG images.
package qrcode

import (
	"strings"

	qrc "github.com/skip2/go-qrcode"

	"pharmacy/config"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/errors"
)

const defaultSize = 256

type qrService struct {
	size  int
	level qrc.RecoveryLevel
}

// New builds the QR generator from configuration.
func New(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrc.Medium

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrService{size: size, level: level}
}

func (s *qrService) GenerateLinkQR(link string) ([]byte, error) {
	png, err := qrc.Encode(link, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrc.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrc.Low
	case "Q":
		return qrc.High
	case "H":
		return qrc.Highest
	default:
		return qrc.Medium
	}
}
