package qrcode

import (
	"fmt"
	"strconv"
	"strings"

	"blog/config"
	"blog/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PostURL returns the public link encoded in a post's QR code
func (s *qrcodeService) PostURL(postID int64) string {
	return s.baseURL + "/posts/" + strconv.FormatInt(postID, 10)
}

// GeneratePostQR generates a PNG QR code linking to the post
func (s *qrcodeService) GeneratePostQR(postID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.PostURL(postID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
