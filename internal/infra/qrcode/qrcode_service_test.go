package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"blog/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level, baseURL string) *qrcodeService {
	svc := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level, BaseURL: baseURL},
	})

	return svc.(*qrcodeService)
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_PostURL(t *testing.T) {
	svc := newTestService(256, "M", "https://blog.example.com/")
	assert.Equal(t, "https://blog.example.com/posts/42", svc.PostURL(42))
}

func TestQRCodeService_GeneratePostQR(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small QR", 128, 128},
		{"Large QR", 512, 512},
		{"Default size", 0, defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.size, "M", "http://localhost:8000")

			qrBytes, err := svc.GeneratePostQR(1)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
		})
	}
}

func TestNewQRCodeService_NilConfigSection(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
	assert.Equal(t, "/posts/5", svc.PostURL(5))
}
