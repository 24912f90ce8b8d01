package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePostQR returns a PNG QR code linking to the post
	GeneratePostQR(postID int64) ([]byte, error)
}
