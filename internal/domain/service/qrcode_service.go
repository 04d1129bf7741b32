package service

// QRCodeService renders a link as a scannable QR code image.
type QRCodeService interface {
	// GenerateLinkQR encodes the given URL as a PNG.
	GenerateLinkQR(url string) ([]byte, error)
}
