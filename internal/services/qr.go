package services

import (
	"github.com/skip2/go-qrcode"
)

// QRService renders QR codes for short links.
type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// PNG encodes the content as a QR code image of size x size pixels.
func (s *QRService) PNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
