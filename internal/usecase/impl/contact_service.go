package impl

import (
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"
)

type contactService struct {
	messenger service.Messenger
	qr        service.QRCodeService
}

// NewContactService creates the chat contact surface.
func NewContactService(messenger service.Messenger, qr service.QRCodeService) usecase.ContactUsecase {
	return &contactService{messenger: messenger, qr: qr}
}

func (s *contactService) Link() string {
	return s.messenger.ContactLink()
}

func (s *contactService) QR() ([]byte, error) {
	return s.qr.GenerateLinkQR(s.messenger.ContactLink())
}
