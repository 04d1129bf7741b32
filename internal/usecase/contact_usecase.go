package usecase

// ContactUsecase exposes the pharmacy's chat contact: a deep link and its
// scannable QR rendition.
type ContactUsecase interface {
	// Link returns the chat deep link for the pharmacy's number.
	Link() string

	// QR renders the chat link as a PNG image.
	QR() ([]byte, error)
}
