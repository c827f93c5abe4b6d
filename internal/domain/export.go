package domain

import "context"

// Export is a generated file ready to be served as a download.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService produces downloadable exports of an event's wishes.
type ExportService interface {
	ExportWishesCSV(ctx context.Context, slug string) (*Export, error)
}

// QRGenerator renders a URL as a PNG QR code.
type QRGenerator interface {
	Generate(url string) ([]byte, error)
}
