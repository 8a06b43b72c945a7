package qr

import (
	"errors"
	"net/url"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// QRGenerator renders the link to the public RSVP page for printed invitations.
type QRGenerator struct {
	target string
	size   int
}

func NewQRGenerator(publicURL string) (*QRGenerator, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, errors.New("public url must be an absolute http(s) url")
	}
	return &QRGenerator{target: u.String(), size: DefaultSize}, nil
}

func (q *QRGenerator) Target() string {
	return q.target
}

// PNG returns the QR code as a PNG image.
func (q *QRGenerator) PNG() ([]byte, error) {
	return qrcode.Encode(q.target, qrcode.Medium, q.size)
}
