package service

import (
	"database/sql"
	"errors"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

var ErrQRCodeNotFound = errors.New("qr code not found")

type QRService struct {
	repository QRRepository
	baseURL    string
}

func NewQRService(repository QRRepository, baseURL string) *QRService {
	return &QRService{repository: repository, baseURL: baseURL}
}

// BuildValue is the URL a printed code resolves to. The owning user id and
// the table label ride along so the order lands at the right restaurant.
// Spaces are escaped as %20, not +, so printed codes match the form
// customers see in their browser bar.
func (s *QRService) BuildValue(userID, tableName string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(tableName), "+", "%20")
	return s.baseURL + "/menu/" + userID + "?table=" + escaped
}

func (s *QRService) List(userID string) ([]domain.QrCode, error) {
	return s.repository.ListQRCodes(userID)
}

func (s *QRService) Create(userID, tableName string) (*domain.QrCode, error) {
	if tableName == "" {
		return nil, ErrMissingTable
	}

	code := domain.QrCode{
		UserID:    userID,
		TableName: tableName,
		QrValue:   s.BuildValue(userID, tableName),
	}
	if err := s.repository.InsertQRCode(&code); err != nil {
		return nil, err
	}
	return &code, nil
}

// Image renders the stored value as a 256px PNG.
func (s *QRService) Image(userID string, id int) ([]byte, error) {
	code, err := s.repository.GetQRCode(userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQRCodeNotFound
		}
		return nil, err
	}
	return qrcode.Encode(code.QrValue, qrcode.Medium, 256)
}

func (s *QRService) Delete(userID string, id int) error {
	err := s.repository.DeleteQRCode(userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrQRCodeNotFound
	}
	return err
}
