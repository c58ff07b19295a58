package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barterbase/barter_books_app/internal/utils/pagination"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	transactionDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 15, 10, 30, 45, 123456789, time.UTC)

	token := pagination.EncodeToken(transactionDate, createdAt)
	gotDate, gotCreatedAt, err := pagination.DecodeToken(token)

	assert.NoError(t, err)
	assert.True(t, transactionDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-valid-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	// Valid base64 but no field separator inside.
	_, _, err := pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}
