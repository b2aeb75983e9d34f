package pdf

import (
	"context"
	"io"
	"testing"
	"time"

	rentaldomain "github.com/smallbiznis/rims/internal/rental/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceipt(t *testing.T) {
	provider := NewProvider()

	out, err := provider.GenerateReceipt(context.Background(), rentaldomain.Rental{
		ReceiptRef:    "BILL123456",
		ProductType:   "Car",
		ProductCode:   "CAR452",
		Days:          30,
		RatePerDay:    1200,
		SubtotalCents: 34200,
		TaxCents:      5130,
		TotalCents:    39330,
		CreatedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateHistoryReport(t *testing.T) {
	provider := NewProvider()

	rows := make([]rentaldomain.HistoryRow, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, rentaldomain.HistoryRow{
			ReceiptRef:  "BILL100000",
			ProductType: "Van",
			ProductCode: "VAN775",
			Days:        7,
			TotalCents:  15295,
			CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		})
	}

	out, err := provider.GenerateHistoryReport(context.Background(), rows)
	require.NoError(t, err)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
