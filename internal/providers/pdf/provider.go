package pdf

import (
	"context"
	"io"

	rentaldomain "github.com/smallbiznis/rims/internal/rental/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.pdf",
	fx.Provide(NewProvider),
)

// Provider renders the printable documents the desktop UI offers: the
// customer receipt for a single rental and the paginated rental-history
// report. The core only supplies ordered rows; layout lives here.
type Provider interface {
	GenerateReceipt(ctx context.Context, rental rentaldomain.Rental) (io.Reader, error)
	GenerateHistoryReport(ctx context.Context, rows []rentaldomain.HistoryRow) (io.Reader, error)
}

type PDFProvider struct{}

func NewProvider() Provider {
	return &PDFProvider{}
}
