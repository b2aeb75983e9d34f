package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/rims/internal/pricing"
	rentaldomain "github.com/smallbiznis/rims/internal/rental/domain"
)

// GenerateHistoryReport renders the rental-history listing as a
// paginated table. Rows arrive already ordered; pagination is maroto's.
func (p *PDFProvider) GenerateHistoryReport(ctx context.Context, rows []rentaldomain.HistoryRow) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(12, "Rental History", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(8,
		text.NewCol(3, "Receipt Ref", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Product Type", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Product Code", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Days", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Date", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, row := range rows {
		m.AddRow(7,
			text.NewCol(3, row.ReceiptRef, props.Text{Size: 9}),
			text.NewCol(2, row.ProductType, props.Text{Size: 9}),
			text.NewCol(2, row.ProductCode, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", row.Days), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, pricing.FormatCents(row.TotalCents), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, row.CreatedAt.Format("2006-01-02"), props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
