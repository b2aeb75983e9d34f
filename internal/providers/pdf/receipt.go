package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/rims/internal/pricing"
	rentaldomain "github.com/smallbiznis/rims/internal/rental/domain"
)

// GenerateReceipt renders the printed receipt for one rental, mirroring
// the line layout the rental form shows on screen.
func (p *PDFProvider) GenerateReceipt(ctx context.Context, rental rentaldomain.Rental) (io.Reader, error) {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(20,
		text.NewCol(12, "Rental Receipt", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(30,
		col.New(12).Add(
			text.New("Receipt Ref : "+rental.ReceiptRef, props.Text{Top: 0}),
			text.New("Product Type : "+rental.ProductType, props.Text{Top: 5}),
			text.New("Product Code : "+rental.ProductCode, props.Text{Top: 10}),
			text.New(fmt.Sprintf("No. of Days  : %d", rental.Days), props.Text{Top: 15}),
			text.New("Cost / Day   : "+pricing.FormatCents(rental.RatePerDay), props.Text{Top: 20}),
			text.New("Date         : "+rental.CreatedAt.Format("2006-01-02"), props.Text{Top: 25}),
		),
	)

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, pricing.FormatCents(rental.SubtotalCents), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Tax", props.Text{Size: 9}),
		text.NewCol(2, pricing.FormatCents(rental.TaxCents), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, pricing.FormatCents(rental.TotalCents), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
