package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/rims/internal/config"
	customerdomain "github.com/smallbiznis/rims/internal/customer/domain"
	"github.com/smallbiznis/rims/internal/pricing"
	"github.com/smallbiznis/rims/internal/rental/domain"
	"github.com/smallbiznis/rims/internal/rental/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeGenerator replays a scripted sequence of references, repeating
// the last one once the script runs out.
type fakeGenerator struct {
	refs  []string
	calls int
}

func (g *fakeGenerator) Generate() string {
	i := g.calls
	if i >= len(g.refs) {
		i = len(g.refs) - 1
	}
	g.calls++
	return g.refs[i]
}

func newTestService(t *testing.T, gen *fakeGenerator) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&customerdomain.Customer{}, &domain.Rental{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Refs:  gen,
		Repo:  repository.Provide(),
	})
	return svc, db
}

func quoteFor(t *testing.T, rateCents int64, days int, discount float64) *pricing.Quote {
	t.Helper()
	engine := pricing.NewEngine(config.NewStaticPricingConfigHolder(config.DefaultPricingConfig()))
	q, err := engine.Quote(rateCents, days, discount)
	require.NoError(t, err)
	return &q
}

func carRequest(t *testing.T) domain.SaveRentalRequest {
	return domain.SaveRentalRequest{
		ProductType: "Car",
		ProductCode: "CAR452",
		Quote:       quoteFor(t, 1200, 30, 5),
		Terms: domain.CreditTerms{
			PaymentMethod: "Cash",
			TermsAgreed:   true,
		},
	}
}

func TestSaveRental(t *testing.T) {
	svc, _ := newTestService(t, &fakeGenerator{refs: []string{"BILL100001"}})

	rental, err := svc.Save(context.Background(), carRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "BILL100001", rental.ReceiptRef)
	assert.Equal(t, int64(34200), rental.SubtotalCents)
	assert.Equal(t, int64(5130), rental.TaxCents)
	assert.Equal(t, int64(39330), rental.TotalCents)
	assert.True(t, rental.TermsAgreed)

	rows, err := svc.List(context.Background(), domain.ListRentalRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BILL100001", rows[0].ReceiptRef)
}

func TestSaveRentalValidation(t *testing.T) {
	svc, _ := newTestService(t, &fakeGenerator{refs: []string{"BILL100001"}})
	ctx := context.Background()

	req := carRequest(t)
	req.ProductType = " "
	_, err := svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrMissingProduct)

	req = carRequest(t)
	req.ProductCode = ""
	_, err = svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrMissingProduct)

	req = carRequest(t)
	req.Quote = nil
	_, err = svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrMissingTotal)

	req = carRequest(t)
	req.Quote.Days = -1
	_, err = svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	req = carRequest(t)
	req.Quote.TotalCents++
	_, err = svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInconsistentTotal)
}

func TestSaveRentalZeroDaysIsValid(t *testing.T) {
	svc, _ := newTestService(t, &fakeGenerator{refs: []string{"BILL100001"}})

	req := carRequest(t)
	req.Quote = quoteFor(t, 1200, 0, 0)
	rental, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rental.TotalCents)
}

func TestSaveRentalRetriesOnceOnCollision(t *testing.T) {
	gen := &fakeGenerator{refs: []string{"BILL100001", "BILL100001", "BILL100002"}}
	svc, _ := newTestService(t, gen)
	ctx := context.Background()

	first, err := svc.Save(ctx, carRequest(t))
	require.NoError(t, err)

	second, err := svc.Save(ctx, carRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "BILL100001", first.ReceiptRef)
	assert.Equal(t, "BILL100002", second.ReceiptRef)
	assert.Equal(t, 3, gen.calls)

	rows, err := svc.List(ctx, domain.ListRentalRequest{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSaveRentalExhaustedRetries(t *testing.T) {
	gen := &fakeGenerator{refs: []string{"BILL100001"}}
	svc, _ := newTestService(t, gen)
	ctx := context.Background()

	_, err := svc.Save(ctx, carRequest(t))
	require.NoError(t, err)

	_, err = svc.Save(ctx, carRequest(t))
	assert.ErrorIs(t, err, domain.ErrDuplicateReceipt)

	// the failed save burned exactly two references: the original
	// attempt plus the single sanctioned retry
	assert.Equal(t, 3, gen.calls)

	rows, err := svc.List(ctx, domain.ListRentalRequest{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestListFilter(t *testing.T) {
	gen := &fakeGenerator{refs: []string{"BILL100001", "BILL100002"}}
	svc, db := newTestService(t, gen)
	ctx := context.Background()

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)
	customerID := node.Generate()
	require.NoError(t, db.Create(&customerdomain.Customer{
		ID:   customerID,
		Name: "Marta Jones",
	}).Error)

	carReq := carRequest(t)
	carReq.CustomerID = &customerID
	_, err = svc.Save(ctx, carReq)
	require.NoError(t, err)

	_, err = svc.Save(ctx, domain.SaveRentalRequest{
		ProductType: "Van",
		ProductCode: "VAN775",
		Quote:       quoteFor(t, 1900, 90, 10),
	})
	require.NoError(t, err)

	// product code, case-insensitive
	rows, err := svc.List(ctx, domain.ListRentalRequest{Search: "car452"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CAR452", rows[0].ProductCode)
	assert.Equal(t, "Marta Jones", rows[0].CustomerName)

	// receipt reference
	rows, err = svc.List(ctx, domain.ListRentalRequest{Search: "bill100002"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "VAN775", rows[0].ProductCode)

	// joined customer name
	rows, err = svc.List(ctx, domain.ListRentalRequest{Search: "marta"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CAR452", rows[0].ProductCode)

	// no match is an empty slice, not an error
	rows, err = svc.List(ctx, domain.ListRentalRequest{Search: "zeppelin"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestDeletedCustomerLeavesRentalIntact(t *testing.T) {
	gen := &fakeGenerator{refs: []string{"BILL100001"}}
	svc, db := newTestService(t, gen)
	ctx := context.Background()

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)
	customerID := node.Generate()
	require.NoError(t, db.Create(&customerdomain.Customer{
		ID:   customerID,
		Name: "Leaving Soon",
	}).Error)

	req := carRequest(t)
	req.CustomerID = &customerID
	_, err = svc.Save(ctx, req)
	require.NoError(t, err)

	require.NoError(t, db.Exec(`DELETE FROM customers WHERE id = ?`, customerID).Error)

	rows, err := svc.List(ctx, domain.ListRentalRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CAR452", rows[0].ProductCode)
	assert.Equal(t, "", rows[0].CustomerName)
}
