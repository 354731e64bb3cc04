//go:build unit || e2e

package builder

import (
	"time"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	reqdto "gin-jewelry-b2b/internal/handler/dto/request"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuotationBuilder struct {
	ID         int64
	GroupID    *uuid.UUID
	CustomerID uuid.UUID
	ProductID  int64
	VariantID  *int64
	Quantity   int
	Notes      string
	Breakdown  *pricing.Breakdown
	Status     quotation.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewQuotationBuilder() *QuotationBuilder {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	variantID := int64(11)
	return &QuotationBuilder{
		ID:         101,
		CustomerID: uuid.New(),
		ProductID:  1,
		VariantID:  &variantID,
		Quantity:   2,
		Notes:      "Engrave initials on the band",
		Status:     quotation.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *QuotationBuilder) With(mutate func(*QuotationBuilder)) *QuotationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *QuotationBuilder) BuildDomain() (*quotation.Quotation, error) {
	return quotation.NewQuotation(b.CustomerID, b.ProductID, b.VariantID, b.Quantity, b.Notes, b.GroupID, b.CreatedAt)
}

// BuildReconstructed skips validation and keeps ID and Status.
func (b *QuotationBuilder) BuildReconstructed() *quotation.Quotation {
	return quotation.ReconstructQuotation(b.ID, b.GroupID, b.CustomerID, b.ProductID, b.VariantID, b.Quantity, b.Notes, b.Breakdown, b.Status, b.CreatedAt, b.UpdatedAt)
}

func (b *QuotationBuilder) BuildView() *queries.QuotationView {
	v := &queries.QuotationView{
		ID:          b.ID,
		GroupID:     b.GroupID,
		CustomerID:  b.CustomerID,
		ProductID:   b.ProductID,
		ProductName: "Solitaire Ring",
		VariantID:   b.VariantID,
		Quantity:    b.Quantity,
		Status:      b.Status.String(),
		Price:       b.Breakdown,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Notes != "" {
		notes := b.Notes
		v.Notes = &notes
	}
	return v
}

func (b *QuotationBuilder) BuildCreateRequestDTO() reqdto.CreateQuotationRequest {
	req := reqdto.CreateQuotationRequest{
		ProductID: b.ProductID,
		VariantID: b.VariantID,
		Quantity:  b.Quantity,
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notes = &notes
	}
	return req
}

// Fluent builder methods
func (b *QuotationBuilder) WithID(id int64) *QuotationBuilder {
	b.ID = id
	return b
}

func (b *QuotationBuilder) WithGroupID(id uuid.UUID) *QuotationBuilder {
	b.GroupID = &id
	return b
}

func (b *QuotationBuilder) WithCustomerID(id uuid.UUID) *QuotationBuilder {
	b.CustomerID = id
	return b
}

func (b *QuotationBuilder) WithProductID(id int64) *QuotationBuilder {
	b.ProductID = id
	return b
}

func (b *QuotationBuilder) WithVariantID(id *int64) *QuotationBuilder {
	b.VariantID = id
	return b
}

func (b *QuotationBuilder) WithQuantity(q int) *QuotationBuilder {
	b.Quantity = q
	return b
}

func (b *QuotationBuilder) WithNotes(n string) *QuotationBuilder {
	b.Notes = n
	return b
}

func (b *QuotationBuilder) WithStatus(s quotation.Status) *QuotationBuilder {
	b.Status = s
	return b
}

func (b *QuotationBuilder) WithBreakdown(bd pricing.Breakdown) *QuotationBuilder {
	b.Breakdown = &bd
	return b
}
