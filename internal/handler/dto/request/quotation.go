package request

import (
	"gin-jewelry-b2b/internal/pkg/ptr"
	"gin-jewelry-b2b/internal/usecase/commands"
)

type CreateQuotationRequest struct {
	ProductID int64   `json:"product_id" binding:"required,min=1"`
	VariantID *int64  `json:"variant_id" binding:"omitempty,min=1"`
	Quantity  int     `json:"quantity" binding:"required,min=1,max=10000"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}

func (r *CreateQuotationRequest) ToCommand() commands.CreateQuotationRequest {
	return commands.CreateQuotationRequest{
		ProductID: r.ProductID,
		VariantID: r.VariantID,
		Quantity:  r.Quantity,
		Notes:     ptr.Deref(r.Notes),
	}
}

// TransitionRequest is the optional body of every transition endpoint.
// Quantity and notes are only honoured by a single-line request-confirmation.
type TransitionRequest struct {
	Quantity      *int     `json:"quantity" binding:"omitempty,min=1,max=10000"`
	Notes         *string  `json:"notes" binding:"omitempty,max=2000"`
	Comment       string   `json:"comment" binding:"max=2000"`
	Message       string   `json:"message" binding:"max=2000"`
	DiscountCodes []string `json:"discount_codes" binding:"omitempty,dive,required,max=64"`
}

func (r *TransitionRequest) ToCommand() commands.TransitionRequest {
	return commands.TransitionRequest{
		Quantity:      r.Quantity,
		Notes:         r.Notes,
		Comment:       r.Comment,
		Message:       r.Message,
		DiscountCodes: r.DiscountCodes,
	}
}

type PostMessageRequest struct {
	Body string `json:"body" binding:"required,max=4000"`
}
