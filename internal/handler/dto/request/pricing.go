package request

import "gin-jewelry-b2b/internal/usecase/queries"

type ComputePriceRequest struct {
	ProductID     int64    `json:"product_id" binding:"required,min=1"`
	VariantID     *int64   `json:"variant_id" binding:"omitempty,min=1"`
	Quantity      int      `json:"quantity" binding:"omitempty,min=1,max=10000"`
	CustomerType  *string  `json:"customer_type" binding:"omitempty,oneof=retailer wholesaler"`
	DiscountCodes []string `json:"discount_codes" binding:"omitempty,dive,required,max=64"`
}

func (r *ComputePriceRequest) ToQuery() queries.ComputePriceRequest {
	return queries.ComputePriceRequest{
		ProductID:     r.ProductID,
		VariantID:     r.VariantID,
		Quantity:      r.Quantity,
		CustomerType:  r.CustomerType,
		DiscountCodes: r.DiscountCodes,
	}
}
