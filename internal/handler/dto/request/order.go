package request

import (
	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/usecase/commands"
)

type TransitionOrderStatusRequest struct {
	Status  string `json:"status" binding:"required,max=50"`
	Comment string `json:"comment" binding:"max=2000"`
}

// Meta is what gets recorded on the order history row.
func (r *TransitionOrderStatusRequest) Meta() history.Meta {
	if r.Comment == "" {
		return history.Meta{}
	}
	return history.Meta{"comment": r.Comment}
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

type CreateOrderStatusRequest struct {
	Code      string `json:"code" binding:"required,max=50"`
	Name      string `json:"name" binding:"required,max=100"`
	SortOrder int    `json:"sort_order"`
	IsDefault bool   `json:"is_default"`
}

func (r *CreateOrderStatusRequest) ToCommand() commands.CreateOrderStatusRequest {
	return commands.CreateOrderStatusRequest{
		Code:      r.Code,
		Name:      r.Name,
		SortOrder: r.SortOrder,
		IsDefault: r.IsDefault,
	}
}

type UpdateOrderStatusRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	SortOrder *int    `json:"sort_order"`
	IsDefault *bool   `json:"is_default"`
}

func (r *UpdateOrderStatusRequest) ToCommand() commands.UpdateOrderStatusRequest {
	return commands.UpdateOrderStatusRequest{
		Name:      r.Name,
		SortOrder: r.SortOrder,
		IsDefault: r.IsDefault,
	}
}

type DeleteOrderStatusesRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,min=1"`
}
