package response

import (
	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/usecase/queries"
)

type OrderItemResponse struct {
	ID            int64               `json:"id"`
	QuotationID   int64               `json:"quotation_id"`
	ProductID     int64               `json:"product_id"`
	VariantID     *int64              `json:"variant_id,omitempty"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     *BreakdownResponse  `json:"unit_price"`
	LinePrice     *BreakdownResponse  `json:"line_price"`
	Configuration order.Configuration `json:"configuration"`
}

type OrderResponse struct {
	ID         int64                `json:"id"`
	Number     string               `json:"number"`
	CustomerID string               `json:"customer_id"`
	GroupID    *string              `json:"quotation_group_id,omitempty"`
	Status     string               `json:"status"`
	Currency   string               `json:"currency"`
	Total      string               `json:"total"`
	Items      []*OrderItemResponse `json:"items"`
	CreatedAt  int64                `json:"created_at"`
	UpdatedAt  int64                `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	res := &OrderResponse{
		ID:         v.ID,
		Number:     v.Number,
		CustomerID: v.CustomerID.String(),
		Status:     v.Status,
		Currency:   v.Currency,
		Total:      money(v.Total),
		Items:      make([]*OrderItemResponse, len(v.Items)),
		CreatedAt:  v.CreatedAt.Unix(),
		UpdatedAt:  v.UpdatedAt.Unix(),
	}
	if v.GroupID != nil {
		g := v.GroupID.String()
		res.GroupID = &g
	}
	for i, it := range v.Items {
		res.Items[i] = &OrderItemResponse{
			ID:            it.ID,
			QuotationID:   it.QuotationID,
			ProductID:     it.ProductID,
			VariantID:     it.VariantID,
			Quantity:      it.Quantity,
			UnitPrice:     FromBreakdown(it.UnitPrice),
			LinePrice:     FromBreakdown(it.LinePrice),
			Configuration: it.Configuration,
		}
	}
	return res
}

// FromHistoryEntry renders the row a status change just appended.
func FromHistoryEntry(e *history.Entry) *HistoryEntryResponse {
	res := &HistoryEntryResponse{
		Status:     e.Status,
		ActorGuard: string(e.ActorGuard),
		Meta:       e.Meta,
		CreatedAt:  e.CreatedAt.Unix(),
	}
	if e.ActorID != nil {
		s := e.ActorID.String()
		res.ActorID = &s
	}
	if res.Meta == nil {
		res.Meta = map[string]any{}
	}
	return res
}

type OrderStatusResponse struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsDefault bool   `json:"is_default"`
	CreatedAt int64  `json:"created_at"`
}

func FromOrderStatus(s *order.Status) *OrderStatusResponse {
	return &OrderStatusResponse{
		ID:        s.ID(),
		Code:      string(s.Code()),
		Name:      s.Name(),
		SortOrder: s.SortOrder(),
		IsDefault: s.IsDefault(),
		CreatedAt: s.CreatedAt().Unix(),
	}
}

func FromOrderStatusList(items []*queries.OrderStatusView) []*OrderStatusResponse {
	res := make([]*OrderStatusResponse, len(items))
	for i, it := range items {
		res[i] = &OrderStatusResponse{
			ID:        it.ID,
			Code:      it.Code,
			Name:      it.Name,
			SortOrder: it.SortOrder,
			IsDefault: it.IsDefault,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}
