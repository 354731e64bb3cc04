package response

import (
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/usecase/commands"
	"gin-jewelry-b2b/internal/usecase/queries"
)

type QuotationResponse struct {
	ID          int64              `json:"id"`
	GroupID     *string            `json:"quotation_group_id,omitempty"`
	CustomerID  string             `json:"customer_id"`
	ProductID   int64              `json:"product_id"`
	ProductName string             `json:"product_name,omitempty"`
	VariantID   *int64             `json:"variant_id,omitempty"`
	Quantity    int                `json:"quantity"`
	Notes       *string            `json:"notes,omitempty"`
	Status      string             `json:"status"`
	Price       *BreakdownResponse `json:"price_breakdown,omitempty"`
	OrderID     *int64             `json:"order_id,omitempty"`
	CreatedAt   int64              `json:"created_at"`
	UpdatedAt   int64              `json:"updated_at"`
}

func FromQuotationView(v *queries.QuotationView) *QuotationResponse {
	res := &QuotationResponse{
		ID:          v.ID,
		CustomerID:  v.CustomerID.String(),
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		VariantID:   v.VariantID,
		Quantity:    v.Quantity,
		Notes:       v.Notes,
		Status:      v.Status,
		Price:       fromBreakdownPtr(v.Price),
		OrderID:     v.OrderID,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
	if v.GroupID != nil {
		g := v.GroupID.String()
		res.GroupID = &g
	}
	return res
}

func FromQuotationList(items []*queries.QuotationView) []*QuotationResponse {
	res := make([]*QuotationResponse, len(items))
	for i, it := range items {
		res[i] = FromQuotationView(it)
	}
	return res
}

func FromQuotation(q *quotation.Quotation) *QuotationResponse {
	res := &QuotationResponse{
		ID:         q.ID(),
		CustomerID: q.CustomerID().String(),
		ProductID:  q.ProductID(),
		VariantID:  q.VariantID(),
		Quantity:   q.Quantity(),
		Status:     q.Status().String(),
		Price:      fromBreakdownPtr(q.Breakdown()),
		CreatedAt:  q.CreatedAt().Unix(),
		UpdatedAt:  q.UpdatedAt().Unix(),
	}
	if g := q.GroupID(); g != nil {
		s := g.String()
		res.GroupID = &s
	}
	if n := q.Notes(); n != "" {
		res.Notes = &n
	}
	return res
}

func FromQuotations(qs []*quotation.Quotation) []*QuotationResponse {
	res := make([]*QuotationResponse, len(qs))
	for i, q := range qs {
		res[i] = FromQuotation(q)
	}
	return res
}

type TransitionResponse struct {
	Quotation *QuotationResponse `json:"quotation"`
	OrderID   *int64             `json:"order_id,omitempty"`
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{
		Quotation: FromQuotation(r.Quotation),
		OrderID:   r.OrderID,
	}
}

type GroupTransitionResponse struct {
	GroupID    string               `json:"quotation_group_id"`
	Quotations []*QuotationResponse `json:"quotations"`
	Skipped    []int64              `json:"skipped"`
	OrderID    *int64               `json:"order_id,omitempty"`
}

func FromGroupTransitionResult(r *commands.GroupTransitionResult) *GroupTransitionResponse {
	skipped := r.Skipped
	if skipped == nil {
		skipped = []int64{}
	}
	return &GroupTransitionResponse{
		GroupID:    r.GroupID.String(),
		Quotations: FromQuotations(r.Quotations),
		Skipped:    skipped,
		OrderID:    r.OrderID,
	}
}

type MessageResponse struct {
	ID          int64  `json:"id"`
	QuotationID int64  `json:"quotation_id"`
	SenderID    string `json:"sender_id"`
	SenderRole  string `json:"sender_role"`
	Body        string `json:"body"`
	CreatedAt   int64  `json:"created_at"`
}

func FromMessage(m *quotation.Message) *MessageResponse {
	return &MessageResponse{
		ID:          m.ID(),
		QuotationID: m.QuotationID(),
		SenderID:    m.SenderID().String(),
		SenderRole:  m.SenderRole().String(),
		Body:        m.Body(),
		CreatedAt:   m.CreatedAt().Unix(),
	}
}

func FromMessageList(items []*queries.MessageView) []*MessageResponse {
	res := make([]*MessageResponse, len(items))
	for i, it := range items {
		res[i] = &MessageResponse{
			ID:          it.ID,
			QuotationID: it.QuotationID,
			SenderID:    it.SenderID.String(),
			SenderRole:  it.SenderRole,
			Body:        it.Body,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return res
}

type HistoryEntryResponse struct {
	Status     string         `json:"status"`
	ActorGuard string         `json:"actor_guard"`
	ActorID    *string        `json:"actor_id,omitempty"`
	Meta       map[string]any `json:"meta"`
	CreatedAt  int64          `json:"created_at"`
}

func FromHistoryList(items []*queries.HistoryEntryView) []*HistoryEntryResponse {
	res := make([]*HistoryEntryResponse, len(items))
	for i, it := range items {
		res[i] = &HistoryEntryResponse{
			Status:     it.Status,
			ActorGuard: it.ActorGuard,
			Meta:       it.Meta,
			CreatedAt:  it.CreatedAt.Unix(),
		}
		if it.ActorID != nil {
			s := it.ActorID.String()
			res[i].ActorID = &s
		}
		if res[i].Meta == nil {
			res[i].Meta = map[string]any{}
		}
	}
	return res
}
