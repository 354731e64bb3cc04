package order

import (
	"slices"

	"gin-jewelry-b2b/internal/domain/history"
)

var flow = map[Code][]Code{
	CodePendingPayment: {CodePending, CodeCancelled},
	CodePending:        {CodeInProduction, CodeCancelled},
	CodeInProduction:   {CodeQualityCheck, CodeCancelled},
	CodeQualityCheck:   {CodeReadyToShip, CodeInProduction},
	CodeReadyToShip:    {CodeShipped},
	CodeShipped:        {CodeDelivered},
	CodeDelivered:      {CodeRefunded},
	CodeCancelled:      {CodeRefunded},
	CodeRefunded:       nil,
}

// CanMove validates from -> to for the given guard. Custom codes may be entered from, and
// left to, any open status.
func CanMove(guard history.ActorGuard, from, to Code) error {
	if from == to {
		return &IllegalStatusError{From: from, To: to, Reason: "already in this status"}
	}
	if guard == history.GuardCustomer {
		if from == CodePendingPayment && to == CodeCancelled {
			return nil
		}
		return &IllegalStatusError{From: from, To: to, Reason: "customers may only cancel unpaid orders"}
	}

	if from.IsBuiltin() && to.IsBuiltin() {
		if slices.Contains(flow[from], to) {
			return nil
		}
		return &IllegalStatusError{From: from, To: to}
	}
	if from.IsOpen() && to.IsOpen() {
		return nil
	}
	if !from.IsBuiltin() && to == CodeCancelled {
		return nil
	}
	return &IllegalStatusError{From: from, To: to}
}

// NextBuiltin lists the seeded codes reachable from c.
func NextBuiltin(c Code) []Code {
	return slices.Clone(flow[c])
}
