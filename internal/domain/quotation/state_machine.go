package quotation

import (
	"slices"

	"gin-jewelry-b2b/internal/domain/user"
)

type rule struct {
	from       []Status
	capability user.Capability
	to         Status // empty for delete
}

var transitions = map[Event]rule{
	EventReject: {
		from:       []Status{StatusPending},
		capability: user.CapAdminWrite,
		to:         StatusRejected,
	},
	EventRequestConfirmation: {
		from:       []Status{StatusPending},
		capability: user.CapAdminWrite,
		to:         StatusPendingCustomerConfirmation,
	},
	EventConfirm: {
		from:       []Status{StatusPendingCustomerConfirmation},
		capability: user.CapCustomerWrite,
		to:         StatusCustomerConfirmed,
	},
	EventDecline: {
		from:       []Status{StatusPendingCustomerConfirmation},
		capability: user.CapCustomerWrite,
		to:         StatusCustomerDeclined,
	},
	EventApprove: {
		from:       []Status{StatusCustomerConfirmed, StatusPending},
		capability: user.CapAdminWrite,
		to:         StatusApproved,
	},
	EventDelete: {
		from:       []Status{StatusPending},
		capability: user.CapCustomerWrite,
	},
}

// Next returns the status event leads to from current, or an IllegalTransitionError.
func Next(current Status, event Event) (Status, error) {
	r, ok := transitions[event]
	if !ok {
		return "", ErrUnknownEvent
	}
	if !slices.Contains(r.from, current) {
		return "", &IllegalTransitionError{Event: event, Current: current, Required: RequiredStatuses(event)}
	}
	return r.to, nil
}

func RequiredStatuses(event Event) []Status {
	r, ok := transitions[event]
	if !ok {
		return nil
	}
	return slices.Clone(r.from)
}

func CapabilityFor(event Event) user.Capability {
	return transitions[event].capability
}

// ReStocks reports events whose guard re-validates inventory.
func ReStocks(event Event) bool {
	switch event {
	case EventRequestConfirmation, EventConfirm, EventApprove:
		return true
	default:
		return false
	}
}
