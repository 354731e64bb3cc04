package quotation

type Status string

const (
	StatusPending                     Status = "pending"
	StatusPendingCustomerConfirmation Status = "pending_customer_confirmation"
	StatusCustomerConfirmed           Status = "customer_confirmed"
	StatusCustomerDeclined            Status = "customer_declined"
	StatusRejected                    Status = "rejected"
	StatusApproved                    Status = "approved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPendingCustomerConfirmation, StatusCustomerConfirmed,
		StatusCustomerDeclined, StatusRejected, StatusApproved:
		return true
	default:
		return false
	}
}

// IsClosed reports statuses from which no further transition exists.
func (s Status) IsClosed() bool {
	switch s {
	case StatusCustomerDeclined, StatusRejected, StatusApproved:
		return true
	default:
		return false
	}
}

type Event string

const (
	EventReject              Event = "reject"
	EventRequestConfirmation Event = "request_confirmation"
	EventConfirm             Event = "confirm"
	EventDecline             Event = "decline"
	EventApprove             Event = "approve"
	EventDelete              Event = "delete"
)

func (e Event) String() string {
	return string(e)
}

func NewEvent(s string) (Event, error) {
	e := Event(s)
	if _, ok := transitions[e]; !ok {
		return "", ErrUnknownEvent
	}
	return e, nil
}

// IsGroupScoped reports events an admin may apply to a whole quotation group.
func (e Event) IsGroupScoped() bool {
	switch e {
	case EventReject, EventRequestConfirmation, EventApprove:
		return true
	default:
		return false
	}
}
