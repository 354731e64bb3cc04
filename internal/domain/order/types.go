package order

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Code identifies an order status row. Built-in codes are seeded; admins may add more.
type Code string

const (
	CodePendingPayment Code = "pending_payment"
	CodePending        Code = "pending"
	CodeInProduction   Code = "in_production"
	CodeQualityCheck   Code = "quality_check"
	CodeReadyToShip    Code = "ready_to_ship"
	CodeShipped        Code = "shipped"
	CodeDelivered      Code = "delivered"
	CodeCancelled      Code = "cancelled"
	CodeRefunded       Code = "refunded"
)

const MaxStatusNameLength = 100

var codePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{1,49}$`)

func NewCode(s string) (Code, error) {
	c := Code(strings.TrimSpace(strings.ToLower(s)))
	if !codePattern.MatchString(string(c)) {
		return "", ErrInvalidStatusCode
	}
	return c, nil
}

func (c Code) String() string {
	return string(c)
}

func (c Code) IsBuiltin() bool {
	switch c {
	case CodePendingPayment, CodePending, CodeInProduction, CodeQualityCheck,
		CodeReadyToShip, CodeShipped, CodeDelivered, CodeCancelled, CodeRefunded:
		return true
	default:
		return false
	}
}

// IsOpen reports codes an order is still being fulfilled in. Custom codes are open.
func (c Code) IsOpen() bool {
	switch c {
	case CodeDelivered, CodeCancelled, CodeRefunded:
		return false
	default:
		return true
	}
}

type StatusName struct {
	value string
}

func NewStatusName(s string) (StatusName, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > MaxStatusNameLength {
		return StatusName{}, ErrInvalidStatusName
	}
	return StatusName{value: t}, nil
}

func (n StatusName) String() string { return n.value }
