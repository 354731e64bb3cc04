package order

import "time"

// Status is an admin-managed status row. At most one row is the default given to new orders.
type Status struct {
	id        int64
	code      Code
	name      StatusName
	sortOrder int
	isDefault bool
	createdAt time.Time
}

func NewStatus(code, name string, sortOrder int, isDefault bool, now time.Time) (*Status, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	n, err := NewStatusName(name)
	if err != nil {
		return nil, err
	}
	return &Status{code: c, name: n, sortOrder: sortOrder, isDefault: isDefault, createdAt: now}, nil
}

func ReconstructStatus(id int64, code Code, name string, sortOrder int, isDefault bool, createdAt time.Time) *Status {
	return &Status{id: id, code: code, name: StatusName{value: name}, sortOrder: sortOrder, isDefault: isDefault, createdAt: createdAt}
}

func (s *Status) ID() int64            { return s.id }
func (s *Status) Code() Code           { return s.code }
func (s *Status) Name() string         { return s.name.String() }
func (s *Status) SortOrder() int       { return s.sortOrder }
func (s *Status) IsDefault() bool      { return s.isDefault }
func (s *Status) CreatedAt() time.Time { return s.createdAt }

func (s *Status) Rename(name string) error {
	n, err := NewStatusName(name)
	if err != nil {
		return err
	}
	s.name = n
	return nil
}

func (s *Status) Reorder(sortOrder int) {
	s.sortOrder = sortOrder
}

func (s *Status) MarkDefault(v bool) {
	s.isDefault = v
}

// CheckDeletable guards a single delete. inUse is the number of orders currently in s.
func (s *Status) CheckDeletable(inUse int64) error {
	if s.isDefault {
		return ErrDefaultStatus
	}
	if s.code.IsBuiltin() {
		return ErrBuiltinStatus
	}
	if inUse > 0 {
		return ErrStatusInUse
	}
	return nil
}
