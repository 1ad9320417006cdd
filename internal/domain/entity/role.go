package entity

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Role is the closed set of profile roles. The zero value is not a valid role;
// values only come from ParseRole or a database scan, both of which reject
// anything outside {patient, doctor}.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts raw input into a Role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RolePatient, RoleDoctor:
		return Role(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsDoctor() bool {
	return r == RoleDoctor
}

func (r Role) IsPatient() bool {
	return r == RolePatient
}

// Value implements driver.Valuer.
func (r Role) Value() (driver.Value, error) {
	if _, err := ParseRole(string(r)); err != nil {
		return nil, err
	}
	return string(r), nil
}

// Scan implements sql.Scanner.
func (r *Role) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidRole, value)
	}

	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MatchRole forces every branch point to handle both roles.
func MatchRole[T any](r Role, onPatient func() T, onDoctor func() T) T {
	if r == RoleDoctor {
		return onDoctor()
	}
	return onPatient()
}
