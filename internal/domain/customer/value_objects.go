package customer

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName          = errors.New("customer name cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrEmptyAddress       = errors.New("address cannot be empty")
	ErrInvalidServicePlan = errors.New("invalid service plan")
	ErrTooManyTags        = errors.New("too many tags")
	ErrEmptyTag           = errors.New("tags cannot be empty")
)

const MaxTags = 16

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }

// Address is the customer's street address, used as the default appointment
// location after geocoding.
type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, ErrEmptyAddress
	}
	return Address{value: s}, nil
}

func (a Address) Value() string { return a.value }

// Tags are free-form labels like "ants", "vip", "quarterly-contract".
type Tags struct {
	values []string
}

func NewTags(values []string) (Tags, error) {
	if len(values) > MaxTags {
		return Tags{}, ErrTooManyTags
	}
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return Tags{}, ErrEmptyTag
		}
		cleaned = append(cleaned, v)
	}
	return Tags{values: cleaned}, nil
}

func (t Tags) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}
