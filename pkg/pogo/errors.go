package pogo

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField  = errors.New("missing base stat field")
	ErrInvalidConfig = errors.New("invalid stat config")
)

type MissingFieldError struct {
	Field  string
	Record string
}

func (e *MissingFieldError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("base stat %q is missing", e.Field)
	}
	return fmt.Sprintf("base stat %q is missing for %q", e.Field, e.Record)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

type InvalidConfigError struct {
	Field string
	Value any
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("config value %s = %v is out of range", e.Field, e.Value)
}

func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}
