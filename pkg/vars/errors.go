package vars

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrSearchExhausted = errors.New("name search space exhausted")
)
