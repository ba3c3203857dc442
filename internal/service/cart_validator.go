package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// CartValidator validates checkout carts.
type CartValidator struct {
	validate *validator.Validate
}

// NewCartValidator creates a new cart validator. Field names in messages use
// the JSON names the client sent.
func NewCartValidator() *CartValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CartValidator{validate: v}
}

// ValidateCart checks that the cart has items, every item is named, ordered at
// least once, and not negatively priced.
func (v *CartValidator) ValidateCart(items []model.CartItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: cart is empty", apperrors.ErrInvalidCart)
	}

	for i, item := range items {
		if err := v.validate.Struct(item); err != nil {
			return fmt.Errorf("%w: item %d: %s", apperrors.ErrInvalidCart, i, describe(err))
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: item %d: price must not be negative", apperrors.ErrInvalidCart, i)
		}
	}
	return nil
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
