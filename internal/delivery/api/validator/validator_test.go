package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItemRequest struct {
	Name     string           `json:"name" validate:"required,max=10"`
	Price    decimal.Decimal  `json:"price" validate:"gte=0"`
	Discount *decimal.Decimal `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Category string           `json:"category" validate:"required,category"`
	Quantity int              `json:"quantity" validate:"required,min=1"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&testItemRequest{
		Name:     "Lamp",
		Price:    decimal.RequireFromString("9.99"),
		Category: "Home & Garden",
		Quantity: 1,
	})

	assert.NoError(t, err)
}

func TestValidator_FieldErrors(t *testing.T) {
	v := New()
	discount := decimal.NewFromInt(-5)

	err := v.Validate(&testItemRequest{
		Name:     "A name that is far too long",
		Price:    decimal.NewFromInt(-1),
		Discount: &discount,
		Category: "Groceries",
	})
	require.Error(t, err)

	byField := map[string]string{}
	for _, fe := range FieldErrors(err) {
		byField[fe.Field] = fe.Message
	}

	assert.Equal(t, "must be at most 10 characters", byField["name"])
	assert.Equal(t, "must be greater than or equal to 0", byField["price"])
	assert.Equal(t, "must be greater than or equal to 0", byField["discount"])
	assert.Equal(t, "must be one of the catalog categories", byField["category"])
	assert.Equal(t, "is required", byField["quantity"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
