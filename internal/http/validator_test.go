package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		errs := ValidateStruct(createBookRequest{Title: "T", Author: "A"})
		assert.Nil(t, errs)
	})

	t.Run("missing required fields reported per field", func(t *testing.T) {
		errs := ValidateStruct(createBookRequest{})
		require.Len(t, errs, 2)
		assert.Equal(t, "title", errs[0].Field)
		assert.Equal(t, "title is required", errs[0].Message)
		assert.Equal(t, "author", errs[1].Field)
	})

	t.Run("gte bound reported with its parameter", func(t *testing.T) {
		errs := ValidateStruct(createBookRequest{Title: "T", Author: "A", Price: -0.5})
		require.Len(t, errs, 1)
		assert.Equal(t, "price", errs[0].Field)
		assert.Equal(t, "price must be at least 0", errs[0].Message)
	})

	t.Run("rating is not bounded", func(t *testing.T) {
		errs := ValidateStruct(createBookRequest{Title: "T", Author: "A", Rating: 11})
		assert.Nil(t, errs)
	})
}
