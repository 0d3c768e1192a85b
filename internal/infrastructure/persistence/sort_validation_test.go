package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"asc", "ASC"},
		{"ASC", "ASC"},
		{"desc", "DESC"},
		{" DESC ", "DESC"},
		{"", "ASC"},
		{"sideways", "ASC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ValidateSortOrder(tt.input), tt.input)
	}
}

func TestValidateSortField(t *testing.T) {
	t.Run("accepts whitelisted fields", func(t *testing.T) {
		assert.Equal(t, "name", ValidateSortField("name", ProductSortFields, "external_id"))
		assert.Equal(t, "active_price", ValidateSortField(" active_price ", ProductSortFields, "external_id"))
	})

	t.Run("falls back to the default for unknown fields", func(t *testing.T) {
		assert.Equal(t, "external_id", ValidateSortField("", ProductSortFields, "external_id"))
		assert.Equal(t, "external_id", ValidateSortField("password", ProductSortFields, "external_id"))
		assert.Equal(t, "external_id", ValidateSortField("name; DROP TABLE products", ProductSortFields, "external_id"))
	})
}
