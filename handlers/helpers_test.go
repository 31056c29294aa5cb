package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		size     string
		wantPage int
		wantSize int
	}{
		{"defaults", "", "", 0, 10},
		{"explicit", "3", "20", 3, 20},
		{"negative page", "-1", "20", 0, 20},
		{"zero size", "2", "0", 2, 10},
		{"size capped", "0", "500", 0, maxPageSize},
		{"garbage", "abc", "xyz", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := parsePagination(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1000), toCents(10))
	assert.Equal(t, int64(1999), toCents(19.99))
	// float noise must round, not truncate
	assert.Equal(t, int64(2998), toCents(29.98))
	assert.Equal(t, int64(1), toCents(0.01))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("a@x.com"))
	assert.False(t, isValidEmail("not-an-email"))
	assert.False(t, isValidEmail(""))
}
