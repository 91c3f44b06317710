package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter(t *testing.T) {
	f := NewFormatter("en-US", "R$", 3)

	assert.Equal(t, "1,234", f.Int(1234))
	assert.Equal(t, "R$ 1,234,567.89", f.Currency(1234567.891))
	assert.Equal(t, "4.900", f.Decimal(4.9))
	assert.Equal(t, "12", f.Fixed(12.4, 0))
}

func TestFormatterUnknownLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not a locale!", "US$", 2)
	assert.Equal(t, "US$ 10.50", f.Currency(10.5))
}
