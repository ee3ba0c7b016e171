package domain_test

import (
	"testing"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMoneyFormat(t *testing.T) {
	t.Run("Centavos", func(t *testing.T) {
		assert.Equal(t, "R$ 59,90", domain.Money(5990).Format())
	})

	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, "R$ 0,00", domain.Money(0).Format())
	})

	t.Run("WholeAmount", func(t *testing.T) {
		assert.Equal(t, "R$ 199,00", domain.Money(19900).Format())
	})
}

func TestMoneyMul(t *testing.T) {
	assert.Equal(t, domain.Money(11980), domain.Money(5990).Mul(2))
	assert.Equal(t, domain.Money(0), domain.Money(5990).Mul(0))
}
