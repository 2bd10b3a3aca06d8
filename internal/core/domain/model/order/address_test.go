package order_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates_valid_address", func(t *testing.T) {
		// When
		address, err := order.NewAddress("01310100", "Avenida Paulista", "1000", "Bela Vista", "São Paulo", "SP", "apt 42")

		// Then
		require.NoError(t, err)
		require.NoError(t, address.Validate())
		assert.Equal(t, "01310100", address.CEP())
		assert.Equal(t, "Avenida Paulista", address.Street())
		assert.Equal(t, "1000", address.Number())
		assert.Equal(t, "Bela Vista", address.Neighborhood())
		assert.Equal(t, "São Paulo", address.City())
		assert.Equal(t, "SP", address.State())
		assert.Equal(t, "apt 42", address.Complement())
	})

	t.Run("complement_is_optional", func(t *testing.T) {
		address, err := order.NewAddress("01310100", "Avenida Paulista", "1000", "Bela Vista", "São Paulo", "SP", "")

		require.NoError(t, err)
		assert.Empty(t, address.Complement())
	})

	t.Run("fails_per_field", func(t *testing.T) {
		tests := map[string]struct {
			cep, street, number, neighborhood, city, state string
			wantInError                                    string
		}{
			"empty_cep":          {"", "Street", "1", "Hood", "City", "SP", "cep"},
			"short_cep":          {"1234", "Street", "1", "Hood", "City", "SP", "cep"},
			"cep_with_dash":      {"01310-100", "Street", "1", "Hood", "City", "SP", "cep"},
			"empty_street":       {"01310100", "", "1", "Hood", "City", "SP", "street"},
			"empty_number":       {"01310100", "Street", "", "Hood", "City", "SP", "number"},
			"empty_neighborhood": {"01310100", "Street", "1", "", "City", "SP", "neighborhood"},
			"empty_city":         {"01310100", "Street", "1", "Hood", "", "SP", "city"},
			"empty_state":        {"01310100", "Street", "1", "Hood", "City", "", "state"},
			"lowercase_state":    {"01310100", "Street", "1", "Hood", "City", "sp", "state"},
			"long_state":         {"01310100", "Street", "1", "Hood", "City", "SAO", "state"},
			"numeric_state":      {"01310100", "Street", "1", "Hood", "City", "12", "state"},
		}

		for name, tc := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := order.NewAddress(tc.cep, tc.street, tc.number, tc.neighborhood, tc.city, tc.state, "")
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantInError)
			})
		}
	})

	t.Run("joins_multiple_violations", func(t *testing.T) {
		_, err := order.NewAddress("", "", "", "", "", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "cep")
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var address order.Address
		require.ErrorIs(t, address.Validate(), order.ErrAddressIsNotConstructed)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	first, err := order.NewAddress("01310100", "Avenida Paulista", "1000", "Bela Vista", "São Paulo", "SP", "")
	require.NoError(t, err)
	same, err := order.NewAddress("01310100", "Avenida Paulista", "1000", "Bela Vista", "São Paulo", "SP", "")
	require.NoError(t, err)
	other, err := order.NewAddress("20040020", "Rua da Assembleia", "10", "Centro", "Rio de Janeiro", "RJ", "")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
}
