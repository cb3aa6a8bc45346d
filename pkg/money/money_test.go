package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloatRoundsToCents(t *testing.T) {
	assert.Equal(t, "10.00", Format(FromFloat(10)))
	assert.Equal(t, "10.56", Format(FromFloat(10.555)))
	assert.Equal(t, "0.00", Format(FromFloat(0.001)))
}

func TestParse(t *testing.T) {
	d, err := Parse("1000.005")
	require.NoError(t, err)
	assert.Equal(t, "1000.01", Format(d))

	_, err = Parse("not-money")
	assert.Error(t, err)
}
