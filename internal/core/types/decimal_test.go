package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityConversions(t *testing.T) {
	q := NewQuantityFromFloat64(2.5)
	assert.Equal(t, int64(25_000), q.Int64Scaled())
	assert.Equal(t, 2.5, q.Float64())
	assert.Equal(t, "2.5000", q.String())
	assert.Equal(t, "2.5", q.Decimal().String())

	assert.Equal(t, "-0.2500", NewQuantityFromFloat64(-0.25).String())
}

func TestQuantityJSON(t *testing.T) {
	data, err := json.Marshal(NewQuantityFromFloat64(1.25))
	require.NoError(t, err)
	assert.Equal(t, "1.2500", string(data))

	var q Quantity
	require.NoError(t, json.Unmarshal([]byte("3.5"), &q))
	assert.Equal(t, NewQuantityFromFloat64(3.5), q)

	require.NoError(t, json.Unmarshal([]byte(`"7"`), &q))
	assert.Equal(t, NewQuantityFromInt64(7), q)

	require.NoError(t, json.Unmarshal([]byte("null"), &q))
	assert.True(t, q.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &q))
}

func TestMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("400.50")
	require.NoError(t, err)
	assert.Equal(t, "400.50", m.StringFixed(2))

	_, err = NewMoneyFromString("not money")
	assert.Error(t, err)

	assert.True(t, Zero().IsZero())
}
