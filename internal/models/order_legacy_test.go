package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLegacyItems(t *testing.T) {
	raw := map[string]interface{}{
		"12": []interface{}{
			map[string]interface{}{"规格id": float64(3), "购买数量": float64(2)},
			map[string]interface{}{"规格id": float64(4), "购买数量": float64(1)},
		},
		"7": []interface{}{
			map[string]interface{}{"规格id": float64(9), "购买数量": float64(5)},
		},
		"notes": "尽快发货",
	}

	items, notes, err := DecodeLegacyItems(raw)
	require.NoError(t, err)
	assert.Equal(t, "尽快发货", notes)
	assert.Equal(t, OrderItemList{
		{ProductID: 7, SpecID: 9, Quantity: 5},
		{ProductID: 12, SpecID: 3, Quantity: 2},
		{ProductID: 12, SpecID: 4, Quantity: 1},
	}, items)
}

func TestDecodeLegacyItemsBadProductKey(t *testing.T) {
	_, _, err := DecodeLegacyItems(map[string]interface{}{
		"abc": []interface{}{
			map[string]interface{}{"规格id": float64(1), "购买数量": float64(1)},
		},
	})
	assert.Error(t, err)
}

func TestDecodeLegacyItemsBadQuantity(t *testing.T) {
	_, _, err := DecodeLegacyItems(map[string]interface{}{
		"1": []interface{}{
			map[string]interface{}{"规格id": float64(1), "购买数量": "many"},
		},
	})
	assert.Error(t, err)
}

func TestDecodeLegacyItemsMissingQuantity(t *testing.T) {
	_, _, err := DecodeLegacyItems(map[string]interface{}{
		"1": []interface{}{
			map[string]interface{}{"规格id": float64(1)},
		},
	})
	assert.Error(t, err)

	_, _, err = DecodeLegacyItems(map[string]interface{}{
		"1": []interface{}{
			map[string]interface{}{"规格id": float64(1), "购买数量": nil},
		},
	})
	assert.Error(t, err)
}

func TestDecodeLegacyItemsSkipsNilSpecID(t *testing.T) {
	items, _, err := DecodeLegacyItems(map[string]interface{}{
		"1": []interface{}{
			map[string]interface{}{"规格id": nil, "购买数量": float64(2)},
			map[string]interface{}{"规格id": float64(5), "购买数量": float64(2)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, OrderItemList{{ProductID: 1, SpecID: 5, Quantity: 2}}, items)
}

func TestDecodeLegacyItemsLooseSkipsMalformed(t *testing.T) {
	items, notes := decodeLegacyItemsLoose(map[string]interface{}{
		"bad":   []interface{}{map[string]interface{}{"规格id": float64(1), "购买数量": float64(1)}},
		"2":     "not a list",
		"3":     []interface{}{map[string]interface{}{"规格id": "x", "购买数量": float64(1)}},
		"4":     []interface{}{map[string]interface{}{"规格id": float64(8), "购买数量": float64(3)}},
		"5":     []interface{}{map[string]interface{}{"规格id": float64(2)}},
		"notes": "备注",
	})
	assert.Equal(t, "备注", notes)
	assert.Equal(t, OrderItemList{{ProductID: 4, SpecID: 8, Quantity: 3}}, items)
}

func TestEncodeLegacyItemsRoundTrip(t *testing.T) {
	items := OrderItemList{
		{ProductID: 7, SpecID: 9, Quantity: 5},
		{ProductID: 12, SpecID: 3, Quantity: 2},
	}
	encoded := EncodeLegacyItems(items, "加急")

	require.Contains(t, encoded, "notes")
	decoded, notes, err := DecodeLegacyItems(encoded)
	require.NoError(t, err)
	assert.Equal(t, "加急", notes)
	assert.Equal(t, items, decoded)
}

func TestEncodeLegacyItemsOmitsEmptyNotes(t *testing.T) {
	encoded := EncodeLegacyItems(OrderItemList{{ProductID: 1, SpecID: 2, Quantity: 3}}, "")
	assert.NotContains(t, encoded, "notes")
}
