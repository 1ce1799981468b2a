package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemsScanTagged(t *testing.T) {
	var items OrderItems
	err := items.Scan([]byte(`[{"productId":1,"specId":2,"quantity":3}]`))
	require.NoError(t, err)
	assert.Equal(t, OrderItemList{{ProductID: 1, SpecID: 2, Quantity: 3}}, items.List)
}

func TestOrderItemsScanLegacyMap(t *testing.T) {
	var items OrderItems
	err := items.Scan([]byte(`{"5":[{"规格id":11,"购买数量":2}],"notes":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, OrderItemList{{ProductID: 5, SpecID: 11, Quantity: 2}}, items.List)
	assert.Equal(t, "x", items.legacyNotes)
}

func TestOrderItemsScanGarbage(t *testing.T) {
	var items OrderItems
	err := items.Scan([]byte(`not json`))
	require.NoError(t, err)
	assert.Nil(t, items.List)
	assert.Empty(t, items.legacyNotes)
}

func TestOrderItemsValueNil(t *testing.T) {
	var items OrderItems
	value, err := items.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestOrderAfterFindBackfillsLegacyNotes(t *testing.T) {
	order := Order{Items: OrderItems{legacyNotes: "电话联系"}}
	require.NoError(t, order.AfterFind(nil))
	assert.Equal(t, "电话联系", order.Notes)

	// The notes column always wins over the legacy text.
	order = Order{Notes: "已有备注", Items: OrderItems{legacyNotes: "旧"}}
	require.NoError(t, order.AfterFind(nil))
	assert.Equal(t, "已有备注", order.Notes)
}
