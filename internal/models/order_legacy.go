package models

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cast"
)

// Legacy wire format for order items, kept for the deployed mini-program:
// a map keyed by product-id strings, each value a list of objects carrying
// the spec id and quantity under the keys below, plus a reserved "notes"
// key holding free text.
const (
	legacyKeyNotes    = "notes"
	legacyKeySpecID   = "规格id"
	legacyKeyQuantity = "购买数量"
)

// DecodeLegacyItems converts the legacy items map into tagged line items
// and the extracted notes text. Unlike the statistics path, order creation
// must not silently drop what the buyer asked for, so malformed ids or
// quantities are an error here.
func DecodeLegacyItems(raw map[string]interface{}) (OrderItemList, string, error) {
	var items OrderItemList
	var notes string
	for key, value := range raw {
		if key == legacyKeyNotes {
			notes = cast.ToString(value)
			continue
		}
		productID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("invalid product id key %q", key)
		}
		list, ok := value.([]interface{})
		if !ok {
			continue
		}
		for _, element := range list {
			entry, ok := element.(map[string]interface{})
			if !ok {
				continue
			}
			specRaw, ok := entry[legacyKeySpecID]
			if !ok || specRaw == nil {
				continue
			}
			specID, err := cast.ToInt64E(specRaw)
			if err != nil {
				return nil, "", fmt.Errorf("invalid spec id %v for product %d", specRaw, productID)
			}
			quantityRaw, ok := entry[legacyKeyQuantity]
			if !ok || quantityRaw == nil {
				return nil, "", fmt.Errorf("missing quantity for product %d", productID)
			}
			quantity, err := cast.ToIntE(quantityRaw)
			if err != nil {
				return nil, "", fmt.Errorf("invalid quantity %v for product %d", quantityRaw, productID)
			}
			items = append(items, OrderItem{ProductID: productID, SpecID: specID, Quantity: quantity})
		}
	}
	sortItems(items)
	return items, notes, nil
}

// decodeLegacyItemsLoose is the read-side twin of DecodeLegacyItems: any
// entry that fails to parse is skipped so that bad historical rows never
// break a query.
func decodeLegacyItemsLoose(raw map[string]interface{}) (OrderItemList, string) {
	var items OrderItemList
	var notes string
	for key, value := range raw {
		if key == legacyKeyNotes {
			notes = cast.ToString(value)
			continue
		}
		productID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		list, ok := value.([]interface{})
		if !ok {
			continue
		}
		for _, element := range list {
			entry, ok := element.(map[string]interface{})
			if !ok {
				continue
			}
			specRaw, ok := entry[legacyKeySpecID]
			if !ok || specRaw == nil {
				continue
			}
			specID, err := cast.ToInt64E(specRaw)
			if err != nil {
				continue
			}
			quantityRaw, ok := entry[legacyKeyQuantity]
			if !ok || quantityRaw == nil {
				continue
			}
			quantity, err := cast.ToIntE(quantityRaw)
			if err != nil {
				continue
			}
			items = append(items, OrderItem{ProductID: productID, SpecID: specID, Quantity: quantity})
		}
	}
	sortItems(items)
	return items, notes
}

// EncodeLegacyItems renders tagged line items (plus notes) back into the
// legacy nested map emitted to API clients.
func EncodeLegacyItems(items OrderItemList, notes string) map[string]interface{} {
	result := make(map[string]interface{}, len(items)+1)
	for _, item := range items {
		key := strconv.FormatInt(item.ProductID, 10)
		list, _ := result[key].([]interface{})
		result[key] = append(list, map[string]interface{}{
			legacyKeySpecID:   item.SpecID,
			legacyKeyQuantity: item.Quantity,
		})
	}
	if notes != "" {
		result[legacyKeyNotes] = notes
	}
	return result
}

// sortItems keeps item order independent of map iteration order.
func sortItems(items OrderItemList) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].ProductID != items[j].ProductID {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].SpecID < items[j].SpecID
	})
}
