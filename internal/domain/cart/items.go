// internal/domain/cart/items.go
package cart

import "github.com/shopspring/decimal"

// addItem appends the item to the list, merging quantities when a line for
// the same product already exists. The merged line keeps the incoming unit
// price in case it changed since the product was first added.
func addItem(items ItemList, item Item) ItemList {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			items[i].UnitPrice = item.UnitPrice
			return items
		}
	}
	return append(items, item)
}

// removeItem filters out the line for the given product. Removing a product
// that is not in the list leaves it unchanged; absence is not an error.
func removeItem(items ItemList, productID string) ItemList {
	filtered := make(ItemList, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// setQuantity replaces the quantity on the line for the given product.
// Returns false when no such line exists.
func setQuantity(items ItemList, productID string, quantity int) bool {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Total sums quantity × unit price over the list. The arithmetic runs
// on decimals so sums of prices like 10.10 stay exact.
func (items ItemList) Total() float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}
