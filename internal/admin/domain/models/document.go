package models

import "time"

// Ordering clients have shipped several shapes of the order document over
// time. Instead of branching per call site, each loosely-typed field gets one
// ordered accessor chain: the first accessor that yields a value wins. A
// document that matches none of them is coerced to safe defaults rather than
// rejected, so one bad record cannot blank a whole report.

const (
	UnknownCustomer = "Unknown Customer"
	UnknownProduct  = "Unknown Product"
)

var amountAccessors = []func(doc map[string]any) (float64, bool){
	func(doc map[string]any) (float64, bool) { return asNumber(doc["totalAmount"]) },
	func(doc map[string]any) (float64, bool) { return asNumber(doc["total"]) },
	func(doc map[string]any) (float64, bool) { return asNumber(doc["amount"]) },
	func(doc map[string]any) (float64, bool) { return asNumber(doc["grandTotal"]) },
	func(doc map[string]any) (float64, bool) { return asNumber(doc["finalAmount"]) },
	func(doc map[string]any) (float64, bool) { return sumItemSubtotals(doc) },
}

var customerAccessors = []func(doc map[string]any) (string, bool){
	func(doc map[string]any) (string, bool) { return asString(nested(doc, "customer", "name")) },
	func(doc map[string]any) (string, bool) { return asString(doc["customerName"]) },
	customerFullName,
	func(doc map[string]any) (string, bool) { return asString(nested(doc, "user", "name")) },
	func(doc map[string]any) (string, bool) { return asString(doc["orderBy"]) },
}

// OrderFromDocument maps a raw order document onto the Order model, applying
// the accessor chains above.
func OrderFromDocument(id string, status string, createdAt time.Time, doc map[string]any) Order {
	order := Order{
		ID:           id,
		Status:       status,
		CreatedAt:    createdAt,
		CustomerName: UnknownCustomer,
		Items:        itemsFromDocument(doc),
	}

	for _, accessor := range customerAccessors {
		if name, ok := accessor(doc); ok {
			order.CustomerName = name
			break
		}
	}

	for _, accessor := range amountAccessors {
		if amount, ok := accessor(doc); ok {
			order.TotalAmount = amount
			break
		}
	}

	return order
}

func itemsFromDocument(doc map[string]any) []OrderItem {
	rawItems, ok := doc["items"].([]any)
	if !ok {
		return nil
	}

	items := make([]OrderItem, 0, len(rawItems))
	for _, raw := range rawItems {
		itemDoc, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		item := OrderItem{Name: UnknownProduct, Quantity: 1}

		if id, ok := asString(itemDoc["menuItemId"]); ok {
			item.MenuItemID = id
		}
		if name, ok := asString(itemDoc["name"]); ok {
			item.Name = name
		} else if name, ok := asString(nested(itemDoc, "menuItem", "name")); ok {
			item.Name = name
		}
		if price, ok := asNumber(itemDoc["price"]); ok {
			item.Price = price
		} else if price, ok := asNumber(nested(itemDoc, "menuItem", "price")); ok {
			item.Price = price
		}
		if quantity, ok := asNumber(itemDoc["quantity"]); ok && quantity > 0 {
			item.Quantity = int(quantity)
		}
		if subtotal, ok := asNumber(itemDoc["subtotal"]); ok {
			item.Subtotal = subtotal
		} else {
			item.Subtotal = item.Price * float64(item.Quantity)
		}

		items = append(items, item)
	}
	return items
}

func sumItemSubtotals(doc map[string]any) (float64, bool) {
	items := itemsFromDocument(doc)
	if len(items) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum, true
}

func customerFullName(doc map[string]any) (string, bool) {
	first, ok := asString(nested(doc, "customer", "firstName"))
	if !ok {
		return "", false
	}
	if last, ok := asString(nested(doc, "customer", "lastName")); ok {
		return first + " " + last, true
	}
	return first, true
}

func nested(doc map[string]any, outer, inner string) any {
	obj, ok := doc[outer].(map[string]any)
	if !ok {
		return nil
	}
	return obj[inner]
}

// asNumber accepts the numeric shapes a JSON decode can produce. Anything
// else is treated as absent.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
