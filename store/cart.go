package store

// CartLineItem is one product entry in the cart. Quantity is always at
// least 1; removal deletes the entry instead of letting it reach zero.
type CartLineItem struct {
	ProductID string   `json:"_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Images    []string `json:"images"`
	Quantity  int      `json:"quantity"`
}

// CartState is the cart keyed by product id. Reducers never mutate the
// state they receive; every transition returns a fresh map.
type CartState map[string]CartLineItem

func (s CartState) clone() CartState {
	next := make(CartState, len(s))
	for id, item := range s {
		next[id] = item
	}
	return next
}

// AddItem inserts a product with quantity 1. Adding a product that is
// already in the cart is a no-op and returns the state unchanged.
func AddItem(s CartState, item CartLineItem) CartState {
	if _, ok := s[item.ProductID]; ok {
		return s
	}
	next := s.clone()
	item.Quantity = 1
	next[item.ProductID] = item
	return next
}

// IncreaseQuantity adds one to the matching line item. Absent ids are
// a no-op.
func IncreaseQuantity(s CartState, productID string) CartState {
	item, ok := s[productID]
	if !ok {
		return s
	}
	next := s.clone()
	item.Quantity++
	next[productID] = item
	return next
}

// DecreaseQuantity subtracts one from the matching line item, floored
// at 1. Absent ids are a no-op.
func DecreaseQuantity(s CartState, productID string) CartState {
	item, ok := s[productID]
	if !ok || item.Quantity <= 1 {
		return s
	}
	next := s.clone()
	item.Quantity--
	next[productID] = item
	return next
}

// RemoveItem deletes the entry entirely. Absent ids are a no-op.
func RemoveItem(s CartState, productID string) CartState {
	if _, ok := s[productID]; !ok {
		return s
	}
	next := s.clone()
	delete(next, productID)
	return next
}

// ResetCart clears all entries. Used after checkout.
func ResetCart(CartState) CartState {
	return CartState{}
}

// Subtotal sums price times quantity over all line items.
func Subtotal(s CartState) float64 {
	var total float64
	for _, item := range s {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities over all line items.
func ItemCount(s CartState) int {
	var count int
	for _, item := range s {
		count += item.Quantity
	}
	return count
}
