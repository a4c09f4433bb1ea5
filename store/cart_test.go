package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineItem(id string, price float64) CartLineItem {
	return CartLineItem{
		ProductID: id,
		Name:      "Product " + id,
		Price:     price,
		Images:    []string{"assets/" + id + ".png"},
	}
}

func TestAddItem(t *testing.T) {
	empty := CartState{}

	s := AddItem(empty, lineItem("p1", 10))
	assert.Len(t, s, 1)
	assert.Equal(t, 1, s["p1"].Quantity)
	assert.Empty(t, empty, "input state must not be mutated")

	// adding an existing product is a no-op, even with two in the cart
	s = IncreaseQuantity(s, "p1")
	again := AddItem(s, lineItem("p1", 10))
	assert.Equal(t, 2, again["p1"].Quantity)
	assert.Equal(t, s, again)
}

func TestQuantityNeverBelowOne(t *testing.T) {
	s := AddItem(CartState{}, lineItem("p1", 10))

	ops := []func(CartState, string) CartState{
		DecreaseQuantity, DecreaseQuantity, DecreaseQuantity,
		IncreaseQuantity, DecreaseQuantity, DecreaseQuantity,
	}
	for _, op := range ops {
		s = op(s, "p1")
		assert.GreaterOrEqual(t, s["p1"].Quantity, 1)
	}
	assert.Equal(t, 1, s["p1"].Quantity)
}

func TestIncreaseDecreaseAbsentID(t *testing.T) {
	s := AddItem(CartState{}, lineItem("p1", 10))

	assert.Equal(t, s, IncreaseQuantity(s, "ghost"))
	assert.Equal(t, s, DecreaseQuantity(s, "ghost"))
	assert.Equal(t, s, RemoveItem(s, "ghost"))
}

func TestAddThenRemoveRoundTrips(t *testing.T) {
	prior := AddItem(CartState{}, lineItem("p1", 10))
	prior = IncreaseQuantity(prior, "p1")

	s := AddItem(prior, lineItem("p2", 5))
	s = RemoveItem(s, "p2")
	assert.Equal(t, prior, s)
}

func TestResetCart(t *testing.T) {
	s := AddItem(CartState{}, lineItem("p1", 10))
	s = AddItem(s, lineItem("p2", 5))
	s = IncreaseQuantity(s, "p1")

	assert.Empty(t, ResetCart(s))
	assert.Empty(t, ResetCart(CartState{}))
}

func TestSubtotalWorkedExample(t *testing.T) {
	// cart = [{p1, price 10, qty 2}]
	s := AddItem(CartState{}, lineItem("p1", 10))
	s = IncreaseQuantity(s, "p1")
	assert.Equal(t, 2, s["p1"].Quantity)

	// adding p1 again leaves the cart unchanged
	s = AddItem(s, lineItem("p1", 10))
	assert.Equal(t, 2, s["p1"].Quantity)

	// one more increase brings the subtotal to 30
	s = IncreaseQuantity(s, "p1")
	assert.Equal(t, 3, s["p1"].Quantity)
	assert.Equal(t, 30.0, Subtotal(s))
	assert.Equal(t, 3, ItemCount(s))
}
