// Package inventory turns a decoded player-data snapshot into per-aspect
// traversal prices. Aspects stocked in quantity are cheap, scarce ones
// expensive, and aspects the player does not own at all price at a
// sentinel that dominates any affordable route.
package inventory

import (
	"errors"
	"fmt"

	"github.com/thaumic/aspectpath/pkg/aspect"
)

// PriceUnowned is the price of an aspect with zero stock. It matches the
// 16-bit range of the serialized amounts, so a single unowned hop always
// outweighs any path of owned aspects.
const PriceUnowned = 1<<16 - 1

// ErrMalformed is wrapped by every construction-time validation failure.
// A malformed snapshot is not recoverable; there is no partial inventory.
var ErrMalformed = errors.New("malformed aspect inventory")

// Inventory is an immutable snapshot of how much of each aspect the
// player holds. Construct via New or Decode; safe for concurrent reads.
type Inventory struct {
	amounts   map[aspect.Aspect]int
	maxAmount int
}

// New builds an inventory from per-aspect amounts. Amounts must be
// non-negative; aspects absent from the map are held zero times.
func New(amounts map[aspect.Aspect]int) (*Inventory, error) {
	inv := &Inventory{amounts: make(map[aspect.Aspect]int, len(amounts))}
	for a, n := range amounts {
		if !a.Valid() {
			return nil, fmt.Errorf("%w: unknown aspect %d", ErrMalformed, int(a))
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative amount %d for %s", ErrMalformed, n, a)
		}
		inv.amounts[a] = n
		if n > inv.maxAmount {
			inv.maxAmount = n
		}
	}
	return inv, nil
}

// AmountOf returns the stocked quantity of a, zero when absent.
func (inv *Inventory) AmountOf(a aspect.Aspect) int {
	return inv.amounts[a]
}

// MaxAmount returns the largest stocked quantity across all aspects.
func (inv *Inventory) MaxAmount() int {
	return inv.maxAmount
}

// PriceOf returns the traversal price of a: PriceUnowned when the player
// holds none, otherwise maxAmount+1-amount. Larger stock means a strictly
// lower price; equal stock means an equal price; every price is positive.
func (inv *Inventory) PriceOf(a aspect.Aspect) int {
	amount := inv.amounts[a]
	if amount == 0 {
		return PriceUnowned
	}
	return inv.maxAmount + 1 - amount
}
