package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInventoryFull is returned by Add when every slot is taken
	ErrInventoryFull = errors.New("inventory full")
	// ErrSlotOutOfRange is returned for slot indices outside the capacity
	ErrSlotOutOfRange = errors.New("inventory slot out of range")
	// ErrEmptySlot is returned when a slot holds no item
	ErrEmptySlot = errors.New("inventory slot empty")
)

// Inventory is an ordered, bounded list of picked-up items
type Inventory struct {
	items    []*Entity
	capacity int
	selected int
}

// NewInventory creates an empty inventory with the given number of slots
func NewInventory(capacity int) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	return &Inventory{
		items:    make([]*Entity, 0, capacity),
		capacity: capacity,
	}
}

// Add appends an item, failing with ErrInventoryFull when no slot is free
func (inv *Inventory) Add(item *Entity) error {
	if len(inv.items) >= inv.capacity {
		return fmt.Errorf("add %s: %w", item.ID, ErrInventoryFull)
	}
	inv.items = append(inv.items, item)
	return nil
}

// Remove takes the item out of the given slot, shifting later items down
func (inv *Inventory) Remove(slot int) (*Entity, error) {
	if slot < 0 || slot >= inv.capacity {
		return nil, fmt.Errorf("remove slot %d: %w", slot, ErrSlotOutOfRange)
	}
	if slot >= len(inv.items) {
		return nil, fmt.Errorf("remove slot %d: %w", slot, ErrEmptySlot)
	}

	item := inv.items[slot]
	inv.items = append(inv.items[:slot], inv.items[slot+1:]...)
	if inv.selected >= len(inv.items) && inv.selected > 0 {
		inv.selected = len(inv.items) - 1
	}
	return item, nil
}

// Select moves the cursor to a slot; empty slots inside capacity are allowed
func (inv *Inventory) Select(slot int) error {
	if slot < 0 || slot >= inv.capacity {
		return fmt.Errorf("select slot %d: %w", slot, ErrSlotOutOfRange)
	}
	inv.selected = slot
	return nil
}

// Selected returns the cursor slot
func (inv *Inventory) Selected() int {
	return inv.selected
}

// Items returns the carried items in slot order
func (inv *Inventory) Items() []*Entity {
	return inv.items
}

// Len returns the number of carried items
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Cap returns the number of slots
func (inv *Inventory) Cap() int {
	return inv.capacity
}

// Full reports whether Add would fail
func (inv *Inventory) Full() bool {
	return len(inv.items) >= inv.capacity
}

// Clear empties the inventory and resets the cursor
func (inv *Inventory) Clear() {
	inv.items = inv.items[:0]
	inv.selected = 0
}
