package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(id string) *Entity {
	return &Entity{ID: id, Kind: KindItem, Item: &ItemData{Name: id}}
}

func TestInventory_AddUntilFull(t *testing.T) {
	inv := NewInventory(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, inv.Add(newItem(fmt.Sprintf("item%d", i))))
	}
	assert.True(t, inv.Full())

	err := inv.Add(newItem("extra"))
	assert.ErrorIs(t, err, ErrInventoryFull)
	assert.Equal(t, 3, inv.Len(), "failed add must not change contents")
	assert.Equal(t, "item2", inv.Items()[2].ID)
}

func TestInventory_ZeroCapacity(t *testing.T) {
	inv := NewInventory(-1)
	assert.Equal(t, 0, inv.Cap())
	assert.ErrorIs(t, inv.Add(newItem("a")), ErrInventoryFull)
}

func TestInventory_Remove(t *testing.T) {
	inv := NewInventory(4)
	require.NoError(t, inv.Add(newItem("a")))
	require.NoError(t, inv.Add(newItem("b")))
	require.NoError(t, inv.Add(newItem("c")))

	t.Run("shifts later items down", func(t *testing.T) {
		item, err := inv.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, "b", item.ID)
		assert.Equal(t, "c", inv.Items()[1].ID)
	})

	t.Run("empty slot", func(t *testing.T) {
		_, err := inv.Remove(3)
		assert.ErrorIs(t, err, ErrEmptySlot)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := inv.Remove(4)
		assert.ErrorIs(t, err, ErrSlotOutOfRange)
		_, err = inv.Remove(-1)
		assert.ErrorIs(t, err, ErrSlotOutOfRange)
	})
}

func TestInventory_Select(t *testing.T) {
	inv := NewInventory(5)
	require.NoError(t, inv.Add(newItem("a")))
	require.NoError(t, inv.Add(newItem("b")))

	require.NoError(t, inv.Select(4))
	assert.Equal(t, 4, inv.Selected())

	assert.ErrorIs(t, inv.Select(5), ErrSlotOutOfRange)
	assert.Equal(t, 4, inv.Selected(), "invalid select keeps the cursor")

	require.NoError(t, inv.Select(1))
	_, err := inv.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Selected(), "cursor follows the last item")

	inv.Clear()
	assert.Equal(t, 0, inv.Len())
}

func TestJournal_EvictsOldest(t *testing.T) {
	j := NewJournal(2)
	j.Add(JournalEntry{Tick: 1, Kind: JournalPickup, Text: "one"})
	j.Add(JournalEntry{Tick: 2, Kind: JournalTalk, Text: "two"})
	j.Add(JournalEntry{Tick: 3, Kind: JournalScan, Text: "three"})

	require.Equal(t, 2, j.Len())
	assert.Equal(t, "two", j.Entries()[0].Text)
	assert.Equal(t, "three", j.Entries()[1].Text)

	unbounded := NewJournal(0)
	for i := 0; i < 100; i++ {
		unbounded.Add(JournalEntry{Tick: uint64(i)})
	}
	assert.Equal(t, 100, unbounded.Len())

	j.Clear()
	assert.Equal(t, 0, j.Len())
	assert.Equal(t, "scan", JournalScan.String())
}
