package system

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/clinicquest/internal/application/scene"
	"github.com/younwookim/clinicquest/internal/domain/entity"
	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

func testMessages() config.MessagesConfig {
	return config.MessagesConfig{
		Pickup:        "Picked up %s",
		InventoryFull: "Inventory full! Could not pick up %s",
		Drop:          "Dropped %s",
	}
}

func newItem(id string, x, y float64) *entity.Entity {
	return &entity.Entity{
		Rect: entity.Rect{X: x, Y: y, Width: 16, Height: 16},
		ID:   id,
		Kind: entity.KindItem,
		Item: &entity.ItemData{Name: id},
	}
}

func TestInteractionSystem_NothingWithoutSpace(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 200, Height: 200}
	world.Add(newItem("pill", 0, 0))
	player := entity.NewPlayer(0, 0, 32, 32, 2)

	res := sys.Resolve(world, player, entity.NewInventory(3), NewSnapshot())

	assert.Equal(t, InteractionNone, res.Kind)
	assert.Len(t, world.Entities, 1)
}

func TestInteractionSystem_NothingWhenNotTouching(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 200, Height: 200}
	world.Add(newItem("pill", 32, 0))
	player := entity.NewPlayer(0, 0, 32, 32, 2)
	input := held(ActionInteract)

	res := sys.Resolve(world, player, entity.NewInventory(3), input)

	assert.Equal(t, InteractionNone, res.Kind)
	assert.True(t, input.IsHeld(ActionInteract), "space is not consumed by a miss")
}

func TestInteractionSystem_Pickup(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 200, Height: 200}
	pill := newItem("pill", 10, 10)
	world.Add(pill)
	player := entity.NewPlayer(0, 0, 32, 32, 2)
	inv := entity.NewInventory(3)
	input := held(ActionInteract)

	res := sys.Resolve(world, player, inv, input)

	assert.Equal(t, InteractionPickup, res.Kind)
	assert.Equal(t, "Picked up pill", res.Message)
	assert.Equal(t, MessageNotice, res.MessageKind)
	assert.Same(t, pill, res.Subject)
	assert.True(t, pill.PickedUp)
	assert.Nil(t, world.Find("pill"))
	assert.Equal(t, []*entity.Entity{pill}, inv.Items())
	assert.False(t, input.IsHeld(ActionInteract), "space consumed")
}

func TestInteractionSystem_InventoryFullLeavesItemInWorld(t *testing.T) {
	const capacity = 3
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 500, Height: 500}
	inv := entity.NewInventory(capacity)
	player := entity.NewPlayer(0, 0, 32, 32, 2)

	var last InteractionResult
	var items []*entity.Entity
	for i := 0; i < capacity+1; i++ {
		item := newItem(fmt.Sprintf("item%d", i), float64(i*100), 0)
		items = append(items, item)
		world.Add(item)
	}
	for i := range items {
		player.SetPosition(entity.Point{X: float64(i * 100), Y: 0})
		last = sys.Resolve(world, player, inv, held(ActionInteract))
	}

	extra := items[capacity]
	assert.Equal(t, InteractionInventoryFull, last.Kind)
	assert.Equal(t, "Inventory full! Could not pick up item3", last.Message)
	assert.False(t, extra.PickedUp)
	assert.Same(t, extra, world.Find("item3"))
	assert.Equal(t, capacity, inv.Len())
}

func TestInteractionSystem_TalkToNPC(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 200, Height: 200}
	world.Add(&entity.Entity{
		Rect: entity.Rect{X: 20, Y: 20, Width: 32, Height: 32},
		ID:   "nurse",
		Kind: entity.KindNPC,
		NPC:  &entity.NPCData{InteractionText: "Hello!"},
	})
	player := entity.NewPlayer(0, 0, 32, 32, 2)

	res := sys.Resolve(world, player, entity.NewInventory(1), held(ActionInteract))

	assert.Equal(t, InteractionTalk, res.Kind)
	assert.Equal(t, "Hello!", res.Message)
	assert.Equal(t, MessageDialogue, res.MessageKind)
	assert.False(t, res.HasScene)
}

func TestInteractionSystem_MRITrigger(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 960, Height: 540}
	world.Add(&entity.Entity{
		Rect:    entity.Rect{X: 130, Y: 130, Width: 64, Height: 64},
		ID:      "mri",
		Kind:    entity.KindTrigger,
		Trigger: &entity.TriggerData{MiniGame: "medscan"},
	})
	player := entity.NewPlayer(100, 100, 32, 32, 2)
	player.SetPosition(entity.Point{X: 135, Y: 135})

	res := sys.Resolve(world, player, entity.NewInventory(1), held(ActionInteract))

	assert.Equal(t, InteractionTrigger, res.Kind)
	require.True(t, res.HasScene)
	assert.Equal(t, scene.MiniGame, res.NewScene)
	assert.Equal(t, "medscan", res.Subject.Trigger.MiniGame)
}

func TestInteractionSystem_Prompt(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 960, Height: 540}
	world.Add(&entity.Entity{
		Rect:    entity.Rect{X: 130, Y: 130, Width: 64, Height: 64},
		ID:      "mri",
		Kind:    entity.KindTrigger,
		Trigger: &entity.TriggerData{MiniGame: "medscan", Prompt: "Hold Space to scan"},
	})
	world.Add(newItem("pill", 300, 300))

	tests := []struct {
		name   string
		x, y   float64
		want   string
		wantOK bool
	}{
		{"on the trigger", 135, 135, "Hold Space to scan", true},
		{"on an item", 300, 300, "", false},
		{"on nothing", 600, 400, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := entity.NewPlayer(tt.x, tt.y, 32, 32, 2)

			got, ok := sys.Prompt(world, player)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("trigger without prompt", func(t *testing.T) {
		world.Entities[0].Trigger.Prompt = ""
		_, ok := sys.Prompt(world, entity.NewPlayer(135, 135, 32, 32, 2))
		assert.False(t, ok)
	})
}

func TestInteractionSystem_PropsAreNotInteractable(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 200, Height: 200}
	world.Add(&entity.Entity{Rect: entity.Rect{Width: 50, Height: 50}, ID: "desk", Kind: entity.KindProp})
	world.Add(newItem("pill", 5, 5))
	player := entity.NewPlayer(0, 0, 32, 32, 2)

	res := sys.Resolve(world, player, entity.NewInventory(1), held(ActionInteract))

	assert.Equal(t, InteractionPickup, res.Kind, "prop skipped, item behind it picked")
}

func TestInteractionSystem_Drop(t *testing.T) {
	sys := NewInteractionSystem(testMessages())
	world := &entity.World{Width: 200, Height: 200}
	inv := entity.NewInventory(2)
	pill := newItem("pill", 0, 0)
	pill.PickedUp = true
	require.NoError(t, inv.Add(pill))

	res, err := sys.Drop(world, inv, 0, entity.Point{X: 50, Y: 60})

	require.NoError(t, err)
	assert.Equal(t, InteractionDrop, res.Kind)
	assert.Equal(t, "Dropped pill", res.Message)
	assert.False(t, pill.PickedUp)
	assert.Equal(t, entity.Point{X: 50, Y: 60}, pill.Position())
	assert.Same(t, pill, world.Find("pill"))
	assert.Zero(t, inv.Len())

	_, err = sys.Drop(world, inv, 0, entity.Point{})
	assert.ErrorIs(t, err, entity.ErrEmptySlot)
}

func TestInteractionKind_String(t *testing.T) {
	assert.Equal(t, "pickup", InteractionPickup.String())
	assert.Equal(t, "inventory_full", InteractionInventoryFull.String())
	assert.Equal(t, "unknown", InteractionKind(99).String())
}
