package dungeon

import (
	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/rng"
	"gravenhold-server/pkg/utils"
)

// MonsterTemplate определяет шаблон для создания монстра
type MonsterTemplate struct {
	Name    string
	Symbol  string
	Color   string
	MaxHP   int
	Defense int
	Power   int
	XP      int
}

// Spawn создает монстра из шаблона на заданной позиции
func (t MonsterTemplate) Spawn(pos domain.Position, dice *rng.Dice) *domain.Entity {
	return &domain.Entity{
		ID:     utils.GenerateDeterministicID(dice.Raw(), "m_"),
		Type:   domain.EntityTypeEnemy,
		Name:   t.Name,
		Pos:    pos,
		Blocks: true,
		Render: &domain.RenderComponent{
			Symbol: t.Symbol,
			Color:  t.Color,
		},
		Fighter: &domain.FighterComponent{
			BaseMaxHP:   t.MaxHP,
			HP:          t.MaxHP,
			BaseDefense: t.Defense,
			BasePower:   t.Power,
			XP:          t.XP,
			Death:       domain.DeathMonster,
		},
		AI: domain.NewBasicAI(),
	}
}

// --- МОНСТРЫ ---

var Orc = MonsterTemplate{
	Name:    "Орк",
	Symbol:  "o",
	Color:   domain.ColorDesatGreen,
	MaxHP:   20,
	Defense: 0,
	Power:   4,
	XP:      35,
}

var Troll = MonsterTemplate{
	Name:    "Тролль",
	Symbol:  "T",
	Color:   domain.ColorDarkGreen,
	MaxHP:   30,
	Defense: 2,
	Power:   8,
	XP:      100,
}

// ItemTemplate определяет шаблон для создания предмета
type ItemTemplate struct {
	Name   string
	Symbol string
	Color  string
	Kind   domain.ItemKind

	// Equipment - для экипируемых предметов; nil у расходников
	Equipment *domain.EquipmentComponent
}

// Spawn создает предмет из шаблона на заданной позиции
func (t ItemTemplate) Spawn(pos domain.Position, dice *rng.Dice) *domain.Entity {
	item := &domain.Entity{
		ID:   utils.GenerateDeterministicID(dice.Raw(), "i_"),
		Type: domain.EntityTypeItem,
		Name: t.Name,
		Pos:  pos,
		Render: &domain.RenderComponent{
			Symbol: t.Symbol,
			Color:  t.Color,
		},
		Item: &domain.ItemComponent{Kind: t.Kind},
	}
	if t.Equipment != nil {
		eq := *t.Equipment
		item.Equipment = &eq
	}
	return item
}

// --- РАСХОДНИКИ ---

var HealPotion = ItemTemplate{
	Name:   "Лечебное зелье",
	Symbol: "!",
	Color:  domain.ColorViolet,
	Kind:   domain.ItemHeal,
}

var LightningScroll = ItemTemplate{
	Name:   "Свиток молнии",
	Symbol: "#",
	Color:  domain.ColorLightYellow,
	Kind:   domain.ItemLightning,
}

var FireballScroll = ItemTemplate{
	Name:   "Свиток огненного шара",
	Symbol: "#",
	Color:  domain.ColorLightYellow,
	Kind:   domain.ItemFireball,
}

var ConfuseScroll = ItemTemplate{
	Name:   "Свиток смятения",
	Symbol: "#",
	Color:  domain.ColorLightYellow,
	Kind:   domain.ItemConfuse,
}

// --- ЭКИПИРОВКА ---

var Sword = ItemTemplate{
	Name:   "Меч",
	Symbol: "/",
	Color:  domain.ColorSky,
	Kind:   domain.ItemSword,
	Equipment: &domain.EquipmentComponent{
		Slot:       domain.SlotRightHand,
		PowerBonus: 3,
	},
}

var Shield = ItemTemplate{
	Name:   "Щит",
	Symbol: "[",
	Color:  domain.ColorDarkOrange,
	Kind:   domain.ItemShield,
	Equipment: &domain.EquipmentComponent{
		Slot:         domain.SlotLeftHand,
		DefenseBonus: 1,
	},
}

var Dagger = ItemTemplate{
	Name:   "Кинжал",
	Symbol: "-",
	Color:  domain.ColorSky,
	Kind:   domain.ItemDagger,
	Equipment: &domain.EquipmentComponent{
		Slot:       domain.SlotRightHand,
		PowerBonus: 2,
	},
}

// NewPlayer создает игрока со стартовой экипировкой: кинжал уже в руке.
func NewPlayer(id string) *domain.Entity {
	player := &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypePlayer,
		Name:   "Герой",
		Blocks: true,
		Alive:  true,
		Level:  1,
		Render: &domain.RenderComponent{
			Symbol: "@",
			Color:  domain.ColorWhite,
		},
		Fighter: &domain.FighterComponent{
			BaseMaxHP:   100,
			HP:          100,
			BaseDefense: 1,
			BasePower:   2,
			Death:       domain.DeathPlayer,
		},
		Inventory: domain.NewInventory(domain.InventoryCapacity),
	}

	dagger := &domain.Entity{
		ID:     id + "_dagger",
		Type:   domain.EntityTypeItem,
		Name:   Dagger.Name,
		Blocks: false,
		Render: &domain.RenderComponent{
			Symbol: Dagger.Symbol,
			Color:  Dagger.Color,
		},
		Item: &domain.ItemComponent{Kind: domain.ItemDagger},
		Equipment: &domain.EquipmentComponent{
			Slot:       domain.SlotRightHand,
			IsEquipped: true,
			PowerBonus: 2,
		},
	}
	player.Inventory.Items = append(player.Inventory.Items, dagger)

	return player
}

// NewStairs создает лестницу вниз в указанной точке.
// Лестница видна на разведанных клетках даже вне поля зрения.
func NewStairs(pos domain.Position, level int, dice *rng.Dice) *domain.Entity {
	return &domain.Entity{
		ID:            utils.GenerateDeterministicID(dice.Raw(), "s_"),
		Type:          domain.EntityTypeStairs,
		Name:          "Лестница вниз",
		Pos:           pos,
		AlwaysVisible: true,
		Render: &domain.RenderComponent{
			Symbol: "<",
			Color:  domain.ColorWhite,
		},
	}
}
