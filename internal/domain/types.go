package domain

// Типы сущностей в мире
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeEnemy  = "ENEMY"
	EntityTypeItem   = "ITEM"
	EntityTypeStairs = "STAIRS"
	EntityTypeCorpse = "CORPSE"
)

// ItemKind определяет эффект предмета при использовании.
type ItemKind string

const (
	ItemHeal      ItemKind = "HEAL"
	ItemLightning ItemKind = "LIGHTNING"
	ItemFireball  ItemKind = "FIREBALL"
	ItemConfuse   ItemKind = "CONFUSE"
	ItemSword     ItemKind = "SWORD"
	ItemShield    ItemKind = "SHIELD"
	ItemDagger    ItemKind = "DAGGER"
)

// SlotType - слот экипировки. Каждый слот вмещает ровно один предмет.
type SlotType string

const (
	SlotRightHand SlotType = "RIGHT_HAND"
	SlotLeftHand  SlotType = "LEFT_HAND"
)

// SlotName возвращает название слота для сообщений игроку.
func SlotName(s SlotType) string {
	switch s {
	case SlotRightHand:
		return "правой руке"
	case SlotLeftHand:
		return "левой руке"
	default:
		return string(s)
	}
}

// AIMode - текущий режим поведения монстра.
type AIMode string

const (
	AIBasic    AIMode = "BASIC"
	AIConfused AIMode = "CONFUSED"
)

// DeathKind определяет, что происходит с сущностью при смерти.
type DeathKind string

const (
	DeathPlayer  DeathKind = "PLAYER"
	DeathMonster DeathKind = "MONSTER"
)
