package dungeon

// LevelStep - порог таблицы спавна: начиная с Level действует Value.
type LevelStep struct {
	Level int
	Value int
}

// FromDungeonLevel возвращает значение последнего порога, не превышающего
// уровень подземелья. Если ни один порог не достигнут - ноль.
func FromDungeonLevel(table []LevelStep, level int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if level >= table[i].Level {
			return table[i].Value
		}
	}
	return 0
}

// Максимум монстров на комнату по уровню подземелья
var maxMonstersTable = []LevelStep{
	{Level: 1, Value: 2},
	{Level: 4, Value: 3},
	{Level: 6, Value: 5},
}

// Максимум предметов на комнату по уровню подземелья
var maxItemsTable = []LevelStep{
	{Level: 1, Value: 1},
	{Level: 4, Value: 2},
}

// Вес тролля растет с глубиной; вес орка постоянный (80).
var trollWeightTable = []LevelStep{
	{Level: 3, Value: 15},
	{Level: 5, Value: 30},
	{Level: 7, Value: 60},
}

const orcWeight = 80

// Веса предметов. Зелье лечения доступно всегда,
// остальное открывается с глубиной.
var (
	lightningWeightTable = []LevelStep{{Level: 4, Value: 25}}
	fireballWeightTable  = []LevelStep{{Level: 6, Value: 25}}
	confuseWeightTable   = []LevelStep{{Level: 2, Value: 10}}
	swordWeightTable     = []LevelStep{{Level: 4, Value: 5}}
	shieldWeightTable    = []LevelStep{{Level: 8, Value: 15}}
)

const healWeight = 35

// MaxMonstersPerRoom - лимит монстров в одной комнате на данном уровне.
func MaxMonstersPerRoom(level int) int {
	return FromDungeonLevel(maxMonstersTable, level)
}

// MaxItemsPerRoom - лимит предметов в одной комнате на данном уровне.
func MaxItemsPerRoom(level int) int {
	return FromDungeonLevel(maxItemsTable, level)
}

// monsterChances возвращает шаблоны монстров и их веса для уровня.
func monsterChances(level int) ([]MonsterTemplate, []int) {
	templates := []MonsterTemplate{Orc, Troll}
	weights := []int{
		orcWeight,
		FromDungeonLevel(trollWeightTable, level),
	}
	return templates, weights
}

// itemChances возвращает шаблоны предметов и их веса для уровня.
func itemChances(level int) ([]ItemTemplate, []int) {
	templates := []ItemTemplate{
		HealPotion,
		LightningScroll,
		FireballScroll,
		ConfuseScroll,
		Sword,
		Shield,
	}
	weights := []int{
		healWeight,
		FromDungeonLevel(lightningWeightTable, level),
		FromDungeonLevel(fireballWeightTable, level),
		FromDungeonLevel(confuseWeightTable, level),
		FromDungeonLevel(swordWeightTable, level),
		FromDungeonLevel(shieldWeightTable, level),
	}
	return templates, weights
}
