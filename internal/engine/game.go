package engine

import (
	"fmt"

	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/systems"
	"gravenhold-server/pkg/dungeon"
	"gravenhold-server/pkg/logger"
	"gravenhold-server/pkg/rng"

	"github.com/sirupsen/logrus"
)

// Game - агрегат одной партии: мир текущего уровня, сущности,
// журнал сообщений и состояние прогрессии. Вся мутация строго
// последовательна: один логический ход владеет состоянием целиком.
type Game struct {
	World    *domain.GameWorld
	Entities []*domain.Entity
	Player   *domain.Entity
	Log      *domain.MessageLog

	DungeonLevel int
	Turn         int
	Seed         int64

	// LevelUpPending блокирует все действия, кроме выбора награды
	LevelUpPending   bool
	PendingThreshold int

	Dice    *rng.Dice
	Visible map[int]bool
	// FovDirty выставляется при каждом перемещении игрока
	FovDirty bool

	Turns *TurnManager
}

// NewGame создает новую партию: игрок, первый уровень, приветствие.
func NewGame(seed int64, playerID string) (*Game, error) {
	g := &Game{
		Seed:  seed,
		Dice:  rng.New(seed),
		Log:   domain.NewMessageLog(),
		Turns: NewTurnManager(),
	}

	g.Player = dungeon.NewPlayer(playerID)

	if err := g.buildLevel(1); err != nil {
		return nil, err
	}

	g.Log.Add("Добро пожаловать, странник! Готовься сгинуть в Гробницах Древних Королей.", domain.ColorRed)
	g.RecomputeFOV()

	logger.Log.WithFields(logrus.Fields{
		"seed":      seed,
		"player_id": playerID,
	}).Info("New game started.")

	return g, nil
}

// buildLevel генерирует уровень подземелья и заселяет его.
// Все сущности прошлого уровня, кроме игрока, отбрасываются.
func (g *Game) buildLevel(level int) error {
	world, spawned, startPos, err := dungeon.Generate(level, g.Dice)
	if err != nil {
		return fmt.Errorf("build level %d: %w", level, err)
	}

	g.World = world
	g.DungeonLevel = level
	g.Player.Pos = startPos

	g.Entities = make([]*domain.Entity, 0, len(spawned)+1)
	g.Entities = append(g.Entities, g.Player)
	g.Entities = append(g.Entities, spawned...)

	for _, e := range g.Entities {
		g.World.AddEntity(e)
	}

	g.Turns.Reset()
	for _, e := range g.Entities {
		if e.AI != nil {
			g.Turns.AddEntity(e, g.Turn+1)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"level":    level,
		"entities": len(g.Entities),
	}).Info("Dungeon level built.")

	return nil
}

// RecomputeFOV пересчитывает поле зрения игрока и помечает
// увиденные клетки разведанными.
func (g *Game) RecomputeFOV() {
	g.Visible = systems.ComputeVisibleTiles(g.World, g.Player.Pos, domain.TorchRadius)
	for idx := range g.Visible {
		y := idx / g.World.Width
		x := idx % g.World.Width
		g.World.Map[y][x].Explored = true
	}
	g.FovDirty = false
}

// RunMonsterTurns дает каждому живому монстру ровно один ход.
// Порядок внутри хода - порядок появления монстров в мире.
func (g *Game) RunMonsterTurns() {
	if !g.Player.Alive {
		return
	}

	g.Turn++

	for {
		e := g.Turns.PopReady(g.Turn)
		if e == nil {
			break
		}
		// Монстр мог умереть в этом же ходу (останки теряют ИИ)
		if e.AI == nil || e.Fighter == nil {
			g.Turns.RemoveEntity(e.ID)
			continue
		}
		systems.TakeMonsterTurn(e, g.Player, g.World, g.Visible, g.Dice, g.Log)
	}
}

// LevelUpThreshold - сколько опыта нужно для следующего уровня персонажа.
func (g *Game) LevelUpThreshold() int {
	return domain.LevelUpBase + domain.LevelUpFactor*g.Player.Level
}

// CheckLevelUp проверяет порог опыта и открывает выбор награды.
// Пока выбор не сделан, другие действия игрока блокируются.
func (g *Game) CheckLevelUp() {
	if g.LevelUpPending || g.Player.Fighter == nil {
		return
	}

	threshold := g.LevelUpThreshold()
	if g.Player.Fighter.XP < threshold {
		return
	}

	g.Player.Level++
	g.LevelUpPending = true
	g.PendingThreshold = threshold

	g.Log.Add(
		fmt.Sprintf("Ваши боевые навыки растут! Вы достигли уровня %d.", g.Player.Level),
		domain.ColorYellow,
	)

	logger.Log.WithFields(logrus.Fields{
		"player_id": g.Player.ID,
		"level":     g.Player.Level,
		"xp":        g.Player.Fighter.XP,
	}).Info("Player leveled up, awaiting reward choice.")
}

// Варианты награды за уровень
const (
	LevelUpChoiceHP      = "hp"
	LevelUpChoicePower   = "power"
	LevelUpChoiceDefense = "defense"
)

// ApplyLevelUpChoice применяет выбранную награду и списывает порог опыта.
// Остаток опыта сохраняется и может сразу открыть следующий уровень.
func (g *Game) ApplyLevelUpChoice(choice string) error {
	if !g.LevelUpPending {
		return fmt.Errorf("no level-up pending")
	}

	f := g.Player.Fighter
	switch choice {
	case LevelUpChoiceHP:
		f.BaseMaxHP += domain.LevelUpHPBonus
		f.HP += domain.LevelUpHPBonus
		g.Log.Add(fmt.Sprintf("Здоровье укрепилось (+%d HP)!", domain.LevelUpHPBonus), domain.ColorLightGreen)
	case LevelUpChoicePower:
		f.BasePower += domain.LevelUpPowerBonus
		g.Log.Add(fmt.Sprintf("Удар стал тяжелее (+%d к силе)!", domain.LevelUpPowerBonus), domain.ColorLightGreen)
	case LevelUpChoiceDefense:
		f.BaseDefense += domain.LevelUpDefenseBonus
		g.Log.Add(fmt.Sprintf("Кожа стала крепче (+%d к защите)!", domain.LevelUpDefenseBonus), domain.ColorLightGreen)
	default:
		return fmt.Errorf("unknown level-up choice %q", choice)
	}

	f.XP -= g.PendingThreshold
	g.LevelUpPending = false
	g.PendingThreshold = 0

	// Избыток опыта может открыть следующий уровень сразу
	g.CheckLevelUp()
	return nil
}

// NextLevel спускает игрока на следующий уровень подземелья.
// Перед спуском игрок отдыхает и восстанавливает половину максимума HP.
func (g *Game) NextLevel() error {
	healAmount := g.Player.FullMaxHP() / 2
	g.Player.Fighter.Heal(healAmount)

	g.Log.Add("Вы переводите дух и восстанавливаете силы.", domain.ColorViolet)
	g.Log.Add("После редкой минуты покоя вы спускаетесь глубже в подземелье...", domain.ColorRed)

	if err := g.buildLevel(g.DungeonLevel + 1); err != nil {
		return err
	}

	g.RecomputeFOV()
	return nil
}

// DetachEntity убирает сущность из общего списка (подбор предмета).
// Из индексов мира ее снимает система инвентаря.
func (g *Game) DetachEntity(e *domain.Entity) {
	for i, other := range g.Entities {
		if other.ID == e.ID {
			g.Entities = append(g.Entities[:i], g.Entities[i+1:]...)
			break
		}
	}
}

// AttachEntity возвращает сущность в общий список (сброс предмета).
func (g *Game) AttachEntity(e *domain.Entity) {
	g.Entities = append(g.Entities, e)
}

// StairsAt находит лестницу в указанной клетке.
func (g *Game) StairsAt(pos domain.Position) *domain.Entity {
	for _, e := range g.World.GetEntitiesAt(pos.X, pos.Y) {
		if e.Type == domain.EntityTypeStairs {
			return e
		}
	}
	return nil
}
