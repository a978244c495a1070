package dungeon

import (
	"errors"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/rng"
)

// ErrGenerationExhausted возвращается, когда на карте не удалось
// разместить ни одной комнаты. На стандартных размерах практически
// невозможно, но маленькие карты (тесты) могут в это упереться.
var ErrGenerationExhausted = errors.New("dungeon: no rooms placed")

// Rect - вспомогательная структура для комнаты
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect создает комнату по левому верхнему углу и размерам.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center возвращает центр комнаты.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects проверяет пересечение с другой комнатой.
// Границы считаются включительно: комнаты не могут даже соприкасаться.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Inner сообщает, лежит ли точка строго внутри комнаты (не на стенах).
func (r Rect) Inner(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

func carveRoom(world *domain.GameWorld, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			world.Map[y][x].Blocked = false
			world.Map[y][x].BlockSight = false
		}
	}
}

func carveHCorridor(world *domain.GameWorld, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		world.Map[y][x].Blocked = false
		world.Map[y][x].BlockSight = false
	}
}

func carveVCorridor(world *domain.GameWorld, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		world.Map[y][x].Blocked = false
		world.Map[y][x].BlockSight = false
	}
}

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	level    int
	width    int
	height   int
	rooms    []Rect
	world    *domain.GameWorld
	entities []*domain.Entity
	startPos domain.Position
	dice     *rng.Dice
}

// NewLevel создает новый builder для уровня
func NewLevel(level int, dice *rng.Dice) *LevelBuilder {
	return &LevelBuilder{
		level:    level,
		width:    domain.MapWidth,
		height:   domain.MapHeight,
		entities: make([]*domain.Entity, 0),
		dice:     dice,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms вырезает комнаты и коридоры.
// Центр первой комнаты фиксируется как стартовая позиция игрока
// до любого заселения. Каждая следующая комната соединяется
// L-образным коридором с предыдущей; форма буквы L выбирается монеткой.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.world = domain.NewGameWorld(b.width, b.height, b.level)

	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.dice.Range(domain.RoomMinSize, domain.RoomMaxSize)
		h := b.dice.Range(domain.RoomMinSize, domain.RoomMaxSize)
		x := b.dice.Intn(b.width - w - 1)
		y := b.dice.Intn(b.height - h - 1)

		newRoom := NewRect(x, y, w, h)

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		carveRoom(b.world, newRoom)
		cx, cy := newRoom.Center()

		if len(b.rooms) == 0 {
			b.startPos = domain.Position{X: cx, Y: cy}
		} else {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			if b.dice.Coin() {
				carveHCorridor(b.world, prevX, cx, prevY)
				carveVCorridor(b.world, prevY, cy, cx)
			} else {
				carveVCorridor(b.world, prevY, cy, prevX)
				carveHCorridor(b.world, prevX, cx, cy)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	return b
}

// Populate заселяет комнаты монстрами и предметами по таблицам спавна.
// Стартовая клетка игрока считается занятой, поэтому в первой комнате
// никто не появляется прямо на игроке.
func (b *LevelBuilder) Populate() *LevelBuilder {
	for _, room := range b.rooms {
		b.placeMonsters(room)
		b.placeItems(room)
	}
	return b
}

func (b *LevelBuilder) placeMonsters(room Rect) {
	templates, weights := monsterChances(b.level)
	count := b.dice.Range(0, MaxMonstersPerRoom(b.level))
	for i := 0; i < count; i++ {
		pos, ok := b.randomFloor(room)
		if !ok {
			continue
		}
		t := templates[b.dice.WeightedChoice(weights)]
		b.entities = append(b.entities, t.Spawn(pos, b.dice))
	}
}

func (b *LevelBuilder) placeItems(room Rect) {
	templates, weights := itemChances(b.level)
	count := b.dice.Range(0, MaxItemsPerRoom(b.level))
	for i := 0; i < count; i++ {
		pos, ok := b.randomFloor(room)
		if !ok {
			continue
		}
		t := templates[b.dice.WeightedChoice(weights)]
		b.entities = append(b.entities, t.Spawn(pos, b.dice))
	}
}

// randomFloor бросает одну кандидатную клетку внутри комнаты.
// Занятая клетка не перебрасывается: спавн молча пропускается,
// так что комната может получить меньше обитателей, чем выпало.
func (b *LevelBuilder) randomFloor(room Rect) (domain.Position, bool) {
	x := b.dice.Range(room.X1+1, room.X2-1)
	y := b.dice.Range(room.Y1+1, room.Y2-1)
	if b.world.Map[y][x].Blocked || b.blockedByEntity(x, y) {
		return domain.Position{}, false
	}
	return domain.Position{X: x, Y: y}, true
}

func (b *LevelBuilder) blockedByEntity(x, y int) bool {
	if b.startPos.X == x && b.startPos.Y == y {
		return true
	}
	for _, e := range b.entities {
		if e.Blocks && e.Pos.X == x && e.Pos.Y == y {
			return true
		}
	}
	return false
}

// PlaceStairs ставит лестницу вниз в центре последней комнаты.
func (b *LevelBuilder) PlaceStairs() *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}
	cx, cy := b.rooms[len(b.rooms)-1].Center()
	pos := domain.Position{X: cx, Y: cy}
	b.entities = append(b.entities, NewStairs(pos, b.level, b.dice))
	return b
}

// Rooms возвращает размещенные комнаты (для тестов генератора).
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// Build собирает и возвращает готовый мир.
func (b *LevelBuilder) Build() (*domain.GameWorld, []*domain.Entity, domain.Position, error) {
	if len(b.rooms) == 0 {
		return nil, nil, domain.Position{}, ErrGenerationExhausted
	}
	return b.world, b.entities, b.startPos, nil
}

// Generate создает полностью заселенный уровень подземелья.
func Generate(level int, dice *rng.Dice) (*domain.GameWorld, []*domain.Entity, domain.Position, error) {
	return NewLevel(level, dice).
		WithRooms(domain.MaxRooms).
		Populate().
		PlaceStairs().
		Build()
}
