package domain

// Position - координата на карте уровня.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile - одна клетка карты.
// Blocked запрещает движение, BlockSight закрывает обзор.
// Explored выставляется навсегда, когда клетка впервые попадает в поле зрения.
type Tile struct {
	Blocked    bool `json:"blocked"`
	BlockSight bool `json:"blockSight"`
	Explored   bool `json:"explored"`
}

// GameWorld - карта одного уровня подземелья плюс индексы сущностей.
// Индексы (SpatialHash, EntityRegistry) не сериализуются: после загрузки
// они восстанавливаются из списка сущностей через RebuildIndex.
type GameWorld struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Map    [][]Tile `json:"map"` // [y][x]
	Level  int      `json:"level"`

	SpatialHash    map[int][]*Entity  `json:"-"`
	EntityRegistry map[string]*Entity `json:"-"`
}

// NewGameWorld создает пустой мир: все клетки - непроходимые стены.
// Комнаты и туннели вырезает генератор.
func NewGameWorld(width, height, level int) *GameWorld {
	m := make([][]Tile, height)
	for y := range m {
		m[y] = make([]Tile, width)
		for x := range m[y] {
			m[y][x] = Tile{Blocked: true, BlockSight: true}
		}
	}
	return &GameWorld{
		Width:          width,
		Height:         height,
		Map:            m,
		Level:          level,
		SpatialHash:    make(map[int][]*Entity),
		EntityRegistry: make(map[string]*Entity),
	}
}
