package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" партии, видимый игроку,
// и отправляется после каждой обработанной команды.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// Turn номер текущего мирового хода.
	Turn int `json:"turn"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// DungeonLevel текущая глубина подземелья.
	DungeonLevel int `json:"dungeonLevel,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех исследованных тайлов (туман войны).
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs последние сообщения журнала.
	Logs []LogView `json:"logs,omitempty"`

	// Player лист персонажа: полные статы и инвентарь.
	Player *PlayerView `json:"player,omitempty"`

	// NeedTarget - сервер ждет от клиента цель для начатого эффекта:
	// "TILE" (клетка) или "MONSTER" (монстр). Ход еще не потрачен;
	// клиент может просто не отвечать - это отмена без последствий.
	NeedTarget string `json:"needTarget,omitempty"`
	// NeedTargetItem - номер слота предмета, ожидающего цель.
	NeedTargetItem int `json:"needTargetItem,omitempty"`

	// LevelUpPending - игрок должен выбрать награду за уровень,
	// остальные действия до выбора отклоняются.
	LevelUpPending bool `json:"levelUpPending,omitempty"`

	// GameOver - игрок мертв, партия завершена.
	GameOver bool `json:"gameOver,omitempty"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// IsWall true, если тайл является непроходимым препятствием.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден.
	// Если IsVisible=false, а IsExplored=true, рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY, ITEM, STAIRS, CORPSE
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// HP/MaxHP присутствуют только у бойцов (для полосок здоровья).
	HP    int `json:"hp,omitempty"`
	MaxHP int `json:"maxHp,omitempty"`
}

// LogView - одно сообщение журнала.
type LogView struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// PlayerView - лист персонажа владельца сессии.
type PlayerView struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Power   int `json:"power"`
	Defense int `json:"defense"`

	Level       int `json:"level"`
	XP          int `json:"xp"`
	NextLevelXP int `json:"nextLevelXp"`

	Alive bool `json:"alive"`

	Inventory []ItemView `json:"inventory"`
}

// ItemView - предмет в инвентаре.
type ItemView struct {
	Index      int    `json:"index"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Color      string `json:"color"`
	Kind       string `json:"kind"`
	IsEquipped bool   `json:"isEquipped,omitempty"`
	Slot       string `json:"slot,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - команда от клиента.
type ClientCommand struct {
	// Action - строковый код действия (MOVE, USE, ...).
	Action string `json:"action"`
	// Token - ID сущности, от имени которой пришла команда.
	Token string `json:"token"`
	// Payload - параметры действия, зависят от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DirectionPayload - параметры MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// Point - координата на карте.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemPayload - параметры USE и DROP.
// Target/TargetID заполняются вторым запросом после ответа NeedTarget.
type ItemPayload struct {
	Index    int    `json:"index"`
	Target   *Point `json:"target,omitempty"`
	TargetID string `json:"targetId,omitempty"`
}

// LevelUpPayload - выбор награды за уровень.
type LevelUpPayload struct {
	Choice string `json:"choice"` // hp | power | defense
}

// SavePayload - параметры SAVE и LOAD.
type SavePayload struct {
	Slot string `json:"slot,omitempty"`
}
