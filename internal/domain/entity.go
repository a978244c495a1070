package domain

// RenderComponent описывает, как сущность отображается на клиенте.
type RenderComponent struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// Entity - любой объект мира: игрок, монстр, предмет, труп, лестница.
// Поведение задается набором компонентов; отсутствующий компонент - nil.
type Entity struct {
	ID   string   `json:"id"`
	Type string   `json:"type"`
	Name string   `json:"name"`
	Pos  Position `json:"pos"`

	// Blocks - сущность занимает клетку и не пропускает других.
	Blocks bool `json:"blocks"`
	// Alive выставлен у игрока; смерть переводит его в false.
	Alive bool `json:"alive"`
	// AlwaysVisible - сущность рисуется на разведанных клетках даже вне поля зрения.
	AlwaysVisible bool `json:"alwaysVisible,omitempty"`
	// Level - уровень персонажа (для игрока).
	Level int `json:"level,omitempty"`

	Render    *RenderComponent    `json:"render,omitempty"`
	Fighter   *FighterComponent   `json:"fighter,omitempty"`
	AI        *AIComponent        `json:"ai,omitempty"`
	Item      *ItemComponent      `json:"item,omitempty"`
	Equipment *EquipmentComponent `json:"equipment,omitempty"`
	Inventory *InventoryComponent `json:"inventory,omitempty"`
}

// IsPlayer сообщает, является ли сущность игроком.
// Роль задается явно при создании и не зависит от позиции в списках.
func (e *Entity) IsPlayer() bool {
	return e.Type == EntityTypePlayer
}
