package domain

// Геометрия карты
const (
	MapWidth  = 80
	MapHeight = 43

	RoomMaxSize = 10
	RoomMinSize = 6
	MaxRooms    = 30
)

// Поле зрения
const (
	TorchRadius = 10
)

// Параметры эффектов предметов
const (
	HealAmount = 40

	LightningDamage = 40
	LightningRange  = 5

	ConfuseRange    = 8
	ConfuseNumTurns = 10

	FireballRadius = 3
	FireballDamage = 25
)

// Прогрессия персонажа
const (
	LevelUpBase   = 200
	LevelUpFactor = 150

	LevelUpHPBonus      = 20
	LevelUpPowerBonus   = 1
	LevelUpDefenseBonus = 1
)

// Инвентарь
const (
	InventoryCapacity = 26
)

// Журнал сообщений: емкость равна высоте панели сообщений на клиенте.
const (
	MessageLogCapacity = 6
)

// Цвета сообщений и сущностей (hex, клиент рендерит как есть)
const (
	ColorWhite       = "#FFFFFF"
	ColorRed         = "#FF0000"
	ColorDarkRed     = "#BF0000"
	ColorGreen       = "#00FF00"
	ColorYellow      = "#FFFF00"
	ColorOrange      = "#FFA500"
	ColorViolet      = "#EE82EE"
	ColorLightBlue   = "#ADD8E6"
	ColorLightCyan   = "#E0FFFF"
	ColorLightGreen  = "#90EE90"
	ColorLightYellow = "#FFFF73"
	ColorDesatGreen  = "#3F7F3F"
	ColorDarkGreen   = "#007F00"
	ColorSky         = "#87CEEB"
	ColorDarkOrange  = "#7F3F00"
)
