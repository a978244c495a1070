package domain

// GetIndex возвращает ключ пространственного хеша для координаты.
func (w *GameWorld) GetIndex(x, y int) int {
	return y*w.Width + x
}

// InBounds проверяет, что координата лежит внутри карты.
func (w *GameWorld) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// IsBlocked сообщает, запрещает ли движение сама клетка (без учета сущностей).
func (w *GameWorld) IsBlocked(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	return w.Map[y][x].Blocked
}

// GetEntitiesAt возвращает сущности, стоящие в клетке.
func (w *GameWorld) GetEntitiesAt(x, y int) []*Entity {
	return w.SpatialHash[w.GetIndex(x, y)]
}

// GetEntity находит сущность по ID. Возвращает nil, если ее нет на уровне.
func (w *GameWorld) GetEntity(id string) *Entity {
	return w.EntityRegistry[id]
}

// AddEntity регистрирует сущность в реестре и пространственном хеше.
func (w *GameWorld) AddEntity(e *Entity) {
	w.EntityRegistry[e.ID] = e
	idx := w.GetIndex(e.Pos.X, e.Pos.Y)
	w.SpatialHash[idx] = append(w.SpatialHash[idx], e)
}

// RemoveEntity убирает сущность из всех индексов (подбор предмета, спуск).
func (w *GameWorld) RemoveEntity(e *Entity) {
	delete(w.EntityRegistry, e.ID)
	w.removeFromHash(e, w.GetIndex(e.Pos.X, e.Pos.Y))
}

// UpdateEntityPos перемещает сущность в индексах и меняет ее координату.
func (w *GameWorld) UpdateEntityPos(e *Entity, newX, newY int) {
	w.removeFromHash(e, w.GetIndex(e.Pos.X, e.Pos.Y))
	e.Pos.X = newX
	e.Pos.Y = newY
	idx := w.GetIndex(newX, newY)
	w.SpatialHash[idx] = append(w.SpatialHash[idx], e)
}

func (w *GameWorld) removeFromHash(e *Entity, idx int) {
	cell := w.SpatialHash[idx]
	for i, other := range cell {
		if other.ID == e.ID {
			cell[i] = cell[len(cell)-1]
			w.SpatialHash[idx] = cell[:len(cell)-1]
			break
		}
	}
	if len(w.SpatialHash[idx]) == 0 {
		delete(w.SpatialHash, idx)
	}
}

// RebuildIndex восстанавливает индексы после десериализации.
func (w *GameWorld) RebuildIndex(entities []*Entity) {
	w.SpatialHash = make(map[int][]*Entity)
	w.EntityRegistry = make(map[string]*Entity)
	for _, e := range entities {
		w.AddEntity(e)
	}
}
