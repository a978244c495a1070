package systems

import (
	"fmt"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TryPickup перекладывает предмет с пола в инвентарь.
// При переполнении предмет остается на земле, игрок получает сообщение.
// Экипировка с пустым подходящим слотом надевается сразу.
func TryPickup(actor, item *domain.Entity, w *domain.GameWorld, log *domain.MessageLog) bool {
	invLogger := logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actor.ID,
		"item_id":   item.ID,
		"item_name": item.Name,
	})

	if actor.Inventory == nil || item.Item == nil {
		invLogger.Warn("Pickup rejected: missing inventory or item component.")
		return false
	}

	if err := actor.Inventory.Add(item); err != nil {
		log.Add(
			fmt.Sprintf("Инвентарь полон, нельзя подобрать %s.", item.Name),
			domain.ColorRed,
		)
		invLogger.WithError(err).Info("Pickup rejected: inventory full.")
		return false
	}

	// Предмет покидает мир и живет внутри инвентаря
	w.RemoveEntity(item)

	log.Add(fmt.Sprintf("Вы подобрали %s!", item.Name), domain.ColorGreen)
	invLogger.Info("Item picked up.")

	// Автоэкипировка в свободный слот
	if item.Equipment != nil && actor.EquippedInSlot(item.Equipment.Slot) == nil {
		Equip(item, log)
	}

	return true
}

// TryDrop выкладывает предмет из инвентаря под ноги.
// Надетый предмет перед этим снимается.
func TryDrop(actor, item *domain.Entity, w *domain.GameWorld, log *domain.MessageLog) {
	if item.Equipment != nil && item.Equipment.IsEquipped {
		Dequip(item, log)
	}

	actor.Inventory.Remove(item.ID)
	item.Pos = actor.Pos
	w.AddEntity(item)

	log.Add(fmt.Sprintf("Вы бросили %s.", item.Name), domain.ColorYellow)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actor.ID,
		"item_id":   item.ID,
	}).Info("Item dropped.")
}

// ItemOnGround находит предмет в клетке актора (для подбора).
func ItemOnGround(actor *domain.Entity, w *domain.GameWorld) *domain.Entity {
	for _, e := range w.GetEntitiesAt(actor.Pos.X, actor.Pos.Y) {
		if e.Item != nil {
			return e
		}
	}
	return nil
}
