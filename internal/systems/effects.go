package systems

import (
	"fmt"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// UseResult - исход применения предмета.
type UseResult uint8

const (
	// UseCancelled - эффект не сработал, предмет остается в инвентаре.
	UseCancelled UseResult = iota
	// UsedUp - предмет израсходован.
	UsedUp
	// UsedAndKept - эффект сработал, предмет остается (экипировка).
	UsedAndKept
)

// CastHeal восстанавливает здоровье заклинателя.
// Отменяется, если здоровье уже на полном максимуме.
func CastHeal(caster *domain.Entity, log *domain.MessageLog) UseResult {
	if caster.Fighter == nil {
		return UseCancelled
	}
	if caster.Fighter.HP == caster.FullMaxHP() {
		log.Add("Вы уже полностью здоровы.", domain.ColorRed)
		return UseCancelled
	}

	log.Add("Ваши раны затягиваются!", domain.ColorViolet)
	caster.Fighter.Heal(domain.HealAmount)
	return UsedUp
}

// CastLightning бьет молнией ближайшего видимого врага.
// Урон фиксированный, защита не учитывается.
func CastLightning(caster *domain.Entity, entities []*domain.Entity, visible map[int]bool, w *domain.GameWorld, log *domain.MessageLog) UseResult {
	target := ClosestMonster(caster, entities, visible, w, domain.LightningRange)
	if target == nil {
		log.Add("Поблизости нет врага, чтобы ударить.", domain.ColorRed)
		return UseCancelled
	}

	log.Add(
		fmt.Sprintf("Молния бьет в %s с оглушительным треском! Урон: %d.", target.Name, domain.LightningDamage),
		domain.ColorLightBlue,
	)

	logger.Log.WithFields(logrus.Fields{
		"component": "effects_system",
		"effect":    "lightning",
		"target_id": target.ID,
	}).Info("Lightning strike resolved.")

	died, xp := target.Fighter.TakeDamage(domain.LightningDamage)
	if died {
		ApplyDeath(target, log)
		if caster.Fighter != nil {
			caster.Fighter.XP += xp
		}
	}
	return UsedUp
}

// CastFireball взрывает огненный шар в выбранной клетке.
// Урон получают ВСЕ бойцы в радиусе, включая самого заклинателя.
// Опыт начисляется только за чужие смерти.
func CastFireball(caster *domain.Entity, target domain.Position, entities []*domain.Entity, log *domain.MessageLog) UseResult {
	log.Add(
		fmt.Sprintf("Огненный шар взрывается, сжигая все в радиусе %d клеток!", domain.FireballRadius),
		domain.ColorOrange,
	)

	logger.Log.WithFields(logrus.Fields{
		"component": "effects_system",
		"effect":    "fireball",
		"target":    target,
	}).Info("Fireball detonated.")

	xpToGain := 0
	for _, e := range entities {
		if e.Fighter == nil {
			continue
		}
		if e.Pos.DistanceTo(target) > float64(domain.FireballRadius) {
			continue
		}

		log.Add(
			fmt.Sprintf("%s получает %d урона от ожогов.", e.Name, domain.FireballDamage),
			domain.ColorOrange,
		)

		died, xp := e.Fighter.TakeDamage(domain.FireballDamage)
		if died {
			isSelf := e.ID == caster.ID
			ApplyDeath(e, log)
			// Опыт за собственную гибель не положен
			if !isSelf {
				xpToGain += xp
			}
		}
	}

	if caster.Fighter != nil {
		caster.Fighter.XP += xpToGain
	}
	return UsedUp
}

// CastConfuse погружает цель в смятение на фиксированное число ходов.
// Прежнее поведение сохраняется внутри обертки и вернется само.
func CastConfuse(target *domain.Entity, log *domain.MessageLog) UseResult {
	if target.AI == nil {
		log.Add("Это существо не поддается смятению.", domain.ColorRed)
		return UseCancelled
	}

	target.AI = domain.NewConfusedAI(target.AI, domain.ConfuseNumTurns)

	log.Add(
		fmt.Sprintf("Глаза %s стекленеют, и он начинает бесцельно бродить!", target.Name),
		domain.ColorLightGreen,
	)
	return UsedUp
}

// ToggleEquipment надевает предмет или снимает, если он уже надет.
// При надевании предмет, занимающий тот же слот, снимается сам.
func ToggleEquipment(actor, item *domain.Entity, log *domain.MessageLog) UseResult {
	if item.Equipment == nil {
		return UseCancelled
	}

	if item.Equipment.IsEquipped {
		Dequip(item, log)
	} else {
		if current := actor.EquippedInSlot(item.Equipment.Slot); current != nil {
			Dequip(current, log)
		}
		Equip(item, log)
	}
	return UsedAndKept
}

// Equip надевает предмет (без проверки занятости слота).
func Equip(item *domain.Entity, log *domain.MessageLog) {
	item.Equipment.IsEquipped = true
	log.Add(
		fmt.Sprintf("Вы держите %s в %s.", item.Name, domain.SlotName(item.Equipment.Slot)),
		domain.ColorLightGreen,
	)
}

// Dequip снимает предмет.
func Dequip(item *domain.Entity, log *domain.MessageLog) {
	item.Equipment.IsEquipped = false
	log.Add(
		fmt.Sprintf("Вы убираете %s из %s.", item.Name, domain.SlotName(item.Equipment.Slot)),
		domain.ColorLightYellow,
	)
}
