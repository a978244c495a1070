package systems

import (
	"fmt"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Attack разрешает одну атаку ближнего боя.
// Урон = полная сила атакующего минус полная защита цели.
// Опыт за убийство начисляется атакующему немедленно.
func Attack(attacker, target *domain.Entity, log *domain.MessageLog) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	if target.Fighter == nil {
		combatLogger.Warn("Attack failed: target has no FighterComponent.")
		return
	}

	damage := attacker.FullPower() - target.FullDefense()

	if damage <= 0 {
		log.Add(
			fmt.Sprintf("%s атакует %s, но безрезультатно!", attacker.Name, target.Name),
			domain.ColorWhite,
		)
		combatLogger.WithField("damage", damage).Info("Attack resolved with no effect.")
		return
	}

	log.Add(
		fmt.Sprintf("%s атакует %s и наносит %d урона.", attacker.Name, target.Name, damage),
		domain.ColorWhite,
	)

	hpBefore := target.Fighter.HP
	died, xp := target.Fighter.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Fighter.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	if died {
		ApplyDeath(target, log)
		if attacker.Fighter != nil {
			attacker.Fighter.XP += xp
		}
	}
}

// ApplyDeath выполняет переход смерти согласно DeathKind цели.
// Вызывается ровно один раз: TakeDamage сообщает о смерти однократно.
func ApplyDeath(e *domain.Entity, log *domain.MessageLog) {
	switch e.Fighter.Death {
	case domain.DeathPlayer:
		playerDeath(e, log)
	case domain.DeathMonster:
		monsterDeath(e, log)
	}
}

// playerDeath: игрок становится трупом, партия окончена.
func playerDeath(player *domain.Entity, log *domain.MessageLog) {
	logger.Log.WithField("player_id", player.ID).Info("Player died.")

	log.Add("Вы погибли!", domain.ColorRed)

	player.Alive = false
	if player.Render != nil {
		player.Render.Symbol = "%"
		player.Render.Color = domain.ColorDarkRed
	}
}

// monsterDeath: монстр превращается в инертные останки.
// Труп не блокирует клетку, компоненты боя и ИИ снимаются.
func monsterDeath(monster *domain.Entity, log *domain.MessageLog) {
	logger.Log.WithFields(logrus.Fields{
		"monster_id":   monster.ID,
		"monster_name": monster.Name,
		"xp_reward":    monster.Fighter.XP,
	}).Info("Monster died.")

	log.Add(
		fmt.Sprintf("%s мертв! Вы получаете %d опыта.", monster.Name, monster.Fighter.XP),
		domain.ColorOrange,
	)

	monster.Type = domain.EntityTypeCorpse
	monster.Blocks = false
	monster.Fighter = nil
	monster.AI = nil
	monster.Name = "останки " + monster.Name
	if monster.Render != nil {
		monster.Render.Symbol = "%"
		monster.Render.Color = domain.ColorDarkRed
	}
}
