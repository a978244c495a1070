package systems

import (
	"fmt"

	"gravenhold-server/internal/domain"
	"gravenhold-server/pkg/logger"
	"gravenhold-server/pkg/rng"

	"github.com/sirupsen/logrus"
)

// TakeMonsterTurn выполняет один ход монстра.
//
// Обычное поведение срабатывает, только когда монстр виден игроку
// (проверка именно по полю зрения игрока, не наоборот): дистанция от
// двух клеток - шаг к игроку, иначе атака, пока игрок жив.
// Смятение - случайное блуждание с убыванием счетчика и возвратом
// прежнего поведения на нуле.
func TakeMonsterTurn(monster, player *domain.Entity, w *domain.GameWorld, visible map[int]bool, dice *rng.Dice, log *domain.MessageLog) {
	if monster.AI == nil || monster.Fighter == nil {
		return
	}

	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "ai_system",
		"monster_id":   monster.ID,
		"monster_name": monster.Name,
		"mode":         monster.AI.Mode,
	})

	switch monster.AI.Mode {
	case domain.AIConfused:
		takeConfusedTurn(monster, w, dice, log, aiLogger)
	case domain.AIBasic:
		takeBasicTurn(monster, player, w, visible, aiLogger, log)
	}
}

func takeBasicTurn(monster, player *domain.Entity, w *domain.GameWorld, visible map[int]bool, aiLogger *logrus.Entry, log *domain.MessageLog) {
	// Монстр действует, только пока игрок его видит
	if !visible[w.GetIndex(monster.Pos.X, monster.Pos.Y)] {
		aiLogger.Debug("Monster is out of player sight, skipping turn.")
		return
	}

	if monster.Pos.DistanceTo(player.Pos) >= 2 {
		dx, dy := monster.Pos.StepToward(player.Pos)
		res := CalculateMove(monster, dx, dy, w)
		if res.HasMoved {
			w.UpdateEntityPos(monster, res.NewX, res.NewY)
			aiLogger.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Debug("Monster moved toward player.")
		}
		return
	}

	if player.Fighter != nil && player.Fighter.HP > 0 {
		Attack(monster, player, log)
	}
}

func takeConfusedTurn(monster *domain.Entity, w *domain.GameWorld, dice *rng.Dice, log *domain.MessageLog, aiLogger *logrus.Entry) {
	if monster.AI.TurnsLeft > 0 {
		// Случайный шаг из 8-окрестности, включая нулевой вектор
		dx := dice.Range(-1, 1)
		dy := dice.Range(-1, 1)

		res := CalculateMove(monster, dx, dy, w)
		if res.HasMoved {
			w.UpdateEntityPos(monster, res.NewX, res.NewY)
		}

		monster.AI.TurnsLeft--
		aiLogger.WithField("turns_left", monster.AI.TurnsLeft).Debug("Confused monster stumbles around.")
		return
	}

	monster.AI = monster.AI.Restore()
	log.Add(fmt.Sprintf("%s больше не в смятении!", monster.Name), domain.ColorRed)
	aiLogger.Info("Confusion wore off, previous behavior restored.")
}
