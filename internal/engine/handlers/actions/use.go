package actions

import (
	"fmt"

	"gravenhold-server/internal/domain"
	"gravenhold-server/internal/engine/handlers"
	"gravenhold-server/internal/systems"
	"gravenhold-server/pkg/api"
	"gravenhold-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUse применяет предмет из инвентаря.
//
// Зональным и точечным эффектам (огненный шар, смятение) нужна цель.
// Если она не пришла в команде, хендлер отвечает NeedTarget: ход не
// потрачен, предмет цел, клиент повторяет команду с целью или молчит.
// Отмененный эффект также не тратит ни ход, ни предмет.
func HandleUse(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	player := ctx.Player

	item := player.Inventory.ByIndex(p.Index)
	if item == nil {
		ctx.Log.Add("Такого предмета нет в инвентаре.", domain.ColorRed)
		return handlers.EmptyResult(), nil
	}

	useLogger := logger.Log.WithFields(logrus.Fields{
		"component": "use_handler",
		"player_id": player.ID,
		"item_id":   item.ID,
		"kind":      item.Item.Kind,
	})

	var result systems.UseResult

	switch item.Item.Kind {
	case domain.ItemHeal:
		result = systems.CastHeal(player, ctx.Log)

	case domain.ItemLightning:
		result = systems.CastLightning(player, ctx.Entities, ctx.Visible, ctx.World, ctx.Log)

	case domain.ItemFireball:
		if p.Target == nil {
			return handlers.Result{NeedTarget: handlers.TargetTile, NeedTargetItem: p.Index}, nil
		}
		target := domain.Position{X: p.Target.X, Y: p.Target.Y}
		if v := systems.ValidateTileTarget(target, ctx.Visible, ctx.World); !v.Valid {
			ctx.Log.Add(v.Message, domain.ColorRed)
			return handlers.EmptyResult(), nil
		}
		result = systems.CastFireball(player, target, ctx.Entities, ctx.Log)

	case domain.ItemConfuse:
		if p.TargetID == "" {
			return handlers.Result{NeedTarget: handlers.TargetMonster, NeedTargetItem: p.Index}, nil
		}
		v := systems.ValidateMonsterTarget(player, p.TargetID, domain.ConfuseRange, ctx.Visible, ctx.World)
		if !v.Valid {
			ctx.Log.Add(v.Message, domain.ColorRed)
			return handlers.EmptyResult(), nil
		}
		result = systems.CastConfuse(v.Target, ctx.Log)

	case domain.ItemSword, domain.ItemShield, domain.ItemDagger:
		result = systems.ToggleEquipment(player, item, ctx.Log)

	default:
		ctx.Log.Add(fmt.Sprintf("%s нельзя использовать.", item.Name), domain.ColorYellow)
		return handlers.EmptyResult(), nil
	}

	switch result {
	case systems.UsedUp:
		player.Inventory.Remove(item.ID)
		useLogger.Info("Item used up.")
		return handlers.Result{TookTurn: true}, nil
	case systems.UsedAndKept:
		useLogger.Info("Item toggled.")
		return handlers.Result{TookTurn: true}, nil
	default:
		useLogger.Debug("Item use cancelled.")
		return handlers.EmptyResult(), nil
	}
}
