package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/VShilovich/fitness-bot/models"
	"github.com/VShilovich/fitness-bot/services"
	"github.com/VShilovich/fitness-bot/utils"
)

// lookupTimeout bounds the external weather/food calls. The per-user state
// is never locked while one of these is in flight.
const lookupTimeout = 10 * time.Second

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	log.Printf("Пользователь %d отправил: %s", msg.From.ID, msg.Text)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.reply(msg, msgStart)
		case "help":
			b.reply(msg, msgHelp)
		case "set_profile":
			b.startProfileDialog(msg)
		case "log_water":
			b.handleLogWater(msg)
		case "log_food":
			b.handleLogFood(msg)
		case "log_workout":
			b.handleLogWorkout(msg)
		case "check_progress":
			b.handleCheckProgress(msg)
		case "recommend":
			b.handleRecommend(msg)
		}
		return
	}

	b.handleDialogAnswer(msg)
}

func (b *Bot) startProfileDialog(msg *tgbotapi.Message) {
	b.sessions.set(msg.From.ID, session{state: stateAwaitingWeight})
	b.reply(msg, msgAskWeight)
}

// handleDialogAnswer advances the per-user dialog with a free-text message.
// Messages outside any dialog are ignored.
func (b *Bot) handleDialogAnswer(msg *tgbotapi.Message) {
	userID := msg.From.ID
	sess := b.sessions.get(userID)

	switch sess.state {
	case stateAwaitingWeight:
		v, err := utils.ParsePositiveInt(msg.Text)
		if err != nil {
			b.reply(msg, msgNeedNumber)
			return
		}
		sess.draft.WeightKg = v
		sess.state = stateAwaitingHeight
		b.sessions.set(userID, sess)
		b.reply(msg, msgAskHeight)

	case stateAwaitingHeight:
		v, err := utils.ParsePositiveInt(msg.Text)
		if err != nil {
			b.reply(msg, msgNeedNumber)
			return
		}
		sess.draft.HeightCm = v
		sess.state = stateAwaitingAge
		b.sessions.set(userID, sess)
		b.reply(msg, msgAskAge)

	case stateAwaitingAge:
		v, err := utils.ParsePositiveInt(msg.Text)
		if err != nil {
			b.reply(msg, msgNeedNumber)
			return
		}
		sess.draft.AgeYears = v
		sess.state = stateAwaitingActivity
		b.sessions.set(userID, sess)
		b.reply(msg, msgAskActivity)

	case stateAwaitingActivity:
		v, err := utils.ParseNonNegativeInt(msg.Text)
		if err != nil {
			b.reply(msg, msgNeedNumber)
			return
		}
		sess.draft.ActivityMinutes = v
		sess.state = stateAwaitingCity
		b.sessions.set(userID, sess)
		b.reply(msg, msgAskCity)

	case stateAwaitingCity:
		sess.draft.City = strings.TrimSpace(msg.Text)
		b.finalizeProfile(msg, sess.draft)

	case stateAwaitingFoodGrams:
		b.finishFoodLog(msg, sess)
	}
}

func (b *Bot) finalizeProfile(msg *tgbotapi.Message, draft models.Profile) {
	userID := msg.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	rec, err := b.onboarding.Finalize(ctx, userID, draft)
	if err != nil {
		b.sessions.clear(userID)
		b.reply(msg, fmt.Sprintf("Не удалось сохранить профиль: %v", err))
		return
	}

	b.sessions.clear(userID)
	b.reply(msg, fmt.Sprintf(
		"Профиль сохранен!\n"+
			"Погода в %s: %.1f°C\n"+
			"Цель воды: %d мл\n"+
			"Цель калорий: %d ккал",
		rec.City, rec.TemperatureC, rec.WaterGoalML, rec.CalorieGoal,
	))
}

func (b *Bot) handleLogWater(msg *tgbotapi.Message) {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		b.reply(msg, msgWaterUsage)
		return
	}

	amount, err := utils.ParsePositiveInt(args)
	if err != nil {
		b.reply(msg, msgNeedNumber)
		return
	}

	remaining, err := b.tracker.LogWater(msg.From.ID, amount)
	if err != nil {
		b.replyError(msg, err)
		return
	}
	b.reply(msg, fmt.Sprintf("Записано: %d мл. Осталось: %d мл.", amount, remaining))
}

// handleLogFood resolves the product first, then asks for grams; the actual
// commit happens in finishFoodLog once the user answers.
func (b *Bot) handleLogFood(msg *tgbotapi.Message) {
	userID := msg.From.ID
	if _, err := b.tracker.Snapshot(userID); err != nil {
		b.replyError(msg, err)
		return
	}

	query := strings.TrimSpace(msg.CommandArguments())
	if query == "" {
		b.reply(msg, msgFoodUsage)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	info, err := b.food.Lookup(ctx, query)
	if err != nil || info.CaloriesPer100g == 0 {
		// Zero calories means the nutrient entry was missing, treat it the
		// same as an unknown product.
		b.reply(msg, msgFoodNotFound)
		return
	}

	b.sessions.set(userID, session{
		state: stateAwaitingFoodGrams,
		pending: &models.PendingFoodLog{
			Name:            info.Name,
			CaloriesPer100g: info.CaloriesPer100g,
		},
	})
	b.reply(msg, fmt.Sprintf("%s — %s ккал на 100г.\nСколько грамм вы съели?",
		info.Name, utils.FormatKcal(info.CaloriesPer100g)))
}

func (b *Bot) finishFoodLog(msg *tgbotapi.Message, sess session) {
	userID := msg.From.ID

	grams, err := utils.ParsePositiveInt(msg.Text)
	if err != nil {
		// The pending slot is dropped; the user restarts with /log_food.
		b.sessions.clear(userID)
		b.reply(msg, msgNeedGrams)
		return
	}

	consumed, err := b.tracker.LogFood(userID, sess.pending.CaloriesPer100g, grams)
	b.sessions.clear(userID)
	if err != nil {
		b.replyError(msg, err)
		return
	}
	b.reply(msg, fmt.Sprintf("Записано: %s ккал.", utils.FormatKcal(consumed)))
}

func (b *Bot) handleLogWorkout(msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		b.reply(msg, msgWorkoutUsage)
		return
	}

	workoutType := args[0]
	minutes, err := utils.ParsePositiveInt(args[1])
	if err != nil {
		b.reply(msg, msgWorkoutMinutes)
		return
	}

	burned, waterBonus, err := b.tracker.LogWorkout(msg.From.ID, minutes)
	if err != nil {
		b.replyError(msg, err)
		return
	}
	b.reply(msg, fmt.Sprintf(
		"%s %d мин — %d ккал.\nДополнительно: выпейте %d мл воды.",
		workoutType, minutes, burned, waterBonus,
	))
}

func (b *Bot) handleCheckProgress(msg *tgbotapi.Message) {
	snap, err := b.tracker.Snapshot(msg.From.ID)
	if err != nil {
		b.replyError(msg, err)
		return
	}

	report := fmt.Sprintf(
		"Прогресс:\n\n"+
			"Вода:\n"+
			"Выпито: %d мл из %d мл\n"+
			"Осталось: %d мл\n\n"+
			"Калории:\n"+
			"Потреблено: %s ккал\n"+
			"Сожжено: %d ккал\n"+
			"Баланс: %s / %d ккал",
		snap.LoggedWaterML, snap.WaterGoalML, snap.WaterRemainingML,
		utils.FormatKcal(snap.LoggedCalories), snap.BurnedCalories,
		utils.FormatKcal(snap.CalorieBalance), snap.CalorieGoal,
	)

	imageBytes, err := b.chart.Render(snap)
	if err != nil {
		log.Printf("failed to render progress chart: %v", err)
		b.reply(msg, report)
		return
	}
	b.replyPhoto(msg, imageBytes, report)
}

func (b *Bot) handleRecommend(msg *tgbotapi.Message) {
	snap, err := b.tracker.Snapshot(msg.From.ID)
	if err != nil {
		b.replyError(msg, err)
		return
	}

	recs := b.recommender.Recommend(snap)
	if len(recs) == 0 {
		b.reply(msg, msgAllClear)
		return
	}
	b.reply(msg, strings.Join(recs, "\n\n"))
}

func (b *Bot) replyError(msg *tgbotapi.Message, err error) {
	switch {
	case errors.Is(err, services.ErrNotOnboarded):
		b.reply(msg, msgNeedProfile)
	case errors.Is(err, services.ErrInvalidAmount):
		b.reply(msg, msgNeedNumber)
	default:
		log.Printf("command %q from %d failed: %v", msg.Command(), msg.From.ID, err)
		b.reply(msg, "Что-то пошло не так, попробуйте еще раз.")
	}
}
