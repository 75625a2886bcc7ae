// Package bot is the Telegram transport layer: it parses commands, drives
// the multi-turn dialogs and hands already-validated intents to the core
// services. No domain logic lives here.
package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/VShilovich/fitness-bot/services"
)

type Bot struct {
	api         *tgbotapi.BotAPI
	sessions    *sessions
	onboarding  *services.OnboardingService
	tracker     *services.TrackerService
	recommender *services.RecommendationService
	food        *services.FoodService
	chart       *services.ChartService
}

func New(
	token string,
	onboarding *services.OnboardingService,
	tracker *services.TrackerService,
	recommender *services.RecommendationService,
	food *services.FoodService,
	chart *services.ChartService,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	log.Printf("Авторизован как @%s", api.Self.UserName)

	return &Bot{
		api:         api,
		sessions:    newSessions(),
		onboarding:  onboarding,
		tracker:     tracker,
		recommender: recommender,
		food:        food,
		chart:       chart,
	}, nil
}

// Start runs the long-polling loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			go b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	m := tgbotapi.NewMessage(msg.Chat.ID, text)
	m.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(m); err != nil {
		log.Printf("failed to send message to %d: %v", msg.Chat.ID, err)
	}
}

func (b *Bot) replyPhoto(msg *tgbotapi.Message, imageBytes []byte, caption string) {
	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  "progress.png",
		Bytes: imageBytes,
	})
	photo.Caption = caption
	photo.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("failed to send photo to %d: %v", msg.Chat.ID, err)
	}
}
