package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/VShilovich/fitness-bot/bot"
	"github.com/VShilovich/fitness-bot/config"
	"github.com/VShilovich/fitness-bot/controllers"
	"github.com/VShilovich/fitness-bot/routes"
	"github.com/VShilovich/fitness-bot/services"
	"github.com/VShilovich/fitness-bot/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	users := store.NewMemory()
	weather := services.NewWeatherService(cfg.WeatherAPIKey)
	food := services.NewFoodService(cfg.SpoonacularAPIKey)
	chart := services.NewChartService()
	tracker := services.NewTrackerService(users)
	onboarding := services.NewOnboardingService(users, weather)
	recommender := services.NewRecommendationService()

	b, err := bot.New(cfg.BotToken, onboarding, tracker, recommender, food, chart)
	if err != nil {
		log.Fatalf("Не удалось создать бота: %v", err)
	}

	progress := controllers.NewProgressController(tracker, chart)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: routes.SetupRouter(progress)}
	go func() {
		log.Printf("HTTP сервер слушает %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP сервер: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Бот запущен и готов к работе!")
	if err := b.Start(ctx); err != nil {
		log.Fatalf("Бот завершился с ошибкой: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Println("Бот остановлен")
}
