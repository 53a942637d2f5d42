package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/AbdulrahmanTurki/testQR/config"
	httpapi "github.com/AbdulrahmanTurki/testQR/internal/api/http"
	"github.com/AbdulrahmanTurki/testQR/internal/service"
	"github.com/AbdulrahmanTurki/testQR/internal/storage"
)

const ordersTopic = "orders"

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	notifier := storage.NewRedisNotifier(rdb, ordersTopic)
	board := storage.NewLeaderboard(rdb, 30*24*time.Hour)

	writer := config.NewKafkaWriter(ordersTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	reader := config.NewKafkaReader(ordersTopic, "order-agg")
	defer reader.Close()
	consumer := service.NewOrderConsumer(reader, board)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(
		service.NewAuthService(repo, repo, config.JWTSecret()),
		service.NewOrderService(repo, notifier, publisher),
		service.NewMenuService(repo, repo),
		service.NewQRService(repo, config.PublicBaseURL()),
		service.NewAnalyticsService(repo, board),
		service.NewProfileService(repo),
		notifier,
	)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	srv := cors.Default().Handler(r)

	log.Println("testQR API starting on port " + config.Port())
	log.Fatal(http.ListenAndServe(":"+config.Port(), srv))
}
