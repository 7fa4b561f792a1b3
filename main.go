package main

import (
	"context"
	"log"
	"os"
	"time"

	"restomanage/config"
	httpapi "restomanage/internal/api/http"
	"restomanage/internal/service"
	"restomanage/internal/storage"
)

const orderEventsTopic = "order-events"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, time.Minute)

	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter(orderEventsTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(orderEventsTopic, "restomanage-reports")
		defer reader.Close()
		go service.NewConsumer(reader, cache).Start(context.Background())
	}

	qr := service.DefaultQRGenerator{BaseURL: os.Getenv("PUBLIC_BASE_URL")}

	dishes := service.NewDishService(repo)
	clients := service.NewClientService(repo)
	orders := service.NewOrderService(repo, cache, publisher, qr)
	analytics := service.NewAnalyticsService(repo, cache)

	handler := httpapi.NewHandler(dishes, clients, orders, analytics)
	httpapi.StartServer(config.HTTPAddr(), httpapi.NewRouter(handler))
}
