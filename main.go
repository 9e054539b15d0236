package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	equipmentApi "agri-connect/internal/equipment/api"
	equipmentApp "agri-connect/internal/equipment/app"
	equipmentRepo "agri-connect/internal/equipment/repo"
	jobApi "agri-connect/internal/job/api"
	jobApp "agri-connect/internal/job/app"
	jobRepo "agri-connect/internal/job/repo"
	notifyApi "agri-connect/internal/notify/api"
	notifyApp "agri-connect/internal/notify/app"
	"agri-connect/internal/notify/consumer"
	notifyRepo "agri-connect/internal/notify/repo"
	notifyRmq "agri-connect/internal/notify/rmq"
	"agri-connect/internal/shared/ai"
	"agri-connect/internal/shared/config"
	"agri-connect/internal/shared/db"
	"agri-connect/internal/shared/geocode"
	"agri-connect/internal/shared/health"
	"agri-connect/internal/shared/middleware"
	"agri-connect/internal/shared/mq"
	"agri-connect/internal/shared/util"
	userApi "agri-connect/internal/user/api"
	userApp "agri-connect/internal/user/app"
	userRepo "agri-connect/internal/user/repo"
)

func main() {
	log := util.New()

	log.Info("AgriConnect", "Starting service initialization...")

	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("Config", err)
	}
	log.OK("Config", "Configuration loaded successfully")

	database := db.ConnectToDB(&cfg.Database)
	defer database.Close()
	log.OK("Database", "Connected successfully")

	rmqConn, rmqCh, err := mq.ConnectToRMQ(&cfg.RabbitMQ)
	if err != nil {
		log.Fatal("RabbitMQ", err)
	}
	defer rmqConn.Close()
	defer rmqCh.Close()
	log.OK("RabbitMQ", "Connected successfully")

	var generator ai.Generator
	if cfg.AI.APIKey != "" {
		generator = ai.NewGemini(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model)
		log.OK("AI", "Content generator configured")
	} else {
		generator = ai.NewStatic()
		log.Warn("AI", "No API key configured, using static fallback content")
	}
	geocoder := geocode.NewClient(cfg.Geocode.Endpoint)

	users := userRepo.NewUserRepo(database)
	jobs := jobRepo.NewJobRepo(database)
	equipment := equipmentRepo.NewEquipmentRepo(database)
	notifications := notifyRepo.NewNotificationRepo(database)

	publisher := mq.NewPublisher(rmqCh)
	broker := notifyRmq.NewBroker(publisher)
	fanout := notifyApp.NewEngine(users, notifications, broker, log)

	userService := userApp.NewUserService(users, fanout, geocoder, log)
	jobService := jobApp.NewJobService(jobs, fanout, generator, log)
	equipmentService := equipmentApp.NewEquipmentService(equipment, generator, log)
	notifyService := notifyApp.NewNotificationService(notifications, log)

	wsManager := notifyApi.NewWSManager()

	pushConsumer := consumer.NewPushConsumer(rmqCh, wsManager)
	if err := pushConsumer.Start(); err != nil {
		log.Fatal("PushConsumer", err)
	}
	log.OK("PushConsumer", "Started successfully")

	mux := http.NewServeMux()
	userApi.NewHandler(userService).RegisterRoutes(mux)
	jobApi.NewHandler(jobService).RegisterRoutes(mux)
	equipmentApi.NewHandler(equipmentService).RegisterRoutes(mux)
	notifyApi.NewHandler(notifyService, wsManager).RegisterRoutes(mux)
	mux.HandleFunc("/health", health.Handler("agri-connect", database, rmqConn))

	port := cfg.Server.Port
	if port == "" {
		port = "3000"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: middleware.RequestID(mux),
	}

	go func() {
		log.OK("HTTP", "agri-connect running on :"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("AgriConnect", "Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP", err)
	} else {
		log.OK("HTTP", "Server stopped gracefully")
	}
	log.Info("AgriConnect", "Shutdown complete")
}
