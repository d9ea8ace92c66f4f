package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/config"
	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/handler"
	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/repository"
	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/services"
	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/utils"
)

func main() {
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx)
	shutdownManager.StartListening()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	mongoClient, err := utils.NewMongoDBConnection(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := mongoClient.Database(cfg.Mongo.DBName)

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	rdb, err := utils.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing Redis connection...")
		return rdb.Close()
	})

	userRepo := repository.NewAccountRepository(db, "users")
	adminRepo := repository.NewAccountRepository(db, "admins")
	complaintRepo := repository.NewComplaintRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	eventRepo := repository.NewEventRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	authService := services.NewAuthService(userRepo, adminRepo, cfg.Auth.AdminEmailDomain)
	complaintService := services.NewComplaintService(complaintRepo, statusRepo)
	eventService := services.NewEventService(eventRepo, rdb)
	feedbackService := services.NewFeedbackService(feedbackRepo)

	authHandler := handler.NewAuthHandler(authService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	eventHandler := handler.NewEventHandler(eventService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	router := gin.Default()
	router.Use(cors.Default())

	user := router.Group("/user")
	{
		user.POST("/signup", authHandler.UserSignup)
		user.POST("/login", authHandler.UserLogin)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/signup", authHandler.AdminSignup)
		admin.POST("/login", authHandler.AdminLogin)
		admin.POST("/post-event", eventHandler.PostEvent)
	}

	router.POST("/submit-complaint", complaintHandler.Submit)
	router.GET("/get-complaints", complaintHandler.GetComplaints)
	router.POST("/update-status/:date", complaintHandler.UpdateStatus)
	router.GET("/get-status", complaintHandler.GetStatusHistory)

	router.GET("/events", eventHandler.GetEvents)

	api := router.Group("/api")
	{
		api.POST("/feedback", feedbackHandler.PostFeedback)
		api.GET("/feedback", feedbackHandler.GetFeedback)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Swachatha backend running on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	select {}
}
