package main

import (
	"context"
	"log"
	"time"

	"scamwise-backend/internal/catalog"
	"scamwise-backend/internal/config"
	"scamwise-backend/internal/db"
	"scamwise-backend/internal/event"
	"scamwise-backend/internal/handlers"
	"scamwise-backend/internal/middleware"
	"scamwise-backend/internal/repository"
	"scamwise-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	db.InitMongo(cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	database := db.Client.Database(cfg.MongoDB.Database)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis leaderboard cache
	var cache *redis.Client
	if cfg.Redis.Address != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	} else {
		log.Println("Redis not configured, leaderboard responses will not be cached")
	}

	// Repositories
	userRepo := repository.NewUserRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	storyRepo := repository.NewStoryRepository(database)
	contactRepo := repository.NewContactRepository(database)

	if err := progressRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create progress indexes: %v", err)
	}

	// Services
	modules := catalog.Default()
	emailService := service.NewEmailService(&cfg.Email)
	authService := service.NewAuthService(userRepo, emailService, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	progressService := service.NewProgressService(progressRepo, userRepo, modules)
	quizService := service.NewQuizService(questionRepo, progressService)
	leaderboardService := service.NewLeaderboardService(progressRepo, cache)
	paystackClient := service.NewPaystackClient(cfg.Paystack.SecretKey, cfg.Paystack.BaseURL)
	subscriptionService := service.NewSubscriptionService(userRepo, paystackClient, emailService, pub(publisher), cfg.Paystack.CallbackURL)
	storyService := service.NewStoryService(storyRepo)
	contactLimiter := service.NewRateLimiter(time.Hour, cfg.Contact.MaxPerHour)
	contactService := service.NewContactService(contactRepo, emailService, contactLimiter, pub(publisher), cfg.Email.AdminTo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService, progressService)
	questionHandler := handlers.NewQuestionHandler(questionRepo)
	learningHandler := handlers.NewLearningHandler(progressService, leaderboardService)
	paymentHandler := handlers.NewPaymentHandler(subscriptionService)
	storyHandler := handlers.NewStoryHandler(storyService)
	contactHandler := handlers.NewContactHandler(contactService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(authService)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		quizzes := api.Group("/quizzes")
		{
			// "module" and "user" prefixes keep the GET tree free of
			// wildcard conflicts in gin's router.
			quizzes.GET("/module/:moduleId", quizHandler.GetModuleQuiz)
			quizzes.POST("/:quizId/submit", requireAuth, func(c *gin.Context) {
				quizHandler.SubmitQuiz(c)
				if publisher != nil {
					publisher.Publish(event.QuizSubmitted, gin.H{
						"user_id":   middleware.CallerID(c),
						"quiz_id":   c.Param("quizId"),
						"timestamp": time.Now(),
					})
				}
			})
			quizzes.GET("/user/:userId/attempts", requireAuth, quizHandler.GetUserAttempts)
		}

		questions := api.Group("/questions", requireAuth, requireAdmin)
		{
			questions.POST("/", questionHandler.CreateQuestion)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		learning := api.Group("/learning")
		{
			learning.GET("/stats", requireAuth, learningHandler.GetStats)
			learning.GET("/leaderboard", learningHandler.GetLeaderboard)
			learning.POST("/modules/:moduleId/complete", requireAuth, func(c *gin.Context) {
				learningHandler.CompleteModule(c)
				if publisher != nil {
					publisher.Publish(event.ModuleCompleted, gin.H{
						"user_id":   middleware.CallerID(c),
						"module_id": c.Param("moduleId"),
						"timestamp": time.Now(),
					})
				}
			})
		}

		payments := api.Group("/payments")
		{
			payments.GET("/subscription-status", requireAuth, paymentHandler.SubscriptionStatus)
			payments.POST("/initialize", requireAuth, paymentHandler.InitializePayment)
			payments.POST("/verify/:reference", requireAuth, paymentHandler.VerifyPayment)
			payments.POST("/webhook", paymentHandler.Webhook)
			payments.POST("/cancel-subscription", requireAuth, paymentHandler.CancelSubscription)
		}

		stories := api.Group("/stories")
		{
			stories.GET("/", storyHandler.ListStories)
			stories.GET("/:id", storyHandler.GetStory)
			stories.POST("/", requireAuth, requireAdmin, storyHandler.CreateStory)
			stories.PUT("/:id", requireAuth, requireAdmin, storyHandler.UpdateStory)
			stories.DELETE("/:id", requireAuth, requireAdmin, storyHandler.DeleteStory)
		}

		api.POST("/contact", contactHandler.Submit)
	}

	r.Run(":" + cfg.Server.Port)
}

// pub adapts the optional publisher to the services' interface without
// handing them a typed nil.
func pub(p *event.EventPublisher) service.Publisher {
	if p == nil {
		return nil
	}
	return p
}
