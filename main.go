package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitJacketAPI/handlers"
	"fitJacketAPI/internal/notification"
	"fitJacketAPI/middleware"
	"fitJacketAPI/services"

	_ "net/http/pprof"
)

var (
	dbPool                *pgxpool.Pool
	userService           *services.UserService
	progressService       *services.ProgressService
	workoutService        *services.WorkoutService
	mealService           *services.MealService
	injuryService         *services.InjuryService
	reminderService       *services.ReminderService
	challengeService      *services.ChallengeService
	recommendationService *services.RecommendationService
	fcmService            *notification.FCMService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	clerkSecretKey := os.Getenv("CLERK_SECRET_KEY")
	if clerkSecretKey == "" {
		log.Fatal("CLERK_SECRET_KEY environment variable is not set")
	}
	clerk.SetKey(clerkSecretKey)
	log.Println("Clerk initialized successfully")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to database")

	userService = services.NewUserService(dbPool)
	progressService = services.NewProgressService(dbPool)
	workoutService = services.NewWorkoutService(dbPool, progressService)
	mealService = services.NewMealService(dbPool)
	injuryService = services.NewInjuryService(dbPool)
	reminderService = services.NewReminderService(dbPool)
	challengeService = services.NewChallengeService(dbPool)

	// The generative client is injected here when one is configured; with
	// none the service serves the static fallback plan.
	recommendationService = services.NewRecommendationService(nil)

	fcmService, err = notification.NewFCMService("./serviceAccountKey.json")
	if err != nil {
		log.Printf("Warning: Could not initialize FCM: %v", err)
	} else {
		reminderService.SetPushProvider(fcmService)
		log.Println("FCM Push Provider initialized successfully")
	}

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}()

	userHandler := handlers.NewUserHandler(userService)
	progressHandler := handlers.NewProgressHandler(progressService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	mealHandler := handlers.NewMealHandler(mealService)
	injuryHandler := handlers.NewInjuryHandler(injuryService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, userService, workoutService)
	webhookHandler := handlers.NewWebhookHandler(userService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "fitjacket-api"}`))
	}).Methods("GET")

	r.HandleFunc("/webhooks/clerk", webhookHandler.HandleClerkWebhook).Methods("POST")

	api := r.PathPrefix("/api/v1").Subrouter()

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE AUTH HEADER)
	// -------------------------------------------------------------------------
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.ClerkAuthMiddleware)

	protected.HandleFunc("/user", userHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/user/fitness-profile", userHandler.GetFitnessProfile).Methods("GET")
	protected.HandleFunc("/user/update-profile", userHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/user/delete-account", userHandler.DeleteAccount).Methods("DELETE")

	protected.HandleFunc("/dashboard", progressHandler.GetDashboard).Methods("GET")
	protected.HandleFunc("/achievements", progressHandler.GetAchievements).Methods("GET")
	protected.HandleFunc("/leaderboard", progressHandler.GetLeaderboard).Methods("GET")

	protected.HandleFunc("/workouts", workoutHandler.GetWorkouts).Methods("GET")
	protected.HandleFunc("/workouts", workoutHandler.CreateWorkoutLog).Methods("POST")
	protected.HandleFunc("/workouts", workoutHandler.DeleteWorkoutLog).Methods("DELETE")
	protected.HandleFunc("/workouts/guided", workoutHandler.GetGuidedWorkouts).Methods("GET")
	protected.HandleFunc("/workouts/guided/log", workoutHandler.LogGuidedWorkout).Methods("POST")

	protected.HandleFunc("/meals", mealHandler.GetMeals).Methods("GET")
	protected.HandleFunc("/meals", mealHandler.AddMeal).Methods("POST")
	protected.HandleFunc("/meals", mealHandler.DeleteMeal).Methods("DELETE")

	protected.HandleFunc("/injuries", injuryHandler.GetInjuries).Methods("GET")
	protected.HandleFunc("/injuries", injuryHandler.AddInjury).Methods("POST")
	protected.HandleFunc("/injuries", injuryHandler.DeleteInjury).Methods("DELETE")

	protected.HandleFunc("/reminders", reminderHandler.GetReminders).Methods("GET")
	protected.HandleFunc("/reminders", reminderHandler.AddReminder).Methods("POST")
	protected.HandleFunc("/reminders/next", reminderHandler.GetNextReminder).Methods("GET")
	protected.HandleFunc("/reminders/imminent", reminderHandler.GetImminentReminders).Methods("GET")
	protected.HandleFunc("/reminders/complete", reminderHandler.CompleteReminder).Methods("PUT")
	protected.HandleFunc("/reminders/register-device", reminderHandler.RegisterDevice).Methods("POST")

	protected.HandleFunc("/challenges", challengeHandler.GetChallenges).Methods("GET")
	protected.HandleFunc("/challenges/join", challengeHandler.JoinChallenge).Methods("POST")
	protected.HandleFunc("/challenges/complete", challengeHandler.CompleteChallenge).Methods("POST")
	protected.HandleFunc("/challenges/ongoing", challengeHandler.GetOngoingChallenges).Methods("GET")

	protected.HandleFunc("/recommendations/workout-plan", recommendationHandler.GenerateWorkoutPlan).Methods("POST")

	// CORS configuration
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
