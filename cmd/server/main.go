package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"stagebook/internal/api"
	"stagebook/internal/auth"
	"stagebook/internal/pricing"
	"stagebook/internal/repository"
	"stagebook/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("WARNING: STRIPE_SECRET_KEY not set, payments will fail")
	}

	bookingRepo := repository.NewBookingRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)

	oracle := service.NewRateQuoteService(artistRepo)
	aggregator := pricing.NewAggregator(oracle)

	stripeService := service.NewStripeService()
	senderService := service.NewSenderService()
	bookingService := service.NewBookingService(aggregator, stripeService, senderService, bookingRepo, artistRepo, packageRepo)
	availabilityService := service.NewAvailabilityService(artistRepo)
	packageService := service.NewPackageService(packageRepo)
	adminService := service.NewAdminService(adminRepo)
	adminAuthService := service.NewAdminAuthService(adminAuthRepo)
	jobService := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingService, availabilityService, packageService)
	adminHandler := api.NewAdminHandler(adminService)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthService)
	stripeHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), bookingService, senderService)

	c := cron.New()
	c.AddFunc("@every 10m", func() {
		if err := jobService.UpdateFinishedBookings(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("@hourly", func() {
		deleted, err := jobService.DeleteOldPendingBookings(time.Now().UTC().Add(-24 * time.Hour))
		if err != nil {
			log.Printf("Cron Job error: %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("Cron Job: deleted %d stale pending bookings", deleted)
		}
	})
	c.Start()
	defer c.Stop()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/availability", bookingHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/bookings/quote", bookingHandler.QuoteBooking).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/by-session", stripeHandler.GetBookingBySessionIDHandler).Methods("GET")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.CancelBooking).Methods("DELETE")
	r.HandleFunc("/api/packages", bookingHandler.ListPackages).Methods("GET")
	r.HandleFunc("/api/stripe/webhook", stripeHandler.HandleWebhook).Methods("POST")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/users", adminAuthHandler.CreateUserAdmin).Methods("POST")
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{code}", adminHandler.UpdateBookingStatus).Methods("PUT")
	admin.HandleFunc("/bookings/{id}", adminHandler.DeleteBooking).Methods("DELETE")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{os.Getenv("CORS_ALLOWED_ORIGIN")}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}
