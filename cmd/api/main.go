package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adbonpastor/church-api/internal/infra/database"
	"github.com/adbonpastor/church-api/internal/infra/http/handlers"
	custommw "github.com/adbonpastor/church-api/internal/infra/http/middleware"
	"github.com/adbonpastor/church-api/internal/infra/integration/zippopotam"
	"github.com/adbonpastor/church-api/internal/infra/mail"
	"github.com/adbonpastor/church-api/internal/infra/queue"
	"github.com/adbonpastor/church-api/internal/infra/storage"
	"github.com/adbonpastor/church-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositórios
	memberRepo := database.NewMemberRepository(db)
	familyRepo := database.NewFamilyMemberRepository(db)
	retreatRepo := database.NewRetreatRepository(db)
	announcementRepo := database.NewAnnouncementRepository(db)
	eventRepo := database.NewEventRepository(db)
	prayerRepo := database.NewPrayerRequestRepository(db)
	testimonyRepo := database.NewTestimonyRepository(db)
	galleryRepo := database.NewGalleryRepository(db)

	// 2. Email
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 3. Fila de boas-vindas. Sem RabbitMQ o cadastro continua funcionando;
	// o email sai direto do usecase.
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unavailable, welcome emails will be sent inline: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// 4. Storage de fotos e comprovantes
	s3Storage, err := storage.NewS3Storage(context.Background(), os.Getenv("S3_BUCKET_NAME"), os.Getenv("AWS_REGION"))
	if err != nil {
		log.Fatal(err)
	}

	// 5. Consulta de código postal (enriquecimento, nunca bloqueia nada)
	postal := zippopotam.NewClient(os.Getenv("ZIPPOPOTAM_URL"))

	// 6. UseCases
	registerUC := usecase.NewRegisterMemberUseCase(
		memberRepo, familyRepo, producer, mailSender,
		os.Getenv("MEMBER_CARD_BASE_URL"),
	)
	retreatUC := usecase.NewRetreatSignupUseCase(retreatRepo, memberRepo)
	dashboardUC := usecase.NewDashboardUseCase(memberRepo, retreatRepo, announcementRepo)

	// 7. Handlers
	memberHandler := handlers.NewMemberHandler(registerUC, memberRepo)
	familyHandler := handlers.NewFamilyHandler(familyRepo)
	validationHandler := handlers.NewValidationHandler()
	lookupHandler := handlers.NewLookupHandler(postal)
	retreatHandler := handlers.NewRetreatHandler(retreatUC, retreatRepo, s3Storage)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	announcementHandler := handlers.NewAnnouncementHandler(announcementRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	prayerHandler := handlers.NewPrayerHandler(prayerRepo, testimonyRepo)
	galleryHandler := handlers.NewGalleryHandler(galleryRepo, s3Storage)

	healthHandler := handlers.NewHealthHandler(db, nil)
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	}

	// 8. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(custommw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/members", memberHandler.Register)
	r.Get("/members/{memberId}", memberHandler.GetByMemberID)
	r.Get("/members/{id}/family", familyHandler.List)
	r.Put("/members/{id}/family", familyHandler.Save)
	r.Delete("/members/{id}/family/{index}", familyHandler.Remove)

	r.Post("/validate/document", validationHandler.Handle)
	r.Get("/lookup/municipality", lookupHandler.HandleMunicipality)

	r.Post("/retreat/registrations", retreatHandler.Signup)
	r.Post("/retreat/registrations/{id}/proof", retreatHandler.UploadProof)

	r.Get("/announcements", announcementHandler.List)
	r.Get("/events", eventHandler.List)

	r.Post("/prayer-requests", prayerHandler.SubmitPrayer)
	r.Get("/prayer-requests", prayerHandler.ListPrayers)
	r.Post("/testimonies", prayerHandler.SubmitTestimony)
	r.Get("/testimonies", prayerHandler.ListTestimonies)

	r.Get("/galleries", galleryHandler.List)
	r.Get("/galleries/{id}/photos", galleryHandler.ListPhotos)
	r.Post("/galleries/{id}/photos", galleryHandler.UploadPhoto)

	// Rotas administrativas (autorização fica no proxy/gateway, fora daqui)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.Handle)
		r.Get("/members", memberHandler.List)
		r.Get("/retreat/registrations", retreatHandler.List)
		r.Patch("/retreat/registrations/{id}/status", retreatHandler.UpdateStatus)
		r.Post("/announcements", announcementHandler.Create)
		r.Delete("/announcements/{id}", announcementHandler.Delete)
		r.Post("/events", eventHandler.Create)
		r.Delete("/events/{id}", eventHandler.Delete)
		r.Patch("/prayer-requests/{id}/approve", prayerHandler.ApprovePrayer)
		r.Patch("/prayer-requests/{id}/answer", prayerHandler.AnswerPrayer)
		r.Patch("/testimonies/{id}/approve", prayerHandler.ApproveTestimony)
		r.Post("/galleries", galleryHandler.Create)
		r.Patch("/galleries/photos/{photoId}/approve", galleryHandler.ApprovePhoto)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 AD Bon Pastor API running on port %s", port)
	http.ListenAndServe(":"+port, r)
}
