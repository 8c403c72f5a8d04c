package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/novaclaw/agency-api/internal/entity"
	"github.com/novaclaw/agency-api/internal/infra/database"
	"github.com/novaclaw/agency-api/internal/infra/http/handlers"
	"github.com/novaclaw/agency-api/internal/infra/http/middleware"
	"github.com/novaclaw/agency-api/internal/infra/integration/anthropic"
	"github.com/novaclaw/agency-api/internal/infra/integration/resend"
	"github.com/novaclaw/agency-api/internal/infra/mail"
	"github.com/novaclaw/agency-api/internal/infra/queue"
	"github.com/novaclaw/agency-api/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	// 1. Store. A missing or unreachable database only degrades the intake
	// pipeline, it never keeps the API from serving.
	var db *sql.DB
	var leadRepo entity.LeadRepositoryInterface
	var logRepo entity.AgentLogRepositoryInterface
	var contentRepo entity.ContentRepositoryInterface

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Printf("⚠️ Database unavailable, running without persistence: %v", err)
			db = nil
		} else {
			defer db.Close()
			leadRepo = database.NewLeadRepository(db)
			logRepo = database.NewAgentLogRepository(db)
			contentRepo = database.NewContentRepository(db)
		}
	} else {
		log.Println("⚠️ DATABASE_URL not set, running without persistence")
	}

	// 2. Notifier: Resend first, SMTP as fallback.
	var notifier usecase.NotifierService
	notificationEmail := os.Getenv("NOTIFICATION_EMAIL")
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		from := os.Getenv("RESEND_FROM_EMAIL")
		if from == "" {
			from = "NovaClaw <onboarding@resend.dev>"
		}
		notifier = mail.NewLeadNotifier(resend.NewClient(apiKey, from), notificationEmail)
	} else if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		notifier = mail.NewSMTPNotifier(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_USER"), notificationEmail,
		)
	} else {
		log.Println("⚠️ No notifier configured, lead notifications disabled")
	}

	// 3. Optional lead event broker for downstream sales tooling.
	var producer usecase.LeadEventProducerInterface
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		var err error
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ unavailable, lead events disabled: %v", err)
			rabbitMQ = nil
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		}
	}

	// 4. Chat completion provider. Without a key the widget runs in demo mode.
	var completer usecase.ChatCompleterInterface
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		completer = anthropic.NewClient(apiKey)
	} else {
		log.Println("⚠️ ANTHROPIC_API_KEY not set, chat runs in demo mode")
	}

	// 5. UseCases
	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, logRepo, notifier, producer)
	chatUC := usecase.NewChatUseCase(completer)
	statusUC := usecase.NewAgentStatusUseCase(logRepo, contentRepo)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC, leadRepo, os.Getenv("AGENT_CRON_SECRET"))
	chatHandler := handlers.NewChatHandler(chatUC)
	statusHandler := handlers.NewAgentStatusHandler(statusUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/leads", leadHandler.HandleCapture)
	r.Get("/leads", leadHandler.HandleList)
	r.Post("/chat", chatHandler.Handle)
	r.Get("/agent-status", statusHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 NovaClaw agency API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
