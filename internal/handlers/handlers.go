package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/andredsp/taxgate/docs"
	authhandlers "github.com/andredsp/taxgate/internal/handlers/auth"
	credithandlers "github.com/andredsp/taxgate/internal/handlers/credits"
	packhandlers "github.com/andredsp/taxgate/internal/handlers/packs"
	paymenthandlers "github.com/andredsp/taxgate/internal/handlers/payments"
	submissionhandlers "github.com/andredsp/taxgate/internal/handlers/submissions"
	"github.com/andredsp/taxgate/internal/service"
	"github.com/andredsp/taxgate/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PackHandler interface {
	ListPacks(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	ProcessPayment(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	GetCapability(w http.ResponseWriter, r *http.Request)
	GetCredits(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandler interface {
	CreateSubmission(w http.ResponseWriter, r *http.Request)
	GetSubmissions(w http.ResponseWriter, r *http.Request)
	GetSubmission(w http.ResponseWriter, r *http.Request)
	RequestCalculation(w http.ResponseWriter, r *http.Request)
	GetResults(w http.ResponseWriter, r *http.Request)
	UpdateTitle(w http.ResponseWriter, r *http.Request)
	AttachFile(w http.ResponseWriter, r *http.Request)
	GetFiles(w http.ResponseWriter, r *http.Request)
	DeleteFile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	PackHandler       PackHandler
	PaymentHandler    PaymentHandler
	CreditHandler     CreditHandler
	SubmissionHandler SubmissionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		PackHandler:       packhandlers.New(s.PackService),
		PaymentHandler:    paymenthandlers.New(s.PaymentService),
		CreditHandler:     credithandlers.New(s.CreditService),
		SubmissionHandler: submissionhandlers.New(s.SubmissionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/packs", h.PackHandler.ListPacks)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.CreatePayment)
				r.Get("/", h.PaymentHandler.GetPayments)
				r.Get("/{id}", h.PaymentHandler.GetPayment)
				r.Post("/{id}/process", h.PaymentHandler.ProcessPayment)
			})
			r.Get("/capability", h.CreditHandler.GetCapability)
			r.Get("/credits", h.CreditHandler.GetCredits)
			r.Route("/submissions", func(r chi.Router) {
				r.Post("/", h.SubmissionHandler.CreateSubmission)
				r.Get("/", h.SubmissionHandler.GetSubmissions)
				r.Get("/{id}", h.SubmissionHandler.GetSubmission)
				r.Patch("/{id}", h.SubmissionHandler.UpdateTitle)
				r.Post("/{id}/calculate", h.SubmissionHandler.RequestCalculation)
				r.Get("/{id}/results", h.SubmissionHandler.GetResults)
				r.Post("/{id}/files", h.SubmissionHandler.AttachFile)
				r.Get("/{id}/files", h.SubmissionHandler.GetFiles)
				r.Delete("/{id}/files/{fileID}", h.SubmissionHandler.DeleteFile)
			})
		})
	})

	return r
}
