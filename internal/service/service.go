package service

import (
	"github.com/andredsp/taxgate/internal/cache"
	"github.com/andredsp/taxgate/internal/gateway"
	authhandlers "github.com/andredsp/taxgate/internal/handlers/auth"
	credithandlers "github.com/andredsp/taxgate/internal/handlers/credits"
	packhandlers "github.com/andredsp/taxgate/internal/handlers/packs"
	paymenthandlers "github.com/andredsp/taxgate/internal/handlers/payments"
	submissionhandlers "github.com/andredsp/taxgate/internal/handlers/submissions"
	"github.com/andredsp/taxgate/internal/pg"
	"github.com/andredsp/taxgate/internal/repo"
	"github.com/andredsp/taxgate/internal/service/authservice"
	"github.com/andredsp/taxgate/internal/service/creditservice"
	"github.com/andredsp/taxgate/internal/service/paymentservice"
	"github.com/andredsp/taxgate/internal/service/submissionservice"
	pkgauth "github.com/andredsp/taxgate/pkg/auth"
	"github.com/andredsp/taxgate/pkg/filestore"
)

type Services struct {
	AuthService       authhandlers.Service
	PackService       packhandlers.Service
	PaymentService    paymenthandlers.Service
	CreditService     credithandlers.Service
	SubmissionService submissionhandlers.Service

	// Submissions is the concrete orchestrator, for collaborators that
	// record calculation outcomes.
	Submissions *submissionservice.Service
}

type Deps struct {
	TXManager pg.TXManager
	Gateway   gateway.Gateway
	Engine    submissionservice.EngineClient
	Files     filestore.Store
	PackCache *cache.PackCache
	Currency  string
}

func New(repo *repo.Repositories, deps Deps) *Services {
	paymentService := paymentservice.New(repo.PackRepo, repo.PaymentRepo, repo.UserPackRepo, deps.Gateway, deps.TXManager, deps.PackCache, deps.Currency)
	creditService := creditservice.New(repo.UserPackRepo)
	submissionService := submissionservice.New(repo.SubmissionRepo, repo.UserPackRepo, deps.Engine, deps.Files)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		PackService:       paymentService,
		PaymentService:    paymentService,
		CreditService:     creditService,
		SubmissionService: submissionService,
		Submissions:       submissionService,
	}
}
