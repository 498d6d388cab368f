package repo

import (
	"github.com/andredsp/taxgate/internal/pg"
	packrepo "github.com/andredsp/taxgate/internal/repo/pack-repo"
	paymentrepo "github.com/andredsp/taxgate/internal/repo/payment-repo"
	submissionrepo "github.com/andredsp/taxgate/internal/repo/submission-repo"
	userrepo "github.com/andredsp/taxgate/internal/repo/user-repo"
	userpackrepo "github.com/andredsp/taxgate/internal/repo/userpack-repo"
	"github.com/andredsp/taxgate/internal/service/authservice"
	"github.com/andredsp/taxgate/internal/service/paymentservice"
	"github.com/andredsp/taxgate/internal/service/submissionservice"
)

type Repositories struct {
	UserRepo       authservice.Repo
	PackRepo       paymentservice.PackRepo
	PaymentRepo    paymentservice.PaymentRepo
	UserPackRepo   *userpackrepo.Repository
	SubmissionRepo submissionservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		PackRepo:       packrepo.New(conn),
		PaymentRepo:    paymentrepo.New(conn),
		UserPackRepo:   userpackrepo.New(conn),
		SubmissionRepo: submissionrepo.New(conn),
	}
}
