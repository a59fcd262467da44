package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ledgerview/dashboard-server/internal/handlers/v1/category"
	"github.com/ledgerview/dashboard-server/internal/handlers/v1/status"
	"github.com/ledgerview/dashboard-server/internal/handlers/v1/tag"
	"github.com/ledgerview/dashboard-server/internal/handlers/v1/transaction"
	"github.com/ledgerview/dashboard-server/internal/logging"
	"github.com/ledgerview/dashboard-server/internal/operator"
	"github.com/ledgerview/dashboard-server/internal/service"
	"github.com/ledgerview/dashboard-server/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Addr     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Storage  *storage.Storage

	server *http.Server
}

func (r *Rest) Serve() error {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Transaction Dashboard API", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGridTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewSummaryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	tag.NewListTagsHandler(r.Service.Tag).Register(humaAPI)

	r.server = &http.Server{
		Addr:              r.Addr,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return r.server.Shutdown(ctx)
}
