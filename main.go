package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ledgerview/dashboard-server/api"
	"github.com/ledgerview/dashboard-server/internal/config"
	"github.com/ledgerview/dashboard-server/internal/logging"
	"github.com/ledgerview/dashboard-server/internal/operator"
	"github.com/ledgerview/dashboard-server/internal/service"
	"github.com/ledgerview/dashboard-server/internal/storage"
)

func main() {
	envConfig, err := config.Load(os.Getenv("DASH_CONFIG_FILE"))
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	logger := logging.SetupLogging(envConfig.Log.Level)
	logrus.Info("dashboard-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.Operator.Workers)
	delegator.Start()

	httpRest := api.Rest{
		Logger:   logger,
		Addr:     net.JoinHostPort(envConfig.HTTP.Host, envConfig.HTTP.Port),
		Service:  svc,
		Operator: delegator,
		Storage:  dbStorage,
	}

	go func() {
		if err := httpRest.Serve(); err != nil {
			logger.WithError(err).Fatal("HttpServer.Serve")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HttpServer.Shutdown")
	}

	delegator.Stop()
	_ = dbStorage.Close()
}
