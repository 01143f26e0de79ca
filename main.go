package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/track-server/api"
	"github.com/carson-networks/track-server/internal/config"
	"github.com/carson-networks/track-server/internal/form"
	"github.com/carson-networks/track-server/internal/logging"
	"github.com/carson-networks/track-server/internal/operator"
	"github.com/carson-networks/track-server/internal/service"
	"github.com/carson-networks/track-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(logging.ParseLevel(envConfig.LogLevel))
	logger.Info("track-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.NumWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	validator := form.NewAmountValidatorForLocale(envConfig.LocaleTag())
	logger.WithFields(logrus.Fields{
		"locale":    envConfig.Locale,
		"separator": string(validator.Separator()),
	}).Info("Amount validator ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:    logger,
		Port:      envConfig.Port,
		Service:   service.NewService(dbStorage, delegator),
		Storage:   dbStorage,
		Validator: validator,
	}
	httpRest.Serve(ctx)
}
