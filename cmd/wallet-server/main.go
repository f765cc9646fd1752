package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/elrond-wallet/docs"
	"github.com/AlexZinkM/elrond-wallet/internal/api"
	"github.com/AlexZinkM/elrond-wallet/internal/client"
	"github.com/AlexZinkM/elrond-wallet/internal/config"
	"github.com/AlexZinkM/elrond-wallet/internal/handler"
	"github.com/AlexZinkM/elrond-wallet/internal/logger"
	"github.com/AlexZinkM/elrond-wallet/wallet"

	"go.uber.org/zap"
)

// @title        Elrond local wallet API
// @version      1.0
// @description  Local single-user eGLD wallet backed by an encrypted key file.
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(config.GetLogEnv()); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := config.PromptForPassword(); err != nil {
		logger.Fatal("failed to read password", zap.Error(err))
	}

	network := config.GetElrondNetwork()
	svc := wallet.NewService(
		config.GetElrondFilePath(),
		network,
		client.NewElrondClient(config.GetElrondGatewayURL()),
		client.NewCoinGeckoClient(config.GetCoinGeckoURL()),
		config.GetPayCooldown(),
	)

	elrondHandler, err := handler.NewElrondHandler(svc, config.GetElrondPasswordBytes)
	if err != nil {
		logger.Fatal("failed to create handler", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           api.SetupRouter(elrondHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("network", network.String()),
			zap.String("gateway", config.GetElrondGatewayURL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
