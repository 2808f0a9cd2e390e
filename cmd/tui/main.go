package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/solcrusher/internal/balance"
	"github.com/rovshanmuradov/solcrusher/internal/blockchain/solbc"
	"github.com/rovshanmuradov/solcrusher/internal/cluster"
	"github.com/rovshanmuradov/solcrusher/internal/config"
	"github.com/rovshanmuradov/solcrusher/internal/logger"
	"github.com/rovshanmuradov/solcrusher/internal/token"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/screen"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
	"go.uber.org/zap"
)

const (
	updateQueueSize = 100
	logFlushEvery   = 5 * time.Second
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to config file (JSON or YAML)")
	envPath := flag.String("env", ".env", "Path to an optional .env file")
	flag.Parse()

	// Create context with signal handling
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	if err := config.LoadDotEnv(*envPath); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Bootstrap logger writes to the terminal until the TUI takes over
	bootLogger, err := logger.CreatePrettyLogger(cfg.DebugLogging)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = bootLogger.Sync()
	}()

	logBuffer, err := logger.NewLogBuffer(cfg.LogBufferSize, cfg.LogFile, bootLogger)
	if err != nil {
		bootLogger.Fatal("Failed to create log buffer", zap.Error(err))
	}
	stopFlush := logBuffer.StartPeriodicFlush(logFlushEvery)

	appLogger, err := logger.CreateTUILogger(cfg.DebugLogging, logBuffer)
	if err != nil {
		bootLogger.Fatal("Failed to init TUI logger", zap.Error(err))
	}

	session := wallet.NewSession()
	switch {
	case cfg.KeypairPath != "":
		if err := session.ConnectKeypair(cfg.KeypairPath); err != nil {
			bootLogger.Fatal("Failed to load keypair", zap.String("path", cfg.KeypairPath), zap.Error(err))
		}
	case cfg.WalletAddress != "":
		if err := session.Connect(cfg.WalletAddress); err != nil {
			bootLogger.Fatal("Invalid wallet address in config", zap.Error(err))
		}
	}

	clusters, err := cluster.NewSelector(cluster.Defaults(cfg.RPCEndpoints), cfg.Cluster)
	if err != nil {
		bootLogger.Fatal("Failed to select cluster", zap.String("cluster", cfg.Cluster), zap.Error(err))
	}

	updates := make(chan tea.Msg, updateQueueSize)
	sender := ui.NewUpdateSender(updates, appLogger)
	poller := balance.NewPoller(sender.BalanceSink(), appLogger,
		balance.WithInterval(cfg.BalanceInterval()),
		balance.WithCommitment(cfg.CommitmentLevel()))

	svc := screen.Services{
		Ctx:             rootCtx,
		Session:         session,
		Clusters:        clusters,
		Tokens:          token.Default(),
		Poller:          poller,
		Dial:            solbc.Dialer(appLogger),
		Updates:         updates,
		LogBuffer:       logBuffer,
		Logger:          appLogger,
		AirdropLamports: cfg.AirdropLamports(),
		ProbeTimeout:    cfg.ProbeTimeout(),
	}

	bootLogger.Info("🚀 Starting SolCrusher",
		zap.String("cluster", clusters.Active().Name),
		zap.Bool("wallet", session.Connected()))

	recovery := ui.NewRecoveryHandler(appLogger, func() (tea.Model, []tea.ProgramOption) {
		return ui.NewSafeUIWrapper(screen.NewApp(svc), appLogger), []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		}
	})

	runErr := recovery.RunWithRecovery(rootCtx)

	poller.Stop()
	sender.Close()
	close(stopFlush)
	if err := logBuffer.Close(); err != nil {
		bootLogger.Warn("Failed to close log buffer", zap.Error(err))
	}

	if runErr != nil {
		bootLogger.Fatal("💥 TUI application failed", zap.Error(runErr))
	}
	bootLogger.Info("🛑 SolCrusher stopped")
}
