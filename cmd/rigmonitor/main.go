package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0r3ntal/RigMonitor/internal/config"
	"github.com/0r3ntal/RigMonitor/internal/handler"
	"github.com/0r3ntal/RigMonitor/internal/logger"
	"github.com/0r3ntal/RigMonitor/internal/scheduler"
	"github.com/0r3ntal/RigMonitor/internal/sensor"
	"github.com/0r3ntal/RigMonitor/internal/server"
	"github.com/0r3ntal/RigMonitor/internal/service"
	"github.com/0r3ntal/RigMonitor/internal/websocket"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "rigmonitor",
		Short:         "Simulated oil rig sensor monitoring dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("rigmonitor: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(conf.Log)
	defer log.Sync()

	gen := sensor.NewGenerator()
	dashboard := service.NewDashboardService(log, gen, conf.Dashboard)
	hub := websocket.NewManager(log)
	sched := scheduler.NewRefreshScheduler(log, dashboard, hub, conf.Dashboard.RefreshSeconds)
	srv := server.New(log, conf.Server.Addr, handler.NewSensorHandler(log, dashboard, hub))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sched.Start(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("rigmonitor started",
		zap.String("addr", conf.Server.Addr),
		zap.Int("fleetSize", conf.Dashboard.FleetSize),
		zap.Int("refreshSeconds", conf.Dashboard.RefreshSeconds))

	select {
	case err := <-errCh:
		sched.Stop()
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sched.Stop()
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
