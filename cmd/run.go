package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/flowclient"
	"github.com/0xPolygon/flowclient/access"
	"github.com/0xPolygon/flowclient/common"
	"github.com/0xPolygon/flowclient/config"
	"github.com/0xPolygon/flowclient/eventwatcher"
	"github.com/0xPolygon/flowclient/journal"
	"github.com/0xPolygon/flowclient/log"
	"github.com/0xPolygon/flowclient/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	metricsReadHeader = 5 * time.Second
)

var (
	errTerminated   = errors.New("terminated by signal")
	errNoComponents = errors.New("no components to run")
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		flowclient.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	components, err := common.ParseComponents(cliCtx.StringSlice(config.FlagComponents))
	if err != nil {
		return err
	}

	client, err := newAccessClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	sqlJournal, err := newJournal(c)
	if err != nil {
		return err
	}
	if sqlJournal != nil {
		defer sqlJournal.Close()
	}

	ctx, cancel := context.WithCancelCause(cliCtx.Context)
	defer cancel(nil)
	go waitSignal(ctx, cancel)

	if c.Metrics.Enabled && !common.IsNeeded([]string{common.METRICS}, components) {
		components = append(components, common.METRICS)
	}
	if len(components) == 0 {
		return errNoComponents
	}

	var watcher *eventwatcher.EventWatcher
	if common.IsNeeded([]string{common.EVENT_WATCHER}, components) {
		watcher, err = createEventWatcher(c.EventWatcher, client, sqlJournal)
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, component := range components {
		switch component {
		case common.EVENT_WATCHER:
			go logBatches(gctx, watcher.Subscribe("log"))
			g.Go(func() error {
				watcher.Start(gctx)
				return nil
			})
		case common.RPC:
			server := createRPC(c.RPC, client, sqlJournal, watcher)
			// the server can not be stopped, so it stays out of the group and only
			// reports a failure to start
			go func() {
				if err := server.Start(); err != nil {
					cancel(fmt.Errorf("rpc server: %w", err))
				}
			}()
		case common.METRICS:
			server := createMetricsServer(c.Metrics, watcher)
			g.Go(func() error {
				return runMetricsServer(gctx, server)
			})
		}
	}

	return componentsError(ctx, waitComponents(gctx, g, shutdownTimeout))
}

// waitComponents runs until ctx is done or a component of g fails. Once ctx is
// done the components of g have timeout to return.
func waitComponents(ctx context.Context, g *errgroup.Group, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		// nothing left in the group, the rpc server keeps running until ctx is done
		<-ctx.Done()
		return context.Cause(ctx)
	case <-ctx.Done():
	}
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return context.Cause(ctx)
	case <-time.After(timeout):
		log.Warnf("components still running after %s, exiting", timeout)
		return context.Cause(ctx)
	}
}

func componentsError(ctx context.Context, err error) error {
	if errors.Is(context.Cause(ctx), errTerminated) {
		return nil
	}
	return err
}

func createEventWatcher(cfg eventwatcher.Config,
	client *access.Client, sqlJournal *journal.SQLJournal) (*eventwatcher.EventWatcher, error) {
	logger := log.WithFields("module", common.EVENT_WATCHER)
	var store eventwatcher.HeightStore
	if sqlJournal != nil {
		store = sqlJournal
	}
	return eventwatcher.NewEventWatcher(logger, cfg, client, store, nil)
}

func logBatches(ctx context.Context, batches <-chan eventwatcher.EventBatch) {
	logger := log.WithFields("module", common.EVENT_WATCHER)
	for {
		select {
		case <-ctx.Done():
			return
		case batch := <-batches:
			for _, block := range batch.Blocks {
				for _, e := range block.Events {
					logger.Infof("block %d tx %s: %s", block.Height, e.TransactionID, e.Type)
				}
			}
		}
	}
}

func createRPC(
	cfg jRPC.Config,
	client *access.Client,
	sqlJournal *journal.SQLJournal,
	watcher *eventwatcher.EventWatcher,
) *jRPC.Server {
	logger := log.WithFields("module", common.RPC)
	// typed nils must not reach the endpoints as non nil interfaces
	var j rpc.Journaler
	if sqlJournal != nil {
		j = sqlJournal
	}
	var w rpc.WatcherStatuser
	if watcher != nil {
		w = watcher
	}
	services := []jRPC.Service{
		{
			Name:    rpc.FLOW,
			Service: rpc.NewFlowEndpoints(logger, cfg.ReadTimeout.Duration, client, j, w),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func createMetricsServer(cfg config.MetricsConfig, watcher *eventwatcher.EventWatcher) *http.Server {
	// the default registry holds the runtime collectors and the access client metrics
	registry := prometheus.NewRegistry()
	if watcher != nil {
		registerWatcherMetrics(registry, watcher)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		prometheus.Gatherers{prometheus.DefaultGatherer, registry}, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeader,
	}
}

func registerWatcherMetrics(registry prometheus.Registerer, watcher *eventwatcher.EventWatcher) {
	labels := prometheus.Labels{"watcher": watcher.Status().Name}
	registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "flowclient",
			Subsystem:   "eventwatcher",
			Name:        "last_processed_height",
			Help:        "Last block height whose events were delivered",
			ConstLabels: labels,
		}, func() float64 { return float64(watcher.Status().LastProcessedHeight) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "flowclient",
			Subsystem:   "eventwatcher",
			Name:        "latest_height",
			Help:        "Latest block height seen on the access node",
			ConstLabels: labels,
		}, func() float64 { return float64(watcher.Status().LatestHeight) }),
	)
}

func runMetricsServer(ctx context.Context, server *http.Server) error {
	errC := make(chan error, 1)
	go func() {
		log.Infof("metrics server listening on %s", server.Addr)
		errC <- server.ListenAndServe()
	}()
	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func logVersion() {
	log.GetDefaultLogger().GetSugaredLogger().Infow("Starting application",
		// version is already logged by default
		"gitRevision", flowclient.GitRev,
		"gitBranch", flowclient.GitBranch,
		"goVersion", runtime.Version(),
		"built", flowclient.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func waitSignal(ctx context.Context, cancel context.CancelCauseFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case <-ctx.Done():
	case <-signals:
		log.Info("terminating application gracefully...")
		cancel(errTerminated)
	}
}
