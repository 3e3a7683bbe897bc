package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/minicrm/config"
	"github.com/QuangTung97/minicrm/pkg/otellib"
	"github.com/QuangTung97/minicrm/service/app"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type process struct {
	app      *app.App
	logger   *zap.Logger
	shutdown func()
}

func newProcess(serviceName string) *process {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel(serviceName, conf.Env, conf.Jaeger)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect(logger)

	a, err := app.New(conf, db, logger, otel.GetTracerProvider().Tracer("server"))
	if err != nil {
		panic(err)
	}

	return &process{
		app:    a,
		logger: logger,
		shutdown: func() {
			a.Close()
			_ = db.Close()
			shutdown()
			_ = logger.Sync()
		},
	}
}

func waitForSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func runWorkers(ctx context.Context, wg *sync.WaitGroup, workers []app.Worker) {
	for _, w := range workers {
		wg.Add(1)
		go func(w app.Worker) {
			defer wg.Done()
			w.Run(ctx)
		}(w)
	}
}

func startServer() {
	p := newProcess("minicrm-server")
	defer p.shutdown()

	conf := p.app.Conf
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())
	fmt.Println("Stream:", p.app.Health().Stream)

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: p.app.Router(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()
		p.app.StatsBroadcaster.Run(ctx)
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	waitForSignal()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}

func startWorker(name string) error {
	p := newProcess("minicrm-worker-" + name)
	defer p.shutdown()

	workers, err := p.app.Workers(name)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	runWorkers(ctx, &wg, workers)

	p.logger.Info("Workers started", zap.String("name", name), zap.Int("count", len(workers)))

	waitForSignal()
	cancel()

	// every consumer finishes its current batch before returning
	wg.Wait()
	p.logger.Info("Workers stopped", zap.String("name", name))
	return nil
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the http server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func workerCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "worker [ingestion|sender|receipts|all]",
		Short:     "run pipeline consumers",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{app.WorkerIngestion, app.WorkerSender, app.WorkerReceipts, app.WorkerAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			return startWorker(args[0])
		},
	}
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		workerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}
