package app

import (
	"context"
	"fmt"
	"github.com/QuangTung97/minicrm/config"
	"github.com/QuangTung97/minicrm/pkg/cacheclient"
	"github.com/QuangTung97/minicrm/pkg/leasecache"
	"github.com/QuangTung97/minicrm/pkg/memtable"
	"github.com/QuangTung97/minicrm/pkg/streamlog"
	"github.com/QuangTung97/minicrm/pkg/util"
	"github.com/QuangTung97/minicrm/repository"
	"github.com/QuangTung97/minicrm/service/audience"
	"github.com/QuangTung97/minicrm/service/campaign"
	"github.com/QuangTung97/minicrm/service/delivery"
	"github.com/QuangTung97/minicrm/service/httpapi"
	"github.com/QuangTung97/minicrm/service/ingestion"
	"github.com/QuangTung97/minicrm/service/stats"
	"github.com/QuangTung97/minicrm/service/vendor"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"net/http"
)

// Worker names accepted by Workers
const (
	WorkerIngestion = "ingestion"
	WorkerSender    = "sender"
	WorkerReceipts  = "receipts"
	WorkerAll       = "all"
)

// Worker is a long running consumer loop
type Worker interface {
	Run(ctx context.Context)
}

// App holds every wired component of one process
type App struct {
	Conf   config.Config
	Logger *zap.Logger
	Tracer trace.Tracer
	Timer  util.Timer

	Provider     repository.Provider
	CustomerRepo repository.Customer
	OrderRepo    repository.Order
	SegmentRepo  repository.Segment
	CampaignRepo repository.Campaign
	LogRepo      repository.DeliveryLog

	// Log is nil when stream.driver is none
	Log streamlog.Log

	Producer       *ingestion.Producer
	IngestApplier  *ingestion.Applier
	Campaigns      campaign.IService
	Sender         *delivery.Sender
	ReceiptApplier *delivery.ReceiptApplier
	Receipts       delivery.ReceiptSink
	Simulator      *vendor.Simulator

	StatsCache       *stats.Cache
	StatsStore       stats.SnapshotStore
	StatsBroadcaster *stats.Broadcaster

	cacheClient *cacheclient.Client
	closers     []func() error
}

// NewLog opens the durable log of the configured driver, nil for none
func NewLog(conf config.Config, logger *zap.Logger) (streamlog.Log, error) {
	switch conf.Stream.Driver {
	case config.StreamDriverRedis:
		return streamlog.NewRedis(conf.Redis.NewClient()), nil
	case config.StreamDriverKafka:
		return streamlog.NewKafka(conf.Kafka.Brokers, logger), nil
	case config.StreamDriverNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown stream driver %q", conf.Stream.Driver)
	}
}

// New wires the application on top of an opened database
func New(conf config.Config, db *sqlx.DB, logger *zap.Logger, tracer trace.Tracer) (*App, error) {
	log, err := NewLog(conf, logger)
	if err != nil {
		return nil, err
	}
	return NewWithLog(conf, db, log, logger, tracer), nil
}

// NewWithLog is New with an already opened log, log can be nil
func NewWithLog(conf config.Config, db *sqlx.DB, log streamlog.Log, logger *zap.Logger, tracer trace.Tracer) *App {
	a := &App{
		Conf:   conf,
		Logger: logger,
		Tracer: tracer,
		Timer:  util.NewTimer(),

		Provider:     repository.NewProvider(db),
		CustomerRepo: repository.NewCustomer(),
		OrderRepo:    repository.NewOrder(),
		SegmentRepo:  repository.NewSegment(),
		CampaignRepo: repository.NewCampaign(),
		LogRepo:      repository.NewDeliveryLog(),

		Log: log,
	}
	if log != nil {
		a.closers = append(a.closers, log.Close)
	}

	a.IngestApplier = ingestion.NewApplier(a.Provider, a.CustomerRepo, a.OrderRepo, a.Timer)
	a.Producer = ingestion.NewProducer(log, a.IngestApplier)

	a.ReceiptApplier = delivery.NewReceiptApplier(a.Provider, a.LogRepo, a.Timer)
	if log != nil {
		a.Receipts = delivery.NewLogReceiptSink(log)
	} else {
		a.Receipts = delivery.NewStoreReceiptSink(a.ReceiptApplier)
	}

	var simOptions []vendor.SimulatorOption
	if conf.Vendor.CallbackReceipts {
		simOptions = append(simOptions, vendor.WithCallback(delivery.ReceiptCallback(a.Receipts)))
	}
	a.Simulator = vendor.NewSimulator(conf.Vendor.SuccessRate, simOptions...)

	var v delivery.Vendor = a.Simulator
	if conf.Vendor.URL != "" {
		v = vendor.NewClient(conf.Vendor.URL, conf.Vendor.Timeout)
	}

	names := delivery.NewStoreNames(a.Provider, a.CustomerRepo)
	if conf.Pipeline.SharedNameCache {
		names = delivery.NewSharedNames(names, leasecache.New(
			a.memcacheClient(),
			leasecache.WithTTL(conf.Pipeline.NameCacheTTL),
			leasecache.WithFailedOnWaitFinished(false),
		))
	}
	names = delivery.NewCachedNames(names, memtable.New(conf.Pipeline.NameCacheSize), conf.Pipeline.NameCacheTTL)

	var senderSink delivery.ReceiptSink
	if !conf.Vendor.CallbackReceipts {
		senderSink = a.Receipts
	}
	a.Sender = delivery.NewSender(names, v, senderSink)

	var dispatcher delivery.Dispatcher
	if log != nil {
		dispatcher = delivery.NewLogDispatcher(log)
	} else {
		dispatcher = delivery.NewInlineDispatcher(a.Sender)
	}

	selector := audience.NewSelector(a.Provider, a.CustomerRepo)
	a.Campaigns = campaign.NewIServiceWrapper(
		campaign.NewService(
			a.Provider, a.SegmentRepo, a.CampaignRepo, a.LogRepo,
			selector, dispatcher,
		),
		tracer, "service::",
	)

	a.initStats()
	return a
}

// memcacheClient is created on first use and shared
func (a *App) memcacheClient() *cacheclient.Client {
	if a.cacheClient == nil {
		a.cacheClient = cacheclient.New(a.Conf.Memcache.Addr(), a.Conf.Memcache.GetNumConns())
		a.closers = append(a.closers, a.cacheClient.Close)
	}
	return a.cacheClient
}

func (a *App) initStats() {
	conf := a.Conf.Stats

	switch conf.SnapshotStore {
	case config.SnapshotStoreMemcache:
		a.StatsStore = stats.NewMemcacheStore(a.memcacheClient())
	default:
		a.StatsStore = stats.NewLocalStore(memtable.New(conf.LocalCacheSize))
	}

	computer := stats.NewComputer(a.Provider, a.CustomerRepo, a.OrderRepo, a.CampaignRepo, a.LogRepo)
	a.StatsCache = stats.NewCache(computer, a.StatsStore, conf.TTL, a.Logger)
	a.StatsBroadcaster = stats.NewBroadcaster(a.StatsCache, a.Timer, conf.Interval, a.Logger)
}

// Health ...
func (a *App) Health() httpapi.Health {
	driver := a.Conf.Stream.Driver
	if a.Log == nil {
		driver = config.StreamDriverNone
	}
	return httpapi.Health{
		Stream:    string(driver),
		UsingLog:  a.Log != nil,
		Callbacks: a.Conf.Vendor.CallbackReceipts,
	}
}

// Router of the HTTP server
func (a *App) Router() http.Handler {
	return httpapi.NewRouter(httpapi.Config{
		Tracer: a.Tracer,
		Logger: a.Logger,

		Health:   a.Health(),
		Receipts: a.Receipts,
		Mounts: []httpapi.Mounter{
			a.Simulator,
			stats.NewHandler(a.StatsCache, a.StatsBroadcaster, a.Timer, a.Logger),
		},
	})
}

func (a *App) consumerName() string {
	return a.Conf.Pipeline.ConsumerName
}

func (a *App) ingestionWorkers() []Worker {
	pipeline := a.Conf.Pipeline
	opts := streamlog.ReadOptions{Count: int64(pipeline.IngestBatchSize), Block: pipeline.IngestBlock}
	options := []ingestion.ConsumerOption{
		ingestion.WithWorkers(pipeline.IngestWorkers),
		ingestion.WithRetryDelay(pipeline.RetryDelay),
		ingestion.WithLogger(a.Logger),
		ingestion.WithTracer(a.Tracer),
	}

	return []Worker{
		ingestion.NewCustomerConsumer(
			a.Log.Consumer(ingestion.StreamCustomers, ingestion.GroupIngestion, a.consumerName(), opts),
			a.IngestApplier, options...,
		),
		ingestion.NewOrderConsumer(
			a.Log.Consumer(ingestion.StreamOrders, ingestion.GroupIngestion, a.consumerName(), opts),
			a.IngestApplier, options...,
		),
	}
}

func (a *App) deliveryOptions() []delivery.ConsumerOption {
	return []delivery.ConsumerOption{
		delivery.WithRetryDelay(a.Conf.Pipeline.RetryDelay),
		delivery.WithLogger(a.Logger),
		delivery.WithTracer(a.Tracer),
	}
}

func (a *App) senderWorker() Worker {
	pipeline := a.Conf.Pipeline
	opts := streamlog.ReadOptions{Count: int64(pipeline.SendBatchSize), Block: pipeline.SendBlock}
	return delivery.NewSendConsumer(
		a.Log.Consumer(delivery.StreamSend, delivery.GroupSender, a.consumerName(), opts),
		a.Sender, a.deliveryOptions()...,
	)
}

func (a *App) receiptWorker() Worker {
	pipeline := a.Conf.Pipeline
	opts := streamlog.ReadOptions{Count: int64(pipeline.ReceiptBatchSize), Block: pipeline.ReceiptBlock}
	return delivery.NewReceiptConsumer(
		a.Log.Consumer(delivery.StreamReceipts, delivery.GroupReceipts, a.consumerName(), opts),
		a.ReceiptApplier, a.deliveryOptions()...,
	)
}

// Workers returns the consumer loops for name, there are none without a durable log
func (a *App) Workers(name string) ([]Worker, error) {
	if a.Log == nil {
		return nil, fmt.Errorf("worker %q needs a durable log, stream.driver is none", name)
	}

	switch name {
	case WorkerIngestion:
		return a.ingestionWorkers(), nil
	case WorkerSender:
		return []Worker{a.senderWorker()}, nil
	case WorkerReceipts:
		return []Worker{a.receiptWorker()}, nil
	case WorkerAll:
		workers := a.ingestionWorkers()
		workers = append(workers, a.senderWorker(), a.receiptWorker())
		return workers, nil
	default:
		return nil, fmt.Errorf("unknown worker %q", name)
	}
}

// Close releases the log and cache connections
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Logger.Warn("Close resource", zap.Error(err))
		}
	}
}
