package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/minicrm/config"
	"github.com/QuangTung97/minicrm/service/app"
	"github.com/QuangTung97/minicrm/service/ingestion"
	"github.com/QuangTung97/minicrm/service/rules"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchIngestCommand(),
		benchPreviewCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func newApp() *app.App {
	conf := config.Load()
	fmt.Println("STREAM:", conf.Stream.Driver)

	db := conf.MySQL.MustConnect(zap.NewNop())
	a, err := app.New(conf, db, zap.NewNop(), trace.NewNoopTracerProvider().Tracer("bench"))
	if err != nil {
		panic(err)
	}
	return a
}

// runBench calls fn numElements times on each of numThreads goroutines and prints latency percentiles
func runBench(numThreads int, numElements int, fn func(thread int, i int) error) {
	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()

	var numErrors int64
	var mut sync.Mutex

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				start := time.Now()
				err := fn(threadIndex, i)
				if err != nil {
					fmt.Println("ERROR:", err)
					mut.Lock()
					numErrors++
					mut.Unlock()
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	totalTime := time.Since(totalStart)
	fmt.Println("TOTAL TIME", totalTime)
	fmt.Println("ERRORS:", numErrors)

	history := make([]time.Duration, 0, numThreads*numElements)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	numHistory := len(history)
	if numHistory == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	p50Index := numHistory * 50 / 100
	p90Index := numHistory * 90 / 100
	p95Index := numHistory * 95 / 100
	p99Index := numHistory * 99 / 100
	p999Index := numHistory * 999 / 1000

	fmt.Println("P50:", history[p50Index])
	fmt.Println("P90:", history[p90Index])
	fmt.Println("P95:", history[p95Index])
	fmt.Println("P99:", history[p99Index])
	fmt.Println("P999:", history[p999Index])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)

	fmt.Println("AVG:", total/time.Duration(numHistory))
	fmt.Printf("THROUGHPUT: %.1f req/s\n", float64(numHistory)/totalTime.Seconds())
}

func benchIngest(numThreads int, numElements int) {
	a := newApp()
	defer a.Close()

	customerIDs := make([]string, numThreads)

	runBench(numThreads, numElements, func(thread int, i int) error {
		ctx := context.Background()

		if i == 0 {
			result, err := a.Producer.IngestCustomer(ctx, ingestion.CustomerInput{
				Name:  fmt.Sprintf("Bench Customer %d", thread),
				Email: fmt.Sprintf("bench%d@example.com", thread),
			})
			if err != nil {
				return err
			}
			customerIDs[thread] = result.ID
			return nil
		}

		_, err := a.Producer.IngestOrder(ctx, ingestion.OrderInput{
			CustomerID: customerIDs[thread],
			Amount:     int64(100 + i%900),
		})
		return err
	})
}

func benchPreview(numThreads int, numElements int) {
	a := newApp()
	defer a.Close()

	group, err := rules.Parse([]byte(
		`{"op":"OR","rules":[{"field":"totalSpend","cmp":">","value":10000},{"field":"visits","cmp":"<","value":3}]}`,
	))
	if err != nil {
		panic(err)
	}

	runBench(numThreads, numElements, func(thread int, i int) error {
		_, err := a.Campaigns.PreviewAudience(context.Background(), group)
		return err
	})
}

func benchIngestCommand() *cobra.Command {
	var numThreads int
	var numElements int

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "benchmark the ingestion producer, one customer and many orders per thread",
		Run: func(cmd *cobra.Command, args []string) {
			benchIngest(numThreads, numElements)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of concurrent producers")
	cmd.Flags().IntVar(&numElements, "count", 2000, "requests per producer")
	return cmd
}

func benchPreviewCommand() *cobra.Command {
	var numThreads int
	var numElements int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "benchmark audience preview",
		Run: func(cmd *cobra.Command, args []string) {
			benchPreview(numThreads, numElements)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", 10, "number of concurrent callers")
	cmd.Flags().IntVar(&numElements, "count", 200, "requests per caller")
	return cmd
}
