package main

import (
	"context"
	"encoding/json"
	"github.com/QuangTung97/minicrm/config"
	"github.com/QuangTung97/minicrm/pkg/otellib"
	"github.com/QuangTung97/minicrm/service/app"
	"github.com/QuangTung97/minicrm/service/campaign"
	"github.com/QuangTung97/minicrm/service/ingestion"
	"github.com/QuangTung97/minicrm/service/rules"
	"github.com/QuangTung97/minicrm/service/stats"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func withApp(fn func(ctx context.Context, a *app.App) (interface{}, error)) error {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel("minicrm-crmctl", conf.Env, conf.Jaeger)
	defer shutdown()
	otel.SetTracerProvider(tracerProvider)

	db := conf.MySQL.MustConnect(logger)
	defer func() { _ = db.Close() }()

	a, err := app.New(conf, db, logger, otel.GetTracerProvider().Tracer("crmctl"))
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := otellib.ToContext(context.Background(), logger)
	result, err := fn(ctx, a)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readRules accepts inline json or @path
func readRules(s string) (rules.Group, error) {
	data := []byte(s)
	if len(s) > 0 && s[0] == '@' {
		content, err := os.ReadFile(s[1:])
		if err != nil {
			return rules.Group{}, err
		}
		data = content
	}
	return rules.Parse(data)
}

func ingestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "ingest customers and orders",
	}

	var customer ingestion.CustomerInput
	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "ingest a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				return a.Producer.IngestCustomer(ctx, customer)
			})
		},
	}
	customerCmd.Flags().StringVar(&customer.Name, "name", "", "customer name")
	customerCmd.Flags().StringVar(&customer.Email, "email", "", "email address")
	customerCmd.Flags().StringVar(&customer.Phone, "phone", "", "phone number")
	customerCmd.Flags().Int64Var(&customer.TotalSpend, "total-spend", 0, "initial total spend")
	customerCmd.Flags().Int64Var(&customer.Visits, "visits", 0, "initial visit count")
	customerCmd.Flags().StringVar(&customer.LastActiveAt, "last-active-at", "", "RFC3339 timestamp, default now")

	var order ingestion.OrderInput
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "ingest an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				return a.Producer.IngestOrder(ctx, order)
			})
		},
	}
	orderCmd.Flags().StringVar(&order.CustomerID, "customer", "", "customer id")
	orderCmd.Flags().Int64Var(&order.Amount, "amount", 0, "order amount")
	orderCmd.Flags().StringVar(&order.CreatedAt, "created-at", "", "RFC3339 timestamp, default now")

	cmd.AddCommand(customerCmd, orderCmd)
	return cmd
}

func segmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment",
		Short: "segment rules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "preview <rules-json|@file>",
		Short: "count the customers matching the rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := readRules(args[0])
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				size, err := a.Campaigns.PreviewAudience(ctx, group)
				if err != nil {
					return nil, err
				}
				return map[string]int64{"audienceSize": size}, nil
			})
		},
	})
	return cmd
}

func campaignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "create and inspect campaigns",
	}

	var name, rulesArg, template, owner string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "materialize a segment into a campaign and dispatch it",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := readRules(rulesArg)
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				return a.Campaigns.CreateCampaign(ctx, campaign.Input{
					Name:     name,
					Rules:    group,
					Template: template,
					OwnerID:  owner,
				})
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "segment name")
	createCmd.Flags().StringVar(&rulesArg, "rules", "", "rule tree json or @file")
	createCmd.Flags().StringVar(&template, "template", "", "message template")
	createCmd.Flags().StringVar(&owner, "owner", "", "owner id")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "recent campaigns with delivery counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				return a.Campaigns.ListCampaigns(ctx)
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <campaign-id>",
		Short: "campaign with its delivery logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				return a.Campaigns.GetCampaign(ctx, args[0])
			})
		},
	}

	cmd.AddCommand(createCmd, listCmd, showCmd)
	return cmd
}

func customersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "customer lookups",
	}

	var limit int
	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "search customers by name or email",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				return a.SearchCustomers(ctx, query, limit)
			})
		},
	}
	searchCmd.Flags().IntVar(&limit, "limit", app.DefaultSearchLimit, "max results, at most 100")

	cmd.AddCommand(searchCmd)
	return cmd
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "insert demo customers and orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				return a.Seed(ctx)
			})
		},
	}
}

func statsCommand() *cobra.Command {
	var shared bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "print the dashboard snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) (interface{}, error) {
				if shared {
					snapshot, ok, err := stats.LoadSnapshot(ctx, a.StatsStore)
					if err != nil {
						return nil, err
					}
					if ok {
						return snapshot, nil
					}
				}
				return a.StatsCache.RefreshIfStale(ctx, a.Timer.Now())
			})
		},
	}
	cmd.Flags().BoolVar(&shared, "shared", false, "read the snapshot stored by the server when present")
	return cmd
}

func main() {
	rootCmd := cobra.Command{
		Use:          "crmctl",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		ingestCommand(),
		segmentCommand(),
		campaignCommand(),
		customersCommand(),
		seedCommand(),
		statsCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
