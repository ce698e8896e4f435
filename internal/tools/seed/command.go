package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sandeepkv93/go-service-template/internal/config"
	"github.com/sandeepkv93/go-service-template/internal/database"
	"github.com/sandeepkv93/go-service-template/internal/tools/common"
	"github.com/sandeepkv93/go-service-template/internal/tools/ui"
)

type options struct {
	count int
	ci    bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Demo data seed tooling"}
	cmd.PersistentFlags().IntVar(&opts.count, "count", 3, "number of demo users to ensure")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Migrate and insert demo users",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed apply", func(ctx context.Context) ([]string, error) {
				db, err := openDB()
				if err != nil {
					return nil, err
				}
				if err := database.Migrate(db); err != nil {
					return nil, err
				}
				if err := database.Seed(db, opts.count); err != nil {
					return nil, err
				}
				return []string{fmt.Sprintf("ensured %d demo users", opts.count)}, nil
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "seed apply", details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show what seeding would do",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed dry-run", func(ctx context.Context) ([]string, error) {
				cfg := config.Load()
				if !cfg.Features().Database {
					return nil, fmt.Errorf("DATABASE_URL is not set, nothing to seed")
				}
				return []string{
					"would run user table auto-migration",
					fmt.Sprintf("would ensure demo users demo1..demo%d@example.com", opts.count),
				}, nil
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "seed dry-run", details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

func openDB() (*gorm.DB, error) {
	cfg := config.Load()
	if !cfg.Features().Database {
		return nil, fmt.Errorf("DATABASE_URL is not set, nothing to seed")
	}
	return database.Open(cfg)
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) ([]string, error) {
	if opts.ci {
		return fn(context.Background())
	}
	return ui.Run(title, fn)
}
