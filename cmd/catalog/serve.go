package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mytheresa/ecommerce-catalog/app/api"
	"github.com/mytheresa/ecommerce-catalog/app/books"
	"github.com/mytheresa/ecommerce-catalog/app/categories"
	"github.com/mytheresa/ecommerce-catalog/app/database"
	"github.com/mytheresa/ecommerce-catalog/app/gateway"
	"github.com/mytheresa/ecommerce-catalog/app/groceries"
	"github.com/mytheresa/ecommerce-catalog/app/validation"
	"github.com/mytheresa/ecommerce-catalog/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	shutdownTimeout  = 10 * time.Second
	metricsNamespace = "catalog"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the GraphQL HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			if migrate {
				if err := database.Migrate(a.db); err != nil {
					return err
				}
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create missing tables before serving")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	v := validation.New()
	schema, err := gateway.NewSchema(gateway.Services{
		Categories: categories.NewCategoryService(models.NewCategoriesRepository(a.db), v),
		Books:      books.NewBookService(models.NewBooksRepository(a.db), v),
		Groceries:  groceries.NewGroceryService(models.NewGroceriesRepository(a.db), v),
	}, a.log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: a.cfg.Addr(),
		Handler: api.NewRouter(api.RouterConfig{
			Logger:         a.log,
			AllowedOrigins: a.cfg.CORSOrigins,
			GraphQL:        gateway.NewGraphQLHandler(schema, a.log),
			Health: func(ctx context.Context) error {
				return database.Ping(ctx, a.db)
			},
			Metrics: api.NewMetrics(metricsNamespace),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", zap.String("addr", srv.Addr), zap.String("driver", a.cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
