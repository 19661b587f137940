package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/dhdiogoh/cyga-ecommerce/internal/config"
	"github.com/dhdiogoh/cyga-ecommerce/internal/infra/cartstore"
	"github.com/dhdiogoh/cyga-ecommerce/internal/infra/persistence/postgres"
	"github.com/dhdiogoh/cyga-ecommerce/internal/infra/security"
	httpapi "github.com/dhdiogoh/cyga-ecommerce/internal/interface/http"
	authuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/auth"
	cartuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/cart"
	cataloguc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/catalog"
	categoryuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/category"
	customeruc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/customer"
	orderuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/order"
	productuc "github.com/dhdiogoh/cyga-ecommerce/internal/usecase/product"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	initLogger(cfg.LogLevel)

	db, err := postgres.Open(ctx, cfg.Database.DSN)
	if err != nil {
		slog.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		slog.Error("run migrations", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	userRepo := postgres.NewUserRepository(db)

	cartStore := cartstore.NewRedisStore(redisClient, cfg.Redis.CartTTL)
	tokenSvc := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	passwordSvc := security.NewBcryptService(0)

	cartSvc := cartuc.NewService(cartStore, productRepo, slog.Default())
	customerSvc := customeruc.NewService(customerRepo)

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:     authuc.NewService(userRepo, passwordSvc, tokenSvc),
		CatalogService:  cataloguc.NewService(productRepo),
		ProductService:  productuc.NewService(productRepo),
		CategoryService: categoryuc.NewService(categoryRepo),
		CustomerService: customerSvc,
		CartService:     cartSvc,
		OrderService:    orderuc.NewService(orderRepo, cartSvc, customerSvc),
		TokenService:    tokenSvc,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("http server listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown http server", "error", err)
	}
	slog.Info("stopped")
}

func initLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
