package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopmart-backend/internal/config"
	"shopmart-backend/internal/db"
	"shopmart-backend/internal/httpserver"
	"shopmart-backend/internal/logging"
	addressrepo "shopmart-backend/internal/repository/address"
	cartrepo "shopmart-backend/internal/repository/cart"
	categoryrepo "shopmart-backend/internal/repository/category"
	couponrepo "shopmart-backend/internal/repository/coupon"
	inventoryrepo "shopmart-backend/internal/repository/inventory"
	orderrepo "shopmart-backend/internal/repository/order"
	paymentrepo "shopmart-backend/internal/repository/payment"
	productrepo "shopmart-backend/internal/repository/product"
	sessionrepo "shopmart-backend/internal/repository/session"
	shipmentrepo "shopmart-backend/internal/repository/shipment"
	userrepo "shopmart-backend/internal/repository/user"
	wishlistrepo "shopmart-backend/internal/repository/wishlist"
	addresssvc "shopmart-backend/internal/service/address"
	authsvc "shopmart-backend/internal/service/auth"
	cartsvc "shopmart-backend/internal/service/cart"
	categorysvc "shopmart-backend/internal/service/category"
	couponsvc "shopmart-backend/internal/service/coupon"
	inventorysvc "shopmart-backend/internal/service/inventory"
	ordersvc "shopmart-backend/internal/service/order"
	paymentsvc "shopmart-backend/internal/service/payment"
	"shopmart-backend/internal/service/pricing"
	productsvc "shopmart-backend/internal/service/product"
	shipmentsvc "shopmart-backend/internal/service/shipment"
	usersvc "shopmart-backend/internal/service/user"
	wishlistsvc "shopmart-backend/internal/service/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New()

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("connect to db")
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	sessionRepo := sessionrepo.NewPostgres(dbpool)
	addressRepo := addressrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	couponRepo := couponrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	inventoryRepo := inventoryrepo.NewPostgres(dbpool, logger)
	paymentRepo := paymentrepo.NewPostgres(dbpool)
	shipmentRepo := shipmentrepo.NewPostgres(dbpool)
	wishlistRepo := wishlistrepo.NewPostgres(dbpool)

	calculator := pricing.NewCalculator(cfg.LocalCityMatch, cfg.LocalShippingRate, cfg.RemoteShippingRate, cfg.TaxRate)

	authService := authsvc.New(userRepo, sessionRepo, authsvc.Options{
		AccessSecret:  cfg.JWTSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
		BcryptCost:    cfg.BcryptCost,
	}, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Auth:      authService,
		Users:     usersvc.New(userRepo),
		Addresses: addresssvc.New(addressRepo),
		Category:  categorysvc.New(categoryRepo),
		Product:   productsvc.New(productRepo),
		Cart:      cartsvc.New(cartRepo, productRepo),
		Coupon:    couponsvc.New(couponRepo),
		Order:     ordersvc.New(orderRepo, cartRepo, addressRepo, couponRepo, calculator, logger),
		Inventory: inventorysvc.New(inventoryRepo, productRepo),
		Payment:   paymentsvc.New(paymentRepo, orderRepo, logger),
		Shipment:  shipmentsvc.New(shipmentRepo, orderRepo, logger),
		Wishlist:  wishlistsvc.New(wishlistRepo, productRepo),

		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				n, err := sessionRepo.DeleteExpired(cleanupCtx)
				if err != nil {
					logger.WithError(err).Warn("session cleanup failed")
				} else if n > 0 {
					logger.WithField("deleted", n).Info("expired sessions removed")
				}
			}
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
	case err := <-serverErr:
		logger.WithError(err).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	} else {
		logger.Info("server stopped")
	}
}
