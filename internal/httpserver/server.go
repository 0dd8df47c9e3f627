package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	addresssvc "shopmart-backend/internal/service/address"
	authsvc "shopmart-backend/internal/service/auth"
	cartsvc "shopmart-backend/internal/service/cart"
	categorysvc "shopmart-backend/internal/service/category"
	couponsvc "shopmart-backend/internal/service/coupon"
	inventorysvc "shopmart-backend/internal/service/inventory"
	ordersvc "shopmart-backend/internal/service/order"
	paymentsvc "shopmart-backend/internal/service/payment"
	productsvc "shopmart-backend/internal/service/product"
	shipmentsvc "shopmart-backend/internal/service/shipment"
	usersvc "shopmart-backend/internal/service/user"
	wishlistsvc "shopmart-backend/internal/service/wishlist"
)

// Deps carries every service the router needs.
type Deps struct {
	Auth      *authsvc.Service
	Users     *usersvc.Service
	Addresses *addresssvc.Service
	Category  *categorysvc.Service
	Product   *productsvc.Service
	Cart      *cartsvc.Service
	Coupon    *couponsvc.Service
	Order     *ordersvc.Service
	Inventory *inventorysvc.Service
	Payment   *paymentsvc.Service
	Shipment  *shipmentsvc.Service
	Wishlist  *wishlistsvc.Service

	CORSAllowOrigins []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *logrus.Logger
	db         *pgxpool.Pool
}

func New(addr string, logger *logrus.Logger, db *pgxpool.Pool, deps Deps) *Server {
	router := buildRouter(logger, db, deps)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		db:     db,
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
