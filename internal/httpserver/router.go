package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"shopmart-backend/internal/domain"
)

// buildRouter wires every route with its per-route role allow-list.
func buildRouter(logger *logrus.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSAllowOrigins) == 1 && deps.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.CORSAllowOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := handlers{deps: deps}

	authn := authenticate(deps.Auth)
	staff := requireRoles(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleInventoryManager)
	admin := requireRoles(domain.RoleSuperAdmin, domain.RoleAdmin)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)
		auth.POST("/refresh-token", h.refreshToken)
	}

	user := router.Group("/user", authn)
	{
		user.GET("/profile", admin, h.listUsers)
		user.GET("/profile/:id", h.getUser)
		user.PATCH("/profile/:id", h.updateUser)
		user.DELETE("/profile/:id", h.deleteUser)

		user.POST("/address", h.createAddress)
		user.GET("/address", h.listAddresses)
		user.GET("/address/:id", h.getAddress)
		user.PATCH("/address/:id", h.updateAddress)
		user.DELETE("/address/:id", h.deleteAddress)
	}

	category := router.Group("/category")
	{
		category.GET("", h.listCategories)
		category.GET("/:id", h.getCategory)
		category.POST("", authn, staff, h.createCategory)
		category.PATCH("/:id", authn, staff, h.updateCategory)
		category.DELETE("/:id", authn, staff, h.deleteCategory)
	}

	product := router.Group("/product")
	{
		product.GET("", h.listProducts)
		product.GET("/:id", h.getProduct)
		product.POST("", authn, staff, h.createProduct)
		product.PATCH("/:id", authn, staff, h.updateProduct)
		product.DELETE("/:id", authn, staff, h.deleteProduct)
	}

	cart := router.Group("/cart", authn)
	{
		cart.GET("", h.getCart)
		cart.POST("/items", h.addCartItem)
		cart.PATCH("/items/:itemId", h.updateCartItem)
		cart.DELETE("/items/:itemId", h.removeCartItem)
		cart.DELETE("", h.clearCart)
	}

	coupon := router.Group("/coupon", authn, admin)
	{
		coupon.POST("", h.createCoupon)
		coupon.GET("", h.listCoupons)
	}

	order := router.Group("/order", authn)
	{
		order.POST("/checkout-summary", h.checkoutSummary)
		order.POST("", h.checkout)
		order.GET("", h.listMyOrders)
		order.GET("/all", admin, h.listAllOrders)
		order.GET("/:orderId", h.getOrder)
		order.PATCH("/:orderId/status", admin, h.updateOrderStatus)
	}

	inventory := router.Group("/inventory", authn, staff)
	{
		inventory.GET("", h.listInventory)
		inventory.GET("/variant/:variantId", h.getInventory)
		inventory.GET("/variant/:variantId/movements", h.listMovements)
		inventory.POST("/variant/:variantId/adjust", h.adjustInventory)
	}

	payment := router.Group("/payment", authn)
	{
		payment.GET("/:orderId", h.getPayment)
		payment.PATCH("/:orderId/payment-status", admin, h.updatePaymentStatus)
	}

	shipment := router.Group("/shipment", authn, admin)
	{
		shipment.POST("", h.createShipment)
		shipment.GET("/:id", h.getShipment)
		shipment.GET("/order/:orderId", h.listShipmentsByOrder)
		shipment.PATCH("/:id/status", h.updateShipmentStatus)
	}

	wishlist := router.Group("/wishlist", authn)
	{
		wishlist.GET("", h.getWishlist)
		wishlist.POST("/items", h.addWishlistItem)
		wishlist.DELETE("/items/:productId", h.removeWishlistItem)
	}

	return router
}

type handlers struct {
	deps Deps
}
