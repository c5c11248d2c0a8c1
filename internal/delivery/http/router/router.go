// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	SessionHandler   *handler.SessionHandler
	CatalogHandler   *handler.CatalogHandler
	CartHandler      *handler.CartHandler
	WishlistHandler  *handler.WishlistHandler
	CheckoutHandler  *handler.CheckoutHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
	DeviceMiddleware *middleware.DeviceMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	device := r.params.DeviceMiddleware

	e.GET("/health", handler.HealthCheck)

	// Sign-in and sign-out carry the device so its cart follows the session.
	authGroup := e.Group("/auth", auth.Identify, device.Process)
	{
		authGroup.POST("/register", r.params.UserHandler.RegisterUser)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/login/google", r.params.UserHandler.GoogleLogin)
		authGroup.POST("/login/firebase", r.params.UserHandler.FirebaseLogin)
		authGroup.POST("/refresh", r.params.UserHandler.RefreshToken)
		authGroup.POST("/logout", r.params.UserHandler.Logout)
	}

	userGroup := e.Group("/user", auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.GET("/sessions", r.params.SessionHandler.GetActiveSessions)
		userGroup.DELETE("/sessions", r.params.SessionHandler.RevokeAllSessions)
		userGroup.DELETE("/sessions/:id", r.params.SessionHandler.RevokeSession)
	}

	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/collections", r.params.CatalogHandler.ListCollections)
		catalogGroup.GET("/categories", r.params.CatalogHandler.ListCategories)
		catalogGroup.GET("/products", r.params.CatalogHandler.ListProducts)
		catalogGroup.GET("/products/:slug", r.params.CatalogHandler.GetProduct)
	}

	cartGroup := e.Group("/cart", auth.Identify, device.Process)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:variantId", r.params.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:variantId", r.params.CartHandler.RemoveItem)
	}

	checkoutGroup := e.Group("/checkout", auth.Authenticate, device.Process)
	{
		checkoutGroup.POST("/summary", r.params.CheckoutHandler.Summary)
	}

	wishlistGroup := e.Group("/wishlist", auth.Authenticate)
	{
		wishlistGroup.GET("", r.params.WishlistHandler.List)
		wishlistGroup.POST("", r.params.WishlistHandler.Add)
		wishlistGroup.DELETE("/:slug", r.params.WishlistHandler.Remove)
	}

	adminGroup := e.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.params.AdminHandler.Dashboard)
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.PUT("/users/:id/role", r.params.AdminHandler.UpdateUserRole, auth.RequireRole(entity.RoleSuperAdmin))
	}
}
