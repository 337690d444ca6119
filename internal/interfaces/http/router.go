package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrinas-api/internal/application/auth"
	"github.com/jhoicas/Vitrinas-api/internal/application/inventory"
	"github.com/jhoicas/Vitrinas-api/internal/application/usecase"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	StockUC   *inventory.StockUseCase
	RefillPDF *inventory.RefillPDFUseCase
	SaleUC    *usecase.SaleUseCase
	ProductUC *usecase.ProductUseCase
	VitrineUC *usecase.VitrineUseCase
	UserUC    *usecase.UserUseCase
	Token     TokenConfig
}

// Router registra las rutas de la API.
// Los middlewares de rol van por ruta: un Use a nivel de grupo afectaría a todas las rutas de /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y perfil activo)
	protected := api.Group("", AuthMiddleware(deps.Token, deps.AuthUC))
	adminOnly := RequireRole(entity.RoleAdmin)
	sellerOnly := RequireRole(entity.RoleSeller)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/me", authHandler.Me)

	// Vendedor
	stockHandler := NewStockHandler(deps.StockUC, deps.RefillPDF)
	saleHandler := NewSaleHandler(deps.SaleUC)
	protected.Get("/seller/dashboard", sellerOnly, stockHandler.SellerDashboard)
	protected.Get("/seller/sales", sellerOnly, saleHandler.RecentForSeller)
	protected.Post("/sales", sellerOnly, saleHandler.Record)

	// Catálogo: lectura para cualquier rol
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/products", productHandler.List)

	// Administración
	protected.Get("/admin/dashboard", adminOnly, stockHandler.FleetDashboard)
	protected.Get("/stock", adminOnly, stockHandler.CurrentStock)
	protected.Get("/stock/refill", adminOnly, stockHandler.RefillList)
	protected.Get("/stock/refill/pdf", adminOnly, stockHandler.RefillPDF)
	protected.Get("/sales", adminOnly, saleHandler.ListAll)

	vitrineHandler := NewVitrineHandler(deps.VitrineUC)
	protected.Get("/vitrines", adminOnly, vitrineHandler.List)
	protected.Post("/vitrines", adminOnly, vitrineHandler.Create)
	protected.Get("/vitrines/:id", adminOnly, vitrineHandler.GetByID)
	protected.Put("/vitrines/:id", adminOnly, vitrineHandler.Update)

	protected.Post("/products", adminOnly, productHandler.Create)
	protected.Put("/products/:id", adminOnly, productHandler.Update)
	protected.Delete("/products/:id", adminOnly, productHandler.Delete)

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users", adminOnly, userHandler.List)
	protected.Put("/users/:id", adminOnly, userHandler.Update)
}
