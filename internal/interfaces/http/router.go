package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/auth"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/moveout"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	RegionUC       *usecase.RegionUseCase
	DistrictUC     *usecase.DistrictUseCase
	BranchUC       *usecase.BranchUseCase
	StaffUC        *usecase.StaffUseCase
	ItemUC         *usecase.ItemUseCase
	StockQuery     *usecase.StockQueryUseCase
	ApplyDelta     *inventory.ApplyStockDeltaUseCase
	InitializeStock *inventory.InitializeStockUseCase
	MoveoutUC      *moveout.MoveoutUseCase
	DeliveryUC     *usecase.DeliveryUseCase
	ReportUC       *usecase.ReportUseCase
	NotificationUC *usecase.NotificationUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	managers := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Jerarquía organizacional (solo admin)
	regions := protected.Group("/regions", adminOnly)
	regionHandler := NewRegionHandler(deps.RegionUC)
	regions.Post("/", regionHandler.Create)
	regions.Get("/", regionHandler.List)
	regions.Get("/:id", regionHandler.GetByID)
	regions.Put("/:id", regionHandler.Update)
	regions.Delete("/:id", regionHandler.Delete)

	districts := protected.Group("/districts", adminOnly)
	districtHandler := NewDistrictHandler(deps.DistrictUC)
	districts.Post("/", districtHandler.Create)
	districts.Get("/", districtHandler.List)
	districts.Get("/:id", districtHandler.GetByID)
	districts.Put("/:id", districtHandler.Update)
	districts.Delete("/:id", districtHandler.Delete)

	// Sucursales: lectura para todos, escritura solo admin
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Personal (admin y gerentes)
	staff := protected.Group("/staff", managers)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.GetByID)
	staff.Put("/:id", staffHandler.Update)

	// Catálogo: lectura para todos, escritura admin y gerentes
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", managers, itemHandler.Create)
	items.Put("/:id", managers, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Existencias
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQuery, deps.ApplyDelta, deps.InitializeStock)
	stock.Get("/", stockHandler.List)
	stock.Post("/delta", stockHandler.ApplyDelta)
	stock.Post("/initialize", managers, stockHandler.Initialize)
	stock.Get("/:itemId", stockHandler.Get)

	// Listas de retiro
	moveouts := protected.Group("/moveouts")
	moveoutHandler := NewMoveoutHandler(deps.MoveoutUC)
	moveouts.Post("/", moveoutHandler.Create)
	moveouts.Get("/", moveoutHandler.List)
	moveouts.Get("/:id", moveoutHandler.GetByID)
	moveouts.Post("/:id/items/:itemId/complete", moveoutHandler.CompleteItem)

	// Entregas
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Post("/", deliveryHandler.Record)
	deliveries.Get("/", deliveryHandler.List)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock-summary", reportHandler.StockSummary)
	reports.Get("/movements", reportHandler.Movements)

	// Notificaciones
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/preferences", notificationHandler.GetPreferences)
	notifications.Put("/preferences", notificationHandler.UpdatePreferences)
	notifications.Get("/alerts", notificationHandler.Alerts)
}
