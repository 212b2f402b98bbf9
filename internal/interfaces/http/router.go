package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/alerta"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/auth"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/inventory"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/usecase"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC   *usecase.ProductoUseCase
	MovimientoUC *inventory.RegistrarMovimientoUseCase
	ConsultasUC  *inventory.ConsultasUseCase
	AlertaUC     *alerta.UseCase
	Generador    *alerta.Generador
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.ConsultasUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Get("/:id/stock", productoHandler.GetStock)
	productos.Get("/:id/lotes", productoHandler.ListLotes)

	// Movimientos de inventario (protegido)
	invGroup := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.MovimientoUC, deps.ConsultasUC)
	invGroup.Post("/entradas", inventarioHandler.RegistrarEntrada)
	invGroup.Post("/salidas", inventarioHandler.RegistrarSalida)
	invGroup.Get("/movimientos", inventarioHandler.ListarMovimientos)

	// Cuarentena de lotes (protegido; solo admin y veterinario)
	lotes := protected.Group("/lotes", RequireRol(entity.RolAdmin, entity.RolVeterinario))
	loteHandler := NewLoteHandler(deps.MovimientoUC)
	lotes.Post("/:id/cuarentena", loteHandler.PonerEnCuarentena)
	lotes.Post("/:id/liberar", loteHandler.LiberarCuarentena)

	// Alertas (protegido; el barrido manual solo admin)
	alertas := protected.Group("/alertas")
	alertaHandler := NewAlertaHandler(deps.AlertaUC, deps.Generador)
	alertas.Get("/", alertaHandler.ListNoLeidas)
	alertas.Post("/:id/leida", alertaHandler.MarcarLeida)
	alertas.Post("/barrido", RequireRol(entity.RolAdmin), alertaHandler.EjecutarBarrido)
}
