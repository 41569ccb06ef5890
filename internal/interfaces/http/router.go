package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/auth"
	"github.com/jcastanog/restaurante-api/internal/application/usecase"
	"github.com/jcastanog/restaurante-api/pkg/logger"
	"github.com/jcastanog/restaurante-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	ClienteUC       *usecase.ClienteUseCase
	PersonalUC      *usecase.PersonalCocinaUseCase
	RepartidorUC    *usecase.RepartidorUseCase
	CategoriaUC     *usecase.CategoriaUseCase
	ProductoUC      *usecase.ProductoUseCase
	PedidoUC        *usecase.PedidoUseCase
	DetalleUC       *usecase.DetallePedidoUseCase
	HistorialUC     *usecase.HistorialUseCase
	ValoracionUC    *usecase.ValoracionUseCase
	AsignacionUC    *usecase.AsignacionUseCase
	TokenCodec      *token.Codec
	PrincipalLoader PrincipalLoader
	Log             *logger.Logger
}

// Reglas compartidas. Una Rule vacía solo la satisface ROLE_ADMIN.
var (
	soloAdmin = Rule{}
	publica   = Rule{Anonymous: true}
	cocina    = Rule{Roles: []string{auth.AuthorityPersonalCocina}}
)

// Router registra las rutas de la API con su regla de acceso. La
// autenticación corre para todo /api; cada ruta declara su autorización.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", Authenticate(deps.TokenCodec, deps.PrincipalLoader, deps.Log))

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session-info", authHandler.Session)

	// Clientes: el alta de ficha es pública (acompaña al signup); cada
	// cliente accede a su propia ficha (el parámetro de ruta se compara
	// contra el username del principal); el resto es de administración.
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	duenoCliente := Rule{
		OwnerParam: "id", OwnerBy: OwnerByUsername,
		OwnerRoles: []string{auth.AuthorityCliente},
	}
	clientes.Post("/", Require(publica), clienteHandler.Create)
	clientes.Get("/", Require(soloAdmin), clienteHandler.List)
	clientes.Get("/email/:email", Require(soloAdmin), clienteHandler.GetByEmail)
	clientes.Get("/:id/lock", Require(soloAdmin), clienteHandler.GetConBloqueo)
	clientes.Get("/:id", Require(duenoCliente), clienteHandler.GetByID)
	clientes.Put("/:id", Require(duenoCliente), clienteHandler.Update)
	clientes.Delete("/:id", Require(soloAdmin), clienteHandler.Delete)

	// Personal de cocina: misma regla de propiedad por username.
	personal := api.Group("/personal-cocina")
	personalHandler := NewPersonalCocinaHandler(deps.PersonalUC)
	duenoPersonal := Rule{
		OwnerParam: "id", OwnerBy: OwnerByUsername,
		OwnerRoles: []string{auth.AuthorityPersonalCocina},
	}
	personal.Post("/", Require(soloAdmin), personalHandler.Create)
	personal.Get("/", Require(soloAdmin), personalHandler.List)
	personal.Get("/:id/lock", Require(soloAdmin), personalHandler.GetConBloqueo)
	personal.Get("/:id", Require(duenoPersonal), personalHandler.GetByID)
	personal.Put("/:id", Require(duenoPersonal), personalHandler.Update)
	personal.Delete("/:id", Require(soloAdmin), personalHandler.Delete)

	// Repartidores: solo administración.
	repartidores := api.Group("/repartidores")
	repartidorHandler := NewRepartidorHandler(deps.RepartidorUC)
	repartidores.Post("/", Require(soloAdmin), repartidorHandler.Create)
	repartidores.Get("/", Require(soloAdmin), repartidorHandler.List)
	repartidores.Get("/:id/lock", Require(soloAdmin), repartidorHandler.GetConBloqueo)
	repartidores.Get("/:id", Require(soloAdmin), repartidorHandler.GetByID)
	repartidores.Put("/:id", Require(soloAdmin), repartidorHandler.Update)
	repartidores.Delete("/:id", Require(soloAdmin), repartidorHandler.Delete)

	// Categorías: la carta se lee sin sesión; mutaciones de admin.
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", Require(soloAdmin), categoriaHandler.Create)
	categorias.Get("/", Require(publica), categoriaHandler.List)
	categorias.Get("/activas", Require(publica), categoriaHandler.ListActivas)
	categorias.Get("/buscar", Require(publica), categoriaHandler.Search)
	categorias.Get("/:id/lock", Require(soloAdmin), categoriaHandler.GetConBloqueo)
	categorias.Get("/:id", Require(publica), categoriaHandler.GetByID)
	categorias.Put("/:id", Require(soloAdmin), categoriaHandler.Update)
	categorias.Delete("/:id", Require(soloAdmin), categoriaHandler.Delete)

	// Productos: igual que categorías.
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", Require(soloAdmin), productoHandler.Create)
	productos.Get("/", Require(publica), productoHandler.List)
	productos.Get("/activos", Require(publica), productoHandler.ListActivos)
	productos.Get("/destacados", Require(publica), productoHandler.ListDestacados)
	productos.Get("/buscar", Require(publica), productoHandler.Search)
	productos.Get("/categoria/:idCategoria", Require(publica), productoHandler.ListByCategoria)
	productos.Get("/:id/lock", Require(soloAdmin), productoHandler.GetConBloqueo)
	productos.Get("/:id", Require(publica), productoHandler.GetByID)
	productos.Put("/:id", Require(soloAdmin), productoHandler.Update)
	productos.Delete("/:id", Require(soloAdmin), productoHandler.Delete)

	// Pedidos: el cliente crea y consulta lo suyo; cocina opera el flujo.
	pedidos := api.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	clienteOCocina := Rule{Roles: []string{auth.AuthorityCliente, auth.AuthorityPersonalCocina}}
	duenoPedidos := Rule{
		OwnerParam: "idCliente", OwnerBy: OwnerByID,
		OwnerRoles: []string{auth.AuthorityCliente},
	}
	pedidos.Post("/", Require(Rule{Roles: []string{auth.AuthorityCliente}}), pedidoHandler.Create)
	pedidos.Get("/", Require(cocina), pedidoHandler.List)
	pedidos.Get("/hoy", Require(cocina), pedidoHandler.ListHoy)
	pedidos.Get("/cliente/:idCliente", Require(duenoPedidos), pedidoHandler.ListByCliente)
	pedidos.Get("/estado/:estado", Require(cocina), pedidoHandler.ListByEstado)
	pedidos.Get("/fecha/:fecha", Require(cocina), pedidoHandler.ListByFecha)
	pedidos.Get("/:id/lock", Require(soloAdmin), pedidoHandler.GetConBloqueo)
	pedidos.Get("/:id", Require(clienteOCocina), pedidoHandler.GetByID)
	pedidos.Put("/:id/estado", Require(cocina), pedidoHandler.CambiarEstado)
	pedidos.Put("/:id", Require(cocina), pedidoHandler.Update)
	pedidos.Delete("/:id", Require(soloAdmin), pedidoHandler.Delete)

	// Detalles de pedido.
	detalles := api.Group("/detalles-pedido")
	detalleHandler := NewDetallePedidoHandler(deps.DetalleUC)
	detalles.Post("/", Require(clienteOCocina), detalleHandler.Create)
	detalles.Get("/", Require(cocina), detalleHandler.List)
	detalles.Get("/con-instrucciones", Require(cocina), detalleHandler.ListConInstrucciones)
	detalles.Get("/pedido/:idPedido", Require(clienteOCocina), detalleHandler.ListByPedido)
	detalles.Delete("/pedido/:idPedido", Require(soloAdmin), detalleHandler.DeleteByPedido)
	detalles.Get("/producto/:idProducto", Require(cocina), detalleHandler.ListByProducto)
	detalles.Get("/:id/lock", Require(soloAdmin), detalleHandler.GetConBloqueo)
	detalles.Get("/:id", Require(clienteOCocina), detalleHandler.GetByID)
	detalles.Put("/:id", Require(cocina), detalleHandler.Update)
	detalles.Delete("/:id", Require(cocina), detalleHandler.Delete)

	// Historial de estados: cocina consulta el flujo; cada cliente lo suyo.
	historial := api.Group("/historial")
	historialHandler := NewHistorialHandler(deps.HistorialUC)
	duenoHistorial := Rule{
		OwnerParam: "idCliente", OwnerBy: OwnerByID,
		OwnerRoles: []string{auth.AuthorityCliente},
	}
	historial.Get("/", Require(soloAdmin), historialHandler.List)
	historial.Get("/pedido/:idPedido/ultimo", Require(clienteOCocina), historialHandler.UltimoByPedido)
	historial.Get("/pedido/:idPedido", Require(clienteOCocina), historialHandler.ListByPedido)
	historial.Get("/estado/:estado", Require(cocina), historialHandler.ListByEstado)
	historial.Get("/cliente/:idCliente", Require(duenoHistorial), historialHandler.ListByCliente)
	historial.Get("/:id/lock", Require(soloAdmin), historialHandler.GetConBloqueo)
	historial.Get("/:id", Require(soloAdmin), historialHandler.GetByID)
	historial.Delete("/:id", Require(soloAdmin), historialHandler.Delete)

	// Valoraciones: el listado general, las fichas y los promedios por pedido
	// se leen sin sesión; las de un pedido concreto exigen sesión de cliente;
	// crear y editar es del cliente; las de un cliente, suyas.
	valoraciones := api.Group("/valoraciones")
	valoracionHandler := NewValoracionHandler(deps.ValoracionUC)
	soloCliente := Rule{Roles: []string{auth.AuthorityCliente}}
	duenoValoraciones := Rule{
		OwnerParam: "idCliente", OwnerBy: OwnerByID,
		OwnerRoles: []string{auth.AuthorityCliente},
	}
	valoraciones.Post("/", Require(soloCliente), valoracionHandler.Create)
	valoraciones.Get("/", Require(publica), valoracionHandler.List)
	valoraciones.Get("/pedido/:idPedido/promedio", Require(publica), valoracionHandler.PromedioByPedido)
	valoraciones.Get("/pedido/:idPedido", Require(soloCliente), valoracionHandler.ListByPedido)
	valoraciones.Get("/cliente/:idCliente/promedio", Require(publica), valoracionHandler.PromedioByCliente)
	valoraciones.Get("/cliente/:idCliente", Require(duenoValoraciones), valoracionHandler.ListByCliente)
	valoraciones.Get("/:id/lock", Require(soloAdmin), valoracionHandler.GetConBloqueo)
	valoraciones.Get("/:id", Require(publica), valoracionHandler.GetByID)
	valoraciones.Put("/:id", Require(soloCliente), valoracionHandler.Update)
	valoraciones.Delete("/:id", Require(soloAdmin), valoracionHandler.Delete)

	// Asignaciones de reparto: solo administración.
	asignaciones := api.Group("/asignaciones")
	asignacionHandler := NewAsignacionHandler(deps.AsignacionUC)
	asignaciones.Post("/", Require(soloAdmin), asignacionHandler.Create)
	asignaciones.Get("/", Require(soloAdmin), asignacionHandler.List)
	asignaciones.Get("/pendientes", Require(soloAdmin), asignacionHandler.ListPendientes)
	asignaciones.Get("/pedido/:idPedido", Require(soloAdmin), asignacionHandler.ListByPedido)
	asignaciones.Get("/repartidor/:idRepartidor", Require(soloAdmin), asignacionHandler.ListByRepartidor)
	asignaciones.Get("/:id/lock", Require(soloAdmin), asignacionHandler.GetConBloqueo)
	asignaciones.Get("/:id", Require(soloAdmin), asignacionHandler.GetByID)
	asignaciones.Put("/:id/entrega", Require(soloAdmin), asignacionHandler.RegistrarEntrega)
	asignaciones.Put("/:id", Require(soloAdmin), asignacionHandler.Update)
	asignaciones.Delete("/:id", Require(soloAdmin), asignacionHandler.Delete)
}
