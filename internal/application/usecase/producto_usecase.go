package usecase

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos de la carta. Las lecturas
// por ID y el listado de destacados pasan por caché; toda mutación la vacía.
type ProductoUseCase struct {
	repo   repository.ProductoRepository
	locker repository.RowLocker
	cache  *gocache.Cache
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, locker repository.RowLocker, cache *gocache.Cache) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, locker: locker, cache: cache}
}

const productosDestacadosKey = "productos:destacados"

func productoKey(id int64) string { return fmt.Sprintf("producto:%d", id) }

// Create crea un producto. El precio debe ser positivo; estado vacío nace activo.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if !in.Precio.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoActivo
	}
	p := &entity.Producto{
		IDCategoria:       in.IDCategoria,
		Nombre:            in.Nombre,
		Descripcion:       in.Descripcion,
		Precio:            in.Precio,
		ImagenURL:         in.ImagenURL,
		TiempoPreparacion: in.TiempoPreparacion,
		Ingredientes:      in.Ingredientes,
		Estado:            estado,
		Destacado:         in.Destacado,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.cache.Delete(productosDestacadosKey)
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID, con caché de lectura.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	if cached, ok := uc.cache.Get(productoKey(id)); ok {
		resp := cached.(dto.ProductoResponse)
		return &resp, nil
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductoResponse(p)
	uc.cache.Set(productoKey(id), *resp, gocache.DefaultExpiration)
	return resp, nil
}

// List lista todos los productos.
func (uc *ProductoUseCase) List(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductoResponses(list), nil
}

// ListByEstado lista productos filtrados por estado.
func (uc *ProductoUseCase) ListByEstado(ctx context.Context, estado string) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return toProductoResponses(list), nil
}

// ListDestacados lista los productos destacados, con caché de lectura.
func (uc *ProductoUseCase) ListDestacados(ctx context.Context) ([]dto.ProductoResponse, error) {
	if cached, ok := uc.cache.Get(productosDestacadosKey); ok {
		return cached.([]dto.ProductoResponse), nil
	}
	list, err := uc.repo.ListDestacados(ctx)
	if err != nil {
		return nil, err
	}
	items := toProductoResponses(list)
	uc.cache.Set(productosDestacadosKey, items, gocache.DefaultExpiration)
	return items, nil
}

// ListByCategoria lista productos activos de una categoría.
func (uc *ProductoUseCase) ListByCategoria(ctx context.Context, idCategoria int64) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.ListByCategoriaAndEstado(ctx, idCategoria, entity.EstadoActivo)
	if err != nil {
		return nil, err
	}
	return toProductoResponses(list), nil
}

// SearchByNombre busca productos por coincidencia parcial de nombre.
func (uc *ProductoUseCase) SearchByNombre(ctx context.Context, nombre string) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.SearchByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return toProductoResponses(list), nil
}

// Update aplica los campos presentes, persiste e invalida la caché.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.IDCategoria != nil {
		p.IDCategoria = *in.IDCategoria
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if !in.Precio.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		p.Precio = *in.Precio
	}
	if in.ImagenURL != nil {
		p.ImagenURL = *in.ImagenURL
	}
	if in.TiempoPreparacion != nil {
		p.TiempoPreparacion = *in.TiempoPreparacion
	}
	if in.Ingredientes != nil {
		p.Ingredientes = *in.Ingredientes
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	if in.Destacado != nil {
		p.Destacado = *in.Destacado
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.cache.Delete(productoKey(id))
	uc.cache.Delete(productosDestacadosKey)
	return toProductoResponse(p), nil
}

// Delete elimina un producto e invalida la caché.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete(productoKey(id))
	uc.cache.Delete(productosDestacadosKey)
	return nil
}

// GetConBloqueo lee el producto reteniendo el candado exclusivo de la fila.
// No pasa por caché: el protocolo exige tocar la fila real.
func (uc *ProductoUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.locker.ProductoConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:                p.ID,
		IDCategoria:       p.IDCategoria,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Precio:            p.Precio,
		ImagenURL:         p.ImagenURL,
		TiempoPreparacion: p.TiempoPreparacion,
		Ingredientes:      p.Ingredientes,
		Estado:            p.Estado,
		Destacado:         p.Destacado,
	}
}

func toProductoResponses(list []*entity.Producto) []dto.ProductoResponse {
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items
}
