package usecase

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
	"github.com/jcastanog/restaurante-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de la carta. Las
// lecturas por ID pasan por caché; toda mutación invalida las entradas.
type CategoriaUseCase struct {
	repo   repository.CategoriaRepository
	locker repository.RowLocker
	cache  *gocache.Cache
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, locker repository.RowLocker, cache *gocache.Cache) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, locker: locker, cache: cache}
}

func categoriaKey(id int64) string { return fmt.Sprintf("categoria:%d", id) }

// Create crea una categoría. Estado vacío se crea activa.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoActivo
	}
	c := &entity.Categoria{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		ImagenURL:   in.ImagenURL,
		Estado:      estado,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// GetByID obtiene una categoría por ID, con caché de lectura.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	if cached, ok := uc.cache.Get(categoriaKey(id)); ok {
		resp := cached.(dto.CategoriaResponse)
		return &resp, nil
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCategoriaResponse(c)
	uc.cache.Set(categoriaKey(id), *resp, gocache.DefaultExpiration)
	return resp, nil
}

// List lista todas las categorías.
func (uc *CategoriaUseCase) List(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoriaResponses(list), nil
}

// ListByEstado lista categorías filtradas por estado.
func (uc *CategoriaUseCase) ListByEstado(ctx context.Context, estado string) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return toCategoriaResponses(list), nil
}

// SearchByNombre busca categorías por coincidencia parcial de nombre.
func (uc *CategoriaUseCase) SearchByNombre(ctx context.Context, nombre string) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.SearchByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return toCategoriaResponses(list), nil
}

// Update aplica los campos presentes, persiste e invalida la caché.
func (uc *CategoriaUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	if in.ImagenURL != nil {
		c.ImagenURL = *in.ImagenURL
	}
	if in.Estado != nil {
		c.Estado = *in.Estado
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.cache.Delete(categoriaKey(id))
	return toCategoriaResponse(c), nil
}

// Delete elimina una categoría e invalida la caché.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete(categoriaKey(id))
	return nil
}

// GetConBloqueo lee la categoría reteniendo el candado exclusivo de la fila.
// No pasa por caché: el protocolo exige tocar la fila real.
func (uc *CategoriaUseCase) GetConBloqueo(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	c, err := uc.locker.CategoriaConBloqueo(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		ImagenURL:   c.ImagenURL,
		Estado:      c.Estado,
	}
}

func toCategoriaResponses(list []*entity.Categoria) []dto.CategoriaResponse {
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items
}
