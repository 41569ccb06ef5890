package usecase

import (
	"context"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

type fakeProductoRepo struct {
	seq        int64
	productos  map[int64]*entity.Producto
	getByIDHit int
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[int64]*entity.Producto)}
}

func (f *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	f.seq++
	p.ID = f.seq
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	f.getByIDHit++
	p, ok := f.productos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductoRepo) List(_ context.Context) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(f.productos))
	for _, p := range f.productos {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeProductoRepo) ListByEstado(_ context.Context, estado string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		if p.Estado == estado {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeProductoRepo) ListDestacados(_ context.Context) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		if p.Destacado {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeProductoRepo) ListByCategoriaAndEstado(_ context.Context, idCategoria int64, estado string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		if p.IDCategoria == idCategoria && p.Estado == estado {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeProductoRepo) SearchByNombre(_ context.Context, _ string) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	if _, ok := f.productos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.productos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.productos, id)
	return nil
}

func nuevoProductoUC(repo *fakeProductoRepo) *ProductoUseCase {
	return NewProductoUseCase(repo, nil, gocache.New(time.Minute, time.Minute))
}

func TestProductoCreateRechazaPrecioNoPositivo(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		IDCategoria: 1,
		Nombre:      "bandeja paisa",
		Precio:      decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoCreateNaceActivo(t *testing.T) {
	uc := nuevoProductoUC(newFakeProductoRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		IDCategoria: 1,
		Nombre:      "bandeja paisa",
		Precio:      decimal.NewFromInt(32000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoActivo, out.Estado)
}

func TestProductoGetByIDUsaCache(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := nuevoProductoUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		IDCategoria: 1,
		Nombre:      "ajiaco",
		Precio:      decimal.NewFromInt(25000),
	})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	_, err = uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)

	// La segunda lectura sale de la caché.
	assert.Equal(t, 1, repo.getByIDHit)
}

func TestProductoUpdateInvalidaCache(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := nuevoProductoUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		IDCategoria: 1,
		Nombre:      "ajiaco",
		Precio:      decimal.NewFromInt(25000),
	})
	require.NoError(t, err)

	leido, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "ajiaco", leido.Nombre)

	nombre := "ajiaco santafereño"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateProductoRequest{Nombre: &nombre})
	require.NoError(t, err)

	leido, err = uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, nombre, leido.Nombre)
}

func TestProductoDestacadosSeCacheanYSeInvalidanAlMutar(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := nuevoProductoUC(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		IDCategoria: 1,
		Nombre:      "lechona",
		Precio:      decimal.NewFromInt(28000),
		Destacado:   true,
	})
	require.NoError(t, err)

	destacados, err := uc.ListDestacados(context.Background())
	require.NoError(t, err)
	require.Len(t, destacados, 1)

	// Una nueva creación vacía la caché de destacados.
	_, err = uc.Create(context.Background(), dto.CreateProductoRequest{
		IDCategoria: 1,
		Nombre:      "tamal",
		Precio:      decimal.NewFromInt(15000),
		Destacado:   true,
	})
	require.NoError(t, err)

	destacados, err = uc.ListDestacados(context.Background())
	require.NoError(t, err)
	assert.Len(t, destacados, 2)
}

func TestProductoUpdatePrecioNoPositivoNoPersiste(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := nuevoProductoUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		IDCategoria: 1,
		Nombre:      "tamal",
		Precio:      decimal.NewFromInt(15000),
	})
	require.NoError(t, err)

	negativo := decimal.NewFromInt(-1)
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateProductoRequest{Precio: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	guardado, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, guardado.Precio.Equal(decimal.NewFromInt(15000)))
}
