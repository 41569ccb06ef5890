package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/domain"
	"github.com/jcastanog/restaurante-api/internal/domain/entity"
)

type fakePedidoRepo struct {
	seq     int64
	pedidos map[int64]*entity.Pedido
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: make(map[int64]*entity.Pedido)}
}

func (f *fakePedidoRepo) Create(_ context.Context, p *entity.Pedido) error {
	f.seq++
	p.ID = f.seq
	copia := *p
	f.pedidos[p.ID] = &copia
	return nil
}

func (f *fakePedidoRepo) GetByID(_ context.Context, id int64) (*entity.Pedido, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

func (f *fakePedidoRepo) List(_ context.Context) ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(f.pedidos))
	for _, p := range f.pedidos {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakePedidoRepo) ListByCliente(_ context.Context, idCliente int64) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.IDCliente == idCliente {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) ListByEstado(_ context.Context, estado string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.Estado == estado {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) ListByFecha(_ context.Context, fecha time.Time) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.FechaPedido.Truncate(24*time.Hour) == fecha.Truncate(24*time.Hour) {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) Update(_ context.Context, p *entity.Pedido) error {
	if _, ok := f.pedidos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	f.pedidos[p.ID] = &copia
	return nil
}

func (f *fakePedidoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.pedidos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.pedidos, id)
	return nil
}

type fakeHistorialRepo struct {
	seq       int64
	registros []*entity.HistorialEstados
}

func (f *fakeHistorialRepo) Create(_ context.Context, h *entity.HistorialEstados) error {
	f.seq++
	h.ID = f.seq
	copia := *h
	f.registros = append(f.registros, &copia)
	return nil
}

func (f *fakeHistorialRepo) GetByID(_ context.Context, id int64) (*entity.HistorialEstados, error) {
	for _, h := range f.registros {
		if h.ID == id {
			copia := *h
			return &copia, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeHistorialRepo) List(_ context.Context) ([]*entity.HistorialEstados, error) {
	return f.registros, nil
}

func (f *fakeHistorialRepo) ListByPedido(_ context.Context, idPedido int64) ([]*entity.HistorialEstados, error) {
	var out []*entity.HistorialEstados
	for _, h := range f.registros {
		if h.IDPedido == idPedido {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHistorialRepo) ListByEstado(_ context.Context, estado string) ([]*entity.HistorialEstados, error) {
	var out []*entity.HistorialEstados
	for _, h := range f.registros {
		if h.Estado == estado {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHistorialRepo) ListByCliente(_ context.Context, idCliente int64) ([]*entity.HistorialEstados, error) {
	var out []*entity.HistorialEstados
	for _, h := range f.registros {
		if h.IDCliente == idCliente {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHistorialRepo) UltimoByPedido(_ context.Context, idPedido int64) (*entity.HistorialEstados, error) {
	var ultimo *entity.HistorialEstados
	for _, h := range f.registros {
		if h.IDPedido == idPedido {
			ultimo = h
		}
	}
	if ultimo == nil {
		return nil, domain.ErrNotFound
	}
	copia := *ultimo
	return &copia, nil
}

func (f *fakeHistorialRepo) Delete(_ context.Context, id int64) error {
	for i, h := range f.registros {
		if h.ID == id {
			f.registros = append(f.registros[:i], f.registros[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestPedidoCreateNacePendienteYDejaHistorial(t *testing.T) {
	repo := newFakePedidoRepo()
	historial := &fakeHistorialRepo{}
	uc := NewPedidoUseCase(repo, historial, nil)

	out, err := uc.Create(context.Background(), dto.CreatePedidoRequest{IDCliente: 7})
	require.NoError(t, err)

	assert.Equal(t, entity.PedidoPendiente, out.Estado)
	require.Len(t, historial.registros, 1)
	assert.Equal(t, out.ID, historial.registros[0].IDPedido)
	assert.Equal(t, entity.PedidoPendiente, historial.registros[0].Estado)
	assert.Equal(t, int64(7), historial.registros[0].IDCliente)
}

func TestPedidoUpdateSinCambioDeEstadoNoTocaHistorial(t *testing.T) {
	repo := newFakePedidoRepo()
	historial := &fakeHistorialRepo{}
	uc := NewPedidoUseCase(repo, historial, nil)

	out, err := uc.Create(context.Background(), dto.CreatePedidoRequest{IDCliente: 7})
	require.NoError(t, err)

	otroCliente := int64(8)
	_, err = uc.Update(context.Background(), out.ID, dto.UpdatePedidoRequest{IDCliente: &otroCliente})
	require.NoError(t, err)

	// Solo el registro de la creación.
	assert.Len(t, historial.registros, 1)
}

func TestPedidoUpdateConCambioDeEstadoDejaHistorial(t *testing.T) {
	repo := newFakePedidoRepo()
	historial := &fakeHistorialRepo{}
	uc := NewPedidoUseCase(repo, historial, nil)

	out, err := uc.Create(context.Background(), dto.CreatePedidoRequest{IDCliente: 7})
	require.NoError(t, err)

	listo := entity.PedidoListo
	_, err = uc.Update(context.Background(), out.ID, dto.UpdatePedidoRequest{Estado: &listo})
	require.NoError(t, err)

	require.Len(t, historial.registros, 2)
	assert.Equal(t, entity.PedidoListo, historial.registros[1].Estado)
}

func TestPedidoCambiarEstadoAtribuyeElCambio(t *testing.T) {
	repo := newFakePedidoRepo()
	historial := &fakeHistorialRepo{}
	uc := NewPedidoUseCase(repo, historial, nil)

	out, err := uc.Create(context.Background(), dto.CreatePedidoRequest{IDCliente: 7})
	require.NoError(t, err)

	cambiado, err := uc.CambiarEstado(context.Background(), out.ID, dto.CambioEstadoRequest{
		Estado:          entity.PedidoEnPreparacion,
		IDPersonaCocina: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PedidoEnPreparacion, cambiado.Estado)

	ultimo, err := historial.UltimoByPedido(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PedidoEnPreparacion, ultimo.Estado)
	assert.Equal(t, int64(3), ultimo.IDPersonaCocina)
}

func TestPedidoListHoyDevuelveSoloLosDelDia(t *testing.T) {
	repo := newFakePedidoRepo()
	uc := NewPedidoUseCase(repo, &fakeHistorialRepo{}, nil)

	out, err := uc.Create(context.Background(), dto.CreatePedidoRequest{IDCliente: 7})
	require.NoError(t, err)

	// Un pedido de ayer no entra en el listado de hoy.
	repo.seq++
	repo.pedidos[repo.seq] = &entity.Pedido{
		ID:          repo.seq,
		IDCliente:   7,
		FechaPedido: time.Now().Add(-48 * time.Hour),
		Estado:      entity.PedidoEntregado,
	}

	hoy, err := uc.ListHoy(context.Background())
	require.NoError(t, err)
	require.Len(t, hoy, 1)
	assert.Equal(t, out.ID, hoy[0].ID)
}

func TestPedidoCambiarEstadoInexistenteDevuelveNotFound(t *testing.T) {
	uc := NewPedidoUseCase(newFakePedidoRepo(), &fakeHistorialRepo{}, nil)

	_, err := uc.CambiarEstado(context.Background(), 99, dto.CambioEstadoRequest{Estado: entity.PedidoListo})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
