package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD del catálogo. StockActual no se edita por
// aquí: solo lo mueven los movimientos y el barrido de vencimientos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto nuevo. StockActual inicia en 0 (sin lotes).
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	existente, _ := uc.repo.GetByCodigo(in.Codigo)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:                    uuid.New().String(),
		Codigo:                in.Codigo,
		Nombre:                in.Nombre,
		Descripcion:           in.Descripcion,
		StockMinimo:           in.StockMinimo,
		StockActual:           0,
		PrecioVenta:           in.PrecioVenta,
		RequiereRefrigeracion: in.RequiereRefrigeracion,
		RequiereReceta:        in.RequiereReceta,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update actualiza los datos de catálogo de un producto.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.StockMinimo = *in.StockMinimo
	}
	if in.PrecioVenta != nil {
		producto.PrecioVenta = *in.PrecioVenta
	}
	if in.RequiereRefrigeracion != nil {
		producto.RequiereRefrigeracion = *in.RequiereRefrigeracion
	}
	if in.RequiereReceta != nil {
		producto.RequiereReceta = *in.RequiereReceta
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista productos con paginación.
func (uc *ProductoUseCase) List(limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:                    p.ID,
		Codigo:                p.Codigo,
		Nombre:                p.Nombre,
		Descripcion:           p.Descripcion,
		StockMinimo:           p.StockMinimo,
		StockActual:           p.StockActual,
		PrecioVenta:           p.PrecioVenta,
		RequiereRefrigeracion: p.RequiereRefrigeracion,
		RequiereReceta:        p.RequiereReceta,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
