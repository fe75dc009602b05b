package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest alta de servicio del catálogo.
type CreateServiceRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// UpdateServiceRequest campos opcionales; nil = sin cambio.
type UpdateServiceRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
}

// ServiceResponse un servicio del catálogo.
type ServiceResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// ServiceListResponse listado de servicios.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
}

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
}

// UpdateProductRequest campos opcionales; nil = sin cambio.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock"`
}

// ProductResponse un producto con su inventario.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
