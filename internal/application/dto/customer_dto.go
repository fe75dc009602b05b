package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name string `json:"name"`
	DOB  string `json:"dob"` // opcional, formato 2006-01-02
}

// UpdateCustomerRequest campos opcionales; nil = sin cambio.
type UpdateCustomerRequest struct {
	Name *string `json:"name"`
	DOB  *string `json:"dob"`
}

// CustomerResponse un cliente.
type CustomerResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	DOB       *time.Time `json:"dob,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
