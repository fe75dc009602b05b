package dto

// LocationResponse una sede de la cadena.
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// LocationListResponse las sedes registradas.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
}
