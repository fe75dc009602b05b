package usecase

import (
	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// LocationUseCase expone las sedes registradas. Las sedes se cargan por
// migración; no hay altas ni bajas desde la API.
type LocationUseCase struct {
	locations repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locations repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locations: locations}
}

// GetByID devuelve una sede por su identificador.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	loc, err := uc.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// List devuelve todas las sedes.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	locs, err := uc.locations.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(locs))
	for _, loc := range locs {
		items = append(items, *toLocationResponse(loc))
	}
	return &dto.LocationListResponse{Items: items}, nil
}

func toLocationResponse(loc *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{ID: loc.ID, Name: loc.Name, Kind: string(loc.Kind)}
}
