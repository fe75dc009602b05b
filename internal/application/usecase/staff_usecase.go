package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// StaffUseCase casos de uso CRUD para el personal de las sedes.
type StaffUseCase struct {
	repo      repository.StaffRepository
	locations repository.LocationRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository, locations repository.LocationRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo, locations: locations}
}

func validStaffRole(role string) bool {
	switch role {
	case entity.RoleBarber, entity.RoleHeadBarber, entity.RoleReceptionist, entity.RoleCleaning:
		return true
	}
	return false
}

// Create da de alta a un miembro del personal. Los montos ausentes en la
// petición se tratan como cero.
func (uc *StaffUseCase) Create(in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if in.Name == "" || !validStaffRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	loc, err := uc.locations.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	s := &entity.Staff{
		ID:                   uuid.New().String(),
		LocationID:           in.LocationID,
		Name:                 in.Name,
		Role:                 in.Role,
		RentAmount:           in.RentAmount,
		CommissionPercentage: in.CommissionPercentage,
		MonthlyPayment:       in.MonthlyPayment,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toStaffResponse(s), nil
}

// GetByID obtiene un miembro del personal.
func (uc *StaffUseCase) GetByID(id string) (*dto.StaffResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(s), nil
}

// Update actualiza campos del personal. Solo cambia lo presente en la petición.
func (uc *StaffUseCase) Update(id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Role != nil {
		if !validStaffRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		s.Role = *in.Role
	}
	if in.RentAmount != nil {
		s.RentAmount = *in.RentAmount
	}
	if in.CommissionPercentage != nil {
		s.CommissionPercentage = *in.CommissionPercentage
	}
	if in.MonthlyPayment != nil {
		s.MonthlyPayment = *in.MonthlyPayment
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toStaffResponse(s), nil
}

// Delete elimina a un miembro del personal.
func (uc *StaffUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListByLocation lista el personal de una sede.
func (uc *StaffUseCase) ListByLocation(locationID string) (*dto.StaffListResponse, error) {
	list, err := uc.repo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	return toStaffList(list), nil
}

// ListBarbers lista solo barberos y encargado de una sede.
func (uc *StaffUseCase) ListBarbers(locationID string) (*dto.StaffListResponse, error) {
	list, err := uc.repo.ListBarbersByLocation(locationID)
	if err != nil {
		return nil, err
	}
	return toStaffList(list), nil
}

func toStaffList(list []*entity.Staff) *dto.StaffListResponse {
	items := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStaffResponse(s))
	}
	return &dto.StaffListResponse{Items: items}
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:                   s.ID,
		LocationID:           s.LocationID,
		Name:                 s.Name,
		Role:                 s.Role,
		RentAmount:           s.RentAmount,
		CommissionPercentage: s.CommissionPercentage,
		MonthlyPayment:       s.MonthlyPayment,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
