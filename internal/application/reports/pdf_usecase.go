package reports

import (
	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// ClosePDFGenerator puerto de salida para renderizar el PDF de un cierre
// diario. El adaptador concreto vive en infraestructura.
type ClosePDFGenerator interface {
	Generate(close dto.DailyCloseResponse, locationName string) ([]byte, error)
}

// ClosePDFUseCase exporta un cierre diario como PDF para archivo o impresión.
type ClosePDFUseCase struct {
	closes    repository.DailyCloseRepository
	locations repository.LocationRepository
	generator ClosePDFGenerator
}

// NewClosePDFUseCase construye el caso de uso.
func NewClosePDFUseCase(
	closes repository.DailyCloseRepository,
	locations repository.LocationRepository,
	generator ClosePDFGenerator,
) *ClosePDFUseCase {
	return &ClosePDFUseCase{closes: closes, locations: locations, generator: generator}
}

// Export genera el PDF del cierre indicado.
func (uc *ClosePDFUseCase) Export(closeID string) ([]byte, error) {
	c, err := uc.closes.GetByID(closeID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	locName := c.LocationID
	if loc, err := uc.locations.GetByID(c.LocationID); err == nil && loc != nil {
		locName = loc.Name
	}
	return uc.generator.Generate(*toDailyCloseResponse(c), locName)
}
