// Package scheduler dispara el cierre de caja automático al final del día para
// las sedes que no cerraron a mano.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/domain/repository"
	"github.com/nordico/barber-api/pkg/logger"
)

// autoCloseSpec corre a las 23:55, antes de que cambie el día contable.
const autoCloseSpec = "55 23 * * *"

// Scheduler envuelve el cron de cierres automáticos.
type Scheduler struct {
	cron      *cron.Cron
	cash      *reports.CashRegisterUseCase
	locations repository.LocationRepository
	log       *logger.Logger
}

// New construye el scheduler en la zona horaria contable de la cadena.
func New(
	cash *reports.CashRegisterUseCase,
	locations repository.LocationRepository,
	tz *time.Location,
	log *logger.Logger,
) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(tz)),
		cash:      cash,
		locations: locations,
		log:       log,
	}
}

// Start registra el job y arranca el cron.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(autoCloseSpec, s.closeAll); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", autoCloseSpec).Msg("scheduler de cierre automático iniciado")
	return nil
}

// Stop detiene el cron y espera a que termine el job en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// closeAll cierra la caja de cada sede. Un fallo en una sede no impide el
// cierre de las demás.
func (s *Scheduler) closeAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	locs, err := s.locations.List()
	if err != nil {
		s.log.Error().Err(err).Msg("cierre automático: listar sedes")
		return
	}
	for _, loc := range locs {
		resp, err := s.cash.AutoClose(ctx, loc.ID)
		if err != nil {
			s.log.Error().Err(err).Str("location", loc.Name).Msg("cierre automático fallido")
			continue
		}
		if resp == nil {
			// Ya había cierre manual del día.
			continue
		}
		s.log.Info().
			Str("location", loc.Name).
			Str("expected_cash", resp.ExpectedCash.String()).
			Msg("cierre automático registrado")
	}
}
