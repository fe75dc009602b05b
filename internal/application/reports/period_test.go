package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/domain"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2026, time.August, 26, 15, 30, 0, 0, time.UTC)

	casos := []struct {
		nombre    string
		query     dto.PeriodQuery
		wantStart string
		wantEnd   string
		wantErr   error
	}{
		{
			nombre:    "preset today",
			query:     dto.PeriodQuery{Preset: "today"},
			wantStart: "2026-08-26",
			wantEnd:   "2026-08-26",
		},
		{
			nombre:    "preset month",
			query:     dto.PeriodQuery{Preset: "month"},
			wantStart: "2026-08-01",
			wantEnd:   "2026-08-31",
		},
		{
			nombre:    "preset year",
			query:     dto.PeriodQuery{Preset: "year"},
			wantStart: "2026-01-01",
			wantEnd:   "2026-12-31",
		},
		{
			nombre:    "rango explícito",
			query:     dto.PeriodQuery{Start: "2026-03-01", End: "2026-03-15"},
			wantStart: "2026-03-01",
			wantEnd:   "2026-03-15",
		},
		{
			// El preset con nombre gana sobre el rango explícito.
			nombre:    "preset gana sobre rango",
			query:     dto.PeriodQuery{Preset: "today", Start: "2020-01-01", End: "2020-12-31"},
			wantStart: "2026-08-26",
			wantEnd:   "2026-08-26",
		},
		{
			nombre:  "preset desconocido",
			query:   dto.PeriodQuery{Preset: "quincena"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			nombre:  "fin antes del inicio",
			query:   dto.PeriodQuery{Start: "2026-03-15", End: "2026-03-01"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			nombre:  "fecha malformada",
			query:   dto.PeriodQuery{Start: "15-03-2026"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			r, err := reports.ResolvePeriod(c.query, now)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, r.Start)
			require.NotNil(t, r.End)
			assert.Equal(t, c.wantStart, r.Start.Format("2006-01-02"))
			assert.Equal(t, c.wantEnd, r.End.Format("2006-01-02"))
		})
	}
}

// Sin preset ni fechas, el rango queda sin límites (todo el histórico).
func TestResolvePeriod_VacioEsIlimitado(t *testing.T) {
	r, err := reports.ResolvePeriod(dto.PeriodQuery{}, time.Now())
	require.NoError(t, err)
	assert.True(t, r.IsUnbounded())
}

// Solo inicio: rango abierto hacia adelante.
func TestResolvePeriod_SoloInicio(t *testing.T) {
	r, err := reports.ResolvePeriod(dto.PeriodQuery{Start: "2026-01-01"}, time.Now())
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	assert.Nil(t, r.End)
}
