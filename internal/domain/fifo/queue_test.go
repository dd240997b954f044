package fifo_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/fifo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func lote(key string, date time.Time, qty, cost int64) entity.Lot {
	return entity.Lot{
		ProductKey:    key,
		EffectiveDate: date,
		Quantity:      decimal.NewFromInt(qty),
		UnitCost:      decimal.NewFromInt(cost),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fecha de referencia del stock inicial
// ──────────────────────────────────────────────────────────────────────────────

// La fecha sintética es el 31 de diciembre del año mínimo de TODAS las
// entradas menos uno, sin importar a qué producto pertenezcan.
func TestOpeningReferenceDate_AnioMinimoDeEntradas(t *testing.T) {
	receipts := []entity.Lot{
		lote("A", fecha(2024, time.March, 10), 5, 100),
		lote("B", fecha(2022, time.July, 1), 3, 50),
		lote("A", fecha(2023, time.January, 2), 1, 80),
	}

	ref := fifo.OpeningReferenceDate(receipts, fecha(2026, time.August, 29))

	assert.Equal(t, fecha(2021, time.December, 31), ref)
}

// Sin entradas en ningún producto, la referencia es el año de proceso menos uno.
func TestOpeningReferenceDate_SinEntradas(t *testing.T) {
	ref := fifo.OpeningReferenceDate(nil, fecha(2026, time.August, 29))

	assert.Equal(t, fecha(2025, time.December, 31), ref)
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la cola
// ──────────────────────────────────────────────────────────────────────────────

// El orden de la cola es (fecha, origen) ascendente; con la misma fecha el
// stock inicial va estrictamente antes que la entrada.
func TestBuildQueue_OrdenPorFechaYOrigen(t *testing.T) {
	openingDate := fecha(2023, time.December, 31)
	opening := []entity.Lot{lote("A", time.Time{}, 10, 100)}
	receipts := []entity.Lot{
		lote("A", fecha(2024, time.February, 1), 5, 120),
		lote("A", openingDate, 2, 90), // mismo día que la apertura
		lote("A", fecha(2024, time.January, 15), 7, 110),
	}

	queue, err := fifo.BuildQueue(openingDate, opening, receipts)
	require.NoError(t, err)

	lots := queue.Lots()
	require.Len(t, lots, 4)
	assert.Equal(t, entity.SourceOpeningBalance, lots[0].Source, "la apertura drena primero aun con fecha empatada")
	assert.Equal(t, "10", lots[0].Quantity.String())
	assert.Equal(t, "2", lots[1].Quantity.String(), "entrada con fecha de referencia va después de la apertura")
	assert.Equal(t, "7", lots[2].Quantity.String())
	assert.Equal(t, "5", lots[3].Quantity.String())
}

// La fecha de los lotes de apertura siempre es la referencia global, no la que
// traiga la fila.
func TestBuildQueue_AperturaUsaFechaDeReferencia(t *testing.T) {
	openingDate := fecha(2021, time.December, 31)
	opening := []entity.Lot{lote("A", fecha(2024, time.June, 1), 10, 100)}

	queue, err := fifo.BuildQueue(openingDate, opening, nil)
	require.NoError(t, err)

	require.Equal(t, 1, queue.Len())
	assert.Equal(t, openingDate, queue.Head().EffectiveDate)
}

// Una entrada sin fecha es una violación del contrato de campos obligatorios.
func TestBuildQueue_EntradaSinFecha(t *testing.T) {
	receipts := []entity.Lot{lote("A", time.Time{}, 5, 100)}

	_, err := fifo.BuildQueue(fecha(2023, time.December, 31), nil, receipts)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fecha", vErr.Field)
	assert.Equal(t, 0, vErr.Row)
}

// El total de la cola es el stock en mano del producto.
func TestLotQueue_TotalQuantity(t *testing.T) {
	openingDate := fecha(2023, time.December, 31)
	opening := []entity.Lot{lote("A", time.Time{}, 10, 100)}
	receipts := []entity.Lot{lote("A", fecha(2024, time.January, 1), 5, 120)}

	queue, err := fifo.BuildQueue(openingDate, opening, receipts)
	require.NoError(t, err)

	assert.Equal(t, "15", queue.TotalQuantity().String())

	queue.Head().Quantity = queue.Head().Quantity.Sub(decimal.NewFromInt(4))
	assert.Equal(t, "11", queue.TotalQuantity().String())

	queue.Pop()
	assert.Equal(t, "5", queue.TotalQuantity().String())
}
