package fifo

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
)

// OpeningReferenceDate fecha sintética global del stock inicial: 31 de
// diciembre del (año mínimo entre TODAS las entradas − 1); si no hay entradas
// en ningún producto, (año de proceso − 1). La fecha es una referencia única
// compartida por todos los lotes de apertura, de modo que el stock inicial se
// consume siempre antes que cualquier entrada sin importar las fechas de
// entrada de otro producto.
func OpeningReferenceDate(receipts []entity.Lot, now time.Time) time.Time {
	year := now.Year()
	if len(receipts) > 0 {
		year = receipts[0].EffectiveDate.Year()
		for _, r := range receipts[1:] {
			if y := r.EffectiveDate.Year(); y < year {
				year = y
			}
		}
	}
	return time.Date(year-1, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// LotQueue cola de lotes de un producto, ordenada por (fecha efectiva, origen)
// con el stock inicial estrictamente antes que las entradas en empates.
// Invariante: la suma de cantidades restantes en la cola es el stock en mano
// real del producto al último evento procesado. La cola pertenece al
// procesamiento de un solo producto y se descarta al terminar sus salidas.
type LotQueue struct {
	lots []entity.Lot
}

// BuildQueue arma la cola de un producto a partir de sus filas de stock
// inicial y de entradas. A los lotes de apertura se les asigna la fecha de
// referencia global; las entradas conservan su propia fecha, que debe venir
// informada (la normalización es responsabilidad del caller, aquí solo se
// verifica presencia).
func BuildQueue(openingDate time.Time, opening, receipts []entity.Lot) (*LotQueue, error) {
	lots := make([]entity.Lot, 0, len(opening)+len(receipts))
	for _, lot := range opening {
		lot.EffectiveDate = openingDate
		lot.Source = entity.SourceOpeningBalance
		lots = append(lots, lot)
	}
	for i, lot := range receipts {
		if lot.EffectiveDate.IsZero() {
			return nil, &domain.ValidationError{
				Stream: "entradas", Field: "fecha", Row: i,
				Reason: "fecha de entrada ausente",
			}
		}
		lot.Source = entity.SourceReceipt
		lots = append(lots, lot)
	}
	sort.SliceStable(lots, func(i, j int) bool {
		if !lots[i].EffectiveDate.Equal(lots[j].EffectiveDate) {
			return lots[i].EffectiveDate.Before(lots[j].EffectiveDate)
		}
		return lots[i].Source < lots[j].Source
	})
	return &LotQueue{lots: lots}, nil
}

// Len cantidad de lotes restantes en la cola.
func (q *LotQueue) Len() int { return len(q.lots) }

// Empty true si no quedan lotes.
func (q *LotQueue) Empty() bool { return len(q.lots) == 0 }

// Head puntero al lote más antiguo. Las únicas mutaciones permitidas sobre la
// cola son decrementar la cantidad del head y Pop.
func (q *LotQueue) Head() *entity.Lot { return &q.lots[0] }

// Pop descarta el lote más antiguo.
func (q *LotQueue) Pop() { q.lots = q.lots[1:] }

// Lots vista de los lotes en orden de cola, previa al consumo.
func (q *LotQueue) Lots() []entity.Lot { return q.lots }

// TotalQuantity suma de cantidades restantes (soporte del invariante de
// conservación en tests).
func (q *LotQueue) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range q.lots {
		total = total.Add(lot.Quantity)
	}
	return total
}
