package fifo

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
)

// Consume recorre las salidas de un producto en orden cronológico drenando la
// cola de lotes, y produce las filas crudas del kardex (sin saldos
// acumulados):
//
//  1. Una fila IN por cada lote de la cola, en orden de cola, antes de
//     consumir nada. La fila hereda cantidad, costo y atributos del lote.
//  2. Por cada salida, una o más filas OUT: cada asignación toma el costo
//     unitario del lote en cabeza; los atributos de una fila OUT salen
//     siempre del mapeo de la propia salida, nunca del lote. Si la cola se
//     agota queda una fila STOCKOUT con el faltante a costo cero (el
//     faltante se reporta, no se reintenta ni queda en backorder).
//
// Una salida con cantidad cero no emite filas. Un lote con cantidad cero
// igual emite su fila IN (trazabilidad) y, al alcanzarlo el consumo, una
// fila OUT en cero antes de ser descartado.
func Consume(queue *LotQueue, issues []entity.Issue) []entity.KardexEntry {
	sorted := make([]entity.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate)
	})

	rows := make([]entity.KardexEntry, 0, queue.Len()+len(sorted))

	for _, lot := range queue.Lots() {
		rows = append(rows, entity.KardexEntry{
			Date:        lot.EffectiveDate,
			ProductKey:  lot.ProductKey,
			Attributes:  lot.Attributes,
			QtyIn:       lot.Quantity,
			UnitCostIn:  lot.UnitCost,
			TotalIn:     lot.Quantity.Mul(lot.UnitCost),
			QtyOut:      decimal.Zero,
			UnitCostOut: decimal.Zero,
			TotalOut:    decimal.Zero,
			Tag:         entity.TagIN,
		})
	}

	for _, issue := range sorted {
		remaining := issue.Quantity
		for remaining.GreaterThan(decimal.Zero) {
			if queue.Empty() {
				rows = append(rows, entity.KardexEntry{
					Date:        issue.EffectiveDate,
					ProductKey:  issue.ProductKey,
					Attributes:  issue.Attributes,
					QtyIn:       decimal.Zero,
					UnitCostIn:  decimal.Zero,
					TotalIn:     decimal.Zero,
					QtyOut:      remaining,
					UnitCostOut: decimal.Zero,
					TotalOut:    decimal.Zero,
					Tag:         entity.TagSTOCKOUT,
				})
				remaining = decimal.Zero
				continue
			}
			head := queue.Head()
			take := decimal.Min(head.Quantity, remaining)
			unitCost := head.UnitCost
			if head.Quantity.LessThanOrEqual(remaining) {
				queue.Pop()
			} else {
				head.Quantity = head.Quantity.Sub(take)
			}
			remaining = remaining.Sub(take)
			rows = append(rows, entity.KardexEntry{
				Date:        issue.EffectiveDate,
				ProductKey:  issue.ProductKey,
				Attributes:  issue.Attributes,
				QtyIn:       decimal.Zero,
				UnitCostIn:  decimal.Zero,
				TotalIn:     decimal.Zero,
				QtyOut:      take,
				UnitCostOut: unitCost,
				TotalOut:    take.Mul(unitCost),
				Tag:         entity.TagOUT,
			})
		}
	}
	return rows
}
