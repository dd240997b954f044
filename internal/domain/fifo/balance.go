package fifo

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
)

// ApplyRunningBalance ordena las filas crudas de un producto por fecha
// (orden estable: los empates conservan el orden de emisión), acumula stock y
// valor fila a fila, y reetiqueta la última fila como saldo actual: CURRENT,
// o CURRENT_STOCKOUT si la fila cerró en quiebre de stock. Muta el slice
// recibido y lo devuelve.
func ApplyRunningBalance(rows []entity.KardexEntry) []entity.KardexEntry {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	qty := decimal.Zero
	value := decimal.Zero
	for i := range rows {
		qty = qty.Add(rows[i].QtyIn)
		value = value.Add(rows[i].TotalIn).Sub(rows[i].TotalOut)
		// Una fila STOCKOUT reporta el faltante pero no mueve stock: no
		// había unidades que descontar, el saldo no puede volverse negativo.
		if rows[i].Tag != entity.TagSTOCKOUT {
			qty = qty.Sub(rows[i].QtyOut)
		}
		rows[i].RunningQty = qty
		rows[i].RunningValue = value
	}
	if n := len(rows); n > 0 {
		last := &rows[n-1]
		if last.Tag == entity.TagSTOCKOUT {
			last.Tag = entity.TagCURRENTSTOCKOUT
		} else {
			last.Tag = entity.TagCURRENT
		}
	}
	return rows
}
