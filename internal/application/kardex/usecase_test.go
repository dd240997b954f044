package kardex_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/kardex"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/fifo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Lote de prueba: dos productos con apertura, entradas y salidas, una fila con
// clave placeholder y una columna auxiliar mapeada por stream.
// ──────────────────────────────────────────────────────────────────────────────

func loteDePrueba() kardex.BatchInput {
	return kardex.BatchInput{
		Opening: []map[string]any{
			{"Producto": "A", "Qty": 10.0, "Costo": 100.0, "Doc SO": "SO-1"},
		},
		Receipts: []map[string]any{
			{"Producto": "B", "Fecha": "2024-01-01", "Qty": 5.0, "Costo": 100.0, "Factura": "F-1"},
			{"Producto": "B", "Fecha": "2024-01-02", "Qty": 5.0, "Costo": 120.0, "Factura": "F-2"},
		},
		Issues: []map[string]any{
			{"Producto": "A", "Fecha": "2024-03-01", "Qty": 4.0, "Remisión": "R-1"},
			{"Producto": "B", "Fecha": "2024-01-03", "Qty": 8.0, "Remisión": "R-2"},
			{"Producto": "-", "Fecha": "2024-01-03", "Qty": 1.0},
		},
		OpeningMapping: kardex.RoleMapping{Product: "Producto", Quantity: "Qty", UnitCost: "Costo"},
		ReceiptMapping: kardex.RoleMapping{Product: "Producto", Date: "Fecha", Quantity: "Qty", UnitCost: "Costo"},
		IssueMapping:   kardex.RoleMapping{Product: "Producto", Date: "Fecha", Quantity: "Qty"},
		Rules: []fifo.AttributeRule{
			{Label: "Doc", Opening: "Doc SO", Receipt: "Factura", Issue: "Remisión"},
		},
	}
}

func TestRun_KardexCompleto(t *testing.T) {
	uc := kardex.NewValuationUseCase(nil, 4)

	res, err := uc.Run(context.Background(), loteDePrueba())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 2, res.Products, "la clave placeholder \"-\" se descarta")
	require.Len(t, res.Ledger, 6)

	// Producto A: apertura fechada con la referencia global (min año de
	// entradas de CUALQUIER producto: 2024 → 2023-12-31), luego la salida.
	a0, a1 := res.Ledger[0], res.Ledger[1]
	assert.Equal(t, "A", a0.ProductKey)
	assert.Equal(t, entity.TagIN, a0.Tag)
	assert.Equal(t, 2023, a0.Date.Year())
	assert.Equal(t, "SO-1", a0.Attributes["Doc"], "IN de apertura con el atributo de apertura")

	assert.Equal(t, entity.TagCURRENT, a1.Tag)
	assert.Equal(t, "4", a1.QtyOut.String())
	assert.Equal(t, "100", a1.UnitCostOut.String())
	assert.Equal(t, "6", a1.RunningQty.String())
	assert.Equal(t, "600", a1.RunningValue.String())
	assert.Equal(t, "R-1", a1.Attributes["Doc"], "OUT con el atributo de la salida")

	// Producto B: dos IN, luego la salida cruzando lotes.
	b := res.Ledger[2:]
	assert.Equal(t, entity.TagIN, b[0].Tag)
	assert.Equal(t, "F-1", b[0].Attributes["Doc"])
	assert.Equal(t, entity.TagIN, b[1].Tag)
	assert.Equal(t, entity.TagOUT, b[2].Tag)
	assert.Equal(t, "5", b[2].QtyOut.String())
	assert.Equal(t, "100", b[2].UnitCostOut.String())
	assert.Equal(t, entity.TagCURRENT, b[3].Tag)
	assert.Equal(t, "3", b[3].QtyOut.String())
	assert.Equal(t, "120", b[3].UnitCostOut.String())
	assert.Equal(t, "2", b[3].RunningQty.String())
	assert.Equal(t, "240", b[3].RunningValue.String())

	// Exactamente una fila de cierre por producto, y es la última por fecha.
	cierres := map[string]int{}
	for _, row := range res.Ledger {
		if row.Tag == entity.TagCURRENT || row.Tag == entity.TagCURRENTSTOCKOUT {
			cierres[row.ProductKey]++
		}
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, cierres)
}

// El kardex sale ordenado por (producto, fecha).
func TestRun_OrdenFinal(t *testing.T) {
	uc := kardex.NewValuationUseCase(nil, 2)

	res, err := uc.Run(context.Background(), loteDePrueba())
	require.NoError(t, err)

	for i := 1; i < len(res.Ledger); i++ {
		prev, curr := res.Ledger[i-1], res.Ledger[i]
		if prev.ProductKey == curr.ProductKey {
			assert.False(t, curr.Date.Before(prev.Date), "fechas fuera de orden dentro del producto")
		} else {
			assert.Less(t, prev.ProductKey, curr.ProductKey)
		}
	}
}

// Correr dos veces el mismo lote produce exactamente el mismo kardex, con
// cualquier cantidad de workers.
func TestRun_ReplayDeterminista(t *testing.T) {
	marshal := func(workers int) []byte {
		uc := kardex.NewValuationUseCase(nil, workers)
		res, err := uc.Run(context.Background(), loteDePrueba())
		require.NoError(t, err)
		b, err := json.Marshal(res.Ledger)
		require.NoError(t, err)
		return b
	}

	primero := marshal(1)
	assert.Equal(t, string(primero), string(marshal(1)))
	assert.Equal(t, string(primero), string(marshal(8)), "el paralelismo no cambia el resultado")
}

// Una falla de validación aborta la corrida completa: sin kardex parcial.
func TestRun_ValidacionAbortaTodo(t *testing.T) {
	in := loteDePrueba()
	in.Issues = append(in.Issues, map[string]any{"Producto": "C", "Fecha": "31/12/2024", "Qty": 1.0})

	uc := kardex.NewValuationUseCase(nil, 4)
	res, err := uc.Run(context.Background(), in)

	require.Error(t, err)
	assert.Nil(t, res)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fecha", vErr.Field)
}

// Rol sin mapear: el error nombra el rol y no se procesa nada.
func TestRun_RolSinMapear(t *testing.T) {
	in := loteDePrueba()
	in.IssueMapping.Quantity = ""

	uc := kardex.NewValuationUseCase(nil, 4)
	res, err := uc.Run(context.Background(), in)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un contexto cancelado corta entre productos.
func TestRun_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := kardex.NewValuationUseCase(nil, 1)
	res, err := uc.Run(ctx, loteDePrueba())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

// Solo salidas, sin stream de entrada: todo termina en quiebre de stock.
func TestRun_SoloSalidas(t *testing.T) {
	in := kardex.BatchInput{
		Issues: []map[string]any{
			{"Producto": "A", "Fecha": "2024-01-03", "Qty": 2.0},
		},
		IssueMapping: kardex.RoleMapping{Product: "Producto", Date: "Fecha", Quantity: "Qty"},
	}

	uc := kardex.NewValuationUseCase(nil, 0)
	res, err := uc.Run(context.Background(), in)

	require.NoError(t, err)
	require.Len(t, res.Ledger, 1)
	assert.Equal(t, entity.TagCURRENTSTOCKOUT, res.Ledger[0].Tag)
	assert.Equal(t, "2", res.Ledger[0].QtyOut.String())
	assert.Equal(t, "0", res.Ledger[0].RunningValue.String())
	assert.Equal(t, "0", res.Ledger[0].RunningQty.String(), "el faltante se reporta sin mover el saldo")
}
