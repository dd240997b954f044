package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen de un lote dentro de la cola FIFO. El valor numérico se usa como
// desempate de orden: con la misma fecha, el stock inicial entra a la cola
// antes que las compras.
type LotSource int

const (
	SourceOpeningBalance LotSource = 0 // stock inicial (saldo de apertura)
	SourceReceipt        LotSource = 1 // entrada de mercancía
)

// Etiquetas de las filas del kardex valorizado.
const (
	TagIN              = "IN"               // entrada de lote a la cola
	TagOUT             = "OUT"              // salida asignada contra un lote
	TagSTOCKOUT        = "STOCKOUT"         // demanda sin stock disponible
	TagCURRENT         = "CURRENT"          // última fila del producto (saldo actual)
	TagCURRENTSTOCKOUT = "CURRENT_STOCKOUT" // saldo actual en quiebre de stock
)

// Attributes columnas auxiliares definidas por el caller, etiqueta → valor.
// nil marca un valor ausente (la regla no mapea columna para esa fuente, o la
// fila fuente no trae el campo); es distinto de cadena vacía.
type Attributes map[string]any

// Lot un lote consumible de stock: stock inicial o una entrada, con cantidad
// y costo unitario conocidos. La cantidad se decrementa al consumirse
// parcialmente; el lote sale de la cola cuando llega a cero.
type Lot struct {
	ProductKey    string
	EffectiveDate time.Time
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	Source        LotSource
	Attributes    Attributes
}

// Issue una demanda de salida de un producto en una fecha. Inmutable; se
// satisface asignando contra la cola de lotes hasta agotarla o agotarse.
type Issue struct {
	ProductKey    string
	EffectiveDate time.Time
	Quantity      decimal.Decimal
	Attributes    Attributes
}

// KardexEntry una fila del kardex valorizado FIFO.
type KardexEntry struct {
	Date         time.Time
	ProductKey   string
	Attributes   Attributes
	QtyIn        decimal.Decimal
	UnitCostIn   decimal.Decimal
	TotalIn      decimal.Decimal
	QtyOut       decimal.Decimal
	UnitCostOut  decimal.Decimal
	TotalOut     decimal.Decimal
	RunningQty   decimal.Decimal
	RunningValue decimal.Decimal
	Tag          string
}
