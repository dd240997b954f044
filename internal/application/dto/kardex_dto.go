package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/kardex"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/fifo"
)

// RoleMappingDTO columnas del caller por rol canónico de un stream.
type RoleMappingDTO struct {
	Product  string `json:"product"`
	Date     string `json:"date,omitempty"`
	Quantity string `json:"quantity"`
	UnitCost string `json:"unit_cost,omitempty"`
}

// AttributeRuleDTO regla de columna auxiliar: etiqueta de salida y campo
// fuente por stream (vacío = no aplica para ese stream).
type AttributeRuleDTO struct {
	Label       string `json:"label"`
	FromOpening string `json:"from_opening,omitempty"`
	FromReceipt string `json:"from_receipt,omitempty"`
	FromIssue   string `json:"from_issue,omitempty"`
}

// FifoRunRequest body para POST /api/kardex/fifo. Los registros vienen como
// objetos clave-valor ya normalizados: fechas en RFC 3339 o YYYY-MM-DD,
// cantidades y costos como números JSON.
type FifoRunRequest struct {
	OpeningBalance []map[string]any `json:"opening_balance,omitempty"`
	Receipts       []map[string]any `json:"receipts,omitempty"`
	Issues         []map[string]any `json:"issues"`

	OpeningMapping RoleMappingDTO `json:"opening_mapping,omitempty"`
	ReceiptMapping RoleMappingDTO `json:"receipt_mapping,omitempty"`
	IssueMapping   RoleMappingDTO `json:"issue_mapping"`

	ExtraColumns []AttributeRuleDTO `json:"extra_columns,omitempty"`
}

// ToBatchInput traduce el request al input del caso de uso.
func (r FifoRunRequest) ToBatchInput() kardex.BatchInput {
	rules := make([]fifo.AttributeRule, 0, len(r.ExtraColumns))
	for _, c := range r.ExtraColumns {
		rules = append(rules, fifo.AttributeRule{
			Label:   c.Label,
			Opening: c.FromOpening,
			Receipt: c.FromReceipt,
			Issue:   c.FromIssue,
		})
	}
	return kardex.BatchInput{
		Opening:        r.OpeningBalance,
		Receipts:       r.Receipts,
		Issues:         r.Issues,
		OpeningMapping: toRoleMapping(r.OpeningMapping),
		ReceiptMapping: toRoleMapping(r.ReceiptMapping),
		IssueMapping:   toRoleMapping(r.IssueMapping),
		Rules:          rules,
	}
}

func toRoleMapping(m RoleMappingDTO) kardex.RoleMapping {
	return kardex.RoleMapping{
		Product:  m.Product,
		Date:     m.Date,
		Quantity: m.Quantity,
		UnitCost: m.UnitCost,
	}
}

// KardexEntryDTO una fila del kardex en la respuesta.
type KardexEntryDTO struct {
	Date         time.Time       `json:"date"`
	Product      string          `json:"product"`
	Attributes   map[string]any  `json:"attributes,omitempty"`
	QtyIn        decimal.Decimal `json:"qty_in"`
	UnitCostIn   decimal.Decimal `json:"unit_cost_in"`
	TotalIn      decimal.Decimal `json:"total_in"`
	QtyOut       decimal.Decimal `json:"qty_out"`
	UnitCostOut  decimal.Decimal `json:"unit_cost_out"`
	TotalOut     decimal.Decimal `json:"total_out"`
	RunningQty   decimal.Decimal `json:"stock"`
	RunningValue decimal.Decimal `json:"stock_value"`
	Tag          string          `json:"tag"`
}

// FifoRunResponse respuesta de una corrida de valorización.
type FifoRunResponse struct {
	RunID    string           `json:"run_id"`
	Products int              `json:"products"`
	Rows     int              `json:"rows"`
	Ledger   []KardexEntryDTO `json:"ledger"`
}

// FromBatchResult arma la respuesta a partir del resultado del caso de uso.
func FromBatchResult(res *kardex.BatchResult) FifoRunResponse {
	ledger := make([]KardexEntryDTO, 0, len(res.Ledger))
	for _, row := range res.Ledger {
		ledger = append(ledger, fromEntry(row))
	}
	return FifoRunResponse{
		RunID:    res.RunID,
		Products: res.Products,
		Rows:     len(ledger),
		Ledger:   ledger,
	}
}

func fromEntry(e entity.KardexEntry) KardexEntryDTO {
	return KardexEntryDTO{
		Date:         e.Date,
		Product:      e.ProductKey,
		Attributes:   e.Attributes,
		QtyIn:        e.QtyIn,
		UnitCostIn:   e.UnitCostIn,
		TotalIn:      e.TotalIn,
		QtyOut:       e.QtyOut,
		UnitCostOut:  e.UnitCostOut,
		TotalOut:     e.TotalOut,
		RunningQty:   e.RunningQty,
		RunningValue: e.RunningValue,
		Tag:          e.Tag,
	}
}
