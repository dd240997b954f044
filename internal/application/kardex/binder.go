package kardex

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/fifo"
)

// Nombres de stream usados en los ValidationError.
const (
	streamOpening  = "stock_inicial"
	streamReceipts = "entradas"
	streamIssues   = "salidas"
)

// RoleMapping columnas declaradas por el caller para los roles canónicos de
// un stream. Cadena vacía = rol sin mapear.
type RoleMapping struct {
	Product  string
	Date     string
	Quantity string
	UnitCost string
}

// BatchInput un lote completo de valorización: los tres streams de registros
// ya normalizados (clave-valor con tipos canónicos), sus mapeos de roles y la
// tabla de reglas de columnas auxiliares.
type BatchInput struct {
	Opening  []map[string]any
	Receipts []map[string]any
	Issues   []map[string]any

	OpeningMapping RoleMapping // Date no aplica: la fecha de apertura es sintética
	ReceiptMapping RoleMapping
	IssueMapping   RoleMapping // UnitCost no aplica: el costo sale del lote consumido

	Rules []fifo.AttributeRule
}

// validateMappings contrato de campos obligatorios por stream: si un
// rol requerido queda sin mapear el motor se niega a correr nombrando el rol,
// en lugar de asumir un valor por defecto.
func (in BatchInput) validateMappings() error {
	type roleCol struct {
		role string
		col  string
	}
	check := func(stream string, roles []roleCol) error {
		for _, rc := range roles {
			if rc.col == "" {
				return domain.NewValidationError(stream, rc.role, "rol obligatorio sin mapear")
			}
		}
		return nil
	}
	if len(in.Opening) > 0 {
		if err := check(streamOpening, []roleCol{
			{"producto", in.OpeningMapping.Product},
			{"cantidad", in.OpeningMapping.Quantity},
			{"costo_unitario", in.OpeningMapping.UnitCost},
		}); err != nil {
			return err
		}
	}
	if len(in.Receipts) > 0 {
		if err := check(streamReceipts, []roleCol{
			{"producto", in.ReceiptMapping.Product},
			{"fecha", in.ReceiptMapping.Date},
			{"cantidad", in.ReceiptMapping.Quantity},
			{"costo_unitario", in.ReceiptMapping.UnitCost},
		}); err != nil {
			return err
		}
	}
	return check(streamIssues, []roleCol{
		{"producto", in.IssueMapping.Product},
		{"fecha", in.IssueMapping.Date},
		{"cantidad", in.IssueMapping.Quantity},
	})
}

// bindLots materializa un stream de entrada (stock inicial o entradas) en
// lotes tipados, aplicando la tabla de atributos correspondiente a la fuente.
// Cantidad o costo ausentes se toman como cero; una fecha ausente o de tipo
// inválido aborta la corrida.
func bindLots(stream string, records []map[string]any, m RoleMapping, kind fifo.RecordKind, rules []fifo.AttributeRule) ([]entity.Lot, error) {
	if len(records) == 0 {
		return nil, nil
	}
	withDate := kind == fifo.FromReceipt
	lots := make([]entity.Lot, 0, len(records))
	for i, rec := range records {
		key, err := productKey(stream, i, rec[m.Product])
		if err != nil {
			return nil, err
		}
		qty, err := decimalRole(stream, "cantidad", i, rec[m.Quantity])
		if err != nil {
			return nil, err
		}
		cost, err := decimalRole(stream, "costo_unitario", i, rec[m.UnitCost])
		if err != nil {
			return nil, err
		}
		lot := entity.Lot{
			ProductKey: key,
			Quantity:   qty,
			UnitCost:   cost,
			Attributes: fifo.ApplyRules(rules, kind, rec),
		}
		if withDate {
			date, err := dateRole(stream, i, rec[m.Date])
			if err != nil {
				return nil, err
			}
			lot.EffectiveDate = date
		}
		lots = append(lots, lot)
	}
	return lots, nil
}

// bindIssues materializa el stream de salidas.
func bindIssues(records []map[string]any, m RoleMapping, rules []fifo.AttributeRule) ([]entity.Issue, error) {
	issues := make([]entity.Issue, 0, len(records))
	for i, rec := range records {
		key, err := productKey(streamIssues, i, rec[m.Product])
		if err != nil {
			return nil, err
		}
		qty, err := decimalRole(streamIssues, "cantidad", i, rec[m.Quantity])
		if err != nil {
			return nil, err
		}
		date, err := dateRole(streamIssues, i, rec[m.Date])
		if err != nil {
			return nil, err
		}
		issues = append(issues, entity.Issue{
			ProductKey:    key,
			EffectiveDate: date,
			Quantity:      qty,
			Attributes:    fifo.ApplyRules(rules, fifo.FromIssue, rec),
		})
	}
	return issues, nil
}

// productKey acepta la clave de producto como string o numérico ya tipado.
// nil produce clave vacía (la fila se descarta luego junto con las claves
// placeholder, igual que el resto de claves no válidas).
func productKey(stream string, row int, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	default:
		return "", &domain.ValidationError{Stream: stream, Field: "producto", Row: row, Reason: "tipo de clave de producto no soportado"}
	}
}

// decimalRole convierte un valor canónico numérico. nil vale cero; el motor
// no interpreta texto con formato de localización.
func decimalRole(stream, role string, row int, v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return t, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, &domain.ValidationError{Stream: stream, Field: role, Row: row, Reason: "valor no numérico"}
		}
		return d, nil
	default:
		return decimal.Zero, &domain.ValidationError{Stream: stream, Field: role, Row: row, Reason: "valor no numérico"}
	}
}

// Formatos de fecha canónicos aceptados en el transporte JSON.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// dateRole convierte un valor canónico de fecha: time.Time ya tipado, o su
// representación de transporte RFC 3339 / fecha ISO. Ausente o inválido
// aborta la corrida (una fecha perdida enmascararía problemas de calidad de
// datos como resultados vacíos).
func dateRole(stream string, row int, v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, t); err == nil {
				return d, nil
			}
		}
		return time.Time{}, &domain.ValidationError{Stream: stream, Field: "fecha", Row: row, Reason: "fecha inválida (se espera RFC 3339 o YYYY-MM-DD)"}
	default:
		return time.Time{}, &domain.ValidationError{Stream: stream, Field: "fecha", Row: row, Reason: "fecha ausente o de tipo inválido"}
	}
}
