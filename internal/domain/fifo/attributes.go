package fifo

import (
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
)

// RecordKind identifica de qué tabla fuente proviene una fila al resolver las
// columnas auxiliares.
type RecordKind int

const (
	FromOpening RecordKind = iota // stock inicial
	FromReceipt                   // entradas
	FromIssue                     // salidas
)

// AttributeRule regla declarativa de una columna auxiliar del resultado:
// para cada tipo de fila fuente, de qué campo se toma el valor. Cadena vacía
// significa "no aplica" para esa fuente. La misma tabla de reglas se evalúa
// al construir lotes y al resolver atributos del lado de las salidas, de modo
// que ambos caminos se comportan igual.
type AttributeRule struct {
	Label   string // nombre de la columna en el kardex resultante
	Opening string // campo fuente en el stock inicial ("" = no aplica)
	Receipt string // campo fuente en las entradas ("" = no aplica)
	Issue   string // campo fuente en las salidas ("" = no aplica)
}

func (r AttributeRule) sourceField(kind RecordKind) string {
	switch kind {
	case FromOpening:
		return r.Opening
	case FromReceipt:
		return r.Receipt
	default:
		return r.Issue
	}
}

// ApplyRules construye el mapeo de atributos de una fila fuente. Un valor
// ausente (regla sin campo para la fuente, o campo no presente en la fila) se
// registra como nil; nunca se convierte en cadena vacía.
func ApplyRules(rules []AttributeRule, kind RecordKind, record map[string]any) entity.Attributes {
	if len(rules) == 0 {
		return nil
	}
	attrs := make(entity.Attributes, len(rules))
	for _, rule := range rules {
		field := rule.sourceField(kind)
		if field == "" {
			attrs[rule.Label] = nil
			continue
		}
		v, ok := record[field]
		if !ok {
			attrs[rule.Label] = nil
			continue
		}
		attrs[rule.Label] = v
	}
	return attrs
}
