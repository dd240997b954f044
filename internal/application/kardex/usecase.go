package kardex

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/entity"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain/fifo"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/pkg/logger"
)

// ValuationUseCase orquesta una corrida de valorización FIFO: valida el
// contrato de mapeos, materializa los streams, calcula la fecha de referencia
// global del stock inicial y reparte un producto por tarea sobre un pool de
// workers. Cada producto corre sus tres etapas (cola → consumo → saldos) de
// forma secuencial y determinista; no hay estado mutable compartido entre
// productos salvo la fecha de referencia, calculada una sola vez.
type ValuationUseCase struct {
	log     *logger.Logger
	workers int
	now     func() time.Time // inyectable: año de referencia cuando no hay entradas
}

// NewValuationUseCase construye el caso de uso. workers <= 0 usa NumCPU.
func NewValuationUseCase(log *logger.Logger, workers int) *ValuationUseCase {
	return &ValuationUseCase{log: log, workers: workers, now: time.Now}
}

// BatchResult el kardex valorizado de una corrida completa.
type BatchResult struct {
	RunID    string
	Products int
	Ledger   []entity.KardexEntry
}

// Run ejecuta la corrida completa. Cualquier falla de validación aborta todo
// (no se devuelve un kardex parcial: datos financieros a medias son peores
// que ningún dato). El contexto se consulta entre productos; una corrida por
// producto es corta y atómica desde el punto de vista del caller.
func (uc *ValuationUseCase) Run(ctx context.Context, input BatchInput) (*BatchResult, error) {
	started := time.Now()
	runID := uuid.New().String()

	if err := input.validateMappings(); err != nil {
		return nil, err
	}
	opening, err := bindLots(streamOpening, input.Opening, input.OpeningMapping, fifo.FromOpening, input.Rules)
	if err != nil {
		return nil, err
	}
	receipts, err := bindLots(streamReceipts, input.Receipts, input.ReceiptMapping, fifo.FromReceipt, input.Rules)
	if err != nil {
		return nil, err
	}
	issues, err := bindIssues(input.Issues, input.IssueMapping, input.Rules)
	if err != nil {
		return nil, err
	}

	// Fecha de referencia global: se computa una sola vez sobre TODAS las
	// entradas, de todos los productos, antes del fan-out.
	openingDate := fifo.OpeningReferenceDate(receipts, uc.now())

	openingByKey := groupLots(opening)
	receiptsByKey := groupLots(receipts)
	issuesByKey := groupIssues(issues)
	keys := productKeys(openingByKey, receiptsByKey, issuesByKey)

	ledgers := make([][]entity.KardexEntry, len(keys))
	errs := make([]error, len(keys))

	workers := uc.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	type job struct {
		idx int
		key string
	}
	jobs := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					errs[j.idx] = err
					continue
				}
				ledgers[j.idx], errs[j.idx] = processProduct(
					openingDate,
					openingByKey[j.key],
					receiptsByKey[j.key],
					issuesByKey[j.key],
				)
			}
		}()
	}
	for i, key := range keys {
		jobs <- job{idx: i, key: key}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	total := 0
	for _, rows := range ledgers {
		total += len(rows)
	}
	ledger := make([]entity.KardexEntry, 0, total)
	for _, rows := range ledgers {
		ledger = append(ledger, rows...)
	}
	// Orden final (producto, fecha); estable, así los empates de fecha
	// conservan el orden de emisión de cada producto.
	sort.SliceStable(ledger, func(i, j int) bool {
		if ledger[i].ProductKey != ledger[j].ProductKey {
			return ledger[i].ProductKey < ledger[j].ProductKey
		}
		return ledger[i].Date.Before(ledger[j].Date)
	})

	if uc.log != nil {
		uc.log.Info().
			Str("run_id", runID).
			Int("productos", len(keys)).
			Int("filas", len(ledger)).
			Int64("ms", time.Since(started).Milliseconds()).
			Msg("kardex FIFO generado")
	}
	return &BatchResult{RunID: runID, Products: len(keys), Ledger: ledger}, nil
}

// processProduct las tres etapas de un producto: cola, consumo y saldos.
func processProduct(openingDate time.Time, opening, receipts []entity.Lot, issues []entity.Issue) ([]entity.KardexEntry, error) {
	queue, err := fifo.BuildQueue(openingDate, opening, receipts)
	if err != nil {
		return nil, err
	}
	rows := fifo.Consume(queue, issues)
	return fifo.ApplyRunningBalance(rows), nil
}

func groupLots(lots []entity.Lot) map[string][]entity.Lot {
	byKey := make(map[string][]entity.Lot)
	for _, lot := range lots {
		byKey[lot.ProductKey] = append(byKey[lot.ProductKey], lot)
	}
	return byKey
}

func groupIssues(issues []entity.Issue) map[string][]entity.Issue {
	byKey := make(map[string][]entity.Issue)
	for _, issue := range issues {
		byKey[issue.ProductKey] = append(byKey[issue.ProductKey], issue)
	}
	return byKey
}

// productKeys unión ordenada de claves de producto de ambos streams de
// entrada y el de salidas. El orden lexicográfico fijo hace la corrida
// reproducible byte a byte. Claves vacías o placeholder se descartan.
func productKeys(opening, receipts map[string][]entity.Lot, issues map[string][]entity.Issue) []string {
	seen := make(map[string]struct{})
	for key := range opening {
		seen[key] = struct{}{}
	}
	for key := range receipts {
		seen[key] = struct{}{}
	}
	for key := range issues {
		seen[key] = struct{}{}
	}
	delete(seen, "")
	delete(seen, "-")
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
