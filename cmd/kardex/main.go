// kardex corre una valorización FIFO por lotes desde un documento JSON con el
// mismo formato del endpoint POST /api/kardex/fifo, y escribe el kardex
// resultante como JSON.
//
// Uso: go run ./cmd/kardex -in lote.json [-out kardex.json] [-pretty]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/dto"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/kardex"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/pkg/config"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/pkg/logger"
)

func main() {
	inPath := flag.String("in", "", "archivo JSON con el lote (obligatorio)")
	outPath := flag.String("out", "", "archivo de salida; vacío = stdout")
	pretty := flag.Bool("pretty", false, "JSON indentado")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "uso: kardex -in lote.json [-out kardex.json] [-pretty]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	f, err := os.Open(*inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "abrir lote:", err)
		os.Exit(1)
	}
	defer f.Close()

	var req dto.FifoRunRequest
	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		fmt.Fprintln(os.Stderr, "decodificar lote:", err)
		os.Exit(1)
	}

	uc := kardex.NewValuationUseCase(log, cfg.Engine.Workers)
	res, err := uc.Run(context.Background(), req.ToBatchInput())
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintln(os.Stderr, "validación:", vErr)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "valorización:", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		out, err = os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "crear salida:", err)
			os.Exit(1)
		}
		defer out.Close()
	}

	enc := json.NewEncoder(out)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(dto.FromBatchResult(res)); err != nil {
		fmt.Fprintln(os.Stderr, "codificar kardex:", err)
		os.Exit(1)
	}
}
