package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/dto"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/kardex"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain"
)

// KardexHandler maneja las corridas de valorización FIFO (protegido).
type KardexHandler struct {
	uc *kardex.ValuationUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *kardex.ValuationUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// RunFifo godoc
// @Summary      Generar kardex valorizado FIFO
// @Description  Recibe los streams de stock inicial, entradas y salidas ya
//               normalizados, con sus mapeos de roles y columnas auxiliares,
//               y devuelve el kardex completo con saldos acumulados.
// @Tags         kardex
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FifoRunRequest  true  "streams, mapeos de roles y columnas extra"
// @Success      200   {object}  dto.FifoRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/kardex/fifo [post]
func (h *KardexHandler) RunFifo(c *fiber.Ctx) error {
	var req dto.FifoRunRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Run(c.Context(), req.ToBatchInput())
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromBatchResult(res))
}
