package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/liftory/liftory-api/internal/application/dto"
	"github.com/liftory/liftory-api/internal/application/report"
	domreport "github.com/liftory/liftory-api/internal/domain/report"
)

// ReportHandler maneja los endpoints de reportes (protegido). Los reportes se
// derivan bajo demanda del ledger y los gastos; nada se persiste.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero del período
// @Description  Ingresos, costo de compras, gastos operativos, ganancia neta y
//               margen. Período custom requiere from y to (YYYY-MM-DD).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | quarter | year | custom"  default(month)
// @Param        from    query  string  false  "Inicio custom (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fin custom (YYYY-MM-DD)"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "owner_id requerido"})
	}
	period, from, to, err := parsePeriodParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Summary(c.Context(), ownerID, period, from, to)
	if err != nil {
		return mapDomainError(c, err, "")
	}
	return c.JSON(out)
}

// Chart godoc
// @Summary      Serie de barras del período
// @Description  today: 6 tramos de 4h; week: 7 días; month: 4 semanas; year: 12
//               meses; quarter/custom: meses (máx. 12). kind filtra la serie.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | quarter | year | custom"  default(month)
// @Param        kind    query  string  false  "sale | purchase | expense | all"  default(sale)
// @Param        from    query  string  false  "Inicio custom (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fin custom (YYYY-MM-DD)"
// @Success      200  {object}  dto.ChartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/chart [get]
func (h *ReportHandler) Chart(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "owner_id requerido"})
	}
	period, from, to, err := parsePeriodParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	kind := c.Query("kind", report.ChartKindSale)
	switch kind {
	case report.ChartKindSale, report.ChartKindPurchase, report.ChartKindExpense, report.ChartKindAll:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser sale, purchase, expense o all"})
	}
	out, err := h.uc.Chart(c.Context(), ownerID, period, kind, from, to)
	if err != nil {
		return mapDomainError(c, err, "")
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Ranking de productos más vendidos del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | quarter | year | custom"  default(month)
// @Param        from    query  string  false  "Inicio custom (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fin custom (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Máx. productos (default 5, max 50)"
// @Success      200  {array}   dto.TopProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "owner_id requerido"})
	}
	period, from, to, err := parsePeriodParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	limit := c.QueryInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}
	out, err := h.uc.TopProducts(c.Context(), ownerID, period, from, to, limit)
	if err != nil {
		return mapDomainError(c, err, "")
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Detalle del período: movimientos y gastos incluidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | quarter | year | custom"  default(month)
// @Param        from    query  string  false  "Inicio custom (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fin custom (YYYY-MM-DD)"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "owner_id requerido"})
	}
	period, from, to, err := parsePeriodParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Report(c.Context(), ownerID, period, from, to)
	if err != nil {
		return mapDomainError(c, err, "")
	}
	return c.JSON(out)
}

// Range godoc
// @Summary      Rango de fechas efectivo del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | quarter | year | custom"  default(month)
// @Param        from    query  string  false  "Inicio custom (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fin custom (YYYY-MM-DD)"
// @Success      200  {object}  dto.RangeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/range [get]
func (h *ReportHandler) Range(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "owner_id requerido"})
	}
	period, from, to, err := parsePeriodParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(h.uc.ReportRange(period, from, to))
}

// parsePeriodParams lee period/from/to de la query. Un período desconocido cae
// a month; custom exige from y to en formato YYYY-MM-DD.
func parsePeriodParams(c *fiber.Ctx) (domreport.Period, *time.Time, *time.Time, error) {
	period := domreport.ParsePeriod(c.Query("period"))
	if period != domreport.PeriodCustom {
		return period, nil, nil, nil
	}
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return period, nil, nil, err
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return period, nil, nil, err
	}
	if from == nil || to == nil {
		return period, nil, nil, errors.New("período custom requiere from y to")
	}
	if to.Before(*from) {
		return period, nil, nil, errors.New("to no puede ser anterior a from")
	}
	return period, from, to, nil
}

func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, errors.New("fecha inválida, use YYYY-MM-DD")
	}
	return &t, nil
}
