package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"claimscope/internal/adapter/export"
	"claimscope/internal/domain/rollup"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewExportHandler(uc usecase.IEstimateUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportXLSX godoc
// @Summary      Download the estimate as a spreadsheet
// @Tags         estimates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        estimate_id  path  string  true  "Estimate ID"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/export.xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	ctx := c.Request.Context()
	est, err := h.usecase.GetEstimateHierarchy(ctx, c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteEstimateXLSX(&buf, est, rollup.AllocateByCoverage(est)); err != nil {
		logger.Errorf(ctx, "[export][handler] xlsx failed estimate_id=%s err=%v", est.ID, err)
		writeError(c, mapEstimateError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="estimate-%s.xlsx"`, est.ClaimNumber))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
