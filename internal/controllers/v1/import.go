package v1

import (
	"net/http"

	"github.com/saku-app/backend/internal/config"
	"github.com/saku-app/backend/internal/httputil"
	"github.com/saku-app/backend/internal/importer"
	"github.com/saku-app/backend/internal/importer/sheets"
	"github.com/saku-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ImportResponse struct {
	Data  *importer.Result `json:"data"`  // Summary of the import run
	Error *string          `json:"error"` // The error, if any occurred
}

// RegisterImportRoutes registers the routes for importing transactions
// with the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup, cfg config.SheetsConfig) {
	r.OPTIONS("/sheets", OptionsImportSheets)
	r.POST("/sheets", ImportSheets(cfg))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/sheets [options]
func OptionsImportSheets(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ImportSheets returns the handler that imports transactions from the
// configured Google Sheets spreadsheet.
//
// @Summary		Import transactions
// @Description	Imports transactions from the configured Google Sheets spreadsheet. Rows that were imported before are skipped.
// @Tags			Import
// @Produce		json
// @Success		201	{object}	ImportResponse
// @Failure		400	{object}	ImportResponse
// @Failure		500	{object}	ImportResponse
// @Router			/v1/import/sheets [post]
func ImportSheets(cfg config.SheetsConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SpreadsheetID == "" {
			e := errImportNotConfigured.Error()
			c.JSON(http.StatusBadRequest, ImportResponse{Error: &e})
			return
		}

		client, err := sheets.New(c.Request.Context(), cfg)
		if err != nil {
			log.Error().Err(err).Msg("sheets import")
			e := err.Error()
			c.JSON(http.StatusInternalServerError, ImportResponse{Error: &e})
			return
		}

		rows, err := client.Fetch(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("sheets import")
			e := err.Error()
			c.JSON(http.StatusInternalServerError, ImportResponse{Error: &e})
			return
		}

		result, err := importer.Import(models.DB, rows)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ImportResponse{Error: &e})
			return
		}

		c.JSON(http.StatusCreated, ImportResponse{Data: &result})
	}
}
