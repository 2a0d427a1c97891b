package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/domain"
	"github.com/vfg2006/ad-extractor-api/pkg/apiErrors"
)

// ListCatalogFields expõe o catálogo de campos extraíveis. Com o parâmetro
// level, filtra pelos campos disponíveis naquele nível.
func ListCatalogFields(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level := domain.ReportLevel(r.URL.Query().Get("level"))

		fields := c.Fields()
		if level != "" {
			if !level.Valid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nível de relatório inválido", nil)
				return
			}
			fields = c.FieldsForLevel(level)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"fields": fields,
			"total":  len(fields),
		})
	}
}

// ListCatalogBreakdowns expõe as dimensões de segmentação e suas
// incompatibilidades declaradas.
func ListCatalogBreakdowns(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breakdowns := c.Breakdowns()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"breakdowns": breakdowns,
			"total":      len(breakdowns),
		})
	}
}
