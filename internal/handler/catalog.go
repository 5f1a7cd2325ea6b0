package handler

import (
	"net/http"

	"github.com/osse101/MagicGarden_Go/internal/domain"
)

// CatalogQuery holds the catalog search parameters
type CatalogQuery struct {
	Query string `validate:"max=100"`
	Sort  string `validate:"sortkey"`
}

// CatalogResponse lists matching plants
type CatalogResponse struct {
	Plants []domain.Plant `json:"plants"`
	Count  int            `json:"count"`
}

// HandleCatalog searches the plant catalog
// @Summary Search plants
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Param sort query string false "price_asc, price_desc, time_asc, time_desc, reward_asc or reward_desc"
// @Success 200 {object} CatalogResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /api/v1/catalog [get]
func HandleCatalog(catalog CatalogSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := CatalogQuery{
			Query: r.URL.Query().Get("q"),
			Sort:  r.URL.Query().Get("sort"),
		}
		if err := validateOrRespond(w, q); err != nil {
			return
		}

		plants, err := catalog.Search(q.Query, q.Sort)
		if err != nil {
			loggerFor(r).Warn("Catalog search failed", "error", err)
			respondError(w, http.StatusUnprocessableEntity, ErrMsgInvalidQuery)
			return
		}
		respondJSON(w, http.StatusOK, CatalogResponse{Plants: plants, Count: len(plants)})
	}
}
