package handler

import (
	"net/http"

	"campus-compass-backend/internal/service"
	"campus-compass-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search runs the federated search. A blank query returns an empty list.
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Query("query"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Search failed")
		return
	}

	utils.SuccessResponse(c, results)
}
