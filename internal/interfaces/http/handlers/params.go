package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"sales-crm.backend/internal/domain/entities"
)

// parseIDParam reads a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseRelatedQuery reads the relatedType/relatedId query pair used by the
// task and activity feeds
func parseRelatedQuery(c *gin.Context) (entities.RelatedRef, bool) {
	kind := entities.RelatedKind(c.Query("relatedType"))
	if kind != entities.RelatedKindDeal && kind != entities.RelatedKindContact {
		return entities.RelatedRef{}, false
	}
	id, err := strconv.ParseUint(c.Query("relatedId"), 10, 32)
	if err != nil {
		return entities.RelatedRef{}, false
	}
	return entities.RelatedRef{Kind: kind, ID: uint(id)}, true
}
