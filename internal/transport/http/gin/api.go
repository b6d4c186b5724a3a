package httpgin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/smartpark/internal/service"
)

// --- Handlers with Swagger annotations ---

// @Summary  List garages with per-level availability
// @Produce  json
// @Success  200  {array}   parking.GarageView
// @Failure  503  {object}  ErrorResponse
// @Router   /api/garages [get]
func handleListGarages(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		garages, err := svcs.Parking.Availability(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s
		writeJSONWithCache(c, http.StatusOK, garages, "public, max-age=15", true)
	}
}

// @Summary  Aggregate availability across all garages
// @Produce  json
// @Success  200  {object}  parking.Overview
// @Router   /api/parking/overview [get]
func handleParkingOverview(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ov, err := svcs.Parking.Overview(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, ov, "public, max-age=15", true)
	}
}

// @Summary  List permit types
// @Produce  json
// @Success  200  {array}  domain.PermitType
// @Router   /api/permits [get]
func handleListPermits(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, err := svcs.Permits.Catalog(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		// the catalog is static; let clients keep it longer
		writeJSONWithCache(c, http.StatusOK, catalog, "public, max-age=300", false)
	}
}

// @Summary  Order summary for a permit type
// @Produce  json
// @Param    id  path  string  true  "Permit type ID"  Enums(daily, weekly, monthly, semester)
// @Success  200  {object}  permits.Summary
// @Failure  404  {object}  ErrorResponse
// @Router   /api/permits/{id}/summary [get]
func handlePermitSummary(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sum, err := svcs.Permits.Summary(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, sum, "public, max-age=300", false)
	}
}
