package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openbooks/general_ledger_app/internal/apperrors"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
	"github.com/openbooks/general_ledger_app/internal/dto"
	"github.com/openbooks/general_ledger_app/internal/middleware"
)

// elementHandler handles HTTP requests related to accounting elements.
type elementHandler struct {
	elementService portssvc.ElementSvcFacade
}

// newElementHandler creates a new elementHandler.
func newElementHandler(es portssvc.ElementSvcFacade) *elementHandler {
	return &elementHandler{
		elementService: es,
	}
}

// RegisterElementRoutes registers routes related to elements.
func RegisterElementRoutes(rg *gin.RouterGroup, elementService portssvc.ElementSvcFacade) {
	h := newElementHandler(elementService)

	elements := rg.Group("/elements")
	{
		elements.POST("", h.saveElement)
		elements.GET("", h.listElements)
		elements.GET("/:number", h.getElementByNumber)
		elements.DELETE("/:number", h.deleteElement)
	}
}

// saveElement godoc
// @Summary Create or update an element
// @Description Saves an element keyed by its number; an existing number is updated in place
// @Tags elements
// @Accept  json
// @Produce  json
// @Param   element body dto.SaveElementRequest true "Element details"
// @Success 200 {object} dto.ElementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already used by another element"
// @Failure 500 {object} map[string]string "Failed to save element"
// @Router /elements [post]
func (h *elementHandler) saveElement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveElement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	element, err := h.elementService.SaveElement(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save element in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save element"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

// getElementByNumber godoc
// @Summary Get an element by number
// @Description Retrieves a single element by its number
// @Tags elements
// @Produce  json
// @Param   number path int true "Element Number"
// @Success 200 {object} dto.ElementResponse
// @Failure 404 {object} map[string]string "Element not found"
// @Failure 500 {object} map[string]string "Failed to retrieve element"
// @Router /elements/{number} [get]
func (h *elementHandler) getElementByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Element number must be an integer"})
		return
	}

	element, err := h.elementService.GetElementByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Element not found"})
		} else {
			logger.Error("Failed to get element from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve element"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToElementResponse(element))
}

// listElements godoc
// @Summary List elements
// @Description Retrieves elements matching the optional name pattern, ordered by number
// @Tags elements
// @Produce  json
// @Param   name query string false "Name LIKE pattern"
// @Success 200 {array} dto.ElementResponse
// @Failure 500 {object} map[string]string "Failed to list elements"
// @Router /elements [get]
func (h *elementHandler) listElements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListElementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	elements, err := h.elementService.ListElements(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list elements from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list elements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListElementResponse(elements))
}

// deleteElement godoc
// @Summary Delete an element
// @Description Removes an element unless an account still references it
// @Tags elements
// @Produce  json
// @Param   number path int true "Element Number"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Element not found"
// @Failure 409 {object} map[string]string "Element is referenced by accounts"
// @Failure 500 {object} map[string]string "Failed to delete element"
// @Router /elements/{number} [delete]
func (h *elementHandler) deleteElement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Element number must be an integer"})
		return
	}

	if err := h.elementService.DeleteElement(c.Request.Context(), number); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Element not found"})
		} else if errors.Is(err, apperrors.ErrReferentialConstraint) {
			c.JSON(http.StatusConflict, gin.H{"error": "Element is still referenced by accounts"})
		} else {
			logger.Error("Failed to delete element in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete element"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
