package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks/general_ledger_app/internal/apperrors"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
	"github.com/openbooks/general_ledger_app/internal/dto"
	"github.com/openbooks/general_ledger_app/internal/middleware"
)

// playerHandler handles HTTP requests related to players (counterparties).
type playerHandler struct {
	playerService portssvc.PlayerSvcFacade
}

// newPlayerHandler creates a new playerHandler.
func newPlayerHandler(ps portssvc.PlayerSvcFacade) *playerHandler {
	return &playerHandler{
		playerService: ps,
	}
}

// RegisterPlayerRoutes registers routes related to players.
func RegisterPlayerRoutes(rg *gin.RouterGroup, playerService portssvc.PlayerSvcFacade) {
	h := newPlayerHandler(playerService)

	players := rg.Group("/players")
	{
		players.POST("", h.savePlayer)
		players.GET("", h.listPlayers)
		players.GET("/:name", h.getPlayerByName)
		players.DELETE("/:name", h.deletePlayer)
	}
}

// savePlayer godoc
// @Summary Create or update a player
// @Description Saves a player keyed by its name; an existing name is updated in place
// @Tags players
// @Accept  json
// @Produce  json
// @Param   player body dto.SavePlayerRequest true "Player details"
// @Success 200 {object} dto.PlayerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save player"
// @Router /players [post]
func (h *playerHandler) savePlayer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SavePlayer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	player, err := h.playerService.SavePlayer(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to save player in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save player"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

// getPlayerByName godoc
// @Summary Get a player by name
// @Description Retrieves a single player by its unique name
// @Tags players
// @Produce  json
// @Param   name path string true "Player Name"
// @Success 200 {object} dto.PlayerResponse
// @Failure 404 {object} map[string]string "Player not found"
// @Failure 500 {object} map[string]string "Failed to retrieve player"
// @Router /players/{name} [get]
func (h *playerHandler) getPlayerByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	player, err := h.playerService.GetPlayerByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		} else {
			logger.Error("Failed to get player from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve player"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

// listPlayers godoc
// @Summary List players
// @Description Retrieves players matching the optional filters, ordered by name
// @Tags players
// @Produce  json
// @Param   name query string false "Name LIKE pattern"
// @Param   isBank query bool false "Filter on the bank flag"
// @Success 200 {array} dto.PlayerResponse
// @Failure 500 {object} map[string]string "Failed to list players"
// @Router /players [get]
func (h *playerHandler) listPlayers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPlayersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	players, err := h.playerService.ListPlayers(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list players from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list players"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPlayerResponse(players))
}

// deletePlayer godoc
// @Summary Delete a player
// @Description Removes a player unless an account or transaction line still references it
// @Tags players
// @Produce  json
// @Param   name path string true "Player Name"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Player not found"
// @Failure 409 {object} map[string]string "Player is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete player"
// @Router /players/{name} [delete]
func (h *playerHandler) deletePlayer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	if err := h.playerService.DeletePlayer(c.Request.Context(), name); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		} else if errors.Is(err, apperrors.ErrReferentialConstraint) {
			c.JSON(http.StatusConflict, gin.H{"error": "Player is still referenced by accounts or transaction lines"})
		} else {
			logger.Error("Failed to delete player in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
