package api

import (
	"errors"
	"net/http"

	reqdto "storebook/internal/handler/dto/request"
	resdto "storebook/internal/handler/dto/response"
	"storebook/internal/handler/middleware"
	"storebook/internal/usecase/commands"
	"storebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoreHandler struct {
	storeCommands commands.StoreCommands
	storeQueries  queries.StoreQueries
}

func NewStoreHandler(storeCommands commands.StoreCommands, storeQueries queries.StoreQueries) *StoreHandler {
	return &StoreHandler{
		storeCommands: storeCommands,
		storeQueries:  storeQueries,
	}
}

// @Summary Register store
// @Description Register a new store owned by the current merchant
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterStoreRequest true "Store registration request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /stores [post]
func (h *StoreHandler) RegisterStore(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RegisterStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	storeID, err := h.storeCommands.RegisterStore(c.Request.Context(), actor, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnauthorizedAction):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only merchants can register stores",
			})
		case errors.Is(err, commands.ErrInvalidStore):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid store data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": storeID.String()})
}

// @Summary Update store
// @Description Partially update a store owned by the current merchant
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body reqdto.UpdateStoreRequest true "Store update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{id} [patch]
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid store ID format",
		})
		return
	}

	var req reqdto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.storeCommands.UpdateStore(c.Request.Context(), actor, storeID, req.ToParams()); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete store
// @Description Delete a store owned by the current merchant
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{id} [delete]
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid store ID format",
		})
		return
	}

	if err := h.storeCommands.DeleteStore(c.Request.Context(), actor, storeID); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get store
// @Description Get store by ID with its most recent reviews
// @Tags stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} resdto.StoreDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{id} [get]
func (h *StoreHandler) GetStore(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid store ID format",
		})
		return
	}

	detail, err := h.storeQueries.GetDetail(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Store not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreDetailView(detail))
}

// @Summary Search stores
// @Description Search stores by keyword, or look up a single store by exact name
// @Tags stores
// @Produce json
// @Param keyword query string false "Search keyword"
// @Param name query string false "Exact store name"
// @Success 200 {array} resdto.StoreResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores [get]
func (h *StoreHandler) SearchStores(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		view, err := h.storeQueries.SearchByName(c.Request.Context(), name)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Store not found",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromStoreView(view))
		return
	}

	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "keyword or name query parameter required",
		})
		return
	}

	views, err := h.storeQueries.SearchByKeyword(c.Request.Context(), keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreViews(views))
}

func (h *StoreHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Store not found",
		})
	case errors.Is(err, commands.ErrUnauthorizedAction):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Only the owning merchant can modify this store",
		})
	case errors.Is(err, commands.ErrInvalidStore):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid store data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
