package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wares-dev/wares/internal/models"
	"github.com/wares-dev/wares/internal/repository"
	"github.com/wares-dev/wares/internal/types"
	"github.com/wares-dev/wares/internal/utils"
)

type ItemsHandler struct {
	Items *repository.ItemRepository
}

type CreateItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	// OwnerID lets a superuser create an item for another user.
	OwnerID uint `json:"owner_id"`
}

type UpdateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *ItemsHandler) List(ctx *gin.Context) {
	principal, err := utils.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	skip, limit := paginationParams(ctx)

	var items []models.Item

	if principal.IsSuperuser && ctx.Query("all") == "true" {
		items, err = h.Items.List(ctx.Request.Context(), skip, limit)
	} else {
		items, err = h.Items.ListByOwner(ctx.Request.Context(), principal.ID, skip, limit)
	}

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	response := make([]types.ItemResponse, 0, len(items))

	for i := range items {
		response = append(response, types.NewItemResponse(&items[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"items": response})
}

func (h *ItemsHandler) Create(ctx *gin.Context) {
	principal, err := utils.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ownerID := principal.ID

	if body.OwnerID != 0 && body.OwnerID != principal.ID {
		if !principal.IsSuperuser {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Cannot create items for another user"})
			return
		}
		ownerID = body.OwnerID
	}

	item, err := h.Items.Create(ctx.Request.Context(), repository.CreateItem{
		Title:       body.Title,
		Description: body.Description,
		OwnerID:     ownerID,
	})

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"item": types.NewItemResponse(item)})
}

func (h *ItemsHandler) Get(ctx *gin.Context) {
	item, ok := h.ownedItem(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": types.NewItemResponse(item)})
}

func (h *ItemsHandler) Update(ctx *gin.Context) {
	item, ok := h.ownedItem(ctx)

	if !ok {
		return
	}

	var body UpdateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item, err := h.Items.Update(ctx.Request.Context(), item, repository.UpdateItem{
		Title:       body.Title,
		Description: body.Description,
	})

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": types.NewItemResponse(item)})
}

func (h *ItemsHandler) Delete(ctx *gin.Context) {
	item, ok := h.ownedItem(ctx)

	if !ok {
		return
	}

	item, err := h.Items.Remove(ctx.Request.Context(), item.ID)

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": types.NewItemResponse(item)})
}

// ownedItem loads the addressed item and enforces that the requester owns it
// or is a superuser, matching the owner scoping of List. On failure the
// response has already been written.
func (h *ItemsHandler) ownedItem(ctx *gin.Context) (*models.Item, bool) {
	principal, err := utils.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	itemID, ok := idParam(ctx, "item_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return nil, false
	}

	item, err := h.Items.Get(ctx.Request.Context(), itemID)

	if err != nil {
		writeRepositoryError(ctx, err)
		return nil, false
	}

	if item.OwnerID != principal.ID && !principal.IsSuperuser {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return nil, false
	}

	return item, true
}
