package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Kweyu/resto-api/models"
	"github.com/Kweyu/resto-api/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// GetMenu returns available items for the ordering screens. An optional
// ?category= query narrows the list.
func (mc *MenuController) GetMenu(ctx *gin.Context) {
	var category *models.Category
	if raw := ctx.Query("category"); raw != "" {
		c := models.Category(raw)
		if !c.Valid() {
			sendErrorResponse(ctx, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		category = &c
	}

	items, err := mc.menu.GetAvailableMenuItems(category)
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

// GetFullMenu is the management view, unavailable items included.
func (mc *MenuController) GetFullMenu(ctx *gin.Context) {
	items, err := mc.menu.GetAllMenuItems()
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

func (mc *MenuController) GetMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid menu item id")
		return
	}

	item, err := mc.menu.GetMenuItemByID(id)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"item": item})
}

func (mc *MenuController) CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	if !item.Category.Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, "unknown category: "+string(item.Category))
		return
	}
	if !item.Price.IsPositive() {
		sendErrorResponse(ctx, http.StatusBadRequest, "price must be greater than zero")
		return
	}

	created, err := mc.menu.AddMenuItem(&item)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (mc *MenuController) UpdateMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	item.ID = id
	if !item.Category.Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, "unknown category: "+string(item.Category))
		return
	}

	if err := mc.menu.UpdateMenuItem(&item); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "menu item updated"})
}

func (mc *MenuController) DeleteMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid menu item id")
		return
	}

	removed, err := mc.menu.RemoveMenuItem(id)
	if err != nil {
		log.Println(err)
		respondWithServiceError(ctx, err)
		return
	}
	if !removed {
		sendErrorResponse(ctx, http.StatusNotFound, "menu item not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "menu item deleted"})
}

func (mc *MenuController) SetAvailability(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var body struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := mc.menu.SetItemAvailability(id, *body.IsAvailable); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "availability updated"})
}

func (mc *MenuController) SetPrice(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var body struct {
		Price decimal.Decimal `json:"price" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.Price.IsPositive() {
		sendErrorResponse(ctx, http.StatusBadRequest, "price must be greater than zero")
		return
	}

	if err := mc.menu.SetItemPrice(id, body.Price); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "price updated"})
}

func (mc *MenuController) SetName(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := mc.menu.SetItemName(id, body.Name); err != nil {
		respondWithServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "name updated"})
}
