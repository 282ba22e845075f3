package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	roomTypeRepo "rateshopper/database/repository/roomtype"
	"rateshopper/models"
	"rateshopper/utils"
)

// RoomTypeHandler manages a property's room categories.
type RoomTypeHandler struct {
	Repo roomTypeRepo.RoomTypeRepository
}

func NewRoomTypeHandler(repo roomTypeRepo.RoomTypeRepository) *RoomTypeHandler {
	return &RoomTypeHandler{Repo: repo}
}

// roomTypeInput accepts the occupancy pricing either as a native object or
// as the JSON-string column form some storage backends use. A malformed
// string degrades to no occupancy pricing.
type roomTypeInput struct {
	Name                string                   `json:"name"`
	BasePrice           float64                  `json:"base_price"`
	NumberOfRooms       int                      `json:"number_of_rooms"`
	MaxAdults           int                      `json:"max_adults"`
	Rank                int                      `json:"rank"`
	OccupancyPricing    *models.OccupancyPricing `json:"occupancy_pricing"`
	OccupancyPricingRaw string                   `json:"occupancy_pricing_raw"`
}

func (in roomTypeInput) toModel(propertyID string) models.RoomType {
	op := in.OccupancyPricing
	if op == nil && in.OccupancyPricingRaw != "" {
		op = models.ParseOccupancyPricing(in.OccupancyPricingRaw)
	}
	return models.RoomType{
		PropertyID:       propertyID,
		Name:             in.Name,
		BasePrice:        in.BasePrice,
		NumberOfRooms:    in.NumberOfRooms,
		MaxAdults:        in.MaxAdults,
		Rank:             in.Rank,
		OccupancyPricing: op,
	}
}

// Create adds a room type to the property.
func (h *RoomTypeHandler) Create(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input roomTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Name == "" || input.BasePrice <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and a positive base_price are required")
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), input.toModel(propertyID))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// List returns the property's room types in display order.
func (h *RoomTypeHandler) List(c *gin.Context) {
	propertyID := c.Param("propertyID")
	rooms, err := h.Repo.GetByProperty(c.Request.Context(), propertyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch room types", err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Update replaces a room type.
func (h *RoomTypeHandler) Update(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input roomTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	room := input.toModel(propertyID)
	room.ID = c.Param("roomTypeID")
	if err := h.Repo.Update(c.Request.Context(), room); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update room type", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": room.ID})
}

// Delete removes a room type.
func (h *RoomTypeHandler) Delete(c *gin.Context) {
	id := c.Param("roomTypeID")
	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete room type", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
