package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type SupplierHandler struct {
	supplierService *services.SupplierService
}

func NewSupplierHandler(supplierService *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

func (h *SupplierHandler) List(c *drift.Context) {
	list, err := h.supplierService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list suppliers")
		return
	}
	_ = c.JSON(200, list)
}

func (h *SupplierHandler) Create(c *drift.Context) {
	var req dto.CreateSupplierRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	sup, err := h.supplierService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create supplier")
		return
	}
	_ = c.JSON(201, sup)
}

func (h *SupplierHandler) Update(c *drift.Context) {
	var req dto.UpdateSupplierRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	sup, err := h.supplierService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update supplier")
		return
	}
	if sup == nil {
		c.NotFound("supplier not found")
		return
	}
	_ = c.JSON(200, sup)
}

func (h *SupplierHandler) Delete(c *drift.Context) {
	deleted, err := h.supplierService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete supplier")
		return
	}
	if !deleted {
		c.NotFound("supplier not found")
		return
	}
	noContent(c)
}

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) List(c *drift.Context) {
	list, err := h.inventoryService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list inventory items")
		return
	}
	_ = c.JSON(200, list)
}

func (h *InventoryHandler) Create(c *drift.Context) {
	var req dto.CreateInventoryItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	item, err := h.inventoryService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create inventory item")
		return
	}
	_ = c.JSON(201, item)
}

func (h *InventoryHandler) Update(c *drift.Context) {
	var req dto.UpdateInventoryItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.inventoryService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update inventory item")
		return
	}
	if item == nil {
		c.NotFound("inventory item not found")
		return
	}
	_ = c.JSON(200, item)
}

func (h *InventoryHandler) Delete(c *drift.Context) {
	deleted, err := h.inventoryService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete inventory item")
		return
	}
	if !deleted {
		c.NotFound("inventory item not found")
		return
	}
	noContent(c)
}

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

func (h *CampaignHandler) List(c *drift.Context) {
	list, err := h.campaignService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list campaigns")
		return
	}
	_ = c.JSON(200, list)
}

func (h *CampaignHandler) Create(c *drift.Context) {
	var req dto.CreateCampaignRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	campaign, err := h.campaignService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create campaign")
		return
	}
	_ = c.JSON(201, campaign)
}

func (h *CampaignHandler) Update(c *drift.Context) {
	var req dto.UpdateCampaignRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	campaign, err := h.campaignService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update campaign")
		return
	}
	if campaign == nil {
		c.NotFound("campaign not found")
		return
	}
	_ = c.JSON(200, campaign)
}

func (h *CampaignHandler) Delete(c *drift.Context) {
	deleted, err := h.campaignService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete campaign")
		return
	}
	if !deleted {
		c.NotFound("campaign not found")
		return
	}
	noContent(c)
}

type ContentPlanHandler struct {
	contentPlanService *services.ContentPlanService
}

func NewContentPlanHandler(contentPlanService *services.ContentPlanService) *ContentPlanHandler {
	return &ContentPlanHandler{contentPlanService: contentPlanService}
}

func (h *ContentPlanHandler) List(c *drift.Context) {
	list, err := h.contentPlanService.List(context.Background(), c.Param("wid"), c.QueryParam("month"))
	if err != nil {
		c.InternalServerError("failed to list content plan items")
		return
	}
	_ = c.JSON(200, list)
}

func (h *ContentPlanHandler) Create(c *drift.Context) {
	var req dto.CreateContentPlanItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}
	if req.PlanMonth == "" {
		c.BadRequest("planMonth is required")
		return
	}

	item, err := h.contentPlanService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create content plan item")
		return
	}
	_ = c.JSON(201, item)
}

func (h *ContentPlanHandler) Update(c *drift.Context) {
	var req dto.UpdateContentPlanItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.contentPlanService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update content plan item")
		return
	}
	if item == nil {
		c.NotFound("content plan item not found")
		return
	}
	_ = c.JSON(200, item)
}

func (h *ContentPlanHandler) Delete(c *drift.Context) {
	deleted, err := h.contentPlanService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete content plan item")
		return
	}
	if !deleted {
		c.NotFound("content plan item not found")
		return
	}
	noContent(c)
}

// Reset clears one plan month. The month comes from the body, falling back
// to the query string.
func (h *ContentPlanHandler) Reset(c *drift.Context) {
	var req dto.ResetContentPlanRequest
	_ = c.BindJSON(&req)
	month := req.Month
	if month == "" {
		month = c.QueryParam("month")
	}
	if month == "" {
		c.BadRequest("month is required")
		return
	}

	deleted, err := h.contentPlanService.Reset(context.Background(), c.Param("wid"), month)
	if err != nil {
		c.InternalServerError("failed to reset content plan")
		return
	}
	_ = c.JSON(200, dto.ResetContentPlanResponse{Deleted: deleted})
}
