package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type StudyHandler struct {
	studyService *services.StudyService
}

func NewStudyHandler(studyService *services.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

func (h *StudyHandler) ListTerms(c *drift.Context) {
	list, err := h.studyService.ListTerms(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list study terms")
		return
	}
	_ = c.JSON(200, list)
}

func (h *StudyHandler) CreateTerm(c *drift.Context) {
	var req dto.CreateStudyTermRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	term, err := h.studyService.AddTerm(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create study term")
		return
	}
	_ = c.JSON(201, term)
}

func (h *StudyHandler) DeleteTerm(c *drift.Context) {
	deleted, err := h.studyService.DeleteTerm(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete study term")
		return
	}
	if !deleted {
		c.NotFound("study term not found")
		return
	}
	noContent(c)
}

func (h *StudyHandler) ListItems(c *drift.Context) {
	list, err := h.studyService.ListItems(context.Background(), c.Param("wid"), c.QueryParam("termId"))
	if err != nil {
		c.InternalServerError("failed to list study items")
		return
	}
	_ = c.JSON(200, list)
}

func (h *StudyHandler) CreateItem(c *drift.Context) {
	var req dto.CreateStudyItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	item, err := h.studyService.AddItem(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create study item")
		return
	}
	_ = c.JSON(201, item)
}

func (h *StudyHandler) UpdateItem(c *drift.Context) {
	var req dto.UpdateStudyItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.studyService.UpdateItem(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update study item")
		return
	}
	if item == nil {
		c.NotFound("study item not found")
		return
	}
	_ = c.JSON(200, item)
}

func (h *StudyHandler) DeleteItem(c *drift.Context) {
	deleted, err := h.studyService.DeleteItem(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete study item")
		return
	}
	if !deleted {
		c.NotFound("study item not found")
		return
	}
	noContent(c)
}

func (h *StudyHandler) ListCourses(c *drift.Context) {
	list, err := h.studyService.ListCourses(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list courses")
		return
	}
	_ = c.JSON(200, list)
}

func (h *StudyHandler) CreateCourse(c *drift.Context) {
	var req dto.CreateCourseRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	course, err := h.studyService.AddCourse(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create course")
		return
	}
	_ = c.JSON(201, course)
}

func (h *StudyHandler) UpdateCourse(c *drift.Context) {
	var req dto.UpdateCourseRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	course, err := h.studyService.UpdateCourse(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update course")
		return
	}
	if course == nil {
		c.NotFound("course not found")
		return
	}
	_ = c.JSON(200, course)
}

func (h *StudyHandler) DeleteCourse(c *drift.Context) {
	deleted, err := h.studyService.DeleteCourse(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete course")
		return
	}
	if !deleted {
		c.NotFound("course not found")
		return
	}
	noContent(c)
}
