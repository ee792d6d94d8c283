package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wordnest/internal/application/lesson/usecases"
	"wordnest/internal/interfaces/http/middleware"
	"wordnest/internal/shared/utils"
)

type LessonHandler struct {
	listUC     *usecases.ListLessonsUseCase
	getUC      *usecases.GetLessonUseCase
	completeUC *usecases.CompleteLessonUseCase
	createUC   *usecases.CreateLessonUseCase
	updateUC   *usecases.UpdateLessonUseCase
}

func NewLessonHandler(
	listUC *usecases.ListLessonsUseCase,
	getUC *usecases.GetLessonUseCase,
	completeUC *usecases.CompleteLessonUseCase,
	createUC *usecases.CreateLessonUseCase,
	updateUC *usecases.UpdateLessonUseCase,
) *LessonHandler {
	return &LessonHandler{
		listUC:     listUC,
		getUC:      getUC,
		completeUC: completeUC,
		createUC:   createUC,
		updateUC:   updateUC,
	}
}

func (h *LessonHandler) List(c *gin.Context) {
	summaries, err := h.listUC.Execute(c.Request.Context(), usecases.ListLessonsCommand{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	items := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, gin.H{
			"id":        s.ID,
			"slug":      s.Slug,
			"title":     s.Title,
			"language":  s.Language,
			"position":  s.Position,
			"completed": s.Completed,
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"lessons": items})
}

func (h *LessonHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetLessonCommand{
		Slug:   c.Param("slug"),
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"id":        result.Lesson.ID,
		"slug":      result.Lesson.Slug,
		"title":     result.Lesson.Title,
		"language":  result.Lesson.Language,
		"position":  result.Lesson.Position,
		"body_html": result.BodyHTML,
		"completed": result.Completed,
	})
}

func (h *LessonHandler) Complete(c *gin.Context) {
	err := h.completeUC.Execute(c.Request.Context(), usecases.CompleteLessonCommand{
		UserID: middleware.UserID(c),
		Slug:   c.Param("slug"),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "lesson completed", nil)
}

type createLessonRequest struct {
	Slug      string `json:"slug" binding:"required" validate:"required,min=1,max=100"`
	Title     string `json:"title" binding:"required" validate:"required,min=1,max=200"`
	Language  string `json:"language" binding:"required" validate:"required,min=2,max=20"`
	Body      string `json:"body"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
}

func (h *LessonHandler) Create(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), usecases.CreateLessonCommand{
		Slug:      req.Slug,
		Title:     req.Title,
		Language:  req.Language,
		Body:      req.Body,
		Position:  req.Position,
		Published: req.Published,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "lesson created", gin.H{
		"id":   created.ID,
		"slug": created.Slug,
	})
}

type updateLessonRequest struct {
	Title     *string `json:"title"`
	Language  *string `json:"language"`
	Body      *string `json:"body"`
	Position  *int    `json:"position"`
	Published *bool   `json:"published"`
}

func (h *LessonHandler) Update(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid lesson id")
		return
	}

	var req updateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateLessonCommand{
		LessonID:  uint(lessonID),
		Title:     req.Title,
		Language:  req.Language,
		Body:      req.Body,
		Position:  req.Position,
		Published: req.Published,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "lesson updated", gin.H{
		"id":        updated.ID,
		"slug":      updated.Slug,
		"published": updated.Published,
	})
}
