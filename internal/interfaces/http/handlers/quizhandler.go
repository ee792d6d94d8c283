package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wordnest/internal/application/quiz/usecases"
	"wordnest/internal/interfaces/http/middleware"
	"wordnest/internal/shared/utils"
)

type QuizHandler struct {
	getUC    *usecases.GetQuizUseCase
	submitUC *usecases.SubmitAttemptUseCase
	createUC *usecases.CreateQuizUseCase
}

func NewQuizHandler(
	getUC *usecases.GetQuizUseCase,
	submitUC *usecases.SubmitAttemptUseCase,
	createUC *usecases.CreateQuizUseCase,
) *QuizHandler {
	return &QuizHandler{getUC: getUC, submitUC: submitUC, createUC: createUC}
}

func (h *QuizHandler) GetByLesson(c *gin.Context) {
	view, err := h.getUC.Execute(c.Request.Context(), usecases.GetQuizCommand{
		LessonSlug: c.Param("slug"),
		UserID:     middleware.UserID(c),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	questions := make([]gin.H, 0, len(view.Questions))
	for _, q := range view.Questions {
		questions = append(questions, gin.H{
			"id":      q.ID,
			"prompt":  q.Prompt,
			"choices": q.Choices,
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"id":        view.ID,
		"lesson_id": view.LessonID,
		"title":     view.Title,
		"questions": questions,
	})
}

type submitAttemptRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid quiz id")
		return
	}

	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitAttemptCommand{
		UserID:  middleware.UserID(c),
		QuizID:  uint(quizID),
		Answers: req.Answers,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "attempt graded", gin.H{
		"attempt_id": result.Attempt.ID,
		"correct":    result.Correct,
		"total":      result.Total,
	})
}

type createQuizRequest struct {
	LessonID  uint   `json:"lesson_id" binding:"required"`
	Title     string `json:"title" binding:"required" validate:"required,min=1,max=200"`
	Questions []struct {
		Prompt      string   `json:"prompt" binding:"required"`
		Choices     []string `json:"choices" binding:"required"`
		AnswerIndex int      `json:"answer_index"`
	} `json:"questions" binding:"required"`
}

func (h *QuizHandler) Create(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	cmd := usecases.CreateQuizCommand{
		LessonID: req.LessonID,
		Title:    req.Title,
	}
	for _, q := range req.Questions {
		cmd.Questions = append(cmd.Questions, usecases.QuestionInput{
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			AnswerIndex: q.AnswerIndex,
		})
	}

	created, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "quiz created", gin.H{
		"id":        created.ID,
		"lesson_id": created.LessonID,
	})
}
