package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordnest/internal/shared/errors"
)

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo is the user-visible error payload. Details are only emitted
// for validation failures, where each entry names one violated rule;
// other error classes keep their details server-side.
type ErrorInfo struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ListResponse wraps paginated collections.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: "error", Message: message},
	})
}

// AppErrorResponse maps a typed application error onto the wire. Internal
// errors collapse to a generic message so persistence detail never leaks.
func AppErrorResponse(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	msg := appErr.Message
	if appErr.Type == errors.ErrorTypeInternal {
		msg = "something went wrong"
	}
	info := &ErrorInfo{Type: string(appErr.Type), Message: msg}
	if appErr.Type == errors.ErrorTypeValidation {
		info.Details = appErr.Details
	}
	c.JSON(appErr.Code, APIResponse{Success: false, Error: info})
}

func NewListResponse(items interface{}, total int64, page, pageSize int) ListResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
