package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marks_api/internal/service"
)

// MarksHandler 處理分數查詢請求
type MarksHandler struct {
	marksService *service.MarksService
}

// NewMarksHandler 創建一個新的 MarksHandler 實例
func NewMarksHandler(marksService *service.MarksService) *MarksHandler {
	return &MarksHandler{marksService: marksService}
}

// MarksQuery 定義查詢參數，name 可重複出現且至少一個
type MarksQuery struct {
	Names []string `form:"name" binding:"required"`
}

// GetMarks 處理 GET /api?name=A&name=B
func (h *MarksHandler) GetMarks(c *gin.Context) {
	var input MarksQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": []gin.H{{
				"loc":  []string{"query", "name"},
				"msg":  "Field required",
				"type": "missing",
			}},
		})
		return
	}

	marks, err := h.marksService.Resolve(input.Names)
	if err != nil {
		var notFound *service.NameNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": notFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marks": marks})
}
