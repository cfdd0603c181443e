package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// DataResponse is the envelope for writes that return the affected resource.
type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, DataResponse{Message: message, Data: data})
}

// Message writes {"message": message} plus the extra top-level fields.
func Message(c *gin.Context, status int, message string, fields gin.H) {
	body := gin.H{"message": message}
	for k, v := range fields {
		if k == "message" {
			continue
		}
		body[k] = v
	}
	c.JSON(status, body)
}

// List never encodes a nil slice as null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
