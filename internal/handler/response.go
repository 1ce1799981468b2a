package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every endpoint answers with. Business
// failures keep HTTP 200 and signal through Code; the deployed clients
// only look at the envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageResult wraps one page of records the way the admin frontend
// paginates.
type PageResult struct {
	Records interface{} `json:"records"`
	Total   int64       `json:"total"`
	Current int         `json:"current"`
	Size    int         `json:"size"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 200, Message: "success", Data: data})
}

func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Code: 500, Message: message, Data: nil})
}
