package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every portal endpoint returns: code 0 on success,
// the HTTP status repeated as the code on failure.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AppError is an error that knows which HTTP status it maps to. Services
// return sentinel errors; handlers wrap anything that needs a non-default
// status into an AppError before handing it to Error.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func newError(status int, msg string) *AppError {
	return &AppError{Status: status, Message: msg}
}

// Constructors for the statuses the portal's error taxonomy produces.

func NewBadRequest(msg string) *AppError {
	return newError(http.StatusBadRequest, msg)
}

func NewUnauthorized(msg string) *AppError {
	return newError(http.StatusUnauthorized, msg)
}

func NewForbidden(msg string) *AppError {
	return newError(http.StatusForbidden, msg)
}

func NewNotFound(msg string) *AppError {
	return newError(http.StatusNotFound, msg)
}

func NewConflict(msg string) *AppError {
	return newError(http.StatusConflict, msg)
}

func NewServerError(msg string) *AppError {
	return newError(http.StatusInternalServerError, msg)
}

// Success sends a 200 OK envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "ok",
		Data:    data,
	})
}

// Created sends a 201 Created envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "created",
		Data:    data,
	})
}

// Error sends a failure envelope. An *AppError anywhere in the chain picks
// the status; everything else is an unexpected store failure and becomes 500.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		fail(c, appErr.Status, appErr.Message)
		return
	}
	fail(c, http.StatusInternalServerError, err.Error())
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Code: status, Message: msg})
}

// Shorthand helpers for the common failure statuses.

func BadRequest(c *gin.Context, msg string) {
	fail(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	fail(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	fail(c, http.StatusForbidden, msg)
}

func NotFound(c *gin.Context, msg string) {
	fail(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	fail(c, http.StatusConflict, msg)
}

func ServerError(c *gin.Context, msg string) {
	fail(c, http.StatusInternalServerError, msg)
}
