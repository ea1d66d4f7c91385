package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/lucasll37/myfinanceapp-backend/internal/middleware"
)

// respondError is the single place every handler failure goes through, so
// clients always see the same envelope. 4xx responses are logged at Warn
// without a body dump; 5xx responses are logged at Error with the request
// method, path and client IP, and carry a stack trace outside production.
func respondError(c *gin.Context, err error) {
	status, message, fieldErrors := classifyError(err)

	res := dto.ErrorResponse{
		Error:      http.StatusText(status),
		Message:    message,
		StatusCode: status,
		Errors:     fieldErrors,
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("error", err.Error()),
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("ip", c.ClientIP()))
		if gin.Mode() != gin.ReleaseMode {
			res.Stack = string(debug.Stack())
		}
	} else {
		logger.Warn("request rejected",
			slog.String("error", err.Error()),
			slog.Int("status", status))
	}

	c.AbortWithStatusJSON(status, res)
}

func classifyError(err error) (int, string, []dto.FieldError) {
	// Declarative binding failures carry per-field detail.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]dto.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, dto.FieldError{
				Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
				Message: validationMessage(fe),
			})
		}
		return http.StatusBadRequest, "validation failed", fields
	}

	// Malformed JSON bodies.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "invalid request body", nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.Message, nil
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		return http.StatusNotFound, "record not found", nil
	case errors.Is(err, apperrors.ErrEmptyPatch):
		return http.StatusBadRequest, "no fields to update", nil
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "forbidden", nil
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", nil
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "duplicate record", nil
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "validation failed", nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return http.StatusConflict, "duplicate record", nil
		case "23503":
			return http.StatusBadRequest, "related record constraint violated", nil
		}
	}

	return http.StatusInternalServerError, "internal server error", nil
}

// validationMessage translates a validator tag into a readable sentence.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "hexcolor":
		return "must be a hex color like #RRGGBB"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}
