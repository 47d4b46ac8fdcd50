package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	basicAuthRealm   = "football-api"
	internalErrorMsg = "internal server error"
)

type mappedError struct {
	HTTPStatus int
	Reason     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		writeText(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeText(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	_, span := startSpan(ctx, "httpapi.writeText")
	defer span.End()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func writeNoContent(ctx context.Context, w http.ResponseWriter) {
	_, span := startSpan(ctx, "httpapi.writeNoContent")
	defer span.End()

	w.WriteHeader(http.StatusNoContent)
}

// writeError renders request-shape failures as a field to message object and
// every other failure as a plain-text message.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	var fields fieldErrors
	if errors.As(err, &fields) {
		writeJSON(ctx, w, http.StatusBadRequest, map[string]string(fields))
		return
	}

	mapped := mapError(ctx, err)
	if mapped.HTTPStatus == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Basic realm="`+basicAuthRealm+`"`)
	}
	writeText(ctx, w, mapped.HTTPStatus, errorMessage(err))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeText(ctx, w, http.StatusInternalServerError, internalErrorMsg)
}

// errorMessage returns the client-facing message of err: the message of the
// outermost usecase.Error in the chain, or the raw error text.
func errorMessage(err error) string {
	var clientErr *usecase.Error
	if errors.As(err, &clientErr) {
		return clientErr.Message
	}
	return err.Error()
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound"}
	case errors.Is(err, usecase.ErrDuplicate):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "duplicate"}
	case errors.Is(err, usecase.ErrInvalidEntity):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidEntity"}
	case errors.Is(err, usecase.ErrIntegrityViolation):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "integrityViolation"}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput"}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError"}
	}
}
