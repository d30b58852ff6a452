package handlers

import (
	"errors"
	"net/http"

	"beneficios_inss/internal/domain/cpf"
	"beneficios_inss/internal/domain/lifecycle"
	"beneficios_inss/internal/usecase"
	"beneficios_inss/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidMultipart = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Expected a multipart/form-data body", http.StatusBadRequest)
	errMissingSubject   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing authenticated subject", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapLifecycleError translates the typed request lifecycle failures. It
// returns nil when err is not one of them.
func mapLifecycleError(err error) *pkg.AppError {
	field := lifecycle.FieldOf(err)
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", validationMessage(err), err, http.StatusBadRequest).WithField(field)
	case errors.Is(err, lifecycle.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to act on this request", http.StatusForbidden)
	case errors.Is(err, lifecycle.ErrAlreadyResponded):
		return pkg.NewDomainErrorSimple("ALREADY_RESPONDED", "Exigência already answered", http.StatusConflict).WithField(field)
	case errors.Is(err, lifecycle.ErrNoActiveExigencia):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_EXIGENCIA", "Request has no pending exigência", http.StatusConflict).WithField(field)
	case errors.Is(err, lifecycle.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", stateMessage(err), err, http.StatusConflict).WithField(field)
	case errors.Is(err, lifecycle.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage temporarily unavailable, try again", err, http.StatusServiceUnavailable)
	}
	return nil
}

func mapRequestError(err error) *pkg.AppError {
	if appErr := mapLifecycleError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidDocumentQuery):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Benefit request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApplicantNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Applicant profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentStoreNotConfigured):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document storage is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, cpf.ErrInvalidFormat):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "CPF must use the 000.000.000-00 format", http.StatusBadRequest).WithField("cpf")
	case errors.Is(err, usecase.ErrInvalidFullName):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Full name is required", http.StatusBadRequest).WithField("fullName")
	case errors.Is(err, usecase.ErrInvalidBirthDate):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Birth date must use YYYY-MM-DD and not be in the future", http.StatusBadRequest).WithField("birthDate")
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid email", http.StatusBadRequest).WithField("email")
	case errors.Is(err, usecase.ErrNameMismatch):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Name does not match the registered CPF", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	}
	if appErr := mapLifecycleError(err); appErr != nil {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCaseworkerDisabled):
		return pkg.NewDomainErrorSimple("CASEWORKER_LOGIN_DISABLED", "Caseworker login is not configured", http.StatusServiceUnavailable)
	}
	return mapProfileError(err)
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptySituation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Description is required", http.StatusBadRequest).WithField("description")
	case errors.Is(err, usecase.ErrRecommenderNotConfigured):
		return pkg.NewDomainErrorSimple("ASSISTANT_UNAVAILABLE", "Benefit assistant is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("ASSISTANT_FAILED", "Could not generate a recommendation", err, http.StatusBadGateway)
	}
}

func validationMessage(err error) string {
	var le *lifecycle.Error
	if errors.As(err, &le) && le.Message != "" {
		return le.Message
	}
	return "Invalid input"
}

func stateMessage(err error) string {
	var le *lifecycle.Error
	if errors.As(err, &le) && le.Message != "" {
		return le.Message
	}
	return "Operation not allowed in the current status"
}
