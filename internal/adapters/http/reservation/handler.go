package reservation

import (
	"encoding/json"
	"errors"
	"net/http"
	httpErrors "sobasite/internal/platform/http"
	"sobasite/internal/platform/logger"
	"sobasite/internal/platform/validator"

	"github.com/go-chi/chi/v5"

	"sobasite/internal/adapters/http/response"
	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/session"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

func (h *Handler) mapDomainError(err error) error {
	var formErr *reservation.FormError
	if errors.As(err, &formErr) {
		return httpErrors.NewUnprocessableEntity("Form has errors", err).WithDetails(formErr.Errors.Messages())
	}

	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return httpErrors.NewNotFound("Form session not found", err)
	case errors.Is(err, session.ErrInvalidSessionID):
		return httpErrors.NewBadRequest("Invalid form session ID", err)
	case errors.Is(err, session.ErrTooManySessions):
		return httpErrors.NewServiceUnavailable("Too many open forms, try again later", err)
	case errors.Is(err, reservation.ErrUnknownField):
		return httpErrors.NewBadRequest("Unknown form field", err)
	case errors.Is(err, reservation.ErrUnknownCategory):
		return httpErrors.NewBadRequest("Unknown category", err)
	case errors.Is(err, reservation.ErrInvalidConsent):
		return httpErrors.NewBadRequest("Invalid consent value", err)
	default:
		var alreadyExistsErr *session.AlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			return httpErrors.NewConflict("Form session already exists", err)
		}
		return err
	}
}

// decode reads a JSON body into dst and checks its validate tags.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	contextLogger := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return httpErrors.NewRequestTooLarge("Request body too large", err)
		}
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		return httpErrors.NewBadRequest("Invalid request payload", err)
	}

	if err := h.validate.Validate(dst); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Strings("fields", validationErr.Fields()))
			return httpErrors.NewBadRequest("Invalid request data", err).WithDetails(validationErr.Errors)
		}
		contextLogger.Error("Unexpected validation error", logger.Error(err))
		return httpErrors.NewBadRequest("Invalid request data", err)
	}
	return nil
}

func (h *Handler) decodeForm(r *http.Request) (reservation.FormState, error) {
	var req FormRequest
	if err := h.decode(r, &req); err != nil {
		return reservation.FormState{}, err
	}
	state, err := req.State()
	if err != nil {
		return reservation.FormState{}, h.mapDomainError(err)
	}
	return state, nil
}

// ValidateForm reports every field's message for a complete form without
// storing or delivering it.
func (h *Handler) ValidateForm(w http.ResponseWriter, r *http.Request) error {
	state, err := h.decodeForm(r)
	if err != nil {
		return err
	}

	errs, valid := h.manager.Validate(r.Context(), state)
	response.RespondJSON(w, http.StatusOK, ValidationResponse{
		Valid:  valid,
		Errors: errs.Messages(),
	})
	return nil
}

// SubmitForm validates and delivers a complete form in one request.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) error {
	state, err := h.decodeForm(r)
	if err != nil {
		return err
	}

	next, _, err := h.manager.Submit(r.Context(), state)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusAccepted, SubmissionResponse{Accepted: true, State: next})
	return nil
}

func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) error {
	s, err := h.manager.OpenSession(r.Context())
	if err != nil {
		return h.mapDomainError(err)
	}

	w.Header().Set("Location", "/api/forms/"+s.ID)
	response.RespondJSON(w, http.StatusCreated, newSessionResponse(s))
	return nil
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) error {
	s, err := h.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newSessionResponse(s))
	return nil
}

func (h *Handler) ChangeField(w http.ResponseWriter, r *http.Request) error {
	field, err := reservation.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		return h.mapDomainError(err)
	}

	var req FieldChangeRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	s, err := h.manager.ChangeField(r.Context(), chi.URLParam(r, "id"), field, req.Value)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newSessionResponse(s))
	return nil
}

// SubmitSession answers 200 with the reset form when the submission is
// accepted and 422 with every field's message when it is not.
func (h *Handler) SubmitSession(w http.ResponseWriter, r *http.Request) error {
	s, err := h.manager.SubmitSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newSessionResponse(s))
	return nil
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) error {
	if err := h.manager.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		return h.mapDomainError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
