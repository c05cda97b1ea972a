package page

import (
	"context"
	"errors"
	"net/http"

	"sobasite/internal/adapters/http/response"
	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/site"
	"sobasite/internal/platform/logger"
)

const acceptedNotice = "お問い合わせを受け付けました。担当者よりご連絡いたします。"

type Submitter interface {
	Submit(ctx context.Context, state reservation.FormState) (reservation.FormState, reservation.ErrorState, error)
}

type Renderer interface {
	Render(name string, data map[string]any) ([]byte, error)
}

type categoryOption struct {
	Value   string
	Label   string
	Checked bool
}

// Handler serves the reservation page: the navbar, the form and its inline
// error messages.
type Handler struct {
	submitter Submitter
	renderer  Renderer
	content   *site.Content
}

func NewHandler(submitter Submitter, renderer Renderer, content *site.Content) *Handler {
	return &Handler{
		submitter: submitter,
		renderer:  renderer,
		content:   content,
	}
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, reservation.NewFormState(), reservation.ErrorState{}, "")
}

// Submit handles the posted form. A rejected form is re-rendered with the
// entered values and the messages (422); an accepted one is rendered empty
// with a notice.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	contextLogger := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, r, http.StatusRequestEntityTooLarge, "送信内容が大きすぎます。")
			return
		}
		contextLogger.Warn("Failed to parse form", logger.Error(err))
		h.fail(w, r, http.StatusBadRequest, "送信内容を読み取れませんでした。")
		return
	}

	state := reservation.NewFormState()
	for _, field := range reservation.Fields {
		next, err := state.With(field, r.PostForm.Get(field.String()))
		if err != nil {
			contextLogger.Warn("Rejected form value",
				logger.String("field", field.String()),
				logger.Error(err))
			h.fail(w, r, http.StatusBadRequest, "送信内容が正しくありません。")
			return
		}
		state = next
	}

	next, errs, err := h.submitter.Submit(r.Context(), state)
	if err != nil {
		if errors.Is(err, reservation.ErrInvalidForm) {
			h.render(w, r, http.StatusUnprocessableEntity, next, errs, "")
			return
		}
		contextLogger.Error("Failed to submit reservation form", logger.Error(err))
		h.fail(w, r, http.StatusInternalServerError, "送信に失敗しました。時間をおいて再度お試しください。")
		return
	}

	h.render(w, r, http.StatusOK, next, errs, acceptedNotice)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, state reservation.FormState, errs reservation.ErrorState, notice string) {
	values := make(map[string]string, len(reservation.Fields))
	messages := make(map[string]string, len(reservation.Fields))
	for _, field := range reservation.Fields {
		values[field.String()] = state.Value(field)
		messages[field.String()] = errs.Message(field)
	}

	options := make([]categoryOption, 0, len(reservation.Categories))
	for _, c := range reservation.Categories {
		options = append(options, categoryOption{
			Value:   string(c),
			Label:   c.Label(),
			Checked: state.Category == c,
		})
	}

	body, err := h.renderer.Render("reservation.html", map[string]any{
		"site":           h.content,
		"values":         values,
		"errors":         messages,
		"categories":     options,
		"requires_visit": state.Category.RequiresVisit(),
		"consent":        state.Consent,
		"notice":         notice,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to render reservation page", logger.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.RespondHTML(w, status, body)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	body, err := h.renderer.Render("error.html", map[string]any{
		"site":    h.content,
		"status":  status,
		"message": message,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to render error page", logger.Error(err))
		http.Error(w, http.StatusText(status), status)
		return
	}

	response.RespondHTML(w, status, body)
}
