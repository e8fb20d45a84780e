package leads

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatbridge/leadcapture/binder"
	"github.com/chatbridge/leadcapture/handler"
	"github.com/chatbridge/leadcapture/pkg/clientip"
	"github.com/chatbridge/leadcapture/pkg/i18n"
	"github.com/chatbridge/leadcapture/pkg/logger"
	"github.com/chatbridge/leadcapture/pkg/validator"
)

// SubmittedMessage is the success message when no translation is available.
const SubmittedMessage = "Datos recibidos correctamente. Te contactamos pronto."

// SubmitResponse is the body of a successful submission.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"leadId"`
}

// Handler serves the lead submission endpoint.
type Handler struct {
	dispatcher   *Dispatcher
	translator   *i18n.Translator
	errorHandler handler.ErrorHandler[handler.Context]
	bodyLimit    int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithTranslator localizes messages using the request locale set by i18n.Middleware.
func WithTranslator(tr *i18n.Translator) HandlerOption {
	return func(h *Handler) {
		h.translator = tr
	}
}

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler(eh handler.ErrorHandler[handler.Context]) HandlerOption {
	return func(h *Handler) {
		if eh != nil {
			h.errorHandler = eh
		}
	}
}

// WithBodyLimit caps the request body. Defaults to binder.DefaultMaxBodySize.
func WithBodyLimit(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.bodyLimit = n
		}
	}
}

// NewHandler creates the submission handler.
func NewHandler(d *Dispatcher, opts ...HandlerOption) *Handler {
	h := &Handler{
		dispatcher:   d,
		errorHandler: handler.NewErrorHandler(logger.NewNop()),
		bodyLimit:    binder.DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Submit validates the payload and dispatches the lead. Delivery problems
// never change the response: a valid payload always gets 200 and its lead id.
func (h *Handler) Submit(ctx handler.Context, input map[string]any) handler.Response {
	lang := i18n.GetLocale(ctx)

	sub, err := Validate(input)
	if err != nil {
		return handler.Error(h.translate(lang, err))
	}

	r := ctx.Request()
	record, _ := h.dispatcher.Dispatch(ctx, sub, RequestMeta{
		IP:        requestIP(r),
		UserAgent: r.UserAgent(),
	})

	message := SubmittedMessage
	if h.translator != nil {
		message = h.translator.Td(lang, "leads.submitted", SubmittedMessage)
	}

	return handler.JSON(SubmitResponse{
		Success: true,
		Message: message,
		LeadID:  record.ID,
	}, handler.WithSecurityHeaders())
}

func (h *Handler) translate(lang string, err error) error {
	errs := validator.ExtractValidationErrors(err)
	if errs == nil || h.translator == nil {
		return err
	}
	return errs.Translate(func(key string, values map[string]any) string {
		return h.translator.Tm(lang, key, values)
	})
}

// Handle returns the routes of the endpoint, relative to its mount point.
// Every method other than POST gets 405 with "Allow: POST".
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed(http.MethodPost))
	r.Post("/", handler.Wrap[handler.Context, map[string]any](h.Submit,
		handler.WithBinder[handler.Context, map[string]any](binder.BindJSON(binder.WithMaxBodySize(h.bodyLimit))),
		handler.WithErrorHandler[handler.Context, map[string]any](h.errorHandler),
	))
	return r
}

// requestIP prefers the address stored by clientip.Middleware and falls
// back to reading X-Forwarded-For directly.
func requestIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != clientip.Unknown {
		return ip
	}
	return clientip.GetIP(r)
}

