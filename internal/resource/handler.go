package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/core/common/dates"
	"github.com/frahmantamala/hrms-backend/internal/transport"
	"github.com/frahmantamala/hrms-backend/pkg/logger"
)

type ServiceAPI[M any, C any, U any] interface {
	Descriptor() Descriptor
	Create(ctx context.Context, in C) (*M, error)
	Get(ctx context.Context, id int64) (*M, error)
	List(ctx context.Context, page Page) ([]*M, error)
	Update(ctx context.Context, id int64, in U) (*M, error)
	Delete(ctx context.Context, id int64) (*M, error)
}

// Routable is a handler that mounts its own routes.
type Routable interface {
	Routes(r chi.Router)
}

// Handler serves one collection. V is the response shape produced by present.
type Handler[M any, C any, U any, V any] struct {
	*transport.BaseHandler
	Service ServiceAPI[M, C, U]
	present func(*M) V
}

func NewHandler[M any, C any, U any, V any](baseHandler *transport.BaseHandler, service ServiceAPI[M, C, U], present func(*M) V) *Handler[M, C, U, V] {
	if baseHandler == nil {
		baseHandler = transport.NewBaseHandler(nil)
	}
	return &Handler[M, C, U, V]{
		BaseHandler: baseHandler,
		Service:     service,
		present:     present,
	}
}

func (h *Handler[M, C, U, V]) Routes(r chi.Router) {
	r.Route(h.Service.Descriptor().Path, func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler[M, C, U, V]) Create(w http.ResponseWriter, r *http.Request) {
	desc := h.Service.Descriptor()

	var in C
	if err := decodeBody(r, &in); err != nil {
		logger.From(r.Context()).Debug("Create: invalid request body", "resource", desc.Event, "error", err)
		h.WriteAppError(w, r, err)
		return
	}

	m, err := h.Service.Create(r.Context(), in)
	if err != nil {
		logger.From(r.Context()).Debug("Create: service error", "resource", desc.Event, "error", err)
		h.WriteAppError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.Success(fmt.Sprintf("%s created successfully", desc.Name), h.present(m)))
}

func (h *Handler[M, C, U, V]) Get(w http.ResponseWriter, r *http.Request) {
	desc := h.Service.Descriptor()

	id, err := parseID(r)
	if err != nil {
		h.WriteAppError(w, r, err)
		return
	}

	m, err := h.Service.Get(r.Context(), id)
	if err != nil {
		logger.From(r.Context()).Debug("Get: service error", "resource", desc.Event, "error", err, "id", id)
		h.WriteAppError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.Success(fmt.Sprintf("%s retrieved successfully", desc.Name), h.present(m)))
}

func (h *Handler[M, C, U, V]) List(w http.ResponseWriter, r *http.Request) {
	desc := h.Service.Descriptor()

	page, err := ParsePage(r.URL.Query())
	if err != nil {
		h.WriteAppError(w, r, err)
		return
	}

	items, err := h.Service.List(r.Context(), page)
	if err != nil {
		logger.From(r.Context()).Debug("List: service error", "resource", desc.Event, "error", err)
		h.WriteAppError(w, r, err)
		return
	}

	out := make([]V, 0, len(items))
	for _, m := range items {
		out = append(out, h.present(m))
	}

	h.WriteJSON(w, http.StatusOK, transport.Success(fmt.Sprintf("%s retrieved successfully", desc.Plural), out))
}

func (h *Handler[M, C, U, V]) Update(w http.ResponseWriter, r *http.Request) {
	desc := h.Service.Descriptor()

	id, err := parseID(r)
	if err != nil {
		h.WriteAppError(w, r, err)
		return
	}

	var in U
	if err := decodeBody(r, &in); err != nil {
		logger.From(r.Context()).Debug("Update: invalid request body", "resource", desc.Event, "error", err, "id", id)
		h.WriteAppError(w, r, err)
		return
	}

	m, err := h.Service.Update(r.Context(), id, in)
	if err != nil {
		logger.From(r.Context()).Debug("Update: service error", "resource", desc.Event, "error", err, "id", id)
		h.WriteAppError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.Success(fmt.Sprintf("%s updated successfully", desc.Name), h.present(m)))
}

func (h *Handler[M, C, U, V]) Delete(w http.ResponseWriter, r *http.Request) {
	desc := h.Service.Descriptor()

	id, err := parseID(r)
	if err != nil {
		h.WriteAppError(w, r, err)
		return
	}

	m, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		logger.From(r.Context()).Debug("Delete: service error", "resource", desc.Event, "error", err, "id", id)
		h.WriteAppError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.Success(fmt.Sprintf("%s deleted successfully", desc.Name), h.present(m)))
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, internal.NewValidationFieldError("id", "id must be an integer", internal.ErrCodeInvalidID)
	}
	return id, nil
}

// decodeBody reads a single JSON value into dst. An empty body decodes to
// the zero value so that validation reports the missing fields.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return internal.NewValidationFieldError("body",
				"body must contain a single JSON object", internal.ErrCodeInvalidBody)
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		want := dates.Describe(typeErr.Type)
		if want == "" {
			want = "of type " + typeErr.Type.String()
		}
		return internal.NewValidationFieldError(typeErr.Field,
			fmt.Sprintf("%s must be %s", typeErr.Field, want),
			internal.ErrCodeInvalidBody)
	}

	return internal.NewValidationFieldError("body", err.Error(), internal.ErrCodeInvalidBody)
}
