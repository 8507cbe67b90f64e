package resource_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/core/common/patch"
	"github.com/frahmantamala/hrms-backend/internal/core/events"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

type widget struct {
	ID   int64
	Name string
}

func (widget) TableName() string { return "widgets" }
func (w widget) EntityID() int64 { return w.ID }

type createWidget struct{ Name string }

func (c createWidget) Validate() error {
	if c.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeRequired)
	}
	return nil
}

func (c createWidget) ToModel() *widget { return &widget{Name: c.Name} }

type updateWidget struct{ Name patch.Field[string] }

func (u updateWidget) Validate() error {
	if u.Name.IsNull() {
		return internal.NewValidationFieldError("name", "name cannot be null", internal.ErrCodeNotNull)
	}
	return nil
}

func (u updateWidget) ApplyTo(w *widget) error {
	if u.Name.Present() && u.Name.Value == "self" {
		return internal.NewValidationFieldError("name", "name must not be self", internal.ErrCodeInvalidReference)
	}
	u.Name.ApplyTo(&w.Name)
	return nil
}

// Mock repository for testing
type mockWidgetRepository struct {
	rows        map[int64]*widget
	nextID      int64
	createError error
	updateError error
	deleteError error
	listError   error
	lastPage    resource.Page
}

func newMockWidgetRepository() *mockWidgetRepository {
	return &mockWidgetRepository{rows: make(map[int64]*widget), nextID: 1}
}

func (m *mockWidgetRepository) Create(_ context.Context, w *widget) error {
	if m.createError != nil {
		return m.createError
	}
	w.ID = m.nextID
	m.nextID++
	stored := *w
	m.rows[w.ID] = &stored
	return nil
}

func (m *mockWidgetRepository) GetByID(_ context.Context, id int64) (*widget, error) {
	w, ok := m.rows[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	out := *w
	return &out, nil
}

func (m *mockWidgetRepository) List(_ context.Context, page resource.Page) ([]*widget, error) {
	m.lastPage = page
	if m.listError != nil {
		return nil, m.listError
	}
	return nil, nil
}

func (m *mockWidgetRepository) Update(ctx context.Context, id int64, apply func(*widget) error) (*widget, error) {
	if m.updateError != nil {
		return nil, m.updateError
	}
	w, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(w); err != nil {
		return nil, err
	}
	m.rows[id] = w
	return w, nil
}

func (m *mockWidgetRepository) Delete(ctx context.Context, id int64) (*widget, error) {
	if m.deleteError != nil {
		return nil, m.deleteError
	}
	w, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(m.rows, id)
	return w, nil
}

type capturePublisher struct {
	mu    sync.Mutex
	types []string
}

func (p *capturePublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, e.EventType())
	return nil
}

var widgetDescriptor = resource.Descriptor{Name: "Widget", Plural: "Widgets", Path: "/widgets", Event: "widget"}

func statusOf(err error) int {
	appErr, ok := internal.IsAppError(err)
	Expect(ok).To(BeTrue(), fmt.Sprintf("expected an AppError, got %v", err))
	return appErr.StatusCode
}

var _ = Describe("Service", func() {
	var (
		repo      *mockWidgetRepository
		publisher *capturePublisher
		service   *resource.Service[widget, createWidget, updateWidget]
		ctx       context.Context
	)

	BeforeEach(func() {
		repo = newMockWidgetRepository()
		publisher = &capturePublisher{}
		service = resource.NewService[widget, createWidget, updateWidget](
			widgetDescriptor, repo, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("stores the row and announces it", func() {
			w, err := service.Create(ctx, createWidget{Name: "Gear"})
			Expect(err).NotTo(HaveOccurred())
			Expect(w.ID).To(Equal(int64(1)))
			Expect(publisher.types).To(Equal([]string{"widget.created"}))
		})

		It("validates before touching the store", func() {
			repo.createError = errors.New("should not be called")
			_, err := service.Create(ctx, createWidget{})
			Expect(statusOf(err)).To(Equal(http.StatusUnprocessableEntity))
			Expect(publisher.types).To(BeEmpty())
		})

		It("maps a unique violation to 409", func() {
			repo.createError = fmt.Errorf("%w: widgets_name_key", resource.ErrDuplicate)
			_, err := service.Create(ctx, createWidget{Name: "Gear"})
			Expect(statusOf(err)).To(Equal(http.StatusConflict))
			Expect(err).To(MatchError(ContainSubstring("Widget conflicts with an existing record")))
		})

		It("maps a missing reference to 409", func() {
			repo.createError = resource.ErrReferenceViolation
			_, err := service.Create(ctx, createWidget{Name: "Gear"})
			Expect(statusOf(err)).To(Equal(http.StatusConflict))
		})

		It("hides unexpected store failures behind 500", func() {
			repo.createError = errors.New("connection reset")
			_, err := service.Create(ctx, createWidget{Name: "Gear"})
			Expect(statusOf(err)).To(Equal(http.StatusInternalServerError))
			appErr, _ := internal.IsAppError(err)
			Expect(appErr.ClientMessage()).To(Equal("internal server error"))
		})
	})

	Describe("Get", func() {
		It("returns 404 with the resource name", func() {
			_, err := service.Get(ctx, 999999)
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
			Expect(err).To(MatchError("Widget not found"))
		})
	})

	Describe("List", func() {
		It("never returns nil", func() {
			items, err := service.List(ctx, resource.Page{Offset: 2, Limit: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(items).NotTo(BeNil())
			Expect(items).To(BeEmpty())
			Expect(repo.lastPage).To(Equal(resource.Page{Offset: 2, Limit: 5}))
		})

		It("answers a zero limit without querying", func() {
			repo.listError = errors.New("should not be called")
			items, err := service.List(ctx, resource.Page{Limit: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			_, err := service.Create(ctx, createWidget{Name: "Gear"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("changes only supplied fields", func() {
			w, err := service.Update(ctx, 1, updateWidget{Name: patch.Of("Cog")})
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Name).To(Equal("Cog"))

			w, err = service.Update(ctx, 1, updateWidget{})
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Name).To(Equal("Cog"))
			Expect(publisher.types).To(Equal([]string{"widget.created", "widget.updated", "widget.updated"}))
		})

		It("rejects null for a required field", func() {
			_, err := service.Update(ctx, 1, updateWidget{Name: patch.Null[string]()})
			Expect(statusOf(err)).To(Equal(http.StatusUnprocessableEntity))
		})

		It("passes through rejections raised while applying", func() {
			_, err := service.Update(ctx, 1, updateWidget{Name: patch.Of("self")})
			Expect(statusOf(err)).To(Equal(http.StatusUnprocessableEntity))
			Expect(repo.rows[1].Name).To(Equal("Gear"))
		})

		It("returns 404 for unknown ids", func() {
			_, err := service.Update(ctx, 42, updateWidget{Name: patch.Of("Cog")})
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Delete", func() {
		It("returns the removed row and a later Get is 404", func() {
			_, err := service.Create(ctx, createWidget{Name: "Gear"})
			Expect(err).NotTo(HaveOccurred())

			w, err := service.Delete(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Name).To(Equal("Gear"))

			_, err = service.Get(ctx, 1)
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
			Expect(publisher.types).To(ContainElement("widget.deleted"))
		})

		It("explains a row that is still referenced", func() {
			repo.deleteError = resource.ErrReferenceViolation
			_, err := service.Delete(ctx, 1)
			Expect(statusOf(err)).To(Equal(http.StatusConflict))
			Expect(err).To(MatchError(ContainSubstring("Widget is still referenced by other records")))
		})
	})
})
