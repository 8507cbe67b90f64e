package internal_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-backend/internal"
)

var _ = Describe("AppError", func() {
	It("maps each error type to its status code", func() {
		Expect(internal.NewValidationError("bad", internal.ErrCodeInvalidBody).StatusCode).To(Equal(http.StatusUnprocessableEntity))
		Expect(internal.NewNotFoundError("gone", internal.ErrCodeResourceNotFound).StatusCode).To(Equal(http.StatusNotFound))
		Expect(internal.NewConflictError("dup", internal.ErrCodeDuplicateResource).StatusCode).To(Equal(http.StatusConflict))
		Expect(internal.NewInternalError("boom", nil).StatusCode).To(Equal(http.StatusInternalServerError))
	})

	It("summarises validation failures", func() {
		err := internal.NewValidationErrors([]internal.ValidationError{
			{Field: "name", Message: "name is required", Code: "REQUIRED"},
			{Field: "email", Message: "email must be a valid email address", Code: "INVALID_EMAIL"},
		})
		Expect(err.Error()).To(Equal("name is required"))
		Expect(err.GetDetailedMessage()).To(Equal("name is required; email must be a valid email address"))
	})

	It("finds wrapped app errors", func() {
		notFound := internal.NewNotFoundError("Leave not found", internal.ErrCodeResourceNotFound)
		appErr, ok := internal.IsAppError(fmt.Errorf("loading: %w", notFound))
		Expect(ok).To(BeTrue())
		Expect(appErr).To(BeIdenticalTo(notFound))
	})

	It("hides the cause of untyped failures", func() {
		cause := errors.New("pq: connection refused")
		appErr := internal.AsAppError(cause)

		Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
		Expect(appErr.ClientMessage()).To(Equal("internal server error"))
		Expect(errors.Is(appErr, cause)).To(BeTrue())

		out, err := json.Marshal(appErr)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).NotTo(ContainSubstring("connection refused"))
	})
})
