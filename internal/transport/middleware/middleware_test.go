package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-backend/internal/transport/middleware"
	"github.com/frahmantamala/hrms-backend/pkg/logger"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("TrustedHosts", func() {
	DescribeTable("host matching",
		func(hosts []string, host string, want int) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			req.Host = host
			Expect(serve(middleware.TrustedHosts(hosts, quiet)(ok), req).Code).To(Equal(want))
		},
		Entry("empty list allows all", nil, "evil.test", http.StatusNoContent),
		Entry("exact match ignores the port", []string{"localhost"}, "localhost:8000", http.StatusNoContent),
		Entry("case insensitive", []string{"API.example.com"}, "api.EXAMPLE.com", http.StatusNoContent),
		Entry("wildcard suffix", []string{"*.example.com"}, "hr.example.com", http.StatusNoContent),
		Entry("wildcard does not match the bare domain", []string{"*.example.com"}, "example.com", http.StatusBadRequest),
		Entry("star allows all", []string{"*"}, "anything", http.StatusNoContent),
		Entry("unknown host", []string{"localhost"}, "evil.test", http.StatusBadRequest),
	)

	It("answers with an error envelope", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "evil.test"
		rec := serve(middleware.TrustedHosts([]string{"localhost"}, quiet)(ok), req)
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"error","message":"Invalid host header","data":null}`))
	})
})

var _ = Describe("RecoveryMiddleware", func() {
	It("turns a panic into a 500 envelope", func() {
		panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kaboom") })
		rec := serve(middleware.RecoveryMiddleware(quiet)(panicky), httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"error","message":"internal server error","data":null}`))
	})

	It("lets aborted handlers propagate", func() {
		aborting := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) })
		Expect(func() {
			serve(middleware.RecoveryMiddleware(quiet)(aborting), httptest.NewRequest(http.MethodGet, "/", nil))
		}).To(PanicWith(http.ErrAbortHandler))
	})
})

var _ = Describe("RequestID", func() {
	It("echoes a caller supplied trace id into the request logger", func() {
		var out bytes.Buffer
		base := slog.New(slog.NewJSONHandler(&out, nil))

		h := middleware.RequestID(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.From(r.Context()).Info("handled")
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.TraceIDHeader, "trace-123")

		rec := serve(h, req)
		Expect(rec.Header().Get(middleware.TraceIDHeader)).To(Equal("trace-123"))
		Expect(out.String()).To(ContainSubstring(`"request_id":"trace-123"`))
	})

	It("assigns one when missing", func() {
		rec := serve(middleware.RequestID(quiet)(ok), httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(rec.Header().Get(middleware.TraceIDHeader)).To(HaveLen(36))
	})
})

var _ = Describe("CORS", func() {
	It("answers preflight requests for allowed origins", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/employees", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec := serve(middleware.CORS([]string{"http://localhost:3000"})(ok), req)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:3000"))
		Expect(rec.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"))
	})

	It("does not echo unknown origins", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
		req.Header.Set("Origin", "http://evil.test")

		rec := serve(middleware.CORS([]string{"http://localhost:3000"})(ok), req)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})
})

var _ = Describe("LoggingMiddleware", func() {
	var out bytes.Buffer

	logged := func(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
		out.Reset()
		log := slog.New(slog.NewJSONHandler(&out, nil))
		return serve(middleware.RequestID(log)(middleware.LoggingMiddleware(h)), req)
	}

	It("passes the response through", func() {
		rec := logged(ok, httptest.NewRequest(http.MethodPost, "/api/v1/departments", nil))
		Expect(rec.Code).To(Equal(http.StatusNoContent))
	})

	It("tags both log lines with the trace id returned to the caller", func() {
		rec := logged(ok, httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil))

		traceID := rec.Header().Get(middleware.TraceIDHeader)
		Expect(traceID).NotTo(BeEmpty())
		Expect(strings.Count(out.String(), `"request_id":"`+traceID+`"`)).To(Equal(2))
	})

	It("masks personal fields and leaves the body readable downstream", func() {
		var seen string
		echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			seen = string(b)
			w.WriteHeader(http.StatusUnprocessableEntity)
		})

		body := `{"first_name":"Ada","bank_account":"9988776655","email":"ada@corp.test","phone":"+62811223344"}`
		rec := logged(echo, httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body)))

		Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(seen).To(Equal(body))
		Expect(out.String()).NotTo(ContainSubstring("9988776655"))
		Expect(out.String()).NotTo(ContainSubstring("ada@corp.test"))
		Expect(out.String()).NotTo(ContainSubstring("+62811223344"))
		Expect(out.String()).To(ContainSubstring("[FILTERED]"))
		Expect(out.String()).To(ContainSubstring(`"level":"WARN"`))
	})

	It("masks personal fields in response bodies", func() {
		reply := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","data":{"id":1,"address":"Jl. Merdeka 1"}}`))
		})
		logged(reply, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1", nil))

		Expect(out.String()).NotTo(ContainSubstring("Merdeka"))
	})

	It("truncates long bodies without splitting a character", func() {
		body := "a" + strings.Repeat("é", 3000)
		logged(ok, httptest.NewRequest(http.MethodPost, "/api/v1/departments", strings.NewReader(body)))

		Expect(out.String()).To(ContainSubstring("...(truncated)"))
		Expect(out.String()).NotTo(ContainSubstring(`\ufffd`))
	})
})
