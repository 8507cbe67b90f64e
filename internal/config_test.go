package internal_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-backend/internal"
)

func validConfig() *internal.Config {
	return &internal.Config{
		App: internal.AppConfig{Name: "HRMS", Version: "1.0.0", Env: "test"},
		Server: internal.ServerConfig{
			Port:              8000,
			BaseURL:           "http://api.example.com:8000",
			AllowedOrigins:    "http://localhost:3000, https://app.example.com",
			TrustedHosts:      "localhost,127.0.0.1",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
		},
		Database: internal.DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 5 * time.Minute,
			Source:          "postgres://localhost/hrms",
			LogLevel:        "warn",
		},
		Observability: internal.ObservabilityConfig{
			Logging: internal.LoggingConfig{Level: "info", Format: "json"},
		},
	}
}

var _ = Describe("Config", func() {
	It("accepts a complete configuration", func() {
		Expect(validConfig().Validate()).To(Succeed())
	})

	It("reports struct rule failures by field", func() {
		cfg := validConfig()
		cfg.App.Env = "qa"
		cfg.Database.Source = ""

		err := cfg.Validate()
		Expect(err).To(MatchError(ContainSubstring("Config.App.Env")))
		Expect(err).To(MatchError(ContainSubstring("Config.Database.Source")))
	})

	It("requires origins with a scheme and host", func() {
		cfg := validConfig()
		cfg.Server.AllowedOrigins = "localhost:3000"
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("invalid allowed origin")))

		cfg.Server.AllowedOrigins = "*"
		Expect(cfg.Validate()).To(Succeed())
	})

	It("rejects a read timeout shorter than the header timeout", func() {
		cfg := validConfig()
		cfg.Server.ReadTimeout = time.Second
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("read_timeout")))
	})

	It("rejects more idle than open connections", func() {
		cfg := validConfig()
		cfg.Database.MaxIdleConns = 20
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("max_idle_conns")))
	})

	It("splits list settings", func() {
		cfg := validConfig()
		Expect(cfg.Server.OriginList()).To(Equal([]string{"http://localhost:3000", "https://app.example.com"}))
		Expect(cfg.Server.TrustedHostList()).To(Equal([]string{"localhost", "127.0.0.1", "api.example.com"}))
	})

	It("provides defaults for every server and database setting", func() {
		defaults := internal.Defaults()
		Expect(defaults).To(HaveKeyWithValue("http_server.port", 8000))
		Expect(defaults).To(HaveKey("database.max_open_conns"))
		Expect(defaults).NotTo(HaveKey("database.source"))
	})
})

var _ = Describe("LoadConfigFromEnv", func() {
	BeforeEach(func() {
		for _, key := range []string{"DATABASE_URL", "HTTP_PORT", "POSTGRES_SERVER", "POSTGRES_DB", "POSTGRES_USER", "POSTGRES_PASSWORD", "HTTP_READ_TIMEOUT", "APP_ENV"} {
			GinkgoT().Setenv(key, "")
		}
	})

	It("builds the DSN from POSTGRES_* parts", func() {
		GinkgoT().Setenv("POSTGRES_SERVER", "db")
		GinkgoT().Setenv("POSTGRES_DB", "people")
		GinkgoT().Setenv("POSTGRES_USER", "hr")
		GinkgoT().Setenv("POSTGRES_PASSWORD", "s3cret")

		cfg := internal.LoadConfigFromEnv()
		Expect(cfg.Database.Source).To(Equal("postgres://hr:s3cret@db:5432/people?sslmode=disable"))
		Expect(cfg.App.Env).To(Equal("production"))
	})

	It("prefers DATABASE_URL and parses numbers and durations", func() {
		GinkgoT().Setenv("DATABASE_URL", "postgres://x@y/z")
		GinkgoT().Setenv("HTTP_PORT", "9090")
		GinkgoT().Setenv("HTTP_READ_TIMEOUT", "30s")

		cfg := internal.LoadConfigFromEnv()
		Expect(cfg.Database.Source).To(Equal("postgres://x@y/z"))
		Expect(cfg.Server.Port).To(Equal(9090))
		Expect(cfg.Server.ReadTimeout).To(Equal(30 * time.Second))
		Expect(cfg.Validate()).To(Succeed())
	})
})
