package gateway

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/neko3da4/CHRFORGE/internal/client"
	"github.com/neko3da4/CHRFORGE/internal/config"
	"github.com/neko3da4/CHRFORGE/internal/credentials"
	"github.com/neko3da4/CHRFORGE/internal/observability"
)

const contentTypeThrift = "application/x-thrift"

// fixture is one prepared response. Bodies are materialized at build time
// so a bad payload file fails the process at startup, not mid-request.
type fixture struct {
	status     int
	body       []byte
	gzipBody   []byte
	nextAccess string
}

// Gateway serves canned upstream responses for registered paths.
type Gateway struct {
	Name     string
	Addr     string
	Appeared time.Time

	router     *gin.Engine
	fixtures   map[string]fixture
	validator  credentials.Validator
	nextAccess string
}

// New builds a gateway from cfg. Every fixture body is resolved eagerly.
func New(cfg config.GatewayConfig) (*Gateway, error) {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", client.HeaderAuthToken},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	g := &Gateway{
		Name:       cfg.Name,
		Addr:       cfg.Addr,
		Appeared:   time.Now(),
		router:     r,
		fixtures:   make(map[string]fixture, len(cfg.Fixtures)),
		nextAccess: cfg.NextAccess,
	}
	if cfg.AuthToken != "" {
		g.validator = credentials.StaticBearer{Token: cfg.AuthToken}
	}

	for _, fc := range cfg.Fixtures {
		body, err := config.FixturePayload(fc)
		if err != nil {
			return nil, err
		}
		fx := fixture{
			status:     fc.Status,
			body:       body,
			nextAccess: fc.NextAccess,
		}
		if fc.Gzip {
			compressed, err := compress(body)
			if err != nil {
				return nil, err
			}
			fx.gzipBody = compressed
		}
		g.fixtures[fc.Path] = fx
	}
	return g, nil
}

func (g *Gateway) Router() *gin.Engine {
	return g.router
}

// RegisterRoutes mounts health, metrics and every fixture path.
func (g *Gateway) RegisterRoutes() {
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(g.Appeared).String(),
			"service": g.Name,
		})
	})

	g.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for path, fx := range g.fixtures {
		g.router.POST(path, g.serveFixture(path, fx))
	}
}

func (g *Gateway) serveFixture(path string, fx fixture) gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.validator != nil {
			if err := g.validator.Validate(c.GetHeader(client.HeaderAuthToken)); err != nil {
				log.Warn().
					Str("gateway", g.Name).
					Str("path", path).
					Msg("rejected request with bad access token")
				c.Data(http.StatusUnauthorized, contentTypeThrift, nil)
				return
			}
		}

		if next := g.rotation(fx); next != "" {
			c.Header(client.HeaderNextAccess, next)
		}

		if fx.gzipBody != nil && acceptsGzip(c) {
			c.Header("Content-Encoding", "gzip")
			c.Data(fx.status, contentTypeThrift, fx.gzipBody)
			return
		}
		c.Data(fx.status, contentTypeThrift, fx.body)
	}
}

// rotation picks the per-fixture rotation token, falling back to the
// gateway-wide one.
func (g *Gateway) rotation(fx fixture) string {
	if fx.nextAccess != "" {
		return fx.nextAccess
	}
	return g.nextAccess
}

// Serve mounts routes and blocks on the listener.
func (g *Gateway) Serve() error {
	g.RegisterRoutes()
	return g.router.Run(g.Addr)
}

func acceptsGzip(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept-Encoding"), "gzip")
}

func compress(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(body); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
