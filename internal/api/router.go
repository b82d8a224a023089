package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"wilayah/internal/api/controllers"
	"wilayah/pkg/metrics"
	"wilayah/pkg/middleware"
	"wilayah/pkg/utils"
)

type Handlers struct {
	Account   *controllers.AccountController
	Provinsi  *controllers.ProvinsiController
	Kabupaten *controllers.KabupatenController
	Penduduk  *controllers.PendudukController
	Dashboard *controllers.DashboardController
}

type EngineOptions struct {
	ServiceName string
	CORSOrigins []string
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Tracing     bool
}

// NewEngine builds the gin engine with the shared middleware chain and every
// route registered. auth guards everything except /auth/register, /auth/login,
// /healthz and /metrics.
func NewEngine(opts EngineOptions, h Handlers, auth gin.HandlerFunc) *gin.Engine {
	binding.Validator = utils.StructValidator{}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	if opts.Tracing {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	r.Use(middleware.RequestMetrics(opts.Metrics))
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	RegisterRoutes(r, h, auth)
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	authGroup.POST("/register", h.Account.Register)
	authGroup.POST("/login", h.Account.Login)
	authGroup.POST("/logout", auth, h.Account.Logout)
	authGroup.GET("/me", auth, h.Account.Me)

	protected := r.Group("/", auth)

	provinsiGroup := protected.Group("/provinsi")
	provinsiGroup.GET("", h.Provinsi.ListProvinsi)
	provinsiGroup.POST("", h.Provinsi.CreateProvinsi)
	provinsiGroup.GET("/:id", h.Provinsi.GetProvinsi)
	provinsiGroup.PUT("/:id", h.Provinsi.UpdateProvinsi)
	provinsiGroup.DELETE("/:id", h.Provinsi.DeleteProvinsi)

	kabupatenGroup := protected.Group("/kabupaten")
	kabupatenGroup.GET("", h.Kabupaten.ListKabupaten)
	kabupatenGroup.POST("", h.Kabupaten.CreateKabupaten)
	kabupatenGroup.GET("/:id", h.Kabupaten.GetKabupaten)
	kabupatenGroup.PUT("/:id", h.Kabupaten.UpdateKabupaten)
	kabupatenGroup.DELETE("/:id", h.Kabupaten.DeleteKabupaten)

	pendudukGroup := protected.Group("/penduduk")
	pendudukGroup.GET("", h.Penduduk.ListPenduduk)
	pendudukGroup.POST("", h.Penduduk.CreatePenduduk)
	pendudukGroup.GET("/:id", h.Penduduk.GetPenduduk)
	pendudukGroup.PUT("/:id", h.Penduduk.UpdatePenduduk)
	pendudukGroup.DELETE("/:id", h.Penduduk.DeletePenduduk)

	protected.GET("/dashboard", h.Dashboard.GetDashboard)
}
