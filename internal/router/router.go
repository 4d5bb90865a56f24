package router

import (
	"net/http"
	"os"
	"strings"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Overridden at build time via -ldflags.
var version = "0.0.0"

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "centsible_http_requests_total",
	Help: "Number of HTTP requests processed, by method and status code.",
}, []string{"method", "status"})

// Router controls the routes for the API.
func Router() (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	r.Use(func(c *gin.Context) {
		c.Next()
		requestsTotal.WithLabelValues(c.Request.Method, http.StatusText(c.Writer.Status())).Inc()
	})

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "X-User-ID"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Profiling and metrics, not part of the public API surface
	pprof.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/healthz", GetHealth)
	r.OPTIONS("/healthz", OptionsHealth)

	// API v1 setup
	apiV1 := r.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.OPTIONS("", OptionsV1)
	}

	// Every resource route requires the requesting user
	apiV1.Use(v1.RequireUser())

	v1.RegisterBudgetRoutes(apiV1.Group("/budgets"))
	v1.RegisterMonthRoutes(apiV1.Group("/months"))
	v1.RegisterAccountRoutes(apiV1.Group("/accounts"))
	v1.RegisterCategoryGroupRoutes(apiV1.Group("/category-groups"))
	v1.RegisterCategoryRoutes(apiV1.Group("/categories"))
	v1.RegisterGoalRoutes(apiV1.Group("/goals"))
	v1.RegisterPayeeRoutes(apiV1.Group("/payees"))
	v1.RegisterTransactionRoutes(apiV1.Group("/transactions"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Health
// @Description	Returns the health of the API and its database connection
// @Tags			General
// @Success		204
// @Failure		500	{object}	HealthResponse
// @Router			/healthz [get]
func GetHealth(c *gin.Context) {
	if err := pingDatabase(); err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, HealthResponse{Error: &s})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

type HealthResponse struct {
	Error *string `json:"error"` // The error, if any occurred
}

func pingDatabase() error {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func OptionsHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`
	Months         string `json:"months" example:"https://example.com/api/v1/months"`
	Accounts       string `json:"accounts" example:"https://example.com/api/v1/accounts"`
	CategoryGroups string `json:"categoryGroups" example:"https://example.com/api/v1/category-groups"`
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`
	Goals          string `json:"goals" example:"https://example.com/api/v1/goals"`
	Payees         string `json:"payees" example:"https://example.com/api/v1/payees"`
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Budgets:        httputil.RequestPathV1(c) + "/budgets",
			Months:         httputil.RequestPathV1(c) + "/months",
			Accounts:       httputil.RequestPathV1(c) + "/accounts",
			CategoryGroups: httputil.RequestPathV1(c) + "/category-groups",
			Categories:     httputil.RequestPathV1(c) + "/categories",
			Goals:          httputil.RequestPathV1(c) + "/goals",
			Payees:         httputil.RequestPathV1(c) + "/payees",
			Transactions:   httputil.RequestPathV1(c) + "/transactions",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
