package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"sab_waitlist/internal/apperr"
	"sab_waitlist/internal/auth"
	"sab_waitlist/internal/exempt"
	"sab_waitlist/internal/metrics"
	"sab_waitlist/internal/response"
	"sab_waitlist/internal/sessions"
	"sab_waitlist/internal/storage"
	"sab_waitlist/internal/waitlist"
	"sab_waitlist/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// journalTimeout bounds a single audit write.
const journalTimeout = 3 * time.Second

// Handler exposes the waitlist, exempt list and session directory over HTTP.
// It owns no state of its own; every collaborator is constructed once at
// startup and passed in.
type Handler struct {
	Waitlist *waitlist.Engine
	Exempt   *exempt.Registry
	Players  *sessions.Directory
	Jobs     *sessions.JobStore
	Hub      *ws.Hub
	Journal  storage.Journal
	Metrics  *metrics.Metrics
	Auth     *auth.Authorizer

	startedAt time.Time
}

// New fills in defaults for optional collaborators.
func New(h Handler) *Handler {
	if h.Journal == nil {
		h.Journal = storage.Discard{}
	}
	if h.Metrics == nil {
		h.Metrics = metrics.New()
	}
	if h.Hub == nil {
		h.Hub = ws.NewHub()
	}
	if h.Auth == nil {
		h.Auth = &auth.Authorizer{}
	}
	h.startedAt = time.Now()
	return &h
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", auth.HeaderAPIKey},
		ExposeHeaders: []string{"Content-Length"},
	}))
	r.SetHTMLTemplate(statusTemplate)

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes wires every endpoint onto r.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	requireKey := h.Auth.Middleware()

	r.GET("/", h.StatusPage)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Metrics.Registry, promhttp.HandlerOpts{})))
	r.GET("/ws", h.Subscribe)
	r.GET("/audit", requireKey, h.RecentAudit)

	r.POST("/update", h.UpdateJobID)
	r.GET("/getjobid", h.GetJobID)

	r.POST("/player/join", h.PlayerJoin)
	r.POST("/player/leave", h.PlayerLeave)
	r.GET("/players/list", h.ListPlayers)
	r.GET("/players/count", h.CountPlayers)

	exemptGroup := r.Group("/exempt")
	{
		exemptGroup.POST("/add", requireKey, h.AddExempt)
		exemptGroup.POST("/remove", requireKey, h.RemoveExempt)
		exemptGroup.GET("/check/:username", h.CheckExempt)
		exemptGroup.GET("/list", h.ListExempt)
	}
	r.GET("/checkwhitelist", h.CheckWhitelist)

	waitlistGroup := r.Group("/waitlist")
	{
		waitlistGroup.POST("/add", requireKey, h.Admit)
		waitlistGroup.POST("/remove", requireKey, h.Remove)
		waitlistGroup.POST("/addsteals", requireKey, h.CreditSteals)
		waitlistGroup.POST("/usesteals", h.ConsumeSteals)
		waitlistGroup.POST("/updateposition", requireKey, h.Reposition)
		waitlistGroup.GET("/list", h.List)
		waitlistGroup.GET("/get/:discordId", h.Get)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Endpoint not found",
			Details: c.Request.Method + " " + c.Request.URL.Path,
		})
	})
}

// fail counts the failed operation and writes the error.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	result := string(apperr.CodeOf(err))
	if result == "" {
		result = "error"
	}
	h.Metrics.Observe(op, result)
	response.Error(c, err)
}

// changed runs the side effects of a successful mutation: metrics, the
// realtime event and the audit record. None of them can fail the request.
func (h *Handler) changed(op, eventType, accountID, detail string, data interface{}) {
	h.Metrics.Observe(op, "ok")
	h.refreshGauges()

	if eventType != "" {
		h.Hub.Publish(eventType, data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if err := h.Journal.Record(ctx, op, accountID, detail); err != nil {
		log.Printf("audit record %s for %s failed: %v", op, accountID, err)
	}
}

func (h *Handler) refreshGauges() {
	listing := h.Waitlist.List()
	h.Metrics.SetWaitlist(len(listing.Active), len(listing.Waiting))
	h.Metrics.Players.Set(float64(h.Players.Count()))
	h.Metrics.Exempt.Set(float64(h.Exempt.Len()))
}
