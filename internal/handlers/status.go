package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"sab_waitlist/internal/response"
	"sab_waitlist/internal/ws"

	"github.com/gin-gonic/gin"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

var statusTemplate = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
<head><title>SAB Waitlist System</title></head>
<body>
<h1>SAB Waitlist System</h1>
<p>Current JobId: {{if .JobID}}{{.JobID}}{{else}}Not set{{end}}</p>
<p>Active Players: {{.Players}}</p>
<p>Exempt Users: {{.Exempt}}</p>
<p>Waitlist: {{.Waitlist}} users</p>
<hr>
<p>API Key: {{if .KeyConfigured}}Configured{{else}}Not Set{{end}}</p>
</body>
</html>
`))

type statusView struct {
	JobID         string
	Players       int
	Exempt        int
	Waitlist      int
	KeyConfigured bool
}

// StatusPage godoc
// @Summary		Human-readable status page
// @Tags			status
// @Produce		html
// @Success		200	{string}	string	"HTML"
// @Router			/ [get]
func (h *Handler) StatusPage(c *gin.Context) {
	jobID, _ := h.Jobs.Get()
	c.HTML(http.StatusOK, "status", statusView{
		JobID:         jobID,
		Players:       h.Players.Count(),
		Exempt:        h.Exempt.Len(),
		Waitlist:      h.Waitlist.Len(),
		KeyConfigured: h.Auth.Configured(),
	})
}

// Health godoc
// @Summary		Liveness and counters
// @Tags			status
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"status, uptime, jobId, playerCount, waitlistCount"
// @Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"uptime":        time.Since(h.startedAt).Seconds(),
		"jobId":         h.currentJobID(),
		"playerCount":   h.Players.Count(),
		"waitlistCount": h.Waitlist.Len(),
	})
}

// RecentAudit godoc
// @Summary		Latest audit records, newest first
// @Tags			status
// @Produce		json
// @Param			limit	query		int	false	"Max records (default 50, max 500)"
// @Param			X-API-Key	header		string	false	"Shared secret"
// @Success		200	{object}	map[string]interface{}	"records, count"
// @Failure		400	{object}	response.ErrorResponse
// @Failure		403	{object}	response.ErrorResponse
// @Failure		500	{object}	response.ErrorResponse
// @Router			/audit [get]
func (h *Handler) RecentAudit(c *gin.Context) {
	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(c, "limit must be a positive number", raw)
			return
		}
		limit = min(n, maxAuditLimit)
	}

	records, err := h.Journal.Recent(c.Request.Context(), limit)
	if err != nil {
		log.Printf("audit read failed: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Failed to read audit journal",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}

// Subscribe godoc
// @Summary		Realtime events
// @Description	Websocket stream of {event_type, data}; the current job id is sent first when known
// @Tags			status
// @Router			/ws [get]
func (h *Handler) Subscribe(c *gin.Context) {
	var initial [][]byte
	if jobID, ok := h.Jobs.Get(); ok {
		if msg, err := ws.Encode("jobid_updated", gin.H{"jobId": jobID}); err == nil {
			initial = append(initial, msg)
		}
	}
	h.Hub.Serve(c.Writer, c.Request, initial...)
}
