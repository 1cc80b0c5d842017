package handlers

import (
	"log"
	"net/http"
	"strings"

	"sab_waitlist/internal/response"
	"sab_waitlist/internal/sessions"

	"github.com/gin-gonic/gin"
)

// JobIDRequest is sent by the game server when it (re)starts.
type JobIDRequest struct {
	JobID    string `json:"jobId" example:"8f14e45f-ceea-467f-a0e6-1c5a2b8d3f0a"`
	Username string `json:"username,omitempty" example:"PlayerOne"`
}

// PlayerJoinRequest reports a player entering the live session.
type PlayerJoinRequest struct {
	Username    string `json:"username" example:"PlayerOne"`
	DisplayName string `json:"displayName,omitempty"`
	UserID      int64  `json:"userId,omitempty"`
	Device      string `json:"device,omitempty" example:"PC"`
	Avatar      string `json:"avatar,omitempty"`
}

// PlayerLeaveRequest reports a player leaving the live session.
type PlayerLeaveRequest struct {
	Username string `json:"username" example:"PlayerOne"`
}

// currentJobID is nil when no job id has been reported yet.
func (h *Handler) currentJobID() *string {
	jobID, ok := h.Jobs.Get()
	if !ok {
		return nil
	}
	return &jobID
}

// UpdateJobID godoc
// @Summary		Report the current game server
// @Description	Stores the job id and pushes jobid_updated to websocket clients
// @Tags			session
// @Accept			json
// @Produce		json
// @Param			request	body		JobIDRequest	true	"Job id"
// @Success		200	{object}	map[string]interface{}	"success, jobId"
// @Failure		400	{object}	response.ErrorResponse
// @Router			/update [post]
func (h *Handler) UpdateJobID(c *gin.Context) {
	var req JobIDRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.JobID) == "" {
		response.BadRequest(c, "jobId is required", "")
		return
	}

	h.Jobs.Set(req.JobID)
	if req.Username != "" {
		log.Printf("JobId updated: %s by %s", req.JobID, req.Username)
	} else {
		log.Printf("JobId updated: %s", req.JobID)
	}
	h.Hub.Publish("jobid_updated", gin.H{"jobId": req.JobID})

	c.JSON(http.StatusOK, gin.H{"success": true, "jobId": req.JobID})
}

// GetJobID godoc
// @Summary		Current game server
// @Tags			session
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"jobId"
// @Failure		404	{object}	response.ErrorResponse
// @Router			/getjobid [get]
func (h *Handler) GetJobID(c *gin.Context) {
	jobID, ok := h.Jobs.Get()
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "No JobId available",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobId": jobID})
}

// PlayerJoin godoc
// @Summary		Player entered the live session
// @Tags			session
// @Accept			json
// @Produce		json
// @Param			request	body		PlayerJoinRequest	true	"Player"
// @Success		200	{object}	map[string]interface{}	"success, player"
// @Failure		400	{object}	response.ErrorResponse
// @Router			/player/join [post]
func (h *Handler) PlayerJoin(c *gin.Context) {
	var req PlayerJoinRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		response.BadRequest(c, "username is required", "")
		return
	}

	player := h.Players.Join(sessions.JoinRequest{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		UserID:      req.UserID,
		Device:      req.Device,
		Avatar:      req.Avatar,
	})
	h.Metrics.Players.Set(float64(h.Players.Count()))
	log.Printf("Player joined: %s on %s", player.Username, player.Device)

	c.JSON(http.StatusOK, gin.H{"success": true, "player": player})
}

// PlayerLeave godoc
// @Summary		Player left the live session
// @Tags			session
// @Accept			json
// @Produce		json
// @Param			request	body		PlayerLeaveRequest	true	"Player"
// @Success		200	{object}	map[string]interface{}	"success, existed"
// @Failure		400	{object}	response.ErrorResponse
// @Router			/player/leave [post]
func (h *Handler) PlayerLeave(c *gin.Context) {
	var req PlayerLeaveRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		response.BadRequest(c, "username is required", "")
		return
	}

	existed := h.Players.Leave(req.Username)
	h.Metrics.Players.Set(float64(h.Players.Count()))
	if existed {
		log.Printf("Player left: %s", req.Username)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "existed": existed})
}

// ListPlayers godoc
// @Summary		Players in the live session
// @Description	Ordered by join time, oldest first
// @Tags			session
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"players, count, jobId"
// @Router			/players/list [get]
func (h *Handler) ListPlayers(c *gin.Context) {
	players := h.Players.List()
	c.JSON(http.StatusOK, gin.H{"players": players, "count": len(players), "jobId": h.currentJobID()})
}

// CountPlayers godoc
// @Summary		Number of players in the live session
// @Tags			session
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"count, jobId"
// @Router			/players/count [get]
func (h *Handler) CountPlayers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.Players.Count(), "jobId": h.currentJobID()})
}
