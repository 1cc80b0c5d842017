package handlers

import (
	"fmt"
	"log"
	"net/http"

	"sab_waitlist/internal/response"

	"github.com/gin-gonic/gin"
)

// ExemptRequest names a game account.
type ExemptRequest struct {
	Username string `json:"username" example:"PlayerOne"`
	APIKey   string `json:"apiKey,omitempty"`
}

// AddExempt godoc
// @Summary		Add a name to the exempt list
// @Tags			exempt
// @Accept			json
// @Produce		json
// @Param			request	body		ExemptRequest	true	"Name"
// @Param			X-API-Key	header		string	false	"Shared secret"
// @Success		200	{object}	response.ExemptResponse
// @Failure		400	{object}	response.ErrorResponse
// @Failure		403	{object}	response.ErrorResponse
// @Router			/exempt/add [post]
func (h *Handler) AddExempt(c *gin.Context) {
	var req ExemptRequest
	if !bindJSON(c, &req) {
		return
	}

	name, err := h.Exempt.Add(req.Username)
	if err != nil {
		h.fail(c, "exempt.add", err)
		return
	}

	log.Printf("Added to exempt list: %s", name)
	h.changed("exempt.add", "", name, "", nil)
	c.JSON(http.StatusOK, response.ExemptResponse{Success: true, Username: name})
}

// RemoveExempt godoc
// @Summary		Remove a name from the exempt list
// @Description	Idempotent; existed reports whether the name was present
// @Tags			exempt
// @Accept			json
// @Produce		json
// @Param			request	body		ExemptRequest	true	"Name"
// @Param			X-API-Key	header		string	false	"Shared secret"
// @Success		200	{object}	response.ExemptResponse
// @Failure		400	{object}	response.ErrorResponse
// @Failure		403	{object}	response.ErrorResponse
// @Router			/exempt/remove [post]
func (h *Handler) RemoveExempt(c *gin.Context) {
	var req ExemptRequest
	if !bindJSON(c, &req) {
		return
	}

	name, existed, err := h.Exempt.Remove(req.Username)
	if err != nil {
		h.fail(c, "exempt.remove", err)
		return
	}

	log.Printf("Removed from exempt list: %s (existed: %t)", name, existed)
	h.changed("exempt.remove", "", name, fmt.Sprintf("existed=%t", existed), nil)
	c.JSON(http.StatusOK, response.ExemptResponse{Success: true, Username: name, Existed: &existed})
}

// CheckExempt godoc
// @Summary		Check a name against the exempt list
// @Tags			exempt
// @Produce		json
// @Param			username	path		string	true	"Game account name"
// @Success		200	{object}	map[string]interface{}	"exempt, username"
// @Failure		400	{object}	response.ErrorResponse
// @Router			/exempt/check/{username} [get]
func (h *Handler) CheckExempt(c *gin.Context) {
	name, exempt, err := h.Exempt.Contains(c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exempt": exempt, "username": name})
}

// ListExempt godoc
// @Summary		List exempt names
// @Tags			exempt
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"users, count"
// @Router			/exempt/list [get]
func (h *Handler) ListExempt(c *gin.Context) {
	users := h.Exempt.List()
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// CheckWhitelist godoc
// @Summary		Whitelist lookup used by the game server
// @Tags			exempt
// @Produce		json
// @Param			username	query		string	true	"Game account name"
// @Success		200	{object}	map[string]interface{}	"isWhitelisted, username"
// @Failure		400	{object}	response.ErrorResponse
// @Router			/checkwhitelist [get]
func (h *Handler) CheckWhitelist(c *gin.Context) {
	name, whitelisted, err := h.Exempt.Contains(c.Query("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	log.Printf("Whitelist check: %s = %t", name, whitelisted)
	c.JSON(http.StatusOK, gin.H{"isWhitelisted": whitelisted, "username": name})
}
