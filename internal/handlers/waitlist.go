package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"sab_waitlist/internal/apperr"
	"sab_waitlist/internal/response"
	"sab_waitlist/internal/waitlist"

	"github.com/gin-gonic/gin"
)

// AdmitRequest is the body of POST /waitlist/add.
type AdmitRequest struct {
	DiscordID       string `json:"discordId" example:"123456789012345678"`
	DiscordUsername string `json:"discordUsername" example:"alice"`
	BrainrotPaid    int    `json:"brainrotPaid" example:"100"`
	Steals          int    `json:"steals" example:"5"`
	APIKey          string `json:"apiKey,omitempty"`
}

// AccountRequest targets an existing entry.
type AccountRequest struct {
	DiscordID string `json:"discordId" example:"123456789012345678"`
	APIKey    string `json:"apiKey,omitempty"`
}

// StealsRequest carries an amount for credit or consumption. A nil Amount on
// consumption means one steal.
type StealsRequest struct {
	DiscordID string `json:"discordId" example:"123456789012345678"`
	Amount    *int   `json:"amount" example:"1"`
	APIKey    string `json:"apiKey,omitempty"`
}

// PositionRequest is the body of POST /waitlist/updateposition.
type PositionRequest struct {
	DiscordID   string `json:"discordId" example:"123456789012345678"`
	NewPosition *int   `json:"newPosition" example:"2"`
	APIKey      string `json:"apiKey,omitempty"`
}

func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}

func requireAccount(c *gin.Context, discordID string) bool {
	if strings.TrimSpace(discordID) == "" {
		response.BadRequest(c, "discordId is required", "")
		return false
	}
	return true
}

// Admit godoc
// @Summary		Add a buyer to the waitlist
// @Description	Appends the buyer behind every current entry (position = max + 1)
// @Tags			waitlist
// @Accept			json
// @Produce		json
// @Param			request	body		AdmitRequest	true	"Buyer"
// @Param			X-API-Key	header		string	false	"Shared secret"
// @Success		200	{object}	response.AdmitResponse
// @Failure		400	{object}	response.ErrorResponse	"INVALID_ARGUMENT"
// @Failure		403	{object}	response.ErrorResponse	"UNAUTHORIZED"
// @Failure		409	{object}	response.ConflictResponse	"ALREADY_EXISTS"
// @Router			/waitlist/add [post]
func (h *Handler) Admit(c *gin.Context) {
	var req AdmitRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.Waitlist.Admit(waitlist.AdmitRequest{
		AccountID:     req.DiscordID,
		DisplayName:   req.DiscordUsername,
		CreditPaid:    req.BrainrotPaid,
		InitialSteals: req.Steals,
	})
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeAlreadyExists {
			h.Metrics.Observe("waitlist.admit", string(apperr.CodeAlreadyExists))
			body := response.ConflictResponse{
				ErrorResponse: response.ErrorResponse{
					Code:    string(apperr.CodeAlreadyExists),
					Message: err.Error(),
				},
			}
			if existing, getErr := h.Waitlist.Get(req.DiscordID); getErr == nil {
				body.User = &existing
			}
			c.JSON(http.StatusConflict, body)
			return
		}
		h.fail(c, "waitlist.admit", err)
		return
	}

	log.Printf("Added to waitlist: %s (Position: %d)", entry.DisplayName, entry.Position)
	h.changed("waitlist.admit", "waitlist_admitted", entry.AccountID,
		fmt.Sprintf("position=%d paid=%d steals=%d", entry.Position, entry.CreditPaid, entry.Steals), entry)

	c.JSON(http.StatusOK, response.AdmitResponse{Success: true, Position: entry.Position, User: entry})
}

// Remove godoc
// @Summary		Remove a buyer from the waitlist
// @Tags			waitlist
// @Accept			json
// @Produce		json
// @Param			request	body		AccountRequest	true	"Buyer"
// @Param			X-API-Key	header		string	false	"Shared secret"
// @Success		200	{object}	response.EntryResponse
// @Failure		400	{object}	response.ErrorResponse
// @Failure		403	{object}	response.ErrorResponse
// @Failure		404	{object}	response.ErrorResponse
// @Router			/waitlist/remove [post]
func (h *Handler) Remove(c *gin.Context) {
	var req AccountRequest
	if !bindJSON(c, &req) || !requireAccount(c, req.DiscordID) {
		return
	}

	entry, err := h.Waitlist.Remove(req.DiscordID)
	if err != nil {
		h.fail(c, "waitlist.remove", err)
		return
	}

	log.Printf("Removed from waitlist: %s", entry.DisplayName)
	h.changed("waitlist.remove", "waitlist_removed", entry.AccountID, "explicit", entry)

	c.JSON(http.StatusOK, response.EntryResponse{Success: true, User: entry})
}

// CreditSteals godoc
// @Summary		Add steals to a buyer
// @Tags			waitlist
// @Accept			json
// @Produce		json
// @Param			request	body		StealsRequest	true	"Buyer and amount"
// @Param			X-API-Key	header		string	false	"Shared secret"
// @Success		200	{object}	response.EntryResponse
// @Failure		400	{object}	response.ErrorResponse
// @Failure		403	{object}	response.ErrorResponse
// @Failure		404	{object}	response.ErrorResponse
// @Router			/waitlist/addsteals [post]
func (h *Handler) CreditSteals(c *gin.Context) {
	var req StealsRequest
	if !bindJSON(c, &req) || !requireAccount(c, req.DiscordID) {
		return
	}
	if req.Amount == nil {
		response.BadRequest(c, "amount must be a positive number", "")
		return
	}

	entry, err := h.Waitlist.CreditSteals(req.DiscordID, *req.Amount)
	if err != nil {
		h.fail(c, "waitlist.credit", err)
		return
	}

	log.Printf("Added %d steals to %s (Total: %d)", *req.Amount, entry.DisplayName, entry.Steals)
	h.changed("waitlist.credit", "steals_credited", entry.AccountID,
		fmt.Sprintf("amount=%d steals=%d", *req.Amount, entry.Steals), entry)

	c.JSON(http.StatusOK, response.EntryResponse{Success: true, User: entry})
}

// ConsumeSteals godoc
// @Summary		Use steals
// @Description	Subtracts amount (default 1), clamped at zero. Reaching zero removes the buyer.
// @Tags			waitlist
// @Accept			json
// @Produce		json
// @Param			request	body		StealsRequest	true	"Buyer and amount"
// @Success		200	{object}	response.ConsumeResponse
// @Failure		400	{object}	response.ErrorResponse
// @Failure		404	{object}	response.ErrorResponse
// @Router			/waitlist/usesteals [post]
func (h *Handler) ConsumeSteals(c *gin.Context) {
	var req StealsRequest
	if !bindJSON(c, &req) || !requireAccount(c, req.DiscordID) {
		return
	}
	amount := 1
	if req.Amount != nil {
		amount = *req.Amount
	}

	result, err := h.Waitlist.ConsumeSteals(req.DiscordID, amount)
	if err != nil {
		h.fail(c, "waitlist.consume", err)
		return
	}

	if result.Removed {
		log.Printf("Out of steals, removed: %s", result.Entry.DisplayName)
	} else {
		log.Printf("Used steals for %s (Remaining: %d)", result.Entry.DisplayName, result.Entry.Steals)
	}
	h.changed("waitlist.consume", "steals_consumed", result.Entry.AccountID,
		fmt.Sprintf("amount=%d steals=%d removed=%t", amount, result.Entry.Steals, result.Removed),
		gin.H{"removed": result.Removed, "user": result.Entry})

	c.JSON(http.StatusOK, response.ConsumeResponse{Success: true, Removed: result.Removed, User: result.Entry})
}

// Reposition godoc
// @Summary		Set a buyer's position
// @Description	Positions above 1 are active, 0 and 1 are waiting
// @Tags			waitlist
// @Accept			json
// @Produce		json
// @Param			request	body		PositionRequest	true	"Buyer and position"
// @Param			X-API-Key	header		string	false	"Shared secret"
// @Success		200	{object}	response.RepositionResponse
// @Failure		400	{object}	response.ErrorResponse
// @Failure		403	{object}	response.ErrorResponse
// @Failure		404	{object}	response.ErrorResponse
// @Router			/waitlist/updateposition [post]
func (h *Handler) Reposition(c *gin.Context) {
	var req PositionRequest
	if !bindJSON(c, &req) || !requireAccount(c, req.DiscordID) {
		return
	}
	if req.NewPosition == nil {
		response.BadRequest(c, "newPosition must be >= 0", "")
		return
	}

	result, err := h.Waitlist.Reposition(req.DiscordID, *req.NewPosition)
	if err != nil {
		h.fail(c, "waitlist.reposition", err)
		return
	}

	log.Printf("Position updated for %s: %d -> %d", result.Entry.DisplayName, result.OldPosition, result.Entry.Position)
	h.changed("waitlist.reposition", "position_updated", result.Entry.AccountID,
		fmt.Sprintf("%d -> %d", result.OldPosition, result.Entry.Position),
		gin.H{"user": result.Entry, "oldPosition": result.OldPosition})

	c.JSON(http.StatusOK, response.RepositionResponse{Success: true, User: result.Entry, OldPosition: result.OldPosition})
}

// List godoc
// @Summary		List the waitlist
// @Description	Every entry by position, partitioned into active (position > 1) and waiting
// @Tags			waitlist
// @Produce		json
// @Success		200	{object}	response.ListResponse
// @Router			/waitlist/list [get]
func (h *Handler) List(c *gin.Context) {
	listing := h.Waitlist.List()
	c.JSON(http.StatusOK, response.ListResponse{
		All:          listing.All,
		Active:       listing.Active,
		Waiting:      listing.Waiting,
		TotalCount:   len(listing.All),
		ActiveCount:  len(listing.Active),
		WaitingCount: len(listing.Waiting),
	})
}

// Get godoc
// @Summary		Get one buyer
// @Tags			waitlist
// @Produce		json
// @Param			discordId	path		string	true	"Discord account id"
// @Success		200	{object}	response.EntryResponse
// @Failure		404	{object}	response.ErrorResponse
// @Router			/waitlist/get/{discordId} [get]
func (h *Handler) Get(c *gin.Context) {
	entry, err := h.Waitlist.Get(c.Param("discordId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.EntryResponse{Success: true, User: entry})
}
