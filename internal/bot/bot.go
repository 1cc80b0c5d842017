// Package bot is the Discord front end of the waitlist. It parses chat
// commands, calls the waitlist service and renders the answers as embeds.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"sab_waitlist/internal/client"
	"sab_waitlist/internal/config"
	"sab_waitlist/internal/models"
	"sab_waitlist/internal/response"

	"github.com/bwmarrin/discordgo"
)

// Prefix starts every command.
const Prefix = "!"

const (
	maxListedEntries = 15
	maxListedPlayers = 10

	colorCyan   = 0x00ffff
	colorBlue   = 0x00bfff
	colorGold   = 0xffd700
	colorGreen  = 0x00ff00
	colorOrange = 0xff9900
	colorRed    = 0xff0000
	colorOwner  = 0xff6b6b

	msgNeedBuyer = "❌ You need the Buyer role to use this command!"
	msgOwnerOnly = "❌ This command is owner-only!"
	msgRemovedDM = "⚠️ You have been removed from the SAB waitlist: you ran out of steals. Contact an admin to rejoin."
)

// Waitlist is the service boundary the bot drives. *client.Client implements it.
type Waitlist interface {
	Admit(ctx context.Context, a client.Admission) (models.WaitlistEntry, error)
	CreditSteals(ctx context.Context, accountID string, amount int) (models.WaitlistEntry, error)
	ConsumeSteals(ctx context.Context, accountID string, amount int) (client.ConsumeResult, error)
	Reposition(ctx context.Context, accountID string, position int) (models.WaitlistEntry, int, error)
	Remove(ctx context.Context, accountID string) (models.WaitlistEntry, error)
	Get(ctx context.Context, accountID string) (models.WaitlistEntry, error)
	List(ctx context.Context) (response.ListResponse, error)
	AddExempt(ctx context.Context, name string) (string, error)
	RemoveExempt(ctx context.Context, name string) (string, bool, error)
	JobID(ctx context.Context) (string, error)
	Players(ctx context.Context) (client.Players, error)
}

// Guild is the slice of the chat platform the bot needs besides replying.
type Guild interface {
	MemberName(guildID, userID string) (string, error)
	AddRole(guildID, userID, roleID string) error
	RemoveRole(guildID, userID, roleID string) error
	DirectMessage(userID, content string) error
}

// Message is an incoming chat message.
type Message struct {
	GuildID     string
	AuthorID    string
	AuthorRoles []string
	FromBot     bool
	Content     string
}

// Bot dispatches commands. It keeps no state between messages.
type Bot struct {
	api      Waitlist
	guild    Guild
	cfg      config.Bot
	ownerIDs map[string]bool
	now      func() time.Time
}

func New(cfg config.Bot, api Waitlist, guild Guild) *Bot {
	owners := make(map[string]bool, len(cfg.OwnerIDs))
	for _, id := range cfg.OwnerIDs {
		if id = strings.TrimSpace(id); id != "" {
			owners[id] = true
		}
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = client.DefaultTimeout
	}
	return &Bot{api: api, guild: guild, cfg: cfg, ownerIDs: owners, now: time.Now}
}

func (b *Bot) isOwner(m Message) bool {
	if b.ownerIDs[m.AuthorID] {
		return true
	}
	return b.cfg.OwnerRoleID != "" && hasRole(m.AuthorRoles, b.cfg.OwnerRoleID)
}

func (b *Bot) isBuyer(m Message) bool {
	return b.cfg.BuyerRoleID != "" && hasRole(m.AuthorRoles, b.cfg.BuyerRoleID)
}

func hasRole(roles []string, roleID string) bool {
	for _, r := range roles {
		if r == roleID {
			return true
		}
	}
	return false
}

// Handle runs one command and returns the reply, or nil when the message is
// not a command for this bot.
func (b *Bot) Handle(ctx context.Context, m Message) *discordgo.MessageSend {
	if m.FromBot || m.GuildID == "" || !strings.HasPrefix(m.Content, Prefix) {
		return nil
	}
	args := strings.Fields(m.Content)
	if len(args) == 0 {
		return nil
	}
	command := strings.ToLower(args[0])
	owner := b.isOwner(m)

	switch command {
	case "!help":
		return b.help(owner)
	case "!slots", "!joinserver", "!waitlist", "!steals":
		if !owner && !b.isBuyer(m) {
			return text(msgNeedBuyer)
		}
	case "!addwaitlist", "!addsteals", "!removesteals", "!setposition", "!removewaitlist", "!whitelist", "!unwhitelist":
		if !owner {
			return text(msgOwnerOnly)
		}
	default:
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, b.cfg.RequestTimeout)
	defer cancel()

	switch command {
	case "!slots":
		return b.slots(ctx)
	case "!joinserver":
		return b.joinServer(ctx)
	case "!waitlist":
		return b.waitlist(ctx)
	case "!steals":
		return b.steals(ctx, m, args)
	case "!addwaitlist":
		return b.addWaitlist(ctx, m, args)
	case "!addsteals":
		return b.addSteals(ctx, args)
	case "!removesteals":
		return b.removeSteals(ctx, m, args)
	case "!setposition":
		return b.setPosition(ctx, args)
	case "!removewaitlist":
		return b.removeWaitlist(ctx, m, args)
	case "!whitelist":
		return b.whitelist(ctx, args)
	default:
		return b.unwhitelist(ctx, args)
	}
}

// MentionID strips mention markup, leaving the account id.
func MentionID(arg string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '@', '!', '>':
			return -1
		}
		return r
	}, arg)
}

// ErrorText renders a failed service call for chat.
func ErrorText(err error, fallback string) string {
	status := client.StatusOf(err)
	if status == 0 {
		return "❌ Cannot reach server. Is it online?"
	}
	msg := fallback
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	switch status {
	case 404:
		return "❌ Not found: " + msg
	case 403:
		return "❌ Access denied: " + msg
	case 400:
		return "❌ Bad request: " + msg
	case 409:
		return "❌ " + msg
	default:
		return fmt.Sprintf("❌ Error (%d): %s", status, msg)
	}
}

// JoinLink is the deep link that drops a player into the given server.
func JoinLink(placeID int64, jobID string) string {
	return fmt.Sprintf("https://www.roblox.com/games/start?placeId=%d&launchData=%s", placeID, url.QueryEscape(jobID))
}

func (b *Bot) grantRole(guildID, userID string) {
	if b.cfg.BuyerRoleID == "" {
		return
	}
	if err := b.guild.AddRole(guildID, userID, b.cfg.BuyerRoleID); err != nil {
		log.Printf("Failed to add buyer role to %s: %v", userID, err)
	}
}

func (b *Bot) revokeRole(guildID, userID string) bool {
	if b.cfg.BuyerRoleID == "" {
		return false
	}
	if err := b.guild.RemoveRole(guildID, userID, b.cfg.BuyerRoleID); err != nil {
		log.Printf("Failed to remove buyer role from %s: %v", userID, err)
		return false
	}
	return true
}

func (b *Bot) embed(title string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     title,
		Color:     color,
		Timestamp: b.now().Format(time.RFC3339),
	}
}

func field(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}

func text(content string) *discordgo.MessageSend {
	return &discordgo.MessageSend{Content: content}
}

func embeds(e ...*discordgo.MessageEmbed) *discordgo.MessageSend {
	return &discordgo.MessageSend{Embeds: e}
}
