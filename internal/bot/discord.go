package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sab_waitlist/internal/config"

	"github.com/bwmarrin/discordgo"
)

// Session adapts a discordgo session to Guild.
type Session struct {
	s *discordgo.Session
}

func NewSession(s *discordgo.Session) *Session {
	return &Session{s: s}
}

func (d *Session) MemberName(guildID, userID string) (string, error) {
	member, err := d.s.GuildMember(guildID, userID)
	if err != nil {
		return "", fmt.Errorf("fetch member %s: %w", userID, err)
	}
	if member.User == nil {
		return "", fmt.Errorf("member %s has no user", userID)
	}
	return member.User.String(), nil
}

func (d *Session) AddRole(guildID, userID, roleID string) error {
	return d.s.GuildMemberRoleAdd(guildID, userID, roleID)
}

func (d *Session) RemoveRole(guildID, userID, roleID string) error {
	return d.s.GuildMemberRoleRemove(guildID, userID, roleID)
}

func (d *Session) DirectMessage(userID, content string) error {
	ch, err := d.s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open DM with %s: %w", userID, err)
	}
	_, err = d.s.ChannelMessageSend(ch.ID, content)
	return err
}

func fromEvent(m *discordgo.MessageCreate) Message {
	msg := Message{
		GuildID: m.GuildID,
		Content: strings.TrimSpace(m.Content),
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.FromBot = m.Author.Bot
	}
	if m.Member != nil {
		msg.AuthorRoles = m.Member.Roles
	}
	return msg
}

// Run connects to Discord and serves commands until ctx is cancelled.
func Run(ctx context.Context, cfg config.Bot, api Waitlist) error {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMembers

	b := New(cfg, api, NewSession(s))

	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as %s", r.User.String())
		log.Printf("Waitlist URL: %s", cfg.WaitlistURL)
		if err := s.UpdateWatchStatus(0, "SAB Waitlist System"); err != nil {
			log.Println("set activity:", err)
		}
	})
	s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		reply := b.Handle(ctx, fromEvent(m))
		if reply == nil {
			return
		}
		reply.Reference = m.Reference()
		if _, err := s.ChannelMessageSendComplex(m.ChannelID, reply); err != nil {
			log.Printf("reply in %s failed: %v", m.ChannelID, err)
		}
	})

	if err := s.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer s.Close()

	<-ctx.Done()
	log.Println("Shutting down bot...")
	return nil
}
