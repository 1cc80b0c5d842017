package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"sab_waitlist/internal/client"
	"sab_waitlist/internal/models"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) help(owner bool) *discordgo.MessageSend {
	buyer := b.embed("📋 SAB Bot: Buyer Commands", colorCyan)
	buyer.Fields = []*discordgo.MessageEmbedField{
		{Name: "!joinserver", Value: "Get a clickable link to join the SAB server"},
		{Name: "!waitlist", Value: "View the current waitlist and positions"},
		{Name: "!steals [@user]", Value: "Check steals for yourself or another user"},
		{Name: "!slots", Value: "View all active players in the server"},
	}
	if !owner {
		return embeds(buyer)
	}

	ownerEmbed := b.embed("🔧 SAB Bot: Owner Commands", colorOwner)
	ownerEmbed.Fields = []*discordgo.MessageEmbedField{
		{Name: "!addwaitlist <@user> <brainrot> [steals]", Value: "Add a user to the waitlist"},
		{Name: "!addsteals <@user> <amount>", Value: "Add steals to a user"},
		{Name: "!removesteals <@user> [amount]", Value: "Remove steals from a user (default: 1)"},
		{Name: "!setposition <@user> <position>", Value: "Move a user; positions above 1 are in the server"},
		{Name: "!removewaitlist <@user>", Value: "Remove a user from the waitlist"},
		{Name: "!whitelist <username>", Value: "Add a Roblox user to the exempt list"},
		{Name: "!unwhitelist <username>", Value: "Remove a Roblox user from the exempt list"},
	}
	return embeds(buyer, ownerEmbed)
}

func (b *Bot) slots(ctx context.Context) *discordgo.MessageSend {
	roster, err := b.api.Players(ctx)
	if err != nil {
		return text(ErrorText(err, "Failed to fetch players"))
	}
	if roster.Count == 0 {
		return text("📊 No players currently in the server.")
	}

	jobID := "Not set"
	if roster.JobID != nil {
		jobID = *roster.JobID
	}
	var desc strings.Builder
	fmt.Fprintf(&desc, "**JobId:** `%s`\n\n", jobID)
	for i, p := range roster.Players {
		if i == maxListedPlayers {
			fmt.Fprintf(&desc, "*...and %d more*", len(roster.Players)-maxListedPlayers)
			break
		}
		fmt.Fprintf(&desc, "**%d. %s** (@%s)\n", i+1, p.DisplayName, p.Username)
		fmt.Fprintf(&desc, "   📱 %s | 🆔 `%d`\n\n", p.Device, p.UserID)
	}

	e := b.embed("👥 Active Players in SAB Server", colorCyan)
	e.Description = desc.String()
	e.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d player(s) online", roster.Count)}
	if len(roster.Players) > 0 && roster.Players[0].Avatar != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: roster.Players[0].Avatar}
	}
	return embeds(e)
}

func (b *Bot) joinServer(ctx context.Context) *discordgo.MessageSend {
	jobID, err := b.api.JobID(ctx)
	if err != nil {
		if client.StatusOf(err) == 404 {
			return text("❌ No active server JobId set!")
		}
		return text(ErrorText(err, "Failed to get join link"))
	}

	e := b.embed("🎮 Join SAB Server", colorBlue)
	e.Description = fmt.Sprintf("[**Click here to join**](%s)", JoinLink(b.cfg.PlaceID, jobID))
	e.Fields = []*discordgo.MessageEmbedField{
		field("JobId", "`"+jobID+"`"),
		field("Place ID", fmt.Sprintf("`%d`", b.cfg.PlaceID)),
	}
	e.Footer = &discordgo.MessageEmbedFooter{Text: "Link expires when server restarts"}
	return embeds(e)
}

func writeEntries(desc *strings.Builder, entries []models.WaitlistEntry) {
	for i, u := range entries {
		if i == maxListedEntries {
			fmt.Fprintf(desc, "*...and %d more*\n", len(entries)-maxListedEntries)
			break
		}
		fmt.Fprintf(desc, "%d. <@%s> | Pos: `%d` | Steals: `%d`\n", i+1, u.AccountID, u.Position, u.Steals)
	}
}

func (b *Bot) waitlist(ctx context.Context) *discordgo.MessageSend {
	list, err := b.api.List(ctx)
	if err != nil {
		return text(ErrorText(err, "Failed to fetch waitlist"))
	}

	e := b.embed("⏳ SAB Waitlist Status", colorGold)
	e.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Active: %d | Waiting: %d | Total: %d",
		list.ActiveCount, list.WaitingCount, list.ActiveCount+list.WaitingCount)}

	if list.ActiveCount == 0 && list.WaitingCount == 0 {
		e.Description = "📋 Waitlist is currently empty."
		return embeds(e)
	}

	var desc strings.Builder
	if list.ActiveCount > 0 {
		desc.WriteString("**🟢 In Server:**\n")
		writeEntries(&desc, list.Active)
	}
	if list.WaitingCount > 0 {
		desc.WriteString("\n**🔴 Waiting:**\n")
		writeEntries(&desc, list.Waiting)
	}
	e.Description = desc.String()
	return embeds(e)
}

func stealsColor(steals int) int {
	switch {
	case steals > 3:
		return colorGreen
	case steals > 0:
		return colorOrange
	default:
		return colorRed
	}
}

func statusLabel(u models.WaitlistEntry) string {
	if u.Active() {
		return "🟢 In Server"
	}
	return "🔴 Waiting"
}

func (b *Bot) steals(ctx context.Context, m Message, args []string) *discordgo.MessageSend {
	userID := m.AuthorID
	if len(args) > 1 {
		userID = MentionID(args[1])
	}

	u, err := b.api.Get(ctx, userID)
	if err != nil {
		if client.StatusOf(err) == 404 {
			return text(fmt.Sprintf("❌ <@%s> is not in the waitlist!", userID))
		}
		return text(ErrorText(err, "Failed to fetch steals"))
	}

	e := b.embed("📊 Steals Info", stealsColor(u.Steals))
	e.Fields = []*discordgo.MessageEmbedField{
		field("User", "<@"+u.AccountID+">"),
		field("Steals", fmt.Sprintf("**%d**", u.Steals)),
		field("Position", fmt.Sprintf("`%d`", u.Position)),
		field("Brainrot Paid", strconv.Itoa(u.CreditPaid)),
		field("Status", statusLabel(u)),
	}
	switch {
	case u.Steals == 0:
		e.Description = "⚠️ **Out of steals!** Will be removed on next use."
	case u.Steals <= 3:
		e.Description = fmt.Sprintf("⚠️ **Low steals!** Only %d remaining.", u.Steals)
	}
	return embeds(e)
}

func (b *Bot) addWaitlist(ctx context.Context, m Message, args []string) *discordgo.MessageSend {
	if len(args) < 2 {
		return text("**Usage:** `!addwaitlist <@user> <brainrot_paid> [steals]`")
	}
	paid, err := strconv.Atoi(argAt(args, 2))
	if err != nil || paid < 0 {
		return text("❌ Brainrot paid must be a valid number!")
	}
	initialSteals, err := strconv.Atoi(argAt(args, 3))
	if err != nil {
		initialSteals = 0
	}

	userID := MentionID(args[1])
	name, err := b.guild.MemberName(m.GuildID, userID)
	if err != nil {
		return text("❌ Could not find that member in this server.")
	}

	u, err := b.api.Admit(ctx, client.Admission{
		AccountID:   userID,
		DisplayName: name,
		CreditPaid:  paid,
		Steals:      initialSteals,
	})
	if err != nil {
		if client.StatusOf(err) == 409 {
			return text("❌ User is already in the waitlist! Use `!addsteals` instead.")
		}
		return text(ErrorText(err, "Failed to add to waitlist"))
	}
	b.grantRole(m.GuildID, userID)

	e := b.embed("✅ Added to Waitlist", colorGreen)
	e.Fields = []*discordgo.MessageEmbedField{
		field("User", "<@"+userID+">"),
		field("Position", fmt.Sprintf("`%d`", u.Position)),
		field("Brainrot Paid", strconv.Itoa(u.CreditPaid)),
		field("Steals", strconv.Itoa(u.Steals)),
	}
	return embeds(e)
}

func (b *Bot) addSteals(ctx context.Context, args []string) *discordgo.MessageSend {
	amount, err := strconv.Atoi(argAt(args, 2))
	if len(args) < 2 || err != nil || amount <= 0 {
		return text("**Usage:** `!addsteals <@user> <amount>`")
	}

	userID := MentionID(args[1])
	u, err := b.api.CreditSteals(ctx, userID, amount)
	if err != nil {
		if client.StatusOf(err) == 404 {
			return text("❌ User not found in waitlist! Use `!addwaitlist` first.")
		}
		return text(ErrorText(err, "Failed to add steals"))
	}

	e := b.embed("✅ Steals Added", colorGreen)
	e.Fields = []*discordgo.MessageEmbedField{
		field("User", "<@"+userID+">"),
		field("Added", fmt.Sprintf("+%d", amount)),
		field("Total Steals", fmt.Sprintf("**%d**", u.Steals)),
	}
	return embeds(e)
}

func (b *Bot) removeSteals(ctx context.Context, m Message, args []string) *discordgo.MessageSend {
	if len(args) < 2 {
		return text("**Usage:** `!removesteals <@user> [amount]`\n*Default amount: 1*")
	}
	amount, err := strconv.Atoi(argAt(args, 2))
	if err != nil || amount == 0 {
		amount = 1
	}
	if amount < 0 {
		return text("❌ Amount must be a positive number!")
	}

	userID := MentionID(args[1])
	res, err := b.api.ConsumeSteals(ctx, userID, amount)
	if err != nil {
		if client.StatusOf(err) == 404 {
			return text("❌ User not found in waitlist!")
		}
		return text(ErrorText(err, "Failed to remove steals"))
	}

	if res.Removed {
		roleLabel := "Not configured"
		if b.cfg.BuyerRoleID != "" {
			roleLabel = "❌ Removed"
			if !b.revokeRole(m.GuildID, userID) {
				roleLabel = "⚠️ Could not remove"
			}
		}
		if err := b.guild.DirectMessage(userID, msgRemovedDM); err != nil {
			log.Printf("Failed to DM %s: %v", userID, err)
		}

		e := b.embed("⚠️ User Removed from Waitlist", colorRed)
		e.Description = fmt.Sprintf("<@%s> ran out of steals and was removed.", userID)
		e.Fields = []*discordgo.MessageEmbedField{
			field("Steals", "`0`"),
			field("Buyer Role", roleLabel),
		}
		return embeds(e)
	}

	e := b.embed("📉 Steals Removed", colorOrange)
	e.Fields = []*discordgo.MessageEmbedField{
		field("User", "<@"+userID+">"),
		field("Removed", fmt.Sprintf("-%d", amount)),
		field("Remaining", fmt.Sprintf("**%d**", res.Entry.Steals)),
	}
	if res.Entry.Steals <= 3 {
		e.Description = fmt.Sprintf("⚠️ Low steals warning! Only %d remaining.", res.Entry.Steals)
	}
	return embeds(e)
}

func (b *Bot) setPosition(ctx context.Context, args []string) *discordgo.MessageSend {
	position, err := strconv.Atoi(argAt(args, 2))
	if len(args) < 3 || err != nil {
		return text("**Usage:** `!setposition <@user> <position>`")
	}

	userID := MentionID(args[1])
	u, old, err := b.api.Reposition(ctx, userID, position)
	if err != nil {
		if client.StatusOf(err) == 404 {
			return text("❌ User not found in waitlist!")
		}
		return text(ErrorText(err, "Failed to update position"))
	}

	e := b.embed("📊 Position Updated", colorBlue)
	e.Fields = []*discordgo.MessageEmbedField{
		field("User", "<@"+userID+">"),
		field("Position", fmt.Sprintf("`%d` → `%d`", old, u.Position)),
		field("Status", statusLabel(u)),
	}
	return embeds(e)
}

func (b *Bot) removeWaitlist(ctx context.Context, m Message, args []string) *discordgo.MessageSend {
	if len(args) < 2 {
		return text("**Usage:** `!removewaitlist <@user>`")
	}

	userID := MentionID(args[1])
	u, err := b.api.Remove(ctx, userID)
	if err != nil {
		if client.StatusOf(err) == 404 {
			return text("❌ User not found in waitlist!")
		}
		return text(ErrorText(err, "Failed to remove from waitlist"))
	}
	b.revokeRole(m.GuildID, userID)

	e := b.embed("🗑️ Removed from Waitlist", colorOrange)
	e.Fields = []*discordgo.MessageEmbedField{
		field("User", "<@"+userID+">"),
		field("Last Position", fmt.Sprintf("`%d`", u.Position)),
		field("Steals Left", strconv.Itoa(u.Steals)),
	}
	return embeds(e)
}

func (b *Bot) whitelist(ctx context.Context, args []string) *discordgo.MessageSend {
	if len(args) < 2 {
		return text("**Usage:** `!whitelist <roblox_username>`")
	}
	name, err := b.api.AddExempt(ctx, args[1])
	if err != nil {
		return text(ErrorText(err, "Failed to whitelist user"))
	}

	e := b.embed("✅ User Whitelisted", colorGreen)
	e.Fields = []*discordgo.MessageEmbedField{{Name: "Roblox Username", Value: "`" + name + "`"}}
	e.Footer = &discordgo.MessageEmbedFooter{Text: "This user will not be kicked"}
	return embeds(e)
}

func (b *Bot) unwhitelist(ctx context.Context, args []string) *discordgo.MessageSend {
	if len(args) < 2 {
		return text("**Usage:** `!unwhitelist <roblox_username>`")
	}
	name, existed, err := b.api.RemoveExempt(ctx, args[1])
	if err != nil {
		return text(ErrorText(err, "Failed to remove from whitelist"))
	}

	footer := "User was not in whitelist"
	if existed {
		footer = "User was in whitelist"
	}
	e := b.embed("✅ User Removed from Whitelist", colorOrange)
	e.Fields = []*discordgo.MessageEmbedField{{Name: "Roblox Username", Value: "`" + name + "`"}}
	e.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	return embeds(e)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
