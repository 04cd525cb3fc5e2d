package discord

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
)

// webhookExecutor is the part of *discordgo.Session the announcer needs
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts scoring results to a Discord channel webhook
type Announcer struct {
	session   webhookExecutor
	webhookID string
	token     string
	printer   *message.Printer
}

// NewWebhookAnnouncer creates an announcer for a webhook URL of the form
// https://discord.com/api/webhooks/{id}/{token}
func NewWebhookAnnouncer(webhookURL string) (*Announcer, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return newAnnouncer(session, id, token), nil
}

func newAnnouncer(session webhookExecutor, webhookID, token string) *Announcer {
	return &Announcer{
		session:   session,
		webhookID: webhookID,
		token:     token,
		printer:   message.NewPrinter(language.English),
	}
}

// ParseWebhookURL extracts the webhook id and token
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid webhook url: %w", err)
	}
	host := strings.TrimPrefix(u.Host, "www.")
	if host != webhookHost && !strings.HasSuffix(host, "."+webhookHost) && host != "discordapp.com" {
		return "", "", fmt.Errorf("invalid webhook url: unexpected host %q", u.Host)
	}
	if !strings.HasPrefix(u.Path, webhookPathPrefix) {
		return "", "", fmt.Errorf("invalid webhook url: unexpected path")
	}
	parts := strings.Split(strings.Trim(strings.TrimPrefix(u.Path, webhookPathPrefix), "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid webhook url: expected /api/webhooks/{id}/{token}")
	}
	return parts[0], parts[1], nil
}

// AnnounceScoring posts the winner and top earners of a scoring pass
func (a *Announcer) AnnounceScoring(ctx context.Context, day time.Time, summary *domain.ScoringSummary) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{a.buildEmbed(day, summary)},
	}
	if _, err := a.session.WebhookExecute(a.webhookID, a.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgAnnounced, "day", day.Format(time.DateOnly), "scored", summary.Scored)
	return nil
}

func (a *Announcer) buildEmbed(day time.Time, summary *domain.ScoringSummary) *discordgo.MessageEmbed {
	winner := summary.Winner
	if winner == "" {
		winner = "nobody"
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Winner", Value: fmt.Sprintf("**%s**", winner), Inline: true},
		{Name: "Predictions scored", Value: a.printer.Sprintf("%d", summary.Scored), Inline: true},
	}
	if summary.Quarantined > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Quarantined", Value: a.printer.Sprintf("%d", summary.Quarantined), Inline: true,
		})
	}
	if top := a.topEarners(summary.Results); top != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Top earners", Value: top})
	}

	return &discordgo.MessageEmbed{
		Title:     "🏆 Daily results for " + day.Format(dayLayout),
		Color:     EmbedColorResults,
		Fields:    fields,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func (a *Announcer) topEarners(results []domain.ScoredResult) string {
	if len(results) == 0 {
		return ""
	}
	ranked := make([]domain.ScoredResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Points > ranked[j].Points })
	if len(ranked) > TopEarnersLimit {
		ranked = ranked[:TopEarnersLimit]
	}

	var sb strings.Builder
	for i, r := range ranked {
		mark := "❌"
		if r.WinnerCorrect {
			mark = "✅"
		}
		sb.WriteString(a.printer.Sprintf("%d. %s %s %d pts, %d coins\n", i+1, mark, r.Username, r.Points, r.Coins))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
