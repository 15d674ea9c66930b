package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-careerscout-automation/internal/discovery"
	"go-careerscout-automation/internal/jobs"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

func (b *Bot) escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// SendOutcome reports one company's discovery result.
func (b *Bot) SendOutcome(o discovery.Outcome) error {
	var msgText string
	if o.FoundURL != "" {
		msgText = fmt.Sprintf("🏢 *%s*\n", b.escapeMarkdown(o.Company.Name))
		msgText += fmt.Sprintf("🔗 [Career page](%s)\n", o.FoundURL)
		msgText += fmt.Sprintf("🧭 Strategy: %s\n", b.escapeMarkdown(o.Strategy))
	} else {
		msgText = fmt.Sprintf("🏢 *%s*\n❌ No career page found\n", b.escapeMarkdown(o.Company.Name))
	}

	msg := tgbotapi.NewMessage(b.chatID, msgText)
	msg.ParseMode = "MarkdownV2"

	_, err := b.api.Send(msg)
	return err
}

// SendJob reports one matched job listing.
func (b *Bot) SendJob(job jobs.Job) error {
	msgText := fmt.Sprintf("🏢 *%s*\n", b.escapeMarkdown(job.Company))
	msgText += fmt.Sprintf("💼 %s\n", b.escapeMarkdown(job.Title))
	if job.URL != "" {
		msgText += fmt.Sprintf("🔗 [View Job](%s)\n", job.URL)
	}

	loc := job.Location
	if loc == "" {
		loc = "N/A"
	}
	msgText += fmt.Sprintf("📍 %s\n", b.escapeMarkdown(loc))

	if job.PostedDate != "" {
		msgText += fmt.Sprintf("📅 %s\n", b.escapeMarkdown(job.PostedDate))
	}

	msg := tgbotapi.NewMessage(b.chatID, msgText)
	msg.ParseMode = "MarkdownV2"

	_, err := b.api.Send(msg)
	return err
}

// SendStatus sends a plain run summary.
func (b *Bot) SendStatus(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	_, err := b.api.Send(msg)
	return err
}
