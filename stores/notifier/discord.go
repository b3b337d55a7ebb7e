package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
)

type DiscordBotConfig struct {
	BotKey    string
	ChannelId string
}

type discordNotifier struct {
	config  DiscordBotConfig
	discord *discordgo.Session
}

// NewDiscordBot posts market events as embeds into a discord channel.
func NewDiscordBot(config DiscordBotConfig) (marketplace.EventPublisher, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}

	return &discordNotifier{config, discord}, nil
}

func (h *discordNotifier) PublishTokenListed(c ctx.Ctx, evt *marketplace.TokenListedEvent) error {
	title := evt.Title
	if len(title) == 0 {
		title = fmt.Sprintf("Token #%d", evt.TokenId)
	}

	msg := &discordgo.MessageEmbed{
		Title:       "New listing!",
		Description: title,
		Image: &discordgo.MessageEmbedImage{
			URL: evt.ImageURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Token", Value: evt.TokenId.String()},
			{Name: "Seller", Value: string(evt.Seller)},
			{Name: "Price", Value: string(evt.Price)},
		},
	}

	if _, err := h.discord.ChannelMessageSendEmbed(h.config.ChannelId, msg); err != nil {
		c.WithField("err", err).Warn("send listing embed failed")
		return err
	}
	return nil
}

func (h *discordNotifier) PublishTokenPurchased(c ctx.Ctx, evt *marketplace.TokenPurchasedEvent) error {
	msg := &discordgo.MessageEmbed{
		Title:       "Item sold!",
		Description: fmt.Sprintf("Token #%d found a new owner", evt.TokenId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Seller", Value: string(evt.Seller)},
			{Name: "Buyer", Value: string(evt.Buyer)},
			{Name: "Price", Value: string(evt.Price)},
		},
	}

	if _, err := h.discord.ChannelMessageSendEmbed(h.config.ChannelId, msg); err != nil {
		c.WithField("err", err).Warn("send purchase embed failed")
		return err
	}
	return nil
}
