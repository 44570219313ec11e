package speech

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/KasumiMercury/primind-voice-assistant/internal/config"
)

// smsTimeout bounds a single send. The Twilio client takes no context, so this
// is the only limit on how long a fire callback can wait on the API.
const smsTimeout = 10 * time.Second

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSNotifier sends each spoken text as a Twilio SMS.
type SMSNotifier struct {
	api  messageCreator
	from string
	to   string
}

func NewSMSNotifier(cfg *config.TwilioConfig) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	client.SetTimeout(smsTimeout)

	return &SMSNotifier{
		api:  client.Api,
		from: cfg.FromNumber,
		to:   cfg.ToNumber,
	}
}

func (n *SMSNotifier) Name() string {
	return "twilio_sms"
}

func (n *SMSNotifier) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send sms: %w", err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(text)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		slog.WarnContext(ctx, "sms send failed",
			slog.String("to", n.to),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("send sms: %w", err)
	}

	if resp.Sid != nil {
		slog.DebugContext(ctx, "sms sent",
			slog.String("sid", *resp.Sid),
		)
	}

	return nil
}
