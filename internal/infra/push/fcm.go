package push

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/lifecycle"
)

func NewMessagingClient(ctx context.Context, cfg config.PushConfig) (*messaging.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to init firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to init messaging client")
	}
	return client, nil
}

// FCM sends booking pushes through Firebase Cloud Messaging. SendEach
// submits the whole batch and reports per-token outcomes; the call itself
// only fails as a whole on transport-level errors.
type FCM struct {
	client *messaging.Client
}

func NewFCM(client *messaging.Client) *FCM {
	return &FCM{client: client}
}

func (p *FCM) SendEach(ctx context.Context, msgs []lifecycle.Message) ([]lifecycle.SendResult, error) {
	badge := 1

	out := make([]*messaging.Message, len(msgs))
	for i, m := range msgs {
		out[i] = &messaging.Message{
			Token: m.Token,
			Notification: &messaging.Notification{
				Title: m.Title,
				Body:  m.Body,
			},
			Data: m.Data,
			Android: &messaging.AndroidConfig{
				Notification: &messaging.AndroidNotification{
					Icon:      m.Icon,
					Color:     m.Color,
					ChannelID: m.ChannelID,
				},
			},
			APNS: &messaging.APNSConfig{
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Sound: "default",
						Badge: &badge,
					},
				},
			},
		}
	}

	br, err := p.client.SendEach(ctx, out)
	if err != nil {
		return nil, errs.Wrap(err, "fcm batch send failed")
	}

	results := make([]lifecycle.SendResult, len(br.Responses))
	for i, r := range br.Responses {
		results[i] = lifecycle.SendResult{
			Token: msgs[i].Token,
			Err:   r.Error,
		}
	}
	return results, nil
}
