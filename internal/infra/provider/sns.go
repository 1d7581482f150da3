// Package provider contains the concrete delivery providers behind the
// MessageProvider capability interface.
package provider

import (
	"context"

	"rentora/config"
	domainerrors "rentora/internal/domain/errors"
	"rentora/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
)

// SNSProviderName identifies the AWS SNS SMS provider in configuration and
// on persisted notifications.
const SNSProviderName = "sns"

// snsProvider sends SMS through AWS SNS. It does not support WhatsApp.
type snsProvider struct {
	client   *sns.Client
	senderID string
}

// NewSNSProvider creates the AWS SNS SMS provider. A nil configuration yields
// an unconfigured provider that the selector will skip.
func NewSNSProvider(ctx context.Context, cfg *config.SNSConfig) (service.MessageProvider, error) {
	if cfg == nil || cfg.Region == "" {
		return &snsProvider{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	return &snsProvider{
		client:   sns.NewFromConfig(awsCfg),
		senderID: cfg.SenderID,
	}, nil
}

// ProviderName returns the stable provider identifier.
func (p *snsProvider) ProviderName() string {
	return SNSProviderName
}

// IsConfigured reports whether the SNS client was built.
func (p *snsProvider) IsConfigured() bool {
	return p.client != nil
}

// SendSMS publishes a transactional SMS directly to the phone number.
func (p *snsProvider) SendSMS(ctx context.Context, phone, body string) (string, error) {
	if !p.IsConfigured() {
		return "", domainerrors.ErrNoProviderConfigured.WrapMessage("sns provider not configured")
	}

	attributes := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String("Transactional"),
		},
	}
	if p.senderID != "" {
		attributes["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(p.senderID),
		}
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(phone),
		Message:           aws.String(body),
		MessageAttributes: attributes,
	})
	if err != nil {
		return "", errors.Wrap(err, "sns publish failed")
	}

	return aws.ToString(out.MessageId), nil
}

// SendWhatsApp is not supported by SNS.
func (p *snsProvider) SendWhatsApp(_ context.Context, _, _ string) (string, error) {
	return "", domainerrors.ErrChannelNotSupported.WrapMessage("sns does not deliver WhatsApp messages")
}
