// internal/notify/notify.go
// Package notify delivers the single notification that accompanies each
// terminal submission transition: a confirmation to the applicant and an
// event for downstream systems.
package notify

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	commonerrors "pageant-wizard/internal/common/errors"
	"pageant-wizard/internal/common/logger"
	"pageant-wizard/internal/models"
)

// Service interfaces for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Config holds the delivery settings.
type Config struct {
	AWSRegion   string
	SenderEmail string
	SNSTopicARN string
}

// Notifier sends the applicant a confirmation email over SES and, when a
// topic is configured, publishes a submission event to SNS.
type Notifier struct {
	config    Config
	sesClient SESService
	snsClient SNSService
	logger    logger.Logger
}

func New(ctx context.Context, cfg Config, log logger.Logger) (*Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Notifier{
		config:    cfg,
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
	}, nil
}

// NewWithClients wires explicit service clients; tests use this with mocks.
func NewWithClients(cfg Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Notifier {
	return &Notifier{
		config:    cfg,
		sesClient: sesClient,
		snsClient: snsClient,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

func (n *Notifier) SubmissionSucceeded(ctx context.Context, record *models.ApplicationRecord) error {
	subject := "Your pageant application has been received"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour application to represent %s has been submitted successfully. "+
			"Our team will review it and contact you at %s.\n",
		record.FullName, record.CountryToRepresent, record.Email)

	if err := n.sendEmail(ctx, record.Email, subject, body); err != nil {
		return err
	}
	return n.publishEvent(ctx, record, "submission.succeeded")
}

func (n *Notifier) SubmissionFailed(ctx context.Context, record *models.ApplicationRecord, cause error) error {
	subject := "We could not process your pageant application"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour application could not be submitted. Your answers have been kept; "+
			"please return to the review step and try again.\n",
		record.FullName)

	if err := n.sendEmail(ctx, record.Email, subject, body); err != nil {
		return err
	}
	return n.publishEvent(ctx, record, "submission.failed")
}

func (n *Notifier) sendEmail(ctx context.Context, to, subject, body string) error {
	if n.sesClient == nil || to == "" {
		return nil
	}
	input := &ses.SendEmailInput{
		Source:      &n.config.SenderEmail,
		Destination: destination(to),
		Message:     message(subject, body),
	}
	if _, err := n.sesClient.SendEmail(ctx, input); err != nil {
		n.logger.Error("email delivery failed", map[string]interface{}{
			"error": err.Error(),
		})
		return commonerrors.NewNotificationFailedError("email", err)
	}
	return nil
}

func (n *Notifier) publishEvent(ctx context.Context, record *models.ApplicationRecord, event string) error {
	if n.snsClient == nil || n.config.SNSTopicARN == "" {
		return nil
	}
	msg := fmt.Sprintf(`{"event":%q,"applicant":%q,"country":%q}`,
		event, record.FullName, record.CountryToRepresent)
	input := &sns.PublishInput{
		TopicArn: &n.config.SNSTopicARN,
		Message:  &msg,
	}
	if _, err := n.snsClient.Publish(ctx, input); err != nil {
		n.logger.Error("event publish failed", map[string]interface{}{
			"error": err.Error(),
		})
		return commonerrors.NewNotificationFailedError("sns", err)
	}
	return nil
}
