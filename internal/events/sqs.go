package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// Compile-time interface check.
var _ Publisher = (*SqsPublisher)(nil)

// SqsPublisher sends portfolio events to an SQS queue. Send failures are
// logged and dropped; event delivery never fails the mutation that
// produced it.
type SqsPublisher struct {
	sqsService *sqs.SQS
	queueUrl   string
	logger     *slog.Logger
}

func NewSqsPublisher(region, queueUrl string, logger *slog.Logger) (*SqsPublisher, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		Config: aws.Config{
			Region:                        aws.String(region),
			CredentialsChainVerboseErrors: aws.Bool(true),
		},
	})
	if err != nil {
		return nil, err
	}
	_, err = sess.Config.Credentials.Get()
	if err != nil {
		return nil, err
	}

	return &SqsPublisher{
		sqsService: sqs.New(sess),
		queueUrl:   queueUrl,
		logger:     logger,
	}, nil
}

func (p *SqsPublisher) PortfolioUpdated(_ context.Context, event PortfolioEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal portfolio event", "error", err.Error())
		return
	}

	_, err = p.sqsService.SendMessage(&sqs.SendMessageInput{
		QueueUrl:    &p.queueUrl,
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		p.logger.Error("failed to publish portfolio event",
			"accountId", event.AccountID,
			"error", err.Error(),
		)
	}
}
