package sms

import (
	"context"
	"fmt"
	"strings"

	"rentsight-backend/pkg/logger"
	"rentsight-backend/pkg/metrics"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// TextSender delivers a verification code to a phone number in the
// requested language.
type TextSender interface {
	SendText(ctx context.Context, language, phoneNumber, code string) error
}

var messageTemplates = map[string]string{
	"en": "RentSight: Your verification code is: %s.",
	"es": "RentSight: Tu código de verificación es: %s.",
	"fr": "RentSight: Votre code de vérification est: %s.",
	"de": "RentSight: Ihr Bestätigungscode lautet: %s.",
	"it": "RentSight: Il tuo codice di verifica è: %s.",
	"pt": "RentSight: Seu código de verificação é: %s.",
}

type snsSender struct {
	client *sns.Client
}

// NewSNSSender builds a TextSender backed by AWS SNS.
func NewSNSSender(ctx context.Context, region string) (TextSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return &snsSender{client: sns.NewFromConfig(awsCfg)}, nil
}

func (s *snsSender) SendText(ctx context.Context, language, phoneNumber, code string) error {
	template, ok := messageTemplates[strings.ToLower(language)]
	if !ok {
		template = messageTemplates["en"]
	}
	message := fmt.Sprintf(template, code)

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: &phoneNumber,
		Message:     &message,
	})
	if err != nil {
		metrics.SMSSendsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.SMSSendsTotal.WithLabelValues("ok").Inc()
	logger.GlobalLogger.Debugf("SMS published via SNS (%s)", strings.ToLower(language))
	return nil
}
