package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"vocabtrainer/internal/models"
)

// ReminderService sends "words due for review" emails via Amazon SES
type ReminderService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewReminderService creates a new reminder service. An empty fromEmail
// yields a disabled service that logs instead of sending.
func NewReminderService(awsRegion, fromEmail, fromName, appBaseURL string) (*ReminderService, error) {
	if fromEmail == "" {
		log.Println("Reminder mailer disabled: SES_FROM_EMAIL not configured")
		return &ReminderService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Reminder mailer enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &ReminderService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the reminder service sends real email
func (s *ReminderService) IsEnabled() bool {
	return s.enabled
}

// SendDueReminder emails a user that dueCount words are waiting for review
func (s *ReminderService) SendDueReminder(ctx context.Context, user *models.User, dueCount int) error {
	if !s.enabled {
		log.Printf("Skipping reminder (mailer disabled): %d due words for %s", dueCount, user.Email)
		return nil
	}

	subject := fmt.Sprintf("%d words are ready for review", dueCount)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #2e8b57; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.count { font-size: 32px; font-weight: bold; text-align: center; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Time to review</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>You have words waiting for review:</p>
			<p class="count">%d</p>
			<p>Reviewing them today keeps your intervals on schedule. A short session is enough.</p>
			<p>%s</p>
		</div>
		<div class="footer">
			<p>This is an automated email from VocabTrainer. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, user.Name, dueCount, s.appBaseURL)

	textBody := fmt.Sprintf(`Hi %s,

You have %d words waiting for review.

Reviewing them today keeps your intervals on schedule. A short session is enough.

%s

---
This is an automated email from VocabTrainer. Please do not reply.
`, user.Name, dueCount, s.appBaseURL)

	return s.sendEmail(ctx, user.Email, subject, htmlBody, textBody)
}

func (s *ReminderService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Reminder sent: to=%s, subject=%s", toEmail, subject)
	return nil
}
