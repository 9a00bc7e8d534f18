// File: services/notification/email.go
package notification

import (
	"context"
	"fmt"

	"gamecoach/config"
	coachRepo "gamecoach/database/repository/coach"
	"gamecoach/models"
	"gamecoach/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailNotificationService sends coach-facing emails through SendGrid.
type EmailNotificationService struct {
	CoachRepo coachRepo.CoachRepository
}

func (s *EmailNotificationService) SendBookingConfirmed(ctx context.Context, booking models.Booking) error {
	subject := fmt.Sprintf("New booking on %s at %s", booking.Date.Local().Format("02 Jan 2006"), booking.StartTime)
	body := fmt.Sprintf(
		"You have a new coaching session.\n\n"+
			"Date: %s\n"+
			"Time: %s - %s\n"+
			"Duration: %d minutes\n"+
			"Student: %s\n"+
			"Booking code: %s\n",
		booking.Date.Local().Format("02 Jan 2006"), booking.StartTime, booking.EndTime,
		booking.Duration, booking.UserID, booking.ID,
	)
	return s.sendToCoach(ctx, booking.CoachUsername, subject, body)
}

func (s *EmailNotificationService) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	return s.sendToCoach(ctx, payload.CoachUsername, payload.Title, payload.Body)
}

func (s *EmailNotificationService) sendToCoach(ctx context.Context, coachUsername, subject, plainText string) error {
	logger := utils.GetLogger()

	if config.AppConfig.SendGridAPIKey == "" {
		logger.Warn("SENDGRID_API_KEY not configured, email not sent",
			zap.String("coach", coachUsername), zap.String("subject", subject))
		return fmt.Errorf("sendgrid api key not configured")
	}

	coach, err := s.CoachRepo.GetByUsername(ctx, coachUsername)
	if err != nil {
		return fmt.Errorf("resolve coach email: %w", err)
	}

	from := mail.NewEmail(config.AppConfig.SenderName, config.AppConfig.SenderEmail)
	to := mail.NewEmail(coach.DisplayName, coach.Email)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}

	logger.Info("email sent", zap.String("coach", coachUsername), zap.String("subject", subject))
	return nil
}
