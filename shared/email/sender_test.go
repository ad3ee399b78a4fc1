package email

import (
	"strings"
	"testing"
	"time"

	"channel-scout/internal/models"
	"channel-scout/shared/config"
)

func TestSendReportNil(t *testing.T) {
	sender := NewSender(&config.EmailConfig{})
	if err := sender.SendReport(nil); err == nil {
		t.Error("SendReport(nil) should fail")
	}
}

func TestSendReportEmpty(t *testing.T) {
	sender := NewSender(&config.EmailConfig{})
	report := &models.ScanReport{Date: time.Now(), Region: "US"}
	// No channels: nothing to send, and no SMTP connection is attempted.
	if err := sender.SendReport(report); err != nil {
		t.Errorf("SendReport() with no channels = %v, want nil", err)
	}
}

func TestGenerateEmailBody(t *testing.T) {
	sender := NewSender(&config.EmailConfig{})
	report := &models.ScanReport{
		Date:   time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC),
		Region: "DE",
		Channels: []*models.ChannelRecord{
			{
				ChannelID:   "UC1",
				Name:        "Maker Channel",
				URL:         "https://youtube.com/channel/UC1",
				Country:     "DE",
				Subscribers: 4200,
				Email:       "hi@maker.example",
				Website:     "https://maker.example",
			},
			{
				ChannelID: "UC2",
				Name:      "Quiet Channel",
				Email:     "N/A",
				Website:   "N/A",
			},
		},
	}

	body, err := sender.generateEmailBody(report)
	if err != nil {
		t.Fatalf("generateEmailBody() error = %v", err)
	}

	for _, want := range []string{
		"Maker Channel",
		"https://youtube.com/channel/UC1",
		"hi@maker.example",
		"Quiet Channel",
		"N/A",
		"DE",
		"2 channels discovered",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Email body missing %q", want)
		}
	}
}
