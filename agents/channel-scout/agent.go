package channelscout

import (
	"context"
	"fmt"
	"time"

	"channel-scout/agents/channel-scout/discovery"
	"channel-scout/agents/channel-scout/youtube"
	"channel-scout/internal/models"
	"channel-scout/shared/config"
	"channel-scout/shared/email"
	"channel-scout/shared/scheduler"
	"channel-scout/shared/storage"

	"github.com/rs/zerolog"
)

// ScoutMetrics represents the metrics collected during one region scan
type ScoutMetrics struct {
	Region        string `json:"region"`
	Pages         int    `json:"pages"`
	Hits          int    `json:"hits"`
	Duplicates    int    `json:"duplicates"`
	Filtered      int    `json:"filtered"`
	InspectErrors int    `json:"inspect_errors"`
	Kept          int    `json:"kept"`
	EmailSent     bool   `json:"email_sent"`
}

// GetSummary implements the scheduler.Metrics interface
func (m ScoutMetrics) GetSummary() string {
	return fmt.Sprintf("scanned %d pages in %s, saw %d hits, kept %d channels (%d duplicates, %d filtered)",
		m.Pages, m.Region, m.Hits, m.Kept, m.Duplicates, m.Filtered)
}

// ScoutAgent implements the scheduler.Agent interface
type ScoutAgent struct {
	config      *config.Config
	log         zerolog.Logger
	client      *youtube.Client
	discoverer  *discovery.Discoverer
	store       *storage.ChannelStore
	emailSender *email.Sender
}

func NewScoutAgent(cfg *config.Config, log zerolog.Logger) *ScoutAgent {
	return &ScoutAgent{
		config: cfg,
		log:    log,
	}
}

func (a *ScoutAgent) Name() string {
	return "Channel Scout"
}

func (a *ScoutAgent) Initialize() error {
	a.log.Info().Msgf("Initializing %s...", a.Name())

	if a.client == nil {
		client, err := youtube.NewClient(context.Background(), a.config.YouTube.APIKey, a.log)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		a.client = client
		a.log.Info().Msg("YouTube client initialized")
	}

	if a.discoverer == nil {
		inspector := discovery.NewInspector(a.client, a.config.Scan.MaxSubscribers, a.log)
		a.discoverer = discovery.NewDiscoverer(a.client, inspector, a.config.Scan.MaxChannels, a.log)
		a.log.Info().
			Uint64("max_subscribers", a.config.Scan.MaxSubscribers).
			Int("max_channels", a.config.Scan.MaxChannels).
			Msg("Discovery pipeline initialized")
	}

	if a.store == nil {
		store, err := storage.NewChannelStore(a.config.Output.DataDir)
		if err != nil {
			return fmt.Errorf("failed to create channel store: %w", err)
		}
		a.store = store
		a.log.Info().Str("data_dir", a.config.Output.DataDir).Msg("Channel store initialized")
	}

	if a.emailSender == nil && a.config.Email.Enabled() {
		a.emailSender = email.NewSender(&a.config.Email)
		a.log.Info().Msg("Email sender initialized")
	}

	return nil
}

func (a *ScoutAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()
	region := a.config.Scan.Region

	a.log.Info().Str("region", region).Msg("Starting channel scan")

	records, scan, err := a.discoverer.Discover(ctx, region)
	if err != nil {
		return fmt.Errorf("discovery failed for region %s: %w", region, err)
	}

	path, err := a.store.Save(records, a.config.Output.Filename)
	if err != nil {
		return fmt.Errorf("failed to save channel records: %w", err)
	}
	a.log.Info().Int("records", len(records)).Str("path", path).Msg("Saved scan results")

	metrics := ScoutMetrics{
		Region:        region,
		Pages:         scan.Pages,
		Hits:          scan.Hits,
		Duplicates:    scan.Duplicates,
		Filtered:      scan.Filtered,
		InspectErrors: scan.InspectErrors,
		Kept:          scan.Kept,
	}

	if a.emailSender != nil && len(records) > 0 {
		report := &models.ScanReport{
			Date:     time.Now(),
			Region:   region,
			Channels: records,
		}
		if err := a.emailSender.SendReport(report); err != nil {
			a.log.Error().Err(err).Msg("Failed to send scan digest")
			if events != nil && events.OnPartialFailure != nil {
				events.OnPartialFailure(fmt.Errorf("failed to send scan digest: %w", err), time.Since(startTime))
			}
		} else {
			metrics.EmailSent = true
			a.log.Info().Int("channels", len(records)).Msg("Scan digest sent")
		}
	}

	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, time.Since(startTime))
	}

	a.log.Info().
		Int("pages", scan.Pages).
		Int("hits", scan.Hits).
		Int("kept", scan.Kept).
		Int("duplicates", scan.Duplicates).
		Int("filtered", scan.Filtered).
		Int("inspect_errors", scan.InspectErrors).
		Dur("duration", time.Since(startTime)).
		Msg("Scan complete")

	return nil
}
