package discovery

import (
	"context"
	"fmt"

	"channel-scout/internal/models"

	"github.com/rs/zerolog"
)

// SearchHit is one row of a channel search page.
type SearchHit struct {
	ChannelID string
	Title     string
}

// SearchPage is one page of search results. An empty NextPageToken means
// the result set is exhausted.
type SearchPage struct {
	Hits          []SearchHit
	NextPageToken string
}

// ChannelMetadata is the collaborator-neutral shape of a channel lookup.
type ChannelMetadata struct {
	ID          string
	Title       string
	Description string
	Country     string
	PublishedAt string
	CustomURL   string
	Subscribers uint64
	Views       uint64
	Videos      uint64
}

// Searcher pages through ranked channel search results for a region.
type Searcher interface {
	SearchChannels(ctx context.Context, region, pageToken string) (*SearchPage, error)
}

// MetadataFetcher resolves a channel ID to its full metadata. A nil
// result with a nil error means the channel does not exist.
type MetadataFetcher interface {
	ChannelMetadata(ctx context.Context, channelID string) (*ChannelMetadata, error)
}

// Inspection pairs an admitted record with the raw description it came
// from, so the caller can run contact extraction on it.
type Inspection struct {
	Record      *models.ChannelRecord
	Description string
}

// Inspector fetches full channel metadata and applies the subscriber
// admission filter.
type Inspector struct {
	fetcher        MetadataFetcher
	maxSubscribers uint64
	log            zerolog.Logger
}

func NewInspector(fetcher MetadataFetcher, maxSubscribers uint64, log zerolog.Logger) *Inspector {
	return &Inspector{
		fetcher:        fetcher,
		maxSubscribers: maxSubscribers,
		log:            log,
	}
}

// Inspect returns the shaped record for a channel, or nil when the
// channel is unknown or over the subscriber threshold. Collaborator
// failures come back as errors so the caller can tell a transport
// problem apart from a channel that simply doesn't qualify.
func (in *Inspector) Inspect(ctx context.Context, channelID string) (*Inspection, error) {
	meta, err := in.fetcher.ChannelMetadata(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata for channel %s: %w", channelID, err)
	}
	if meta == nil {
		in.log.Warn().Str("channel_id", channelID).Msg("No metadata found for channel")
		return nil, nil
	}

	if meta.Subscribers > in.maxSubscribers {
		in.log.Debug().
			Str("channel_id", channelID).
			Uint64("subscribers", meta.Subscribers).
			Uint64("threshold", in.maxSubscribers).
			Msg("Channel over subscriber threshold, skipping")
		return nil, nil
	}

	record := &models.ChannelRecord{
		ChannelID:   channelID,
		Name:        meta.Title,
		URL:         meta.CustomURL,
		Country:     meta.Country,
		CreateDate:  meta.PublishedAt,
		Subscribers: meta.Subscribers,
		TotalViews:  meta.Views,
		TotalVideos: meta.Videos,
		Email:       NotAvailable,
		Website:     NotAvailable,
	}
	if record.Name == "" {
		record.Name = NotAvailable
	}
	if record.URL == "" {
		record.URL = fmt.Sprintf("https://youtube.com/channel/%s", channelID)
	}
	if record.Country == "" {
		record.Country = NotAvailable
	}
	if record.CreateDate == "" {
		record.CreateDate = NotAvailable
	}

	return &Inspection{Record: record, Description: meta.Description}, nil
}
