package discovery

import (
	"context"
	"fmt"

	"channel-scout/internal/models"

	"github.com/rs/zerolog"
)

// ScanMetrics counts what happened during one Discover call.
type ScanMetrics struct {
	Pages         int `json:"pages"`
	Hits          int `json:"hits"`
	Duplicates    int `json:"duplicates"`
	Filtered      int `json:"filtered"`
	InspectErrors int `json:"inspect_errors"`
	Kept          int `json:"kept"`
}

// Discoverer runs the search-inspect-extract pipeline for one region:
// page through ranked search results, drop duplicates, fetch and gate
// each channel, enrich admitted records with extracted contacts.
type Discoverer struct {
	searcher    Searcher
	inspector   *Inspector
	maxChannels int
	log         zerolog.Logger
}

func NewDiscoverer(searcher Searcher, inspector *Inspector, maxChannels int, log zerolog.Logger) *Discoverer {
	return &Discoverer{
		searcher:    searcher,
		inspector:   inspector,
		maxChannels: maxChannels,
		log:         log,
	}
}

// Discover collects up to maxChannels deduplicated channel records for a
// region. A search failure aborts the whole region with an empty result;
// a failed lookup of an individual channel only skips that channel. The
// loop terminates when the cap is reached or the collaborator runs out
// of pages, even if every remaining hit is a duplicate or filtered out.
func (d *Discoverer) Discover(ctx context.Context, region string) ([]*models.ChannelRecord, ScanMetrics, error) {
	var (
		records   []*models.ChannelRecord
		metrics   ScanMetrics
		pageToken string
	)
	seen := newSeenSet()

	for {
		page, err := d.searcher.SearchChannels(ctx, region, pageToken)
		if err != nil {
			d.log.Error().Err(err).Str("region", region).Msg("Channel search failed, aborting region scan")
			return nil, metrics, fmt.Errorf("failed to search channels in %s: %w", region, err)
		}
		metrics.Pages++

		for _, hit := range page.Hits {
			metrics.Hits++

			if !seen.Admit(hit.ChannelID) {
				metrics.Duplicates++
				continue
			}

			inspection, err := d.inspector.Inspect(ctx, hit.ChannelID)
			if err != nil {
				metrics.InspectErrors++
				d.log.Error().Err(err).Str("channel_id", hit.ChannelID).Msg("Channel inspection failed, skipping")
				continue
			}
			if inspection == nil {
				metrics.Filtered++
				continue
			}

			contacts := ExtractContacts(inspection.Description)
			inspection.Record.Email = contacts.Email
			inspection.Record.Website = contacts.Website

			records = append(records, inspection.Record)
			metrics.Kept++

			if len(records) >= d.maxChannels {
				d.log.Info().Int("kept", len(records)).Str("region", region).Msg("Channel cap reached")
				return records, metrics, nil
			}
		}

		if page.NextPageToken == "" {
			d.log.Info().
				Int("kept", len(records)).
				Int("pages", metrics.Pages).
				Str("region", region).
				Msg("Search results exhausted")
			return records, metrics, nil
		}
		pageToken = page.NextPageToken
	}
}
