package youtube

import (
	"context"
	"fmt"

	"channel-scout/agents/channel-scout/discovery"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const searchPageSize = 50

// Client wraps the YouTube Data API v3 for channel discovery. Only
// API-key auth is needed: search and channel metadata are public
// surfaces.
type Client struct {
	service *youtube.Service
	log     zerolog.Logger
}

func NewClient(ctx context.Context, apiKey string, log zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service, log: log}, nil
}

// SearchChannels fetches one page of channels for a region, ranked by
// view count. Implements discovery.Searcher.
func (c *Client) SearchChannels(ctx context.Context, region, pageToken string) (*discovery.SearchPage, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Type("channel").
		RegionCode(region).
		Order("viewCount").
		MaxResults(searchPageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	c.log.Debug().Str("region", region).Str("page_token", pageToken).Msg("Requesting channel search page")

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search channels in %s: %w", region, err)
	}

	return searchPageFromResponse(resp), nil
}

// ChannelMetadata fetches snippet and statistics for one channel.
// Returns (nil, nil) when the API reports no matching channel.
// Implements discovery.MetadataFetcher.
func (c *Client) ChannelMetadata(ctx context.Context, channelID string) (*discovery.ChannelMetadata, error) {
	resp, err := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", channelID, err)
	}

	if len(resp.Items) == 0 {
		return nil, nil
	}

	return channelMetadataFromItem(resp.Items[0]), nil
}

func searchPageFromResponse(resp *youtube.SearchListResponse) *discovery.SearchPage {
	page := &discovery.SearchPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ChannelId == "" {
			continue
		}
		page.Hits = append(page.Hits, discovery.SearchHit{
			ChannelID: item.Snippet.ChannelId,
			Title:     item.Snippet.ChannelTitle,
		})
	}
	return page
}

func channelMetadataFromItem(item *youtube.Channel) *discovery.ChannelMetadata {
	meta := &discovery.ChannelMetadata{ID: item.Id}
	if item.Snippet != nil {
		meta.Title = item.Snippet.Title
		meta.Description = item.Snippet.Description
		meta.Country = item.Snippet.Country
		meta.PublishedAt = item.Snippet.PublishedAt
		meta.CustomURL = item.Snippet.CustomUrl
	}
	if item.Statistics != nil {
		meta.Subscribers = item.Statistics.SubscriberCount
		meta.Views = item.Statistics.ViewCount
		meta.Videos = item.Statistics.VideoCount
	}
	return meta
}
