package models

import "time"

// ChannelRecord is one discovered channel as written to the result file.
// Key names are part of the output contract.
type ChannelRecord struct {
	ChannelID   string `json:"channelId"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Country     string `json:"country"`
	CreateDate  string `json:"createDate"`
	Subscribers uint64 `json:"subscribers"`
	TotalViews  uint64 `json:"totalViews"`
	TotalVideos uint64 `json:"totalVideos"`
	Email       string `json:"email"`
	Website     string `json:"website"`
}

// ScanReport summarizes one completed region scan for the email digest.
type ScanReport struct {
	Date     time.Time        `json:"date"`
	Region   string           `json:"region"`
	Channels []*ChannelRecord `json:"channels"`
}
