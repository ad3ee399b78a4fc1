package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"channel-scout/internal/models"
)

func TestChannelStoreSaveAndLoad(t *testing.T) {
	store, err := NewChannelStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewChannelStore() error = %v", err)
	}

	records := []*models.ChannelRecord{
		{
			ChannelID:   "UC1",
			Name:        "First",
			URL:         "https://youtube.com/channel/UC1",
			Country:     "US",
			CreateDate:  "2020-01-01T00:00:00Z",
			Subscribers: 1200,
			TotalViews:  340000,
			TotalVideos: 85,
			Email:       "first@example.com",
			Website:     "https://first.example.com",
		},
		{
			ChannelID:   "UC2",
			Name:        "Second",
			URL:         "https://youtube.com/channel/UC2",
			Country:     "N/A",
			CreateDate:  "N/A",
			Subscribers: 300,
			Email:       "N/A",
			Website:     "N/A",
		},
	}

	path, err := store.Save(records, "channel_data.json")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Base(filepath.Dir(path)) != "channel_info" {
		t.Errorf("Save() path = %q, want a file under channel_info", path)
	}

	loaded, err := store.Load("channel_data.json")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("len(loaded) = %d, want 2", len(loaded))
	}
	if loaded[0].ChannelID != "UC1" || loaded[1].ChannelID != "UC2" {
		t.Errorf("Admission order not preserved: %s, %s", loaded[0].ChannelID, loaded[1].ChannelID)
	}
	if *loaded[0] != *records[0] {
		t.Errorf("Round-tripped record differs:\ngot  %+v\nwant %+v", loaded[0], records[0])
	}
}

func TestChannelStoreOutputKeys(t *testing.T) {
	store, err := NewChannelStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewChannelStore() error = %v", err)
	}

	path, err := store.Save([]*models.ChannelRecord{{ChannelID: "UC1"}}, "out.json")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, key := range []string{
		"channelId", "name", "url", "country", "createDate",
		"subscribers", "totalViews", "totalVideos", "email", "website",
	} {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("Output file missing key %q", key)
		}
	}
}

func TestChannelStoreSaveEmpty(t *testing.T) {
	store, err := NewChannelStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewChannelStore() error = %v", err)
	}

	path, err := store.Save(nil, "empty.json")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Empty scan should write an empty array, got %q", string(data))
	}
}

func TestChannelStoreLoadMissingFile(t *testing.T) {
	store, err := NewChannelStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewChannelStore() error = %v", err)
	}

	if _, err := store.Load("nope.json"); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
