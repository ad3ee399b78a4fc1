package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"channel-scout/internal/models"
)

// ChannelStore persists scan results as indented JSON under
// <dataDir>/channel_info.
type ChannelStore struct {
	dir string
}

func NewChannelStore(dataDir string) (*ChannelStore, error) {
	dir := filepath.Join(dataDir, "channel_info")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &ChannelStore{dir: dir}, nil
}

// Save writes the records in admission order and returns the path of the
// written file. A scan with no results still produces a file holding an
// empty array.
func (s *ChannelStore) Save(records []*models.ChannelRecord, filename string) (string, error) {
	if records == nil {
		records = []*models.ChannelRecord{}
	}

	path := filepath.Join(s.dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create result file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode channel records: %w", err)
	}

	return path, nil
}

// Load reads back a previously saved result file.
func (s *ChannelStore) Load(filename string) ([]*models.ChannelRecord, error) {
	file, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to open result file: %w", err)
	}
	defer file.Close()

	var records []*models.ChannelRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode channel records: %w", err)
	}
	return records, nil
}
