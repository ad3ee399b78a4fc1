package discovery

// seenSet tracks channel IDs already handled during one scan. It only
// grows; a scan never revisits a channel.
type seenSet struct {
	ids map[string]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{ids: make(map[string]struct{})}
}

// Admit records the ID and returns true the first time it is seen,
// returns false and leaves the set unchanged otherwise.
func (s *seenSet) Admit(channelID string) bool {
	if _, ok := s.ids[channelID]; ok {
		return false
	}
	s.ids[channelID] = struct{}{}
	return true
}

func (s *seenSet) Len() int {
	return len(s.ids)
}
