package domain

// BoardDescriptor describes one remote-job board in the static catalog.
// Read-only; Priority and RegionalFriendliness values are on a 1..10 scale.
type BoardDescriptor struct {
	Name                 string         `json:"name"`
	URL                  string         `json:"url"`
	Priority             int            `json:"priority"`
	RegionalFriendliness map[string]int `json:"regionalFriendliness"`
	Tags                 []string       `json:"tags"`
	Description          string         `json:"description"`
}
