package library

// Show is one discovered grouping of subtitle and video files, named after
// its top-level folder under a media root. A Show always has at least one
// subtitle file; folders without any are not selectable and are dropped
// during scanning.
type Show struct {
	Name      string   `json:"name"`
	Root      string   `json:"root"`
	Subtitles []string `json:"subtitles"`
	Videos    []string `json:"videos"`
}

// Library is the scan result: all shows across the configured media roots,
// sorted by name.
type Library struct {
	Shows []Show `json:"shows"`
}

// Show looks up a show by its display name.
func (l *Library) Show(name string) (Show, bool) {
	for _, s := range l.Shows {
		if s.Name == name {
			return s, true
		}
	}
	return Show{}, false
}
