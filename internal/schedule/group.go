package schedule

// TimeGroup is a run of agenda items sharing one display time.
type TimeGroup struct {
	Time  string `json:"time"`
	Items []Item `json:"items"`
}

// GroupByTime converts a sorted agenda into display groups keyed by the
// 12-hour time label. Ordering follows the input, so unparseable labels
// and reminders stay at the end where the sort put them.
func GroupByTime(items []Item) []TimeGroup {
	var groups []TimeGroup
	index := make(map[string]int)
	for _, item := range items {
		label := displayLabel(item.Time)
		if pos, ok := index[label]; ok {
			groups[pos].Items = append(groups[pos].Items, item)
			continue
		}
		index[label] = len(groups)
		groups = append(groups, TimeGroup{Time: label, Items: []Item{item}})
	}
	return groups
}

func displayLabel(timeValue string) string {
	if timeValue == "" {
		return "No time specified"
	}
	return FormatTimeForDisplay(timeValue)
}
