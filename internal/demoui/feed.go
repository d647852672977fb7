package demoui

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeedItem represents a single row in the demo feed
type FeedItem struct {
	ID        string
	Title     string
	Author    string
	CreatedAt time.Time
}

// Sample content used to generate feed rows
var (
	sampleTitles = []string{
		"Release notes",
		"Weekly digest",
		"Changelog entry",
		"Community update",
		"Bug triage summary",
		"Design review notes",
		"Performance report",
		"Roadmap discussion",
	}
	sampleAuthors = []string{
		"alex", "maria", "joão", "olga", "sam", "ivan",
	}
)

// NewFeedItem creates a feed item with a generated identifier
func NewFeedItem(index int) FeedItem {
	return FeedItem{
		ID:        uuid.NewString(),
		Title:     fmt.Sprintf("%s #%d", sampleTitles[index%len(sampleTitles)], index+1),
		Author:    sampleAuthors[index%len(sampleAuthors)],
		CreatedAt: time.Now().Add(-time.Duration(index) * time.Hour),
	}
}

// GenerateFeed creates count items for the demo list
func GenerateFeed(count int) []FeedItem {
	items := make([]FeedItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, NewFeedItem(i))
	}
	return items
}

// DisplayTitle returns the title cleaned of characters that break row layout
func (fi FeedItem) DisplayTitle() string {
	title := strings.ReplaceAll(fi.Title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	return strings.TrimSpace(title)
}

// Byline returns the author and relative age for the row subtitle
func (fi FeedItem) Byline() string {
	age := time.Since(fi.CreatedAt)
	hours := int(age.Hours())
	if hours < 1 {
		return fi.Author + " · just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%s · %dh ago", fi.Author, hours)
	}
	return fmt.Sprintf("%s · %dd ago", fi.Author, hours/24)
}
