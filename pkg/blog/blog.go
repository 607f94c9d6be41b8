// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package blog

import (
	"bytes"
	"math"
	"time"

	"github.com/rugix/rugix-site/pkg/markdown"
	"github.com/rugix/rugix-site/pkg/util/urls"
)

// WordsPerMinute is the reading speed used for reading time estimates
const WordsPerMinute = 200

// truncateMarker separates the excerpt shown on list pages from the rest of a post
var truncateMarker = []byte("<!-- truncate -->")

// Author of a post
type Author struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title,omitempty"`
	URL      string `yaml:"url,omitempty"`
	ImageURL string `yaml:"image_url,omitempty"`
}

// Post is a single blog post
type Post struct {
	// Source is the file path in the site file system
	Source      string
	Slug        string
	Route       string
	Title       string
	Description string
	Date        time.Time
	Authors     []*Author
	Tags        []*Tag
	// ReadingTime in minutes, 0 if reading times are not shown
	ReadingTime int
	Words       int
	EditURL     string
	Meta        markdown.Meta
	Content     []byte
	// Newer and Older link neighbouring posts in index order
	Newer *Post
	Older *Post
}

// Excerpt is the part of the content above the truncate marker. Posts
// without marker are shown in full.
func (p *Post) Excerpt() ([]byte, bool) {
	if i := bytes.Index(p.Content, truncateMarker); i >= 0 {
		return p.Content[:i], true
	}
	return p.Content, false
}

// Tag groups the posts labelled with it
type Tag struct {
	Label string
	Route string
	Posts []*Post
}

// Blog is the loaded blog with posts newest first
type Blog struct {
	RouteBasePath string
	Title         string
	Description   string
	SidebarTitle  string
	Posts         []*Post
	// Sidebar lists the most recent posts
	Sidebar []*Post
	// Tags in alphabetical order
	Tags []*Tag

	bySrc map[string]*Post
}

// PostBySource returns the post loaded from the given file path
func (b *Blog) PostBySource(source string) (*Post, bool) {
	p, ok := b.bySrc[source]
	return p, ok
}

// TagsRoute is the route of the tag overview
func (b *Blog) TagsRoute() string {
	return urls.Join(b.RouteBasePath, "tags")
}

// ReadingTime estimates the minutes needed to read words, at least one
func ReadingTime(words int) int {
	if words <= 0 {
		return 1
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}
