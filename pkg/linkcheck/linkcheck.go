// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package linkcheck

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rugix/rugix-site/pkg/site"
	"github.com/rugix/rugix-site/pkg/util/urls"
	"golang.org/x/net/html"
	"k8s.io/klog/v2"
)

// Broken is a link on a page whose target does not exist
type Broken struct {
	// Page is the route of the page holding the link
	Page string
	Link string
}

func (b Broken) String() string {
	return fmt.Sprintf("/%s links to %s", b.Page, b.Link)
}

// Checker collects broken internal links of rendered pages.
// Check may be called concurrently.
type Checker struct {
	baseURL string
	targets map[string]bool

	mux    sync.Mutex
	broken []Broken
}

// NewChecker creates a Checker for a site served under baseURL whose
// routes and static files are targets
func NewChecker(baseURL string, targets []string) *Checker {
	c := &Checker{
		baseURL: "/" + urls.Clean(baseURL),
		targets: make(map[string]bool, len(targets)),
	}
	for _, t := range targets {
		c.targets[urls.Clean(t)] = true
	}
	return c
}

// Check parses the page at route and records its broken links
func (c *Checker) Check(route string, page []byte) error {
	links, err := Links(bytes.NewReader(page))
	if err != nil {
		return fmt.Errorf("parsing /%s failed: %w", route, err)
	}
	var broken []Broken
	for _, l := range links {
		target, ok := c.resolve(route, l)
		if !ok || c.targets[target] {
			continue
		}
		broken = append(broken, Broken{Page: urls.Clean(route), Link: l})
	}
	if len(broken) == 0 {
		return nil
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	c.broken = append(c.broken, broken...)
	return nil
}

// Broken returns the broken links found so far ordered by page
func (c *Checker) Broken() []Broken {
	c.mux.Lock()
	defer c.mux.Unlock()
	out := append([]Broken(nil), c.broken...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		return out[i].Link < out[j].Link
	})
	return out
}

// resolve maps link found on the page at route to a site route. The
// second result is false for links the checker does not follow.
func (c *Checker) resolve(route, link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	p := u.Path
	if !strings.HasPrefix(p, "/") {
		p = path.Join("/", urls.Clean(route), "..", p)
		return urls.Clean(p), true
	}
	if c.baseURL != "/" {
		if !urls.HasPrefix(p, c.baseURL) {
			return p, true
		}
		p = strings.TrimPrefix(urls.Clean(p), urls.Clean(c.baseURL))
	}
	return urls.Clean(p), true
}

// Links returns the href and src attribute values of an HTML document
func Links(r io.Reader) ([]string, error) {
	var links []string
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return links, nil
			}
			return nil, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			_, hasAttr := z.TagName()
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if k := string(key); k == "href" || k == "src" {
					links = append(links, string(val))
				}
			}
		}
	}
}

// Apply handles broken links according to policy. Only LinkPolicyThrow
// returns an error, which aggregates every broken link.
func Apply(policy site.LinkPolicy, kind string, broken []Broken) error {
	if len(broken) == 0 {
		return nil
	}
	var errs *multierror.Error
	for _, b := range broken {
		switch policy {
		case site.LinkPolicyIgnore:
		case site.LinkPolicyLog:
			klog.Infof("broken %s: %s", kind, b)
		case site.LinkPolicyThrow:
			errs = multierror.Append(errs, fmt.Errorf("broken %s: %s", kind, b))
		default:
			klog.Warningf("broken %s: %s", kind, b)
		}
	}
	return errs.ErrorOrNil()
}
