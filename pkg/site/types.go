// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// Site is the declarative description of the whole website
type Site struct {
	Title            string            `yaml:"title"`
	Tagline          string            `yaml:"tagline,omitempty"`
	URL              string            `yaml:"url"`
	BaseURL          string            `yaml:"baseUrl,omitempty"`
	Favicon          string            `yaml:"favicon,omitempty"`
	OrganizationName string            `yaml:"organizationName,omitempty"`
	ProjectName      string            `yaml:"projectName,omitempty"`
	OnBrokenLinks    LinkPolicy        `yaml:"onBrokenLinks,omitempty"`
	Markdown         Markdown          `yaml:"markdown,omitempty"`
	I18n             I18n              `yaml:"i18n,omitempty"`
	ColorMode        ColorMode         `yaml:"colorMode,omitempty"`
	Announcement     *Announcement     `yaml:"announcementBar,omitempty"`
	Navbar           Navbar            `yaml:"navbar"`
	Footer           Footer            `yaml:"footer,omitempty"`
	Prism            Prism             `yaml:"prism,omitempty"`
	Themes           []string          `yaml:"themes,omitempty"`
	Analytics        Analytics         `yaml:"analytics,omitempty"`
	Docs             []*DocsCollection `yaml:"docs,omitempty"`
	Blog             *Blog             `yaml:"blog,omitempty"`
	Pages            Pages             `yaml:"pages,omitempty"`
	Home             Home              `yaml:"home,omitempty"`
	StaticDir        string            `yaml:"staticDir,omitempty"`
}

// LinkPolicy decides what happens with a link that cannot be resolved
type LinkPolicy string

const (
	// LinkPolicyIgnore drops broken links silently
	LinkPolicyIgnore LinkPolicy = "ignore"
	// LinkPolicyLog reports broken links at info level
	LinkPolicyLog LinkPolicy = "log"
	// LinkPolicyWarn reports broken links as warnings
	LinkPolicyWarn LinkPolicy = "warn"
	// LinkPolicyThrow fails the build
	LinkPolicyThrow LinkPolicy = "throw"
)

// Valid reports whether p is a known policy
func (p LinkPolicy) Valid() bool {
	switch p {
	case LinkPolicyIgnore, LinkPolicyLog, LinkPolicyWarn, LinkPolicyThrow:
		return true
	}
	return false
}

// Markdown holds markdown processing options
type Markdown struct {
	Mermaid               bool       `yaml:"mermaid,omitempty"`
	OnBrokenMarkdownLinks LinkPolicy `yaml:"onBrokenMarkdownLinks,omitempty"`
}

// I18n lists the site locales. Only the default locale is rendered.
type I18n struct {
	DefaultLocale string   `yaml:"defaultLocale,omitempty"`
	Locales       []string `yaml:"locales,omitempty"`
}

// ColorMode is surfaced to the layout as data attributes
type ColorMode struct {
	DefaultMode               string `yaml:"defaultMode,omitempty" json:"defaultMode"`
	DisableSwitch             bool   `yaml:"disableSwitch,omitempty" json:"disableSwitch"`
	RespectPrefersColorScheme bool   `yaml:"respectPrefersColorScheme,omitempty" json:"respectPrefersColorScheme"`
}

// Announcement is the bar rendered above the navbar
type Announcement struct {
	ID              string `yaml:"id"`
	Content         string `yaml:"content"`
	BackgroundColor string `yaml:"backgroundColor,omitempty"`
	TextColor       string `yaml:"textColor,omitempty"`
	IsCloseable     bool   `yaml:"isCloseable,omitempty"`
}

// Navbar is the top navigation bar
type Navbar struct {
	Title string        `yaml:"title,omitempty"`
	Logo  *Logo         `yaml:"logo,omitempty"`
	Items []*NavbarItem `yaml:"items,omitempty"`
}

// Logo of the navbar
type Logo struct {
	Alt string `yaml:"alt,omitempty"`
	Src string `yaml:"src"`
}

// NavbarItemType enumerates the navbar item kinds
type NavbarItemType string

const (
	// NavbarItemDefault is a plain link, internal (To) or external (Href)
	NavbarItemDefault NavbarItemType = "default"
	// NavbarItemDoc links to a doc of the default collection
	NavbarItemDoc NavbarItemType = "doc"
	// NavbarItemDocsVersionDropdown is the version selector of a collection
	NavbarItemDocsVersionDropdown NavbarItemType = "docsVersionDropdown"
)

// NavbarItem is a single navbar entry
type NavbarItem struct {
	Type      NavbarItemType `yaml:"type,omitempty"`
	Label     string         `yaml:"label,omitempty"`
	Position  string         `yaml:"position,omitempty"`
	To        string         `yaml:"to,omitempty"`
	Href      string         `yaml:"href,omitempty"`
	ClassName string         `yaml:"className,omitempty"`
	AriaLabel string         `yaml:"aria-label,omitempty"`
	// DocID is used by doc items
	DocID string `yaml:"docId,omitempty"`
	// DocsPluginID is used by doc and docsVersionDropdown items
	DocsPluginID                string `yaml:"docsPluginId,omitempty"`
	DropdownActiveClassDisabled bool   `yaml:"dropdownActiveClassDisabled,omitempty"`
}

// Footer holds footer link columns and the copyright line
type Footer struct {
	Style     string          `yaml:"style,omitempty"`
	Links     []*FooterColumn `yaml:"links,omitempty"`
	Copyright string          `yaml:"copyright,omitempty"`
}

// FooterColumn is a titled group of footer links
type FooterColumn struct {
	Title string        `yaml:"title"`
	Items []*FooterLink `yaml:"items"`
}

// FooterLink is an internal (To) or external (Href) link
type FooterLink struct {
	Label string `yaml:"label"`
	To    string `yaml:"to,omitempty"`
	Href  string `yaml:"href,omitempty"`
}

// Prism configures client side code highlighting
type Prism struct {
	Theme               string   `yaml:"theme,omitempty" json:"theme,omitempty"`
	AdditionalLanguages []string `yaml:"additionalLanguages,omitempty" json:"additionalLanguages,omitempty"`
}

// Analytics configures the analytics integration
type Analytics struct {
	PlausibleDomain string `yaml:"plausibleDomain,omitempty"`
	PlausibleScript string `yaml:"plausibleScript,omitempty"`
}

// DocsCollection is an independently versioned set of documentation pages
type DocsCollection struct {
	ID            string                    `yaml:"id,omitempty"`
	Path          string                    `yaml:"path,omitempty"`
	RouteBasePath string                    `yaml:"routeBasePath,omitempty"`
	EditURL       string                    `yaml:"editUrl,omitempty"`
	LastVersion   string                    `yaml:"lastVersion,omitempty"`
	Versions      map[string]*VersionOption `yaml:"versions,omitempty"`
}

// VersionOption overrides the defaults of a single collection version
type VersionOption struct {
	Label string `yaml:"label,omitempty"`
	Path  string `yaml:"path,omitempty"`
	// Banner is one of "", "unreleased" or "unmaintained"
	Banner string `yaml:"banner,omitempty"`
}

// Blog configures the blog
type Blog struct {
	Path             string `yaml:"path,omitempty"`
	RouteBasePath    string `yaml:"routeBasePath,omitempty"`
	ShowReadingTime  bool   `yaml:"showReadingTime,omitempty"`
	EditURL          string `yaml:"editUrl,omitempty"`
	BlogSidebarCount string `yaml:"blogSidebarCount,omitempty"`
	BlogSidebarTitle string `yaml:"blogSidebarTitle,omitempty"`
	BlogTitle        string `yaml:"blogTitle,omitempty"`
	BlogDescription  string `yaml:"blogDescription,omitempty"`
}

// Pages configures standalone markdown pages
type Pages struct {
	Path string `yaml:"path,omitempty"`
}

// Home is the data of the landing page
type Home struct {
	Hero      Hero      `yaml:"hero,omitempty"`
	Tools     Tools     `yaml:"tools,omitempty"`
	TrustedBy TrustedBy `yaml:"trustedBy,omitempty"`
	Stories   Stories   `yaml:"stories,omitempty"`
}

// Hero is the landing page header
type Hero struct {
	Title     string `yaml:"title"`
	Strapline string `yaml:"strapline,omitempty"`
	Subtitle  string `yaml:"subtitle,omitempty"`
	CTALabel  string `yaml:"ctaLabel,omitempty"`
	CTAShort  string `yaml:"ctaShortLabel,omitempty"`
	CTATo     string `yaml:"ctaTo,omitempty"`
}

// Tools is the product overview section
type Tools struct {
	Title    string      `yaml:"title,omitempty"`
	Subtitle string      `yaml:"subtitle,omitempty"`
	Cards    []*ToolCard `yaml:"cards,omitempty"`
	Footnote string      `yaml:"footnote,omitempty"`
}

// ToolCard links to the documentation of one product
type ToolCard struct {
	Title       string `yaml:"title"`
	Tagline     string `yaml:"tagline,omitempty"`
	Description string `yaml:"description,omitempty"`
	To          string `yaml:"to"`
}

// TrustedBy lists customer logos and testimonials
type TrustedBy struct {
	Title        string          `yaml:"title,omitempty"`
	Logos        []*CustomerLogo `yaml:"logos,omitempty"`
	More         string          `yaml:"more,omitempty"`
	Testimonials []*Testimonial  `yaml:"testimonials,omitempty"`
}

// CustomerLogo is an external customer logo
type CustomerLogo struct {
	Name  string `yaml:"name"`
	Href  string `yaml:"href"`
	Image string `yaml:"image"`
	Class string `yaml:"class,omitempty"`
}

// Testimonial is a customer quote
type Testimonial struct {
	Quote       string `yaml:"quote"`
	Author      string `yaml:"author"`
	Role        string `yaml:"role,omitempty"`
	Company     string `yaml:"company,omitempty"`
	CompanyHref string `yaml:"companyHref,omitempty"`
}

// Stories is the success stories section
type Stories struct {
	ID      string   `yaml:"id,omitempty"`
	Title   string   `yaml:"title,omitempty"`
	Entries []*Story `yaml:"entries,omitempty"`
}

// Story is a single success story. Body is trusted HTML and gets sanitised.
type Story struct {
	Title string       `yaml:"title"`
	Image string       `yaml:"image,omitempty"`
	Alt   string       `yaml:"alt,omitempty"`
	Body  string       `yaml:"body,omitempty"`
	Quote *Testimonial `yaml:"quote,omitempty"`
}
