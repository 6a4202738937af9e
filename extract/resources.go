package extract

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

var urlRe = regexp.MustCompile(`(?i)\bhttps?://[^\s<>"'\]]+|\bwww\.[^\s<>"'\]]+`)

var videoDomains = map[string]bool{
	"youtube.com":     true,
	"youtu.be":        true,
	"vimeo.com":       true,
	"schooltv.nl":     true,
	"npostart.nl":     true,
	"npo.nl":          true,
	"ted.com":         true,
	"edpuzzle.com":    true,
	"dailymotion.com": true,
}

var documentDomains = map[string]bool{
	"sharepoint.com": true,
	"1drv.ms":        true,
	"dropbox.com":    true,
}

var documentHosts = map[string]bool{
	"docs.google.com":   true,
	"drive.google.com":  true,
	"onedrive.live.com": true,
}

var documentExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
	".xls": true, ".xlsx": true, ".odt": true, ".odp": true, ".ods": true,
}

// classifyURL returns the resource type of a URL, judged by its registrable
// domain and file extension.
func classifyURL(raw string) string {
	u, err := url.Parse(withScheme(raw))
	if err != nil {
		return model.BronLink
	}
	host := strings.ToLower(u.Hostname())
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		domain = host
	}
	switch {
	case videoDomains[domain]:
		return model.BronVideo
	case documentExts[strings.ToLower(path.Ext(u.Path))]:
		return model.BronDocument
	case documentDomains[domain] || documentHosts[host]:
		return model.BronDocument
	}
	return model.BronLink
}

func withScheme(raw string) string {
	if strings.HasPrefix(strings.ToLower(raw), "www.") {
		return "https://" + raw
	}
	return raw
}

func trimURL(u string) string {
	return strings.TrimRight(u, ".,;:!?)")
}

// resourceSet collects resources without duplicates.
type resourceSet struct {
	items []model.Bron
	seen  map[string]bool
}

func (s *resourceSet) add(b model.Bron) {
	key := b.URL
	if key == "" {
		key = "t:" + keywords.Fold(b.Title)
	}
	if key == "t:" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, b)
}

func (s *resourceSet) addURL(title, raw string) {
	raw = trimURL(strings.TrimSpace(raw))
	if raw == "" {
		return
	}
	s.add(model.Bron{Type: classifyURL(raw), Title: cell.Clean(title), URL: withScheme(raw)})
}

// collectResources builds the resources of a row from its resource column,
// its hyperlinks and any URL written in its cells.
func collectResources(resource string, cells []string, links []model.Link) []model.Bron {
	var set resourceSet
	for _, line := range strings.Split(cell.Normalize(resource), "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-•*· "))
		if line == "" {
			continue
		}
		if loc := urlRe.FindStringIndex(line); loc != nil {
			title := strings.Trim(line[:loc[0]]+line[loc[1]:], " -:|()")
			set.addURL(title, line[loc[0]:loc[1]])
			continue
		}
		set.add(model.Bron{Type: model.BronMateriaal, Title: line})
	}
	for _, l := range links {
		if urlRe.MatchString(l.URL) {
			title := l.Text
			if title == l.URL {
				title = ""
			}
			set.addURL(title, l.URL)
		}
	}
	for _, c := range cells {
		for _, u := range urlRe.FindAllString(c, -1) {
			set.addURL("", u)
		}
	}
	return set.items
}
