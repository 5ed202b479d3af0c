package model

// Scraper is a scrape target: the backend polls URL on an interval and
// writes the scraped metrics into BucketID.
type Scraper struct {
	ID       string  `json:"id"`
	OrgID    string  `json:"orgID"`
	Name     string  `json:"name"`
	Type     string  `json:"type"` // only "prometheus" is supported
	URL      string  `json:"url"`
	BucketID string  `json:"bucketID"`
	Labels   []Label `json:"labels,omitempty"`
}

func (s Scraper) GetID() string {
	return s.ID
}

func (s *Scraper) GetLabels() []Label {
	return s.Labels
}

func (s *Scraper) SetLabels(labels []Label) {
	s.Labels = labels
}

func init() {
	RegisterKind(Kind{Singular: "scraper", Plural: "scrapers", APIPath: "/api/v2/scrapers", Labelable: true})
}
