package domain

import "sort"

// Source identifies which external provider a tender record came from.
// The set is closed but extensible: tags outside the known constants are
// still carried through the pipeline and handled by the default adapter.
type Source string

const (
	SourceBDJobs    Source = "bdjobs"
	SourceCare      Source = "care"
	SourcePKSF      Source = "pksf"
	SourceUNDP      Source = "undp"
	SourceWorldBank Source = "worldbank"
	SourceUNGM      Source = "ungm"
	SourceBPPA      Source = "bppa"
	SourceADB       Source = "adb"
	SourceUnknown   Source = "unknown"
)

// KnownSources lists the source tags with a dedicated adapter, in display order.
var KnownSources = []Source{
	SourceBDJobs,
	SourceCare,
	SourcePKSF,
	SourceUNDP,
	SourceWorldBank,
	SourceUNGM,
	SourceBPPA,
	SourceADB,
}

// Tender is one raw record as returned by the data provider. Field presence
// varies by source; an empty string means the source did not supply the
// field. The struct is the union of every per-source schema so that records
// from any source deserialize without loss.
type Tender struct {
	ID     int    `json:"id,omitempty"`
	Source Source `json:"source"`

	Title       string `json:"title,omitempty"`
	ProjectName string `json:"project_name,omitempty"`

	Organization    string `json:"organization,omitempty"`
	ProcuringEntity string `json:"procuring_entity,omitempty"`

	ReferenceNo string `json:"reference_no,omitempty"`
	RefNo       string `json:"ref_no,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
	Reference   string `json:"reference,omitempty"`

	Posted          string `json:"posted,omitempty"`
	Date            string `json:"date,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
	PublicationDate string `json:"publication_date,omitempty"`
	ClosingDate     string `json:"closing_date,omitempty"`
	ClosingTime     string `json:"closing_time,omitempty"`
	ApprovalDate    string `json:"approval_date,omitempty"`
	ScrapedAt       string `json:"scraped_at,omitempty"`

	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Place       string `json:"place,omitempty"`

	Status string `json:"status,omitempty"`
	Amount string `json:"amount,omitempty"`

	Link        string `json:"link,omitempty"`
	URL         string `json:"url,omitempty"`
	DetailURL   string `json:"detail_url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`

	Sector          string `json:"sector,omitempty"`
	Summary         string `json:"summary,omitempty"`
	ProcessType     string `json:"process_type,omitempty"`
	OpportunityType string `json:"opportunity_type,omitempty"`
	RemainingDays   string `json:"remaining_days,omitempty"`
	LastStage       string `json:"last_stage,omitempty"`
	Views           string `json:"views,omitempty"`
	Likes           string `json:"likes,omitempty"`
	Author          string `json:"author,omitempty"`
}

// SourceMap is the aggregated provider payload: one record list per source tag.
type SourceMap map[Source][]Tender

// Flatten collapses the map into a single sequence, iterating sources in
// KnownSources order first and any remaining tags in lexical order, so the
// result is deterministic for a given payload.
func (m SourceMap) Flatten() []Tender {
	out := make([]Tender, 0, m.Len())
	seen := make(map[Source]bool, len(m))
	for _, src := range KnownSources {
		if records, ok := m[src]; ok {
			out = append(out, records...)
			seen[src] = true
		}
	}
	extras := make([]Source, 0)
	for src := range m {
		if !seen[src] {
			extras = append(extras, src)
		}
	}
	sortSources(extras)
	for _, src := range extras {
		out = append(out, m[src]...)
	}
	return out
}

// Len returns the total record count across all sources.
func (m SourceMap) Len() int {
	total := 0
	for _, records := range m {
		total += len(records)
	}
	return total
}

// Sources returns the distinct tags that actually carry records, in the same
// order Flatten emits them.
func (m SourceMap) Sources() []Source {
	out := make([]Source, 0, len(m))
	seen := make(map[Source]bool, len(m))
	for _, src := range KnownSources {
		if len(m[src]) > 0 {
			out = append(out, src)
			seen[src] = true
		}
	}
	extras := make([]Source, 0)
	for src, records := range m {
		if !seen[src] && len(records) > 0 {
			extras = append(extras, src)
		}
	}
	sortSources(extras)
	return append(out, extras...)
}

func sortSources(s []Source) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
