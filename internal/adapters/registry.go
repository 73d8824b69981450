package adapters

import (
	"strings"
	"time"

	"tenderpulse/pkg/contracts/domain"
)

// NoTitleFallback is used when a record carries neither a title nor a
// project name.
const NoTitleFallback = "No Title Available"

// AdapterFunc projects one raw record into a canonical row. Implementations
// must be pure: no mutation of the input, same input always yields the same
// output.
type AdapterFunc func(domain.Tender) domain.CanonicalRow

// Registry dispatches records to the adapter registered for their source
// tag, falling back to a generic adapter for unrecognized tags.
type Registry struct {
	adapters map[domain.Source]AdapterFunc
	fallback AdapterFunc
}

// NewRegistry creates a registry with every known source adapter installed.
func NewRegistry() *Registry {
	return &Registry{
		adapters: map[domain.Source]AdapterFunc{
			domain.SourceBDJobs:    adaptBDJobs,
			domain.SourceCare:      adaptCare,
			domain.SourcePKSF:      adaptPKSF,
			domain.SourceUNDP:      adaptUNDP,
			domain.SourceWorldBank: adaptWorldBank,
			domain.SourceUNGM:      adaptUNGM,
			domain.SourceBPPA:      adaptBPPA,
			domain.SourceADB:       adaptADB,
		},
		fallback: adaptDefault,
	}
}

// Adapt projects a single record through the adapter for its source tag.
func (r *Registry) Adapt(t domain.Tender) domain.CanonicalRow {
	if adapt, ok := r.adapters[t.Source]; ok {
		return adapt(t)
	}
	return r.fallback(t)
}

// AdaptAll projects a flattened record sequence, preserving order.
func (r *Registry) AdaptAll(tenders []domain.Tender) []domain.CanonicalRow {
	rows := make([]domain.CanonicalRow, len(tenders))
	for i, t := range tenders {
		rows[i] = r.Adapt(t)
	}
	return rows
}

// Has reports whether a dedicated adapter is registered for the tag.
func (r *Registry) Has(src domain.Source) bool {
	_, ok := r.adapters[src]
	return ok
}

// adaptDefault handles records whose source tag has no dedicated adapter.
// The uppercased raw tag stands in for the organization and no badges are
// produced.
func adaptDefault(t domain.Tender) domain.CanonicalRow {
	return domain.CanonicalRow{
		Source:        t.Source,
		Title:         resolveTitle(t),
		Organization:  resolveOrganization(t),
		PrimaryDate:   genericDate(t),
		ReferenceCode: resolveReference(t),
		Place:         resolvePlace(t),
		Status:        t.Status,
		Amount:        t.Amount,
		URL:           resolveURL(t),
		Badges:        []domain.Badge{},
	}
}

// resolveTitle falls back through title, project_name, then a fixed literal
// so canonical titles are never empty.
func resolveTitle(t domain.Tender) string {
	if t.Title != "" {
		return t.Title
	}
	if t.ProjectName != "" {
		return t.ProjectName
	}
	return NoTitleFallback
}

// resolveOrganization applies the shared fallback: an explicit organization
// field wins, otherwise the uppercased source tag.
func resolveOrganization(t domain.Tender) string {
	if t.Organization != "" {
		return t.Organization
	}
	return upperSource(t.Source)
}

// resolveReference picks the first reference-like field present.
func resolveReference(t domain.Tender) string {
	switch {
	case t.ReferenceNo != "":
		return t.ReferenceNo
	case t.RefNo != "":
		return t.RefNo
	case t.ProjectID != "":
		return t.ProjectID
	default:
		return t.Reference
	}
}

func resolvePlace(t domain.Tender) string {
	if t.Place != "" {
		return t.Place
	}
	return t.Country
}

// resolveURL picks the first present link in the original click-through
// order: direct link, download, detail page.
func resolveURL(t domain.Tender) string {
	switch {
	case t.Link != "":
		return t.Link
	case t.DownloadURL != "":
		return t.DownloadURL
	case t.DetailURL != "":
		return t.DetailURL
	default:
		return t.URL
	}
}

// genericDate is the fallback date resolution for sources without their own
// labeling rule.
func genericDate(t domain.Tender) domain.DateInfo {
	value := t.Posted
	if value == "" {
		value = t.Date
	}
	if value == "" {
		value = t.Deadline
	}
	if value == "" {
		value = "Unknown"
	}
	return domain.DateInfo{Label: "Date", Value: value}
}

func upperSource(src domain.Source) string {
	if src == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(string(src))
}

// formatScrapedAt renders a provider scrape timestamp as a local date. The
// raw value is ISO 8601; anything unparsable passes through unchanged.
func formatScrapedAt(raw string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("2006-01-02")
		}
	}
	return raw
}
