package adapters

import (
	"strconv"
	"strings"

	"tenderpulse/pkg/contracts/domain"
)

// Per-source adapters. Badge candidate order inside each adapter is fixed
// and load-bearing: display and export reproduce it verbatim.

func adaptBDJobs(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	if t.Posted != "" {
		row.PrimaryDate = domain.DateInfo{Label: "Posted", Value: t.Posted}
	}
	badges := make([]domain.Badge, 0, 1)
	if t.Link != "" {
		badges = append(badges, domain.Badge{Text: "View on BDJobs", Category: domain.BadgeCategoryLink, IsLink: true})
	}
	row.Badges = badges
	return row
}

func adaptCare(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	scraped := "Unknown"
	if t.ScrapedAt != "" {
		scraped = formatScrapedAt(t.ScrapedAt)
	}
	row.PrimaryDate = domain.DateInfo{Label: "Scraped", Value: scraped}
	badges := make([]domain.Badge, 0, 2)
	if t.DownloadURL != "" {
		badges = append(badges, domain.Badge{Text: "Download Available", Category: domain.BadgeCategoryLink, IsLink: true})
	}
	if t.Deadline != "" {
		badges = append(badges, domain.Badge{Text: "Deadline: " + t.Deadline, Category: domain.BadgeCategoryDefault})
	}
	row.Badges = badges
	return row
}

func adaptPKSF(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	value := t.Date
	if value == "" {
		value = "No date"
	}
	row.PrimaryDate = domain.DateInfo{Label: "Date", Value: value}
	badges := make([]domain.Badge, 0, 3)
	if t.Views != "" {
		badges = append(badges, domain.Badge{Text: t.Views, Category: domain.BadgeCategoryViews})
	}
	if t.Likes != "" {
		badges = append(badges, domain.Badge{Text: t.Likes, Category: domain.BadgeCategoryLikes})
	}
	if t.Author != "" {
		badges = append(badges, domain.Badge{Text: "By: " + t.Author, Category: domain.BadgeCategoryDefault})
	}
	row.Badges = badges
	return row
}

func adaptUNDP(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	if t.Organization == "" && t.Country != "" {
		row.Organization = "UNDP - " + t.Country
	}
	value := t.Deadline
	if value == "" {
		value = "No deadline"
	}
	row.PrimaryDate = domain.DateInfo{Label: "Deadline", Value: value}
	badges := make([]domain.Badge, 0, 3)
	if t.ProcessType != "" {
		badges = append(badges, domain.Badge{Text: t.ProcessType, Category: domain.BadgeCategoryProcess})
	}
	if t.RefNo != "" {
		badges = append(badges, domain.Badge{Text: t.RefNo, Category: domain.BadgeCategoryRef})
	}
	if t.CountryCode != "" {
		badges = append(badges, domain.Badge{Text: t.CountryCode, Category: domain.BadgeCategoryDefault})
	}
	row.Badges = badges
	return row
}

func adaptWorldBank(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	if t.Organization == "" {
		country := t.Country
		if country == "" {
			country = "Bangladesh"
		}
		row.Organization = "World Bank - " + country
	}
	value := t.ApprovalDate
	if value == "" {
		value = "Pending"
	}
	row.PrimaryDate = domain.DateInfo{Label: "Approval", Value: value}
	badges := make([]domain.Badge, 0, 4)
	if t.Status != "" {
		badges = append(badges, domain.Badge{Text: t.Status, Category: domain.BadgeCategoryStatus})
	}
	if t.ProjectID != "" {
		badges = append(badges, domain.Badge{Text: t.ProjectID, Category: domain.BadgeCategoryDefault})
	}
	if t.Amount != "" {
		badges = append(badges, domain.Badge{Text: formatAmount(t.Amount), Category: domain.BadgeCategoryAmount})
	}
	if t.LastStage != "" {
		badges = append(badges, domain.Badge{Text: t.LastStage, Category: domain.BadgeCategoryStage})
	}
	row.Badges = badges
	return row
}

func adaptUNGM(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	value := t.Deadline
	if value == "" {
		value = "No deadline"
	}
	row.PrimaryDate = domain.DateInfo{Label: "Deadline", Value: value}
	badges := make([]domain.Badge, 0, 3)
	if t.OpportunityType != "" {
		badges = append(badges, domain.Badge{Text: t.OpportunityType, Category: domain.BadgeCategoryDefault})
	}
	if t.Reference != "" {
		badges = append(badges, domain.Badge{Text: t.Reference, Category: domain.BadgeCategoryRef})
	}
	if t.RemainingDays != "" {
		badges = append(badges, domain.Badge{Text: t.RemainingDays, Category: domain.BadgeCategoryDefault})
	}
	row.Badges = badges
	return row
}

func adaptBPPA(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	if t.Organization == "" && t.ProcuringEntity != "" {
		row.Organization = t.ProcuringEntity
	}
	value := "No closing date"
	if t.ClosingDate != "" {
		value = t.ClosingDate
		if t.ClosingTime != "" {
			value += " " + t.ClosingTime
		}
	}
	row.PrimaryDate = domain.DateInfo{Label: "Closing", Value: value}
	badges := make([]domain.Badge, 0, 5)
	if t.ReferenceNo != "" {
		badges = append(badges, domain.Badge{Text: "Ref: " + t.ReferenceNo, Category: domain.BadgeCategoryRef})
	}
	if t.PublicationDate != "" {
		badges = append(badges, domain.Badge{Text: "Published: " + t.PublicationDate, Category: domain.BadgeCategoryDefault})
	}
	if t.Place != "" {
		badges = append(badges, domain.Badge{Text: t.Place, Category: domain.BadgeCategoryDefault})
	}
	if t.ProcuringEntity != "" {
		badges = append(badges, domain.Badge{Text: truncate(t.ProcuringEntity, 30), Category: domain.BadgeCategoryDefault})
	}
	if t.DetailURL != "" {
		badges = append(badges, domain.Badge{Text: "View Details", Category: domain.BadgeCategoryLink, IsLink: true})
	}
	row.Badges = badges
	return row
}

func adaptADB(t domain.Tender) domain.CanonicalRow {
	row := adaptDefault(t)
	value := t.ApprovalDate
	if value == "" {
		value = "Pending"
	}
	row.PrimaryDate = domain.DateInfo{Label: "Approval", Value: value}
	badges := make([]domain.Badge, 0, 3)
	if t.Status != "" {
		badges = append(badges, domain.Badge{Text: t.Status, Category: domain.BadgeCategoryStatus})
	}
	if t.ProjectID != "" {
		badges = append(badges, domain.Badge{Text: t.ProjectID, Category: domain.BadgeCategoryDefault})
	}
	if t.Sector != "" {
		badges = append(badges, domain.Badge{Text: t.Sector, Category: domain.BadgeCategoryDefault})
	}
	row.Badges = badges
	return row
}

// formatAmount renders a monetary field as a badge label. Numeric values get
// a dollar prefix and thousand separators; anything else passes through so a
// malformed amount never drops the badge.
func formatAmount(raw string) string {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	numeric := cleaned
	if i := strings.IndexFunc(cleaned, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != ','
	}); i >= 0 {
		numeric = cleaned[:i]
	}
	numeric = strings.ReplaceAll(strings.TrimSpace(numeric), ",", "")
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return raw
	}
	return "$" + addThousands(value)
}

// addThousands formats with comma separators, dropping a ".00" fraction the
// way toLocaleString does for whole numbers.
func addThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 && r != '-' {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + fracPart
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
