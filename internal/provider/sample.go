package provider

import "tenderpulse/pkg/contracts/domain"

// SampleData returns the built-in dataset used when the provider is
// unreachable and no cached payload exists. The records mirror real source
// shapes so the whole pipeline stays exercisable offline.
func SampleData() domain.SourceMap {
	return domain.SourceMap{
		domain.SourceBDJobs: {
			{
				ID:           1,
				Source:       domain.SourceBDJobs,
				Organization: "World Bank",
				Title:        "Consultant for Digital Transformation Project",
				Posted:       "2024-12-20",
				Deadline:     "2025-01-15",
			},
			{
				ID:           2,
				Source:       domain.SourceBDJobs,
				Organization: "UNDP Bangladesh",
				Title:        "Supply and Installation of IT Equipment",
				Posted:       "2024-12-19",
				Deadline:     "2025-01-10",
			},
		},
		domain.SourceBPPA: {
			{
				ID:              1,
				Source:          domain.SourceBPPA,
				Title:           "Selection of a Firm for GAP Information Website Development",
				ReferenceNo:     "12.01.0000.924.040.07.0044.26-120",
				ProcuringEntity: "Project Director, TARAPS",
				PublicationDate: "15/02/2026",
				ClosingDate:     "02/03/2026",
				Place:           "Dhaka",
			},
		},
		domain.SourceUNDP: {
			{
				ID:       1,
				Source:   domain.SourceUNDP,
				Title:    "National Consultant - Programme Support",
				RefNo:    "UNDP-BGD-01079",
				Deadline: "14-Feb-26",
				Country:  "Bangladesh",
			},
		},
		domain.SourceWorldBank: {
			{
				ID:        1,
				Source:    domain.SourceWorldBank,
				Title:     "Bangladesh Road Safety Project",
				ProjectID: "P171023",
				Amount:    "$300.00 million",
				Status:    "Active",
			},
		},
		domain.SourceUNGM: {},
		domain.SourcePKSF: {},
		domain.SourceCare: {},
	}
}
