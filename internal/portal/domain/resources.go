package domain

// Resource is a download offered in the client area.
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Label       string `json:"label"`
}

// ClientResources is the fixed client area catalogue.
var ClientResources = []Resource{
	{"Financial Analysis Template", "Comprehensive Excel template for analyzing nonprofit and small business financials.", "/downloads/financial_analysis_template.xlsx", "Download Template"},
	{"Underwriting Checklist - Nonprofit", "Complete checklist for underwriting loans to nonprofit organizations.", "/downloads/nonprofit_underwriting_checklist.pdf", "Download PDF"},
	{"Due Diligence Guide", "Comprehensive guide to conducting due diligence for community development projects.", "/downloads/due_diligence_guide.pdf", "Download Guide"},
	{"Real Estate Pro Forma", "Advanced pro forma template for community real estate development projects.", "/downloads/real_estate_pro_forma.xlsx", "Download Template"},
	{"Impact Measurement Toolkit", "Tools and templates for measuring and reporting social impact metrics.", "/downloads/impact_measurement_toolkit.zip", "Download Toolkit"},
	{"Client Case Studies", "In-depth case studies of successful client projects with financial details.", "/downloads/client_case_studies.pdf", "View Case Studies"},
}

// Article is a thought leadership piece hosted elsewhere.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	ExternalURL string `json:"externalUrl"`
}

var articles = map[string]Article{
	"ai-cdfis-part-2": {
		ID:          "ai-cdfis-part-2",
		Title:       "AI and CDFIs: From Concept to Implementation (Part II)",
		Author:      "Dr. Maria Rodriguez",
		Date:        "March 23, 2025",
		Category:    "Technology & Innovation",
		ExternalURL: "https://www.linkedin.com/pulse/ai-cdfis-from-concept-implementation-part-ii-amir-ali-ncxbe/",
	},
}

// LookupArticle reports false for unknown ids.
func LookupArticle(id string) (Article, bool) {
	a, ok := articles[id]
	return a, ok
}
