package faq

import "strings"

// Rule is one intent. It fires when any trigger occurs anywhere in the
// lower-cased input.
type Rule struct {
	ID       string
	Triggers []string
	Response string
}

// Matches expects lower already lower-cased.
func (r Rule) Matches(lower string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// Rules is evaluated top to bottom; the first matching rule wins even when a
// later one would match more triggers.
type Rules []Rule

func (rs Rules) First(lower string) (Rule, bool) {
	for _, r := range rs {
		if r.Matches(lower) {
			return r, true
		}
	}
	return Rule{}, false
}

// faqRules are the four canned intents shown as example questions.
var faqRules = Rules{
	{
		ID:       "services",
		Triggers: []string{"service", "offer", "provide", "do you do"},
		Response: "Clarity Impact Finance provides the following services: Underwriting, Lending Strategy, Process Mapping, Training, and Compliance/Asset Management.",
	},
	{
		ID:       "contact",
		Triggers: []string{"get in touch", "contact", "reach", "talk to"},
		Response: `You can get in touch with our team by emailing us at contact@clarityimpactfinance.com or by calling (555) 123-4567 during business hours. You can also use the contact form in this chat by clicking the "Contact Us" button.`,
	},
	{
		ID:       "pricing",
		Triggers: []string{"price", "cost", "fee", "charge", "how much", "pricing"},
		Response: "Let's discuss your specific needs to determine the right pricing for your organization.",
	},
	{
		ID:       "location",
		Triggers: []string{"where", "location", "based", "office", "address"},
		Response: "We are based in New York but work with clients nationally.",
	},
}

// smallTalkRules follow the FAQ intents in the general scope. "hi" is a plain
// substring, so words like "this" count as a greeting.
var smallTalkRules = Rules{
	{
		ID:       "greeting",
		Triggers: []string{"hello", "hi", "hey"},
		Response: "Hello! I'm IRIS, your Impact Resource & Investment Specialist. How can I assist you today?",
	},
	{
		ID:       "thanks",
		Triggers: []string{"thank"},
		Response: "You're welcome! I'm glad I could help. Is there anything else you'd like to know about our services?",
	},
	{
		ID:       "human",
		Triggers: []string{"contact", "speak", "human", "person"},
		Response: "If you'd like to speak with a member of our team, please email us at contact@clarityimpactfinance.com or call (555) 123-4567 during business hours (9am-5pm ET, Monday through Friday).",
	},
}

var generalRules = append(append(Rules{}, faqRules...), smallTalkRules...)

var definitionTriggers = []string{"what", "definition", "explain"}

type topic struct {
	Label    string
	Greeting string
	Rules    Rules
	// Overview answers anything the rules miss, so a topic never falls
	// through to the general scope.
	Overview Rule
}

var topics = map[Category]topic{
	CategoryCDFI: {
		Label:    "CDFIs",
		Greeting: "You've selected Community Development Financial Institutions. What would you like to know about CDFIs? I can explain what they are, certification requirements, funding sources, or their impact.",
		Rules: Rules{
			{
				ID:       "cdfi.definition",
				Triggers: definitionTriggers,
				Response: "A Community Development Financial Institution (CDFI) is a specialized financial institution that works in market niches underserved by traditional financial institutions. CDFIs provide a unique range of financial products and services to economically disadvantaged communities.",
			},
			{
				ID:       "cdfi.certification",
				Triggers: []string{"require", "certification"},
				Response: "To be certified as a CDFI, an organization must: be a legal entity, have a primary mission of promoting community development, serve one or more target markets, provide development services, maintain accountability to its defined target market, and be a non-governmental entity.",
			},
			{
				ID:       "cdfi.funding",
				Triggers: []string{"fund", "capital", "financing"},
				Response: "CDFIs are funded through various sources including: the CDFI Fund, private investment, bank loans (often CRA-motivated), foundation grants and program-related investments, and religious institutions. We can help you develop strategies to access these funding sources.",
			},
		},
		Overview: Rule{
			ID:       "cdfi.overview",
			Response: "CDFIs are vital organizations that provide financial services to underserved communities. Our team at Clarity Impact Finance has extensive experience working with CDFIs on underwriting, lending strategies, process mapping, and compliance.",
		},
	},
	CategoryNMTC: {
		Label:    "New Markets Tax Credit",
		Greeting: "You've selected the New Markets Tax Credit Program. What would you like to know about NMTCs? I can explain what they are, eligibility criteria, the application process, or their community impact.",
		Rules: Rules{
			{
				ID:       "nmtc.definition",
				Triggers: definitionTriggers,
				Response: "The New Markets Tax Credit (NMTC) Program incentivizes community development and economic growth through the use of tax credits that attract private investment to distressed communities. The program is administered by the CDFI Fund.",
			},
			{
				ID:       "nmtc.eligibility",
				Triggers: []string{"eligible", "qualify"},
				Response: "To be eligible for NMTC, projects must be located in qualifying low-income census tracts (typically with poverty rates of at least 20% or median family incomes below 80% of area median). Eligible businesses typically include commercial and industrial facilities, community facilities, mixed-use developments, and certain housing projects.",
			},
			{
				ID:       "nmtc.process",
				Triggers: []string{"apply", "process", "how do"},
				Response: "The NMTC application process involves: 1) Finding a Community Development Entity (CDE) with NMTC allocation, 2) Meeting the CDE's requirements and demonstrating community impact, 3) Structuring the transaction with the CDE and investors, and 4) Closing the financing. Our team can guide you through this complex process.",
			},
		},
		Overview: Rule{
			ID:       "nmtc.overview",
			Response: "The NMTC Program has deployed over $61 billion in tax credit authority since its inception. These investments have created or retained over 830,000 jobs and supported the construction of more than 215 million square feet of manufacturing, office, and retail space in low-income communities.",
		},
	},
	CategoryCharterSchools: {
		Label:    "Charter Schools",
		Greeting: "You've selected Charter Schools. What would you like to know about charter school finance? I can explain what charter schools are, funding sources, facility financing options, or their role in the education landscape.",
		Rules: Rules{
			{
				ID:       "charterSchools.definition",
				Triggers: definitionTriggers,
				Response: "Charter schools are public schools operating under a contract (or charter) that provides them with public funding but greater flexibility in their operations compared to traditional public schools. They are accountable for academic results and upholding their charter promises.",
			},
			{
				ID:       "charterSchools.funding",
				Triggers: []string{"fund", "finance", "capital"},
				Response: "Charter schools can access funding through various channels including: per-pupil funding from state/local sources, federal grants (like the Charter Schools Program), philanthropy, CDFIs, bonds, and specialized facilities financing. Clarity Impact Finance can help develop comprehensive financial strategies.",
			},
			{
				ID:       "charterSchools.facilities",
				Triggers: []string{"facility", "building", "space"},
				Response: "Charter school facility financing often involves a combination of approaches such as: leasing from a school district, commercial leases, mortgage loans from CDFIs or banks, tax-exempt bond financing, or working with specialized charter school facility developers. We can help navigate these options.",
			},
		},
		Overview: Rule{
			ID:       "charterSchools.overview",
			Response: "Charter schools serve over 3.6 million students nationwide and make up about 7% of all public schools. Our team specializes in helping charter schools develop sustainable financial models, access capital, and implement strong financial management practices.",
		},
	},
}
