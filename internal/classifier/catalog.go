package classifier

import "regexp"

// Catalog ordering is a contract: every matcher below returns the FIRST
// entry that matches, so reordering changes results.

// PathPatterns are candidate career page paths probed directly against a
// company's base URL.
var PathPatterns = []string{
	// Standard paths
	"/careers", "/jobs", "/join-us", "/work-with-us", "/join",
	"/job-openings", "/vacancies", "/positions", "/employment",
	"/career", "/work", "/hiring", "/apply", "/job-opportunities",

	// Opportunities variations
	"/opportunities", "/career-opportunities", "/open-opportunities",
	"/current-opportunities", "/job-opportunities",

	// Openings variations
	"/open-positions", "/openings", "/current-openings", "/job-openings",

	// Company section paths
	"/company/careers", "/company/jobs", "/company/join-us", "/company/work-with-us",
	"/company/opportunities", "/company/openings", "/company/positions",

	// About section paths
	"/about/careers", "/about/jobs", "/about/join-us", "/about/work-with-us",
	"/about/opportunities", "/about-us/careers", "/about-us/jobs",

	// Team section paths
	"/team/join", "/team/careers", "/team/jobs", "/join-the-team",
	"/our-team/careers", "/our-team/jobs",

	// Life section paths
	"/life/careers", "/life/jobs", "/life", "/life-at-company",

	// HR section paths
	"/hr/careers", "/hr/jobs", "/hr/opportunities", "/recruitment",

	// Hyphenated variations
	"/career-opportunities", "/job-opportunities", "/job-openings",

	// Regional variations
	"/us/careers", "/usa/careers", "/en/careers", "/global/careers",
	"/careers/india", "/jobs/india", "/careers/remote",
}

// SubdomainGuesses are probed as https://{guess}.{basedomain}.
var SubdomainGuesses = []string{
	"careers", "jobs", "work", "employment", "hiring", "joinus",
	"apply", "talent", "hr", "recruitment", "join",
	"opportunities", "team",
}

// jobBoardPatterns recognize third-party ATS job board URLs. The capture
// group, when present, is the company slug on that platform.
var jobBoardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)jobs\.lever\.co/([^/]+)`),
	regexp.MustCompile(`(?i)([^/]+)\.lever\.co`),
	regexp.MustCompile(`(?i)boards\.greenhouse\.io/([^/]+)`),
	regexp.MustCompile(`(?i)jobs\.greenhouse\.io/([^/]+)`),
	regexp.MustCompile(`(?i)jobs\.ashbyhq\.com/([^/]+)`),
	regexp.MustCompile(`(?i)([^/]+)\.bamboohr\.com/jobs`),
	regexp.MustCompile(`(?i)workday\.([^/]+)\.com/careers`),
	regexp.MustCompile(`(?i)([^/]+)\.workday\.com/careers`),
	regexp.MustCompile(`(?i)([^/]+)\.recruitee\.com`),
	regexp.MustCompile(`(?i)([^/]+)\.applytojob\.com`),
	regexp.MustCompile(`(?i)([^/]+)\.breezy\.hr`),
	regexp.MustCompile(`(?i)([^/]+)\.comeet\.com/jobs`),
	regexp.MustCompile(`(?i)([^/]+)\.teamtailor\.com`),
	regexp.MustCompile(`(?i)([^/]+)\.rippling-ats\.com`),
	regexp.MustCompile(`(?i)linkedin\.com/company/([^/]+)/jobs`),
	regexp.MustCompile(`(?i)indeed\.com/cmp/([^/]+)/jobs`),
	regexp.MustCompile(`(?i)smartrecruiters\.com/([^/]+)`),
}

// LinkTextPatterns match anchor text that points at a careers page,
// highest-priority first.
var LinkTextPatterns = []*regexp.Regexp{
	// Basic terms
	regexp.MustCompile(`(?i)career`),
	regexp.MustCompile(`(?i)job`),
	regexp.MustCompile(`(?i)employment`),
	regexp.MustCompile(`(?i)position`),
	regexp.MustCompile(`(?i)vacanc`),
	regexp.MustCompile(`(?i)opening`),
	regexp.MustCompile(`(?i)opportunit`),

	// Phrases
	regexp.MustCompile(`(?i)join(\s+the)?\s+team`),
	regexp.MustCompile(`(?i)join\s+us`),
	regexp.MustCompile(`(?i)work\s+(with|for)\s+us`),
	regexp.MustCompile(`(?i)we.?re\s+hiring`),
	regexp.MustCompile(`(?i)we\s+are\s+hiring`),
	regexp.MustCompile(`(?i)apply\s+(now|today)`),
	regexp.MustCompile(`(?i)work\s+at`),
	regexp.MustCompile(`(?i)work\s+for`),

	// Action-oriented
	regexp.MustCompile(`(?i)explore\s+(job|career)`),
	regexp.MustCompile(`(?i)find\s+a\s+(job|career)`),
	regexp.MustCompile(`(?i)become\s+part\s+of`),
	regexp.MustCompile(`(?i)apply\s+for`),
	regexp.MustCompile(`(?i)current\s+(opening|position|vacanc)`),

	// Career-specific
	regexp.MustCompile(`(?i)career\s+path`),
	regexp.MustCompile(`(?i)job\s+search`),
	regexp.MustCompile(`(?i)join\s+our\s+talent`),
	regexp.MustCompile(`(?i)life\s+at`),
	regexp.MustCompile(`(?i)work\s+life`),
}

// NavLabels are navigation section names that commonly hide a careers link
// in a dropdown.
var NavLabels = []string{"company", "about", "about us", "team", "life", "work"}

// SearchQueryTemplates feed the search-engine fallback; %s is the company name.
var SearchQueryTemplates = []string{
	"%s careers",
	"%s jobs",
	"%s hiring",
	"%s join team",
	"%s careers page",
}

var (
	signalRegex       = regexp.MustCompile(`(?i)(career|job|position|opening|opportunit|vacanc)`)
	directSignalRegex = regexp.MustCompile(`(?i)(career|job|position|opening|opportunit|work with us|employ|vacanc)`)
)

// SearchHeadingPattern filters search result headings worth clicking.
var SearchHeadingPattern = regexp.MustCompile(`(?i)(career|job|position|opening|join|work)`)
