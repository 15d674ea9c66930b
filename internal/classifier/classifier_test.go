package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchJobBoard(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		wantSlug string
		wantOK   bool
	}{
		{
			name:     "lever hosted board",
			href:     "https://jobs.lever.co/acme",
			wantSlug: "acme",
			wantOK:   true,
		},
		{
			name:     "greenhouse board",
			href:     "https://boards.greenhouse.io/initech/jobs/123",
			wantSlug: "initech",
			wantOK:   true,
		},
		{
			name:     "ashby board",
			href:     "https://jobs.ashbyhq.com/hooli",
			wantSlug: "hooli",
			wantOK:   true,
		},
		{
			name:     "linkedin company jobs",
			href:     "https://www.linkedin.com/company/acme/jobs/",
			wantSlug: "acme",
			wantOK:   true,
		},
		{
			name:   "self hosted careers page is not a board",
			href:   "https://acme.com/careers",
			wantOK: false,
		},
		{
			name:   "plain homepage",
			href:   "https://acme.com",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug, ok := MatchJobBoard(tt.href)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSlug, slug)
		})
	}
}

// A URL matching two board templates must yield the first declared one:
// jobs.lever.co/x matches both the jobs.lever.co and *.lever.co patterns, and
// the slug must come from the first.
func TestMatchJobBoardOrder(t *testing.T) {
	slug, ok := MatchJobBoard("https://jobs.lever.co/acme")
	assert.True(t, ok)
	assert.Equal(t, "acme", slug, "first declared pattern must win")
}

func TestIsCareerLinkText(t *testing.T) {
	positive := []string{
		"Careers",
		"View open JOBS",
		"We're hiring!",
		"Join the team",
		"Join  us",
		"Work with us",
		"Apply now",
		"Life at Acme",
		"Current openings",
	}
	for _, text := range positive {
		assert.True(t, IsCareerLinkText(text), "expected match: %q", text)
	}

	negative := []string{
		"Pricing",
		"Contact",
		"Blog",
		"Our products",
	}
	for _, text := range negative {
		assert.False(t, IsCareerLinkText(text), "expected no match: %q", text)
	}
}

func TestIsCareerPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/careers", true},
		{"/careers/", true},
		{"/about/careers", true},
		{"/join-us", true},
		{"/careers/remote", true},
		{"/about/us", false},
		{"/pricing", false},
		{"/", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCareerPath(tt.path))
		})
	}
}

func TestHasCareerSignal(t *testing.T) {
	assert.True(t, HasCareerSignal("<h1>Open Positions</h1>"))
	assert.True(t, HasCareerSignal("explore CAREER opportunities"))
	assert.True(t, HasCareerSignal("current vacancies"))
	assert.False(t, HasCareerSignal("<h1>Our products</h1><p>Buy now</p>"))
}

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"https://www.acme.com", "acme.com", true},
		{"https://acme.com/about", "acme.com", true},
		{"http://shop.acme.co/x", "acme.co", true},
		{"not a url", "", false},
	}

	for _, tt := range tests {
		got, ok := BaseDomain(tt.url)
		assert.Equal(t, tt.wantOK, ok, tt.url)
		assert.Equal(t, tt.want, got, tt.url)
	}
}
