package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCriteria = Criteria{
	Role:      []string{"product manager", "product owner", "product lead"},
	Seniority: []string{"senior", "group", "staff", "lead", "principal", "head"},
	Location:  []string{"bangalore", "bengaluru", "india", "remote"},
}

func TestFilterRequiresAllThree(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want bool
	}{
		{
			name: "role+seniority+location",
			job:  Job{Title: "Senior Product Manager", Location: "Bangalore"},
			want: true,
		},
		{
			name: "location matched via description",
			job:  Job{Title: "Principal Product Owner", Location: "", Description: "This role is fully remote."},
			want: true,
		},
		{
			name: "missing seniority",
			job:  Job{Title: "Product Manager", Location: "Bangalore"},
			want: false,
		},
		{
			name: "missing role",
			job:  Job{Title: "Senior Software Engineer", Location: "Bangalore"},
			want: false,
		},
		{
			name: "missing location",
			job:  Job{Title: "Senior Product Manager", Location: "Berlin", Description: "Onsite only."},
			want: false,
		},
		{
			name: "seniority in description does not count",
			job:  Job{Title: "Product Manager", Description: "senior role, remote", Location: "Remote"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter([]Job{tt.job}, testCriteria)
			if tt.want {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFilterNormalizesAccents(t *testing.T) {
	job := Job{Title: "Sénior Product Manager", Location: "Bengalúru"}
	assert.Len(t, Filter([]Job{job}, testCriteria), 1)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "can tho", normalizeText("Cần Thơ"))
	assert.Equal(t, "senior", normalizeText("Sénior"))
}
