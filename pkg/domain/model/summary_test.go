package model_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/muesli/termenv"
)

func newSummary() *model.Summary {
	s := &model.Summary{RunID: "run-1", Owner: "test-org"}
	s.AddProject(&model.Project{
		Name:           "orange",
		URL:            "https://github.com/test-org/orange",
		DefaultBranch:  "main",
		TemplateURL:    "https://github.com/test-org/template",
		TemplateBranch: "main",
		Status:         model.StatusUpToDate,
	})
	s.AddProject(&model.Project{
		Name:           "blue",
		URL:            "https://github.com/test-org/blue",
		Maintainer:     "bob",
		DefaultBranch:  "main",
		TemplateURL:    "https://github.com/test-org/template",
		TemplateBranch: "main",
		Status:         model.StatusUpdatedThisRun,
		PullRequest: &model.PullRequest{
			Number:  7,
			HTMLURL: "https://github.com/test-org/blue/pull/7",
		},
	})
	s.AddProject(&model.Project{
		Name:           "green",
		URL:            "https://github.com/test-org/green",
		Maintainer:     "alice",
		DefaultBranch:  "master",
		TemplateURL:    "https://github.com/test-org/template",
		TemplateBranch: "dev",
		Status:         model.StatusUpToDate,
	})
	s.Skip("red", "https://github.com/test-org/red", model.SkipReasonArchived)
	s.Skip("pink", "https://github.com/test-org/pink", model.SkipReasonNoMarker)
	return s
}

func TestSummaryTitle(t *testing.T) {
	gt.V(t, newSummary().Title()).Equal("Projects: 3   Outdated: 1   Up to date: 2")
	gt.V(t, newSummary().CountUpToDate()).Equal(2)
}

func TestSummaryPrint(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, newSummary().Print(&buf, time.Now()))
	out := buf.String()

	gt.S(t, out).Contains("Projects: 3   Outdated: 1   Up to date: 2")
	gt.S(t, out).Contains("Maintainer")
	gt.S(t, out).Contains("Pull request:    https://github.com/test-org/blue/pull/7")
	gt.S(t, out).Contains("Template branch: dev")
	gt.S(t, out).Contains("Skipped projects: 2")
	gt.S(t, out).Contains("Skip reason")

	// maintainers are sorted, projects without maintainer come last
	alice := strings.Index(out, "alice")
	bob := strings.Index(out, "bob")
	none := strings.Index(out, "None")
	gt.True(t, alice >= 0 && alice < bob)
	gt.True(t, bob < none)

	// skipped projects are sorted by reason
	gt.True(t, strings.Index(out, "test-org/pink") < strings.Index(out, "test-org/red"))

	// the projects table comes first
	gt.True(t, strings.Index(out, "Projects: 3") < strings.Index(out, "Skipped projects"))
}

func TestSummaryPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, (&model.Summary{}).Print(&buf, time.Now()))
	gt.V(t, buf.Len()).Equal(0)
}

func TestSummaryPrintOnlySkipped(t *testing.T) {
	s := &model.Summary{}
	s.Skip("red", "https://github.com/test-org/red", model.SkipReasonArchived)

	var buf bytes.Buffer
	gt.NoError(t, s.Print(&buf, time.Now()))
	gt.S(t, buf.String()).Contains("Skipped projects: 1")
	gt.False(t, strings.Contains(buf.String(), "Projects: "))
}

func TestSummaryRecords(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	records := newSummary().Records(ts)

	gt.A(t, records).Length(5)
	gt.V(t, records[1].Name).Equal("blue")
	gt.V(t, records[1].Status).Equal(string(model.StatusUpdatedThisRun))
	gt.V(t, records[1].PullRequestURL).Equal("https://github.com/test-org/blue/pull/7")
	gt.V(t, records[1].RunID).Equal(newSummary().RunID)
	gt.V(t, records[1].Timestamp).Equal(ts)

	gt.V(t, records[3].Name).Equal("red")
	gt.V(t, records[3].Status).Equal(string(model.StatusSkipped))
	gt.V(t, records[3].SkipReason).Equal(model.SkipReasonArchived)
	gt.V(t, records[3].Owner).Equal("test-org")
}

func TestSummaryPrintColorProfile(t *testing.T) {
	t.Run("forced colors", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, newSummary().Print(&buf, time.Now(), model.WithColorProfile(termenv.ANSI)))
		gt.S(t, buf.String()).Contains("\x1b[")
	})

	t.Run("no colors", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, newSummary().Print(&buf, time.Now(), model.WithColorProfile(termenv.Ascii)))
		gt.False(t, strings.Contains(buf.String(), "\x1b["))
	})
}
