package model

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/muesli/termenv"
)

// Summary collects the outcome of one run over an owner's repositories.
type Summary struct {
	RunID           types.RunID
	Owner           string
	Projects        []*Project
	SkippedProjects []*SkippedProject
}

func (x *Summary) AddProject(p *Project) {
	x.Projects = append(x.Projects, p)
}

func (x *Summary) Skip(name, url, reason string) {
	x.SkippedProjects = append(x.SkippedProjects, &SkippedProject{
		Name:   name,
		URL:    url,
		Reason: reason,
	})
}

func (x *Summary) CountUpToDate() int {
	var n int
	for _, p := range x.Projects {
		if p.Status == StatusUpToDate {
			n++
		}
	}
	return n
}

// Title returns the heading of the projects table.
func (x *Summary) Title() string {
	upToDate := x.CountUpToDate()
	return fmt.Sprintf("Projects: %d   Outdated: %d   Up to date: %d",
		len(x.Projects), len(x.Projects)-upToDate, upToDate)
}

var (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorRed    = lipgloss.Color("1")
)

type printConfig struct {
	profile *termenv.Profile
}

type PrintOption func(*printConfig)

// WithColorProfile forces the color profile instead of detecting it from w.
func WithColorProfile(profile termenv.Profile) PrintOption {
	return func(cfg *printConfig) {
		cfg.profile = &profile
	}
}

// Print renders the projects table followed by the skipped projects table. Empty tables are
// omitted.
func (x *Summary) Print(w io.Writer, now time.Time, options ...PrintOption) error {
	var cfg printConfig
	for _, opt := range options {
		opt(&cfg)
	}

	var r *lipgloss.Renderer
	if cfg.profile != nil {
		r = lipgloss.NewRenderer(w, termenv.WithProfile(*cfg.profile))
		r.SetColorProfile(*cfg.profile)
	} else {
		r = lipgloss.NewRenderer(w)
	}

	var out strings.Builder
	if len(x.Projects) > 0 {
		out.WriteString(x.renderProjects(r, now))
	}

	if len(x.SkippedProjects) > 0 {
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(x.renderSkipped(r))
	}

	if out.Len() == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, out.String()); err != nil {
		return goerr.Wrap(err, "failed to write summary")
	}
	return nil
}

type maintainerGroup struct {
	maintainer string
	projects   []*Project
}

// groupByMaintainer sorts projects by maintainer. Projects without a maintainer come last.
func groupByMaintainer(projects []*Project) []*maintainerGroup {
	sorted := make([]*Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Maintainer, sorted[j].Maintainer
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})

	var groups []*maintainerGroup
	for _, p := range sorted {
		if n := len(groups); n > 0 && groups[n-1].maintainer == p.Maintainer {
			groups[n-1].projects = append(groups[n-1].projects, p)
			continue
		}
		groups = append(groups, &maintainerGroup{
			maintainer: p.Maintainer,
			projects:   []*Project{p},
		})
	}
	return groups
}

func (x *Summary) renderProjects(r *lipgloss.Renderer, now time.Time) string {
	cell := r.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle()).
		Headers("Maintainer", "Projects").
		StyleFunc(func(row, col int) lipgloss.Style { return cell })

	for _, group := range groupByMaintainer(x.Projects) {
		maintainerColor := colorGreen
		details := make([]string, 0, len(group.projects))

		for _, p := range group.projects {
			statusColor := colorGreen
			switch p.Status {
			case StatusUpdatedThisRun:
				statusColor = colorYellow
				maintainerColor = colorRed
			case StatusExistingPR:
				statusColor = colorRed
				maintainerColor = colorRed
			}
			status := r.NewStyle().Foreground(statusColor)

			lines := []string{
				"Project:         " + p.Name,
				"URL:             " + p.URL,
				status.Render("Status:          " + p.StatusLabel(now)),
			}
			if p.Status != StatusUpToDate && p.PullRequest != nil {
				lines = append(lines, status.Render("Pull request:    "+p.PullRequest.HTMLURL))
			}
			lines = append(lines,
				"Default branch:  "+p.DefaultBranch.String(),
				"Template URL:    "+p.TemplateURL,
				"Template branch: "+p.TemplateBranch.String(),
			)
			details = append(details, strings.Join(lines, "\n"))
		}

		name := group.maintainer
		if name == "" {
			name = "None"
		}
		t.Row(r.NewStyle().Foreground(maintainerColor).Render(name), strings.Join(details, "\n\n"))
	}

	return x.Title() + "\n" + t.Render()
}

func (x *Summary) renderSkipped(r *lipgloss.Renderer) string {
	skipped := make([]*SkippedProject, len(x.SkippedProjects))
	copy(skipped, x.SkippedProjects)
	sort.SliceStable(skipped, func(i, j int) bool {
		return skipped[i].Reason < skipped[j].Reason
	})

	cell := r.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle()).
		Headers("Project", "URL", "Skip reason").
		StyleFunc(func(row, col int) lipgloss.Style { return cell })

	for _, p := range skipped {
		t.Row(p.Name, p.URL, p.Reason)
	}

	return fmt.Sprintf("Skipped projects: %d", len(skipped)) + "\n" + t.Render()
}
