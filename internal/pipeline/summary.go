package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#8BC34A"))

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(0, 2)

	summaryPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#2196F3"))

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))
)

// RenderSummary produces the end-of-run report: the generated file tree and
// the manual follow-up steps.
func RenderSummary(arts []Artifact, clusterName, region string) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("EKS artifact generation completed"))
	b.WriteString("\n\n")

	paths := make([]string, 0, len(arts))
	for _, a := range arts {
		paths = append(paths, a.Path)
	}
	sort.Strings(paths)

	b.WriteString("Generated files:\n")
	for _, p := range paths {
		b.WriteString("  " + summaryPathStyle.Render(p) + "\n")
	}

	b.WriteString("\nNext steps:\n")
	steps := []string{
		"Review and customize the generated files",
		"Set up AWS credentials and environment variables",
		"Run: cd terraform/stage1 && terraform init && terraform plan",
		"Run: terraform apply",
		fmt.Sprintf("Configure kubectl: aws eks update-kubeconfig --region %s --name %s", region, clusterName),
		"Deploy application: kubectl apply -f k8s/",
	}
	for i, s := range steps {
		b.WriteString(summaryDimStyle.Render(fmt.Sprintf("  %d. %s", i+1, s)) + "\n")
	}

	return summaryBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
