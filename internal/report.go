package internal

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ReportData for template injection
type ReportData struct {
	Title    string
	URL      string
	PostID   string
	VideoIDs []string
	Inserted []string
	Failed   []string
}

// BuildReport renders the markdown run report from the embedded template
func BuildReport(result *RunResult) (string, error) {
	content, err := defaultFS.ReadFile("summary.tmpl")
	if err != nil {
		return "", fmt.Errorf("reading report template: %w", err)
	}

	tmpl, err := template.New("report").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing report template: %w", err)
	}

	data := ReportData{
		Title:    result.Title,
		URL:      result.PlaylistURL(),
		PostID:   result.PostID,
		VideoIDs: result.VideoIDs,
		Inserted: result.Inserted,
		Failed:   result.Failed,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing report template: %w", err)
	}

	return buf.String(), nil
}

// getTerminalWidth gets terminal width with fallback
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}

	if width > 10 {
		return width - 4
	}

	return width
}

// RenderMarkdown renders markdown content with glamour
func RenderMarkdown(content string) (string, error) {
	width := getTerminalWidth()
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.EnvColorProfile()),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return rendered, nil
}
