// Package output provides terminal formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"ttask/internal/service"
)

var (
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	idStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

// Formatter renders tasks and session info to a writer. With color off,
// all styling is dropped, which also keeps test output byte-stable.
type Formatter struct {
	w     io.Writer
	color bool
}

// New creates a Formatter.
func New(w io.Writer, color bool) *Formatter {
	return &Formatter{w: w, color: color}
}

func (f *Formatter) render(s lipgloss.Style, text string) string {
	if !f.color {
		return text
	}
	return s.Render(text)
}

// Task formats a task line.
// Format: "{ID:>4}  [{x| }]  {TITLE}", with the due date appended when set.
func (f *Formatter) Task(t service.Task) {
	box := "[ ]"
	if t.Completed {
		box = f.render(doneStyle, "[x]")
	}
	id := f.render(idStyle, fmt.Sprintf("%4s", t.ID))
	line := fmt.Sprintf("%s  %s  %s", id, box, normalizeTitle(t.Title))
	if t.DueDate != nil {
		line += "  " + f.render(mutedStyle, "due "+t.DueDate.Format("2006-01-02"))
	}
	fmt.Fprintln(f.w, line)
}

// TaskDetail formats the full view of a single task.
func (f *Formatter) TaskDetail(t service.Task) {
	status := "open"
	if t.Completed {
		status = f.render(doneStyle, "completed")
	}
	f.field("Task", t.ID)
	f.field("Title", normalizeTitle(t.Title))
	f.field("Status", status)
	if t.Description != "" {
		f.field("Description", t.Description)
	}
	if t.DueDate != nil {
		f.field("Due", t.DueDate.Format("2006-01-02"))
	}
	if !t.CreatedAt.IsZero() {
		f.field("Created", t.CreatedAt.Format("2006-01-02 15:04"))
	}
	if !t.UpdatedAt.IsZero() {
		f.field("Updated", t.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func (f *Formatter) field(label, value string) {
	fmt.Fprintf(f.w, "%s  %s\n", f.render(labelStyle, fmt.Sprintf("%-11s", label)), value)
}

// Session formats the logged-in identity line.
func (f *Formatter) Session(sess service.Session) {
	who := sess.User.Email
	if sess.User.Name != "" {
		who = sess.User.Name + " <" + sess.User.Email + ">"
	}
	fmt.Fprintf(f.w, "%s %s\n", who, f.render(mutedStyle, "(id "+sess.User.ID+")"))
}

// ColorEnabled reports whether styled output should be used for w.
// Color is off for non-terminals, NO_COLOR, and dumb terminals.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// normalizeTitle normalizes a task title for display.
// Newlines are replaced with spaces; blank titles become "(untitled)".
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
