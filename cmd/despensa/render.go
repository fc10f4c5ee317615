package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/Despensa_Go/internal/client"
	"github.com/osse101/Despensa_Go/internal/database"
	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/prepare"
)

// ConflictMessage is shown when a write lost an optimistic concurrency race
const ConflictMessage = "Changed by another process, refresh and retry"

var (
	colorPrimary = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorDanger  = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#8a94a6")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	successStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

func formatQuantity(q domain.Quantity) string {
	return strconv.FormatFloat(q.Quantity, 'f', -1, 64) + " " + string(q.Unit)
}

// table renders rows as left-aligned columns
func table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	line := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Render(cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}
	line(header, headerStyle)
	for _, row := range rows {
		line(row, lipgloss.NewStyle())
	}
	return b.String()
}

func renderPrepareResult(res *prepare.Result, dryRun bool) string {
	var b strings.Builder

	days := make([]string, len(res.Days))
	for i, d := range res.Days {
		days[i] = string(d)
	}
	title := fmt.Sprintf("Menu %s  scope %s", res.Menu.ID, res.Scope)
	if len(days) > 0 {
		title += "  days " + strings.Join(days, ",")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case res.Prepared:
		b.WriteString(successStyle.Render("Prepared. Pantry updated."))
	case dryRun && len(res.Shortages) == 0:
		b.WriteString(successStyle.Render("Dry run. Everything is available."))
	case dryRun:
		b.WriteString(warningStyle.Render("Dry run. Some ingredients are short."))
	default:
		b.WriteString(warningStyle.Render("Not prepared. Some ingredients are short."))
	}
	b.WriteString("\n")

	if len(res.Shortages) > 0 {
		rows := make([][]string, 0, len(res.Shortages))
		for _, s := range res.Shortages {
			available := "-"
			if s.Available != nil {
				available = formatQuantity(*s.Available)
			}
			rows = append(rows, []string{s.Name, formatQuantity(s.Required), available, formatQuantity(s.Missing), string(s.Reason)})
		}
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(strings.TrimRight(table([]string{"INGREDIENT", "REQUIRED", "AVAILABLE", "MISSING", "REASON"}, rows), "\n")))
		b.WriteString("\n")
	}

	if len(res.PantryUpdates) > 0 {
		rows := make([][]string, 0, len(res.PantryUpdates))
		for _, m := range res.PantryUpdates {
			to := "removed"
			if m.To != nil {
				to = formatQuantity(*m.To)
			}
			rows = append(rows, []string{m.Name, formatQuantity(m.From), to})
		}
		b.WriteString("\n")
		b.WriteString(table([]string{"ITEM", "FROM", "TO"}, rows))
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("menu version %d", res.Menu.Version)))
	b.WriteString("\n")
	return b.String()
}

func renderPantryPage(page *domain.PantryPage) string {
	if len(page.Items) == 0 {
		return mutedStyle.Render("Pantry is empty.") + "\n"
	}

	rows := make([][]string, 0, len(page.Items))
	for _, it := range page.Items {
		perishable := ""
		if it.Perishable {
			perishable = "yes"
		}
		rows = append(rows, []string{
			it.ID,
			it.Name,
			formatQuantity(domain.Quantity{Quantity: it.Quantity, Unit: it.Unit}),
			string(it.Category),
			perishable,
			strconv.Itoa(it.Version),
		})
	}

	out := table([]string{"ID", "NAME", "QUANTITY", "CATEGORY", "PERISHABLE", "VERSION"}, rows)
	if page.NextCursor != "" {
		out += mutedStyle.Render("more: --cursor "+page.NextCursor) + "\n"
	}
	return out
}

func renderMenu(m *domain.Menu) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Menu %s", m.ID)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("week of %s  %d persons  %s  %s  version %d",
		m.WeekStart, m.Persons, m.Scope, m.Status, m.Version)))
	b.WriteString("\n")

	for _, day := range m.PresentDays() {
		recipe := m.Days[day]
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", day, recipe.Title)))
		b.WriteString("\n")
		for _, ing := range recipe.Ingredients {
			b.WriteString(fmt.Sprintf("  - %s %s\n", formatQuantity(domain.Quantity{Quantity: ing.Quantity, Unit: ing.Unit}), ing.Name))
		}
	}

	if n := len(m.Prepared); n > 0 {
		last := m.Prepared[n-1]
		mode := "confirmed"
		if last.DryRun {
			mode = "dry run"
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d preparation(s), last %s (%s, %s)",
			n, last.At.Format("2006-01-02 15:04"), last.Scope, mode)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderMigrations(statuses []database.MigrationStatus) string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		state, at := "pending", ""
		if s.Applied {
			state = "applied"
			at = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{strconv.FormatInt(s.Version, 10), s.Name, state, at})
	}
	return table([]string{"VERSION", "NAME", "STATE", "APPLIED AT"}, rows)
}

func renderError(err error) string {
	if client.IsConflict(err) {
		return warningStyle.Render(ConflictMessage)
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		fields := make([]string, 0, len(apiErr.Fields))
		for f := range apiErr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		var b strings.Builder
		b.WriteString(errorStyle.Render("Error: " + apiErr.Message))
		for _, f := range fields {
			b.WriteString(fmt.Sprintf("\n  %s: %s", f, apiErr.Fields[f]))
		}
		return b.String()
	}
	return errorStyle.Render("Error: " + err.Error())
}
