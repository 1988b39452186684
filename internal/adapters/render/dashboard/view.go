package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// Limit caps the notifications and bets listed. Zero lists everything.
	Limit int
}

// Overview renders the signed-in summary: who, balances, chess link, inbox and open bets.
func Overview(overview application.Overview, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return overviewView(overview, opts, s) })
}

func Notifications(notifications []domain.Notification, unread int, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return notificationsView(notifications, unread, opts, s) })
}

func Bets(title string, bets []domain.Bet, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return betsView(title, bets, opts, s) })
}

func AdminDashboard(dashboard domain.Dashboard) (string, error) {
	return render(func(s styles) string { return adminView(dashboard, s) })
}

func overviewView(overview application.Overview, opts RenderOptions, s styles) string {
	if overview.Session.Anonymous() {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("ChessWager"),
			s.empty.Render("Not logged in. Run `cw login` to sign in."),
		)
	}

	lines := []string{
		s.title.Render("ChessWager"),
		s.user.Render(userTitle(overview.Session.Claims)),
	}
	if !overview.Session.Claims.ExpiresAt.IsZero() {
		lines = append(lines, s.header.Render(sessionLine(overview.Session.Claims.ExpiresAt, opts.Now)))
	}

	lines = append(lines,
		s.section.Render(balanceBlock(overview.Balances, overview.Currency, s)),
		s.section.Render(chessLinkLine(overview.ChessLink, s)),
		s.section.Render(notificationsView(overview.Notifications, overview.Unread, opts, s)),
		s.section.Render(betsView("Open bets", overview.OpenBets, opts, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func userTitle(claims domain.Claims) string {
	name := strings.TrimSpace(claims.Username)
	if name == "" {
		name = strings.TrimSpace(claims.Email)
	}
	if name == "" {
		name = claims.UserID
	}
	if claims.IsAdmin() {
		return fmt.Sprintf("%s (admin)", name)
	}
	return name
}

func sessionLine(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "session expires " + expiresAt.Format(time.RFC3339)
	}
	if !expiresAt.After(now) {
		return "session expired"
	}
	return "session expires in " + formatDuration(expiresAt.Sub(now))
}

func balanceBlock(balances domain.BalanceSnapshot, selected domain.Currency, s styles) string {
	parts := []string{s.title.Render("Balances")}
	for _, currency := range []domain.Currency{domain.CurrencyTokens, domain.CurrencySweepstakes} {
		label := s.key.Render(fmt.Sprintf("%-12s", currency.Label()+":"))
		amount := FormatAmount(balances.Of(currency))
		if currency == selected {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.selected.Render(amount), " ", s.header.Render("(selected)")))
			continue
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.detail.Render(amount)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func chessLinkLine(status domain.ChessLinkStatus, s styles) string {
	label := s.key.Render("Lichess:")
	if !status.Connected {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.empty.Render("not connected"))
	}
	if name := status.Username(); name != "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.success.Render("connected as "+name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.success.Render("connected"))
}

func notificationsView(notifications []domain.Notification, unread int, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Notifications"),
		s.header.Render(fmt.Sprintf("unread: %d", unread)),
	}

	if len(notifications) == 0 {
		lines = append(lines, s.empty.Render("No notifications."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, n := range limited(notifications, opts.Limit) {
		lines = append(lines, notificationLine(n, opts.Now, s))
	}
	if hidden := len(notifications) - len(limited(notifications, opts.Limit)); hidden > 0 {
		lines = append(lines, s.empty.Render(fmt.Sprintf("... %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func notificationLine(n domain.Notification, now time.Time, s styles) string {
	marker := " "
	style := s.read
	if !n.Read {
		marker = "*"
		style = s.unread
	}

	line := style.Render(fmt.Sprintf("%s %s", marker, strings.TrimSpace(n.Message)))
	meta := s.header.Render(fmt.Sprintf("[%s]", n.ID))
	if when := formatAge(n.CreatedAt, now); when != "" {
		meta += " " + s.header.Render(when)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, line, " ", meta)
}

func betsView(title string, bets []domain.Bet, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("bets: %d", len(bets))),
	}

	if len(bets) == 0 {
		lines = append(lines, s.empty.Render("No bets."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, bet := range limited(bets, opts.Limit) {
		lines = append(lines, betLine(bet, opts.Now, s))
	}
	if hidden := len(bets) - len(limited(bets, opts.Limit)); hidden > 0 {
		lines = append(lines, s.empty.Render(fmt.Sprintf("... %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func betLine(bet domain.Bet, now time.Time, s styles) string {
	parts := []string{
		s.user.Render(string(bet.ID)),
		s.detail.Render(fmt.Sprintf("%s %s", FormatAmount(bet.Amount), bet.Currency.Label())),
		statusStyle(bet.Status, s).Render(string(bet.Status)),
	}
	if tc := strings.TrimSpace(bet.TimeControl); tc != "" {
		parts = append(parts, s.key.Render(tc))
	}
	if bet.Color != "" {
		parts = append(parts, s.key.Render(string(bet.Color)))
	}
	if by := strings.TrimSpace(bet.Creator); by != "" {
		parts = append(parts, s.header.Render("by "+by))
	}
	if vs := strings.TrimSpace(bet.Opponent); vs != "" {
		parts = append(parts, s.header.Render("vs "+vs))
	}
	if winner := strings.TrimSpace(bet.Winner); winner != "" {
		parts = append(parts, s.success.Render("won by "+winner))
	}
	if when := formatAge(bet.CreatedAt, now); when != "" {
		parts = append(parts, s.header.Render(when))
	}

	return strings.Join(parts, " ")
}

func statusStyle(status domain.BetStatus, s styles) lipgloss.Style {
	switch status {
	case domain.BetStatusPending:
		return s.selected
	case domain.BetStatusCompleted, domain.BetStatusMatched:
		return s.success
	case domain.BetStatusCancelled, domain.BetStatusExpired:
		return s.warning
	default:
		return s.detail
	}
}

func adminView(dashboard domain.Dashboard, s styles) string {
	rows := []struct {
		key   string
		value string
	}{
		{"users", strconv.FormatInt(dashboard.TotalUsers, 10)},
		{"bets", strconv.FormatInt(dashboard.TotalBets, 10)},
		{"active bets", strconv.FormatInt(dashboard.ActiveBets, 10)},
		{"volume", FormatAmount(dashboard.TotalVolume)},
		{"tokens minted", FormatAmount(dashboard.TokensMinted)},
		{"pending payout", FormatAmount(dashboard.PendingPayout)},
	}

	lines := []string{s.title.Render("Admin dashboard")}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.key.Render(fmt.Sprintf("%-15s", row.key+":")),
			" ",
			s.detail.Render(row.value),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func limited[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}

// FormatAmount prints whole amounts without decimals and anything else with two.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return ""
	}
	if now.IsZero() || at.After(now) {
		return at.Format("15:04 on 02 Jan")
	}
	return formatDuration(now.Sub(at)) + " ago"
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "less than a minute"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
