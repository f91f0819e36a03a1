package telegram

import (
	"fmt"
	"html"
	"strings"

	"followsync/internal/model"
)

// maxListedUsers ограничивает количество имен в одной секции отчета
const maxListedUsers = 10

// FormatRunReport форматирует HTML отчет о запуске синхронизации
func FormatRunReport(summary *model.RunSummary) string {
	var b strings.Builder

	b.WriteString("🔄 <b>GitHub Follower Sync Report</b>\n")
	fmt.Fprintf(&b, "📅 %s\n\n", summary.StartedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("📊 <b>Stats:</b>\n")
	fmt.Fprintf(&b, "  • Followers: %d\n", summary.FollowerCount)
	fmt.Fprintf(&b, "  • Following: %d\n\n", summary.FollowingCount)

	writeUserSection(&b, "✅ <b>Followed Back", summary.Followed)
	writeUserSection(&b, "❌ <b>Unfollowed", summary.Unfollowed)
	writeUserSection(&b, "⚠️ <b>Failed", summary.Failed)

	if !summary.HasChanges() {
		b.WriteString("✨ No changes needed - everything is in sync!")
	}

	return b.String()
}

// writeUserSection пишет секцию отчета со списком имен, обрезанным до maxListedUsers
func writeUserSection(b *strings.Builder, header string, users []string) {
	if len(users) == 0 {
		return
	}

	fmt.Fprintf(b, "%s (%d):</b>\n", header, len(users))
	for i, user := range users {
		if i == maxListedUsers {
			fmt.Fprintf(b, "  ... and %d more\n", len(users)-maxListedUsers)
			break
		}
		fmt.Fprintf(b, "  • @%s\n", html.EscapeString(user))
	}
	b.WriteString("\n")
}
