package chat

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pattarin/banchi/internal/domain"
	"github.com/pattarin/banchi/internal/usecase"
)

// Replies are plain text in Thai, matching the group bot's voice.

func replyStart() string {
	return "สวัสดีครับ 👋\n" +
		"บอทบัญชีกลุ่มพร้อมใช้งานแล้ว ✅\n\n" +
		"พิมพ์รายการได้เลย เช่น \"กาแฟ 50\" หรือ \"+ เงินเดือน 25,000\"\n" +
		"/today สรุปวันนี้\n" +
		"/month สรุปรอบบัญชี\n" +
		"/reset ล้างยอดรอบปัจจุบัน\n" +
		"/cancel ยกเลิกคำขอล้างยอด"
}

func replyRecorded(entry *domain.Entry, cycleSum usecase.Summary) string {
	return fmt.Sprintf("บันทึกแล้ว ✅ %s %s (%s)\nยอดรอบ %s: %s",
		entry.Label,
		FormatAmount(entry.Amount),
		signName(entry.Sign),
		entry.CycleKey,
		FormatNet(cycleSum.Net()),
	)
}

func replyToday(dayKey string, entries []*domain.Entry, sum usecase.Summary) string {
	if len(entries) == 0 {
		return fmt.Sprintf("📅 วันนี้ (%s) ยังไม่มีรายการ", dayKey)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 สรุปวันนี้ (%s)\n", dayKey)
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s %s %s\n", signMark(entry.Sign), entry.Label, FormatAmount(entry.Amount))
	}
	writeTotals(&b, sum)

	return b.String()
}

func replyCycle(key domain.CycleKey, start, end time.Time, sum usecase.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 สรุปรอบ %s (%s ถึง %s)\n",
		key, start.Format("2006-01-02"), end.Format("2006-01-02"))
	writeTotals(&b, sum)

	return b.String()
}

func writeTotals(b *strings.Builder, sum usecase.Summary) {
	fmt.Fprintf(b, "รายรับ: %s\n", FormatAmount(sum.Income))
	fmt.Fprintf(b, "รายจ่าย: %s\n", FormatAmount(sum.Expense))
	fmt.Fprintf(b, "คงเหลือ: %s", FormatNet(sum.Net()))
}

func replyResetRequested(window time.Duration) string {
	return fmt.Sprintf("⚠️ ต้องการล้างยอดรอบปัจจุบันใช่ไหม?\nพิมพ์ \"%s\" ภายใน %d วินาที",
		usecase.ConfirmToken, int(window.Seconds()))
}

func replyResetConfirmed(key domain.CycleKey) string {
	return fmt.Sprintf("ล้างยอดรอบ %s แล้ว ✅ เริ่มนับใหม่ได้เลย", key)
}

func replyResetExpired() string {
	return "หมดเวลายืนยันแล้ว ⏰ พิมพ์ /reset ใหม่อีกครั้ง"
}

func replyCancelled(existed bool) string {
	if !existed {
		return "ไม่มีคำขอล้างยอดค้างอยู่"
	}
	return "ยกเลิกคำขอล้างยอดแล้ว"
}

func replyMonthUsage() string {
	return "รูปแบบคำสั่ง: /month, /month -1 หรือ /month 2026-01"
}

// FormatAmount renders a non-negative amount with thousands separators.
// Shared with the query API's display fields.
func FormatAmount(v int64) string {
	s := strconv.FormatInt(v, 10)

	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}

// FormatNet renders a balance with its sign always explicit.
func FormatNet(v int64) string {
	if v < 0 {
		return "-" + FormatAmount(-v)
	}
	return "+" + FormatAmount(v)
}

func signName(sign domain.Sign) string {
	if sign == domain.SignIncome {
		return "รายรับ"
	}
	return "รายจ่าย"
}

func signMark(sign domain.Sign) string {
	if sign == domain.SignIncome {
		return "+"
	}
	return "-"
}
