package render

import (
	"math/big"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/flexdao/flexgov/internal/domain/models"
)

var titleCaser = cases.Title(language.English)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]
	return color.New(color.FgYellow).Sprintf("⚠️  %s", msg)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatAmount renders a token amount with thousands separators
func FormatAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}

	s := amount.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatStatus renders a proposal status with its color
func FormatStatus(status models.ProposalStatus) string {
	label := titleCaser.String(string(status))
	switch status {
	case models.ProposalStatusAccepted:
		return color.New(color.FgGreen).Sprint(label)
	case models.ProposalStatusRejected:
		return color.New(color.FgRed).Sprint(label)
	default:
		return color.New(color.FgYellow).Sprint(label)
	}
}

// FormatTime renders a timestamp in the local zone
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
