package redline

import "embed"

// EmailFS carries the notification email templates.
//
//go:embed templates/emails
var EmailFS embed.FS
