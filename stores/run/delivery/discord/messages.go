package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/artifact"
	"github.com/x-xyz/rarity/domain/run"
)

const (
	msgWelcome  = "👋 Welcome! Use /auth <key> to access this bot."
	msgGranted  = "✅ Access granted!"
	msgFetching = "🔄 Fetching metadata... Please wait."
	msgComplete = "✅ Analysis complete. Sending files..."
	msgFailed   = "❌ Analysis failed, please try again later."
	msgCanceled = "❌ Analysis cancelled."
	msgUpload   = "❌ Files could not be uploaded."
	msgInternal = "❌ Something went wrong, please try again later."
)

// errorReply turns an error into the text shown to the user.
// Internal errors are not leaked.
func errorReply(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyAuthorized):
		return "✅ " + err.Error()
	case errors.Is(err, domain.ErrInvalidUsage), errors.Is(err, domain.ErrAuthUsage):
		return "❗" + err.Error()
	case errors.Is(err, domain.ErrBadParamInput):
		return "⚠️ " + err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return "🚫 " + err.Error()
	case errors.Is(err, domain.ErrInvalidAccessKey), errors.Is(err, domain.ErrNoMetadataFetched):
		return "❌ " + err.Error()
	case errors.Is(err, domain.ErrNoValidAttributes):
		return "⚠️ " + err.Error()
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "⏳ " + err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return msgCanceled
	}
	return msgFailed
}

func progressReply(done, total int) string {
	return fmt.Sprintf("🔄 Fetching metadata... %d/%d", done, total)
}

// summaryReply lists the leading tokens, and the download urls when uploaded
func summaryReply(res *run.Result, delivered []artifact.Delivered) string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Fetched %d/%d tokens, %d trait types.", res.Fetched, res.Requested, res.Traits)
	if len(res.Top) > 0 {
		sb.WriteString("\nTop:")
		for _, r := range res.Top {
			fmt.Fprintf(&sb, "\n#%d  %s  (token %s)", r.Rank, r.Score.String(), r.TokenId.String())
		}
	}
	for _, d := range delivered {
		fmt.Fprintf(&sb, "\n%s: %s", d.Name, d.Url)
	}
	return sb.String()
}
