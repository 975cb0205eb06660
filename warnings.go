package markupdoc

import (
	"fmt"
	"strings"

	"github.com/tsawler/markupdoc/htmldoc"
)

// WarningCode identifies the kind of non-fatal issue found during conversion.
type WarningCode int

const (
	// WarningUnterminatedTag means a block tag had no closing tag and its
	// content was kept as loose text.
	WarningUnterminatedTag WarningCode = iota
	// WarningFeaturedImageSuppressed means one or more images matched the
	// featured image and were left out.
	WarningFeaturedImageSuppressed
	// WarningLooseText means text outside any recognized block was found.
	WarningLooseText
	// WarningTruncated means blocks beyond the MaxBlocks limit were dropped.
	WarningTruncated
)

// String returns the warning code name.
func (c WarningCode) String() string {
	switch c {
	case WarningUnterminatedTag:
		return "unterminated_tag"
	case WarningFeaturedImageSuppressed:
		return "featured_image_suppressed"
	case WarningLooseText:
		return "loose_text"
	case WarningTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue encountered during conversion. The document
// is still usable but may not look the way the author intended.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return w.Code.String() + ": " + w.Message
}

// FormatWarnings joins warnings into a single line suitable for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}

// reportWarnings turns a scan report into warnings.
func reportWarnings(report htmldoc.Report) []Warning {
	var warnings []Warning
	for _, tag := range report.UnterminatedTags {
		warnings = append(warnings, Warning{
			Code:    WarningUnterminatedTag,
			Message: fmt.Sprintf("<%s> has no closing tag", tag),
		})
	}
	if report.SuppressedImages > 0 {
		warnings = append(warnings, Warning{
			Code:    WarningFeaturedImageSuppressed,
			Message: fmt.Sprintf("%d featured image(s) left out", report.SuppressedImages),
		})
	}
	if report.LooseTextBlocks > 0 {
		warnings = append(warnings, Warning{
			Code:    WarningLooseText,
			Message: fmt.Sprintf("%d loose text span(s) outside block tags", report.LooseTextBlocks),
		})
	}
	return warnings
}
