package localcontact

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	domain "github.com/discourse/discourse-local-site-contacts/internal/domain/localcontact"
	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
)

// Issue codes reported per entry
const (
	IssueShadowed        = "shadowed"
	IssueMalformedLocale = "malformed_locale"
	IssueUserNotFound    = "user_not_found"
	IssueUserNotStaff    = "user_not_staff"
	IssueLookupFailed    = "lookup_failed"
)

// EntryIssue describes one problem with a configured entry
type EntryIssue struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// EntryReport is the validation result for one entry
type EntryReport struct {
	Index    int          `json:"index" yaml:"index"`
	Locale   string       `json:"locale" yaml:"locale"`
	Username string       `json:"username" yaml:"username"`
	Issues   []EntryIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// ValidationReport summarises a contacts configuration for operators.
// Valid is false only when the text cannot be used at all; entry issues
// are advisory and the resolver skips such entries on its own.
type ValidationReport struct {
	Valid   bool          `json:"valid" yaml:"valid"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Entries []EntryReport `json:"entries" yaml:"entries"`
}

// IssueCount returns the number of entry issues
func (r *ValidationReport) IssueCount() int {
	n := 0
	for _, e := range r.Entries {
		n += len(e.Issues)
	}
	return n
}

// ConfigValidator checks a contacts configuration against the user directory
type ConfigValidator struct {
	users UserFinder
}

// NewConfigValidator creates a new ConfigValidator
func NewConfigValidator(users UserFinder) *ConfigValidator {
	return &ConfigValidator{users: users}
}

// Validate parses rawConfig and reports every entry the resolver would not honor
func (v *ConfigValidator) Validate(ctx context.Context, rawConfig string) *ValidationReport {
	mapping, err := domain.ParseMapping(rawConfig)
	if err != nil {
		return &ValidationReport{Valid: false, Error: err.Error(), Entries: []EntryReport{}}
	}

	shadowed := mapping.Shadowed()
	report := &ValidationReport{Valid: true, Entries: make([]EntryReport, 0, len(mapping))}

	for i, entry := range mapping {
		er := EntryReport{Index: i, Locale: entry.Locale, Username: entry.Username}

		if winner, ok := shadowed[i]; ok {
			er.Issues = append(er.Issues, EntryIssue{
				Code:    IssueShadowed,
				Message: fmt.Sprintf("locale %q is already mapped by entry %d; this entry is never used", entry.Locale, winner),
			})
		}
		if _, err := language.Parse(entry.Locale); err != nil {
			er.Issues = append(er.Issues, EntryIssue{
				Code:    IssueMalformedLocale,
				Message: fmt.Sprintf("locale %q is not a well-formed language tag", entry.Locale),
			})
		}
		if issue, ok := v.checkUser(ctx, entry.Username); ok {
			er.Issues = append(er.Issues, issue)
		}

		report.Entries = append(report.Entries, er)
	}

	return report
}

func (v *ConfigValidator) checkUser(ctx context.Context, username string) (EntryIssue, bool) {
	account, err := v.users.FindByUsername(ctx, username)
	switch {
	case err == nil && account != nil && account.IsStaff():
		return EntryIssue{}, false
	case err == nil && account != nil:
		return EntryIssue{Code: IssueUserNotStaff, Message: fmt.Sprintf("user %q is not a staff member", username)}, true
	case err == nil || errors.Is(err, user.ErrUserNotFound):
		return EntryIssue{Code: IssueUserNotFound, Message: fmt.Sprintf("user %q does not exist", username)}, true
	default:
		return EntryIssue{Code: IssueLookupFailed, Message: fmt.Sprintf("failed to look up user %q: %v", username, err)}, true
	}
}
