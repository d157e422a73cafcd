package contacts

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	app "github.com/discourse/discourse-local-site-contacts/internal/application/localcontact"
	settingUsecases "github.com/discourse/discourse-local-site-contacts/internal/application/setting/usecases"
)

// Output formats accepted by --output
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// render writes v in the requested format. text is used for OutputText.
func render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case OutputText, "":
		return text(w)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, yaml or json)", format)
	}
}

func writePreview(w io.Writer, res *app.PreviewResult) error {
	_, err := fmt.Fprintf(w, "locale=%s sender=%s (id %d) overridden=%t enabled=%t from_system=%t\n",
		res.Locale, res.Sender, res.SenderID, res.Overridden, res.Enabled, res.FromSystem)
	return err
}

func writeReport(w io.Writer, report *app.ValidationReport) error {
	if !report.Valid {
		_, err := fmt.Fprintf(w, "invalid: %s\n", report.Error)
		return err
	}

	if _, err := fmt.Fprintf(w, "valid: %d entries, %d issues\n", len(report.Entries), report.IssueCount()); err != nil {
		return err
	}
	for _, e := range report.Entries {
		if len(e.Issues) == 0 {
			if _, err := fmt.Fprintf(w, "[%d] %s -> %s: ok\n", e.Index, e.Locale, e.Username); err != nil {
				return err
			}
			continue
		}
		for _, issue := range e.Issues {
			if _, err := fmt.Fprintf(w, "[%d] %s -> %s: %s: %s\n", e.Index, e.Locale, e.Username, issue.Code, issue.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStored(w io.Writer, stored []settingUsecases.StoredSetting) error {
	if len(stored) == 0 {
		_, err := fmt.Fprintln(w, "no stored settings, config file values apply")
		return err
	}
	for _, s := range stored {
		if _, err := fmt.Fprintf(w, "%s.%s = %s (%s, v%d)\n", s.Category, s.Key, s.Value, s.ValueType, s.Version); err != nil {
			return err
		}
	}
	return nil
}
