package catalog

import "fmt"

// Severity classifies a validation finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Finding is one integrity problem discovered by Validate.
type Finding struct {
	Severity Severity
	Kind     string // duplicate-id, unknown-category, unknown-tag, orphan-category, orphan-tag
	Subject  string // the implicated entry id or classifier name
	Detail   string
}

// Report is the full outcome of one validation pass. An empty finding list
// signifies a healthy dataset.
type Report struct {
	Findings []Finding
}

func (r *Report) add(sev Severity, kind, subject, detail string) {
	r.Findings = append(r.Findings, Finding{Severity: sev, Kind: kind, Subject: subject, Detail: detail})
}

// Errors returns the number of error-severity findings.
func (r Report) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings returns the number of warning-severity findings.
func (r Report) Warnings() int {
	return len(r.Findings) - r.Errors()
}

// Healthy reports whether the validation pass found nothing at all.
func (r Report) Healthy() bool {
	return len(r.Findings) == 0
}

// Validate walks the snapshot and accumulates every integrity problem; it
// never stops at the first one, so a single run surfaces the full picture.
// Duplicate ids and dangling references are errors, declared-but-unused
// classifiers are warnings. Findings are returned as data, never as a Go
// error — the caller decides what they mean for exit status.
func Validate(snap *Snapshot) Report {
	var r Report

	declaredCats := make(map[string]bool, len(snap.Categories))
	for _, c := range snap.Categories {
		declaredCats[c.Name] = true
	}
	declaredTags := make(map[string]bool, len(snap.Tags))
	for _, t := range snap.Tags {
		declaredTags[t.Name] = true
	}

	seen := make(map[string]bool, len(snap.Entries))
	referencedCats := make(map[string]bool)
	referencedTags := make(map[string]bool)

	for _, e := range snap.Entries {
		if seen[e.ID] {
			r.add(SeverityError, "duplicate-id", e.ID, "entry id is declared more than once")
		}
		seen[e.ID] = true

		for _, name := range e.Categories {
			referencedCats[name] = true
			if !declaredCats[name] {
				r.add(SeverityError, "unknown-category", e.ID,
					fmt.Sprintf("references undeclared category %q", name))
			}
		}
		for _, name := range e.Tags {
			referencedTags[name] = true
			if !declaredTags[name] {
				r.add(SeverityError, "unknown-tag", e.ID,
					fmt.Sprintf("references undeclared tag %q", name))
			}
		}
	}

	for _, c := range snap.Categories {
		if !referencedCats[c.Name] {
			r.add(SeverityWarning, "orphan-category", c.Name, "declared but referenced by no entry")
		}
	}
	for _, t := range snap.Tags {
		if !referencedTags[t.Name] {
			r.add(SeverityWarning, "orphan-tag", t.Name, "declared but referenced by no entry")
		}
	}
	return r
}
