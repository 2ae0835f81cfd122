package provider

import (
	"lumo/internal/calc"
	"lumo/internal/fuzzy"
	"lumo/internal/launch"
)

// Source identifies which provider produced a candidate.
type Source int

const (
	SourceApp Source = iota
	SourceCommand
	SourceCalc
)

func (s Source) String() string {
	switch s {
	case SourceApp:
		return "app"
	case SourceCommand:
		return "command"
	case SourceCalc:
		return "calc"
	default:
		return "unknown"
	}
}

// Entry is one raw (label, action) pair supplied by an OS scanning
// collaborator. Indexes never mutate the entries they are given.
type Entry struct {
	Label  string
	Action launch.Action
}

// Candidate is one rankable result for the current query. Candidates are
// rebuilt from scratch on every query change.
type Candidate struct {
	Label  string
	Source Source
	Action launch.Action
	Score  int
}

// Provider turns the current query into zero or more scored candidates.
type Provider interface {
	Candidates(query string) []Candidate
}

// Index matches a query against a fixed entry list with the fuzzy engine.
// An empty query yields every entry at score zero in listing order, which
// is what the launcher shows before the user types anything.
type Index struct {
	source  Source
	entries []Entry
}

// NewIndex builds an index over entries, attributed to source.
func NewIndex(source Source, entries []Entry) *Index {
	return &Index{source: source, entries: entries}
}

// Candidates implements Provider.
func (ix *Index) Candidates(query string) []Candidate {
	var out []Candidate
	for _, e := range ix.entries {
		score, ok := fuzzy.Match(query, e.Label)
		if !ok {
			continue
		}
		out = append(out, Candidate{
			Label:  e.Label,
			Source: ix.source,
			Action: e.Action,
			Score:  score,
		})
	}
	return out
}

// calcScore sits above anything the fuzzy engine can produce, so a query
// that evaluates as arithmetic always ranks its result first.
const calcScore = 1 << 20

// Calculator evaluates the whole query as an arithmetic expression and
// emits a single display-only candidate on success. Parse and evaluation
// failures produce no candidate and no error; silence is the contract.
type Calculator struct{}

// Candidates implements Provider.
func (Calculator) Candidates(query string) []Candidate {
	v, err := calc.Eval(query)
	if err != nil {
		return nil
	}
	return []Candidate{{
		Label:  calc.Format(v),
		Source: SourceCalc,
		Score:  calcScore,
	}}
}
