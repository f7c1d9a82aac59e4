package jcolor

import (
	"regexp"
	"strings"

	"github.com/valyala/fastjson"
)

// Rule is one textual rewrite applied before parsing.
type Rule struct {
	Name    string
	Pattern string
}

type rule struct {
	name string
	re   *regexp.Regexp
	// skipQuoted leaves matches already enclosed in double quotes alone.
	skipQuoted bool
	rewrite    func(match string) string
}

// rules run in this order, each over the output of the previous one.
var rules = []rule{
	{
		name:    "placeholder",
		re:      regexp.MustCompile(`\[[A-Za-z]+\]`),
		rewrite: quote,
	},
	{
		name:       "timestamp",
		re:         regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z`),
		skipQuoted: true,
		rewrite:    quote,
	},
	{
		name:    "bigint",
		re:      regexp.MustCompile(`\d+n`),
		rewrite: func(m string) string { return m[:len(m)-1] },
	},
	{
		name:    "undefined",
		re:      regexp.MustCompile(`\bundefined\b`),
		rewrite: func(string) string { return "null" },
	},
}

func quote(m string) string {
	return `"` + m + `"`
}

// Rules lists the rewrite rules in the order Normalize applies them.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Name: r.name, Pattern: r.re.String()}
	}
	return out
}

func (r *rule) apply(s string) (string, int) {
	locs := r.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s, 0
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2*len(locs))
	last, n := 0, 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if r.skipQuoted && start > 0 && end < len(s) && s[start-1] == '"' && s[end] == '"' {
			continue
		}
		sb.WriteString(s[last:start])
		sb.WriteString(r.rewrite(s[start:end]))
		last = end
		n++
	}
	sb.WriteString(s[last:])
	return sb.String(), n
}

// Normalize rewrites the non-standard tokens in raw into valid JSON syntax:
// bracketed placeholders and ISO-8601 timestamps are quoted, the trailing n
// of big integers is dropped and undefined becomes null. The rewrite is
// purely textual and does not track string literals.
func Normalize(raw string, opts *Options) string {
	log := opts.logger()
	s := raw
	for i := range rules {
		var n int
		s, n = rules[i].apply(s)
		if n > 0 {
			log.Debug("rewrite", "rule", rules[i].name, "matches", n)
		}
	}
	return s
}

// Parse normalizes raw and parses the result. Any structural problem is
// reported as a *ParseError carrying the parser's message; no Value is
// returned in that case.
func Parse(raw string, opts *Options) (*Value, error) {
	return parseStrict(Normalize(raw, opts))
}

func parseStrict(s string) (*Value, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	p := acquireParser()
	defer releaseParser(p)
	fv, err := p.Parse(s)
	if err != nil {
		return nil, &ParseError{Input: s, Err: err}
	}
	v, err := fromFastjson(fv)
	if err != nil {
		return nil, &ParseError{Input: s, Err: err}
	}
	return v, nil
}

func validate(s string) error {
	if err := fastjson.Validate(s); err != nil {
		return &ParseError{Input: s, Err: err}
	}
	if err := checkText(s); err != nil {
		return &ParseError{Input: s, Err: err}
	}
	return nil
}
