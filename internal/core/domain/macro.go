package domain

import "strings"

// MacroParams holds the concrete values substituted into URL templates.
// Absent values expand to the empty string, never to the literal token.
type MacroParams struct {
	ClickID     string
	Payout      string
	CampID      string
	PublisherID string
	Source      string
	GAID        string
	IDFA        string
	AppName     string
	P1          string
	P2          string
}

// macroValues maps token names to their value within a MacroParams.
// source_id is an alias of source.
func (p MacroParams) macroValues() map[string]string {
	return map[string]string{
		"click_id":     p.ClickID,
		"payout":       p.Payout,
		"camp_id":      p.CampID,
		"publisher_id": p.PublisherID,
		"source":       p.Source,
		"source_id":    p.Source,
		"gaid":         p.GAID,
		"idfa":         p.IDFA,
		"app_name":     p.AppName,
		"p1":           p.P1,
		"p2":           p.P2,
	}
}

// ExpandMacros replaces every recognized {token} in url with its value from
// p. The URL-encoded bracket forms %7Btoken%7D and %7btoken%7d are handled
// too, so templates that travelled through a double-encoded redirect chain
// still expand. Unrecognized tokens pass through untouched.
func ExpandMacros(url string, p MacroParams) string {
	if url == "" {
		return ""
	}
	values := p.macroValues()
	pairs := make([]string, 0, len(values)*3*2)
	for name, value := range values {
		pairs = append(pairs,
			"{"+name+"}", value,
			"%7B"+name+"%7D", value,
			"%7b"+name+"%7d", value,
		)
	}
	return strings.NewReplacer(pairs...).Replace(url)
}
