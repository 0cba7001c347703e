package domain

import (
	"math"
	"strings"
)

// SubIDFilter selects which sources a sampling rule applies to.
type SubIDFilter string

const (
	SubIDsAll     SubIDFilter = "All"
	SubIDsInclude SubIDFilter = "Include"
	SubIDsExclude SubIDFilter = "Exclude"
)

// SamplingMode distinguishes percentage rules from fixed daily caps.
type SamplingMode string

const (
	SamplingPercentage SamplingMode = "percentage"
	SamplingFixed      SamplingMode = "fixed"
)

// SamplingRule decides whether matching conversions are withheld from
// downstream reporting. Rules are embedded in their campaign, ordered, and
// evaluated first-applicable-wins: the first rule whose publisher filter AND
// sub-ID filter both match is authoritative, even if its probabilistic draw
// then misses. An empty PublisherID applies the rule to all publishers.
//
// JSON tags follow the stored rule shape so rules round-trip between the
// JSONB campaign column and the rule-update API unchanged.
type SamplingRule struct {
	PublisherID   string       `json:"publisherId"`
	PublisherName string       `json:"publisherName,omitempty"`
	SubIDsMode    SubIDFilter  `json:"subIdsType"`
	SubIDs        []string     `json:"subIds,omitempty"`
	Mode          SamplingMode `json:"samplingType"`
	Value         float64      `json:"samplingValue"`
	GoalName      string       `json:"goalName,omitempty"`
}

// SamplingValue returns the rule's numeric value with the invariants applied:
// non-numeric or negative values count as 0 (the rule never samples),
// percentage values cap at 100.
func (r SamplingRule) SamplingValue() float64 {
	v := r.Value
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if r.SamplingMode() == SamplingPercentage && v > 100 {
		return 100
	}
	return v
}

// SamplingMode returns the rule's mode, defaulting to percentage when unset.
func (r SamplingRule) SamplingMode() SamplingMode {
	if r.Mode == SamplingFixed {
		return SamplingFixed
	}
	return SamplingPercentage
}

// matchesPublisher reports whether the rule applies to a publisher known by
// the given aliases. Comparison is trimmed string equality so numeric and
// string representations of the same identifier match.
func (r SamplingRule) matchesPublisher(aliases []string) bool {
	rulePub := strings.TrimSpace(r.PublisherID)
	if rulePub == "" {
		return true
	}
	for _, alias := range aliases {
		if strings.TrimSpace(alias) == rulePub {
			return true
		}
	}
	return false
}

// matchesSubID reports whether the rule's sub-ID filter admits the source.
// Comparison is case-sensitive on trimmed values. An unset filter mode
// behaves as All; an unknown mode never matches.
func (r SamplingRule) matchesSubID(source string) bool {
	switch r.SubIDsMode {
	case SubIDsAll, "":
		return true
	case SubIDsInclude:
		return r.containsSubID(source)
	case SubIDsExclude:
		return !r.containsSubID(source)
	default:
		return false
	}
}

func (r SamplingRule) containsSubID(source string) bool {
	source = strings.TrimSpace(source)
	for _, id := range r.SubIDs {
		if strings.TrimSpace(id) == source {
			return true
		}
	}
	return false
}

// MatchRule returns the first rule in stored order whose publisher and
// sub-ID filters both match, or nil when no rule is applicable. A rule whose
// filters do not match is skipped (not applicable), it is not a terminal
// miss. Callers with no applicable rule must treat the conversion as
// approved; sampling "everything else" requires an explicit catch-all rule.
func MatchRule(rules []SamplingRule, pubAliases []string, source string) *SamplingRule {
	for i := range rules {
		if !rules[i].matchesPublisher(pubAliases) {
			continue
		}
		if !rules[i].matchesSubID(source) {
			continue
		}
		return &rules[i]
	}
	return nil
}
