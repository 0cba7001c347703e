package domain

import "math"

// StatusChange is one conversion whose computed status differs from its
// stored status after replanning.
type StatusChange struct {
	ConversionID int64
	Status       ConversionStatus
}

// dayKey buckets a conversion into its local calendar day.
const dayKeyLayout = "2006-01-02"

// PlanReprocess recomputes sampling statuses for a campaign's conversions
// against its current rule list and returns only the conversions that need a
// write. convs must be ordered by creation time ascending; the plan is
// order-dependent (fixed daily caps and percentage positions both assign
// "sampled" to the earliest conversions first), so callers must use a stable
// sort key. pubAliases maps a conversion's stored publisher identifier to
// every alias that publisher is known by; identifiers absent from the map
// match on the raw value alone.
//
// Unlike live classification, the percentage branch here is deterministic:
// a group of size G with value V gets exactly floor(G*V/100) sampled. That
// gives operators a reproducible preview of a percentage on existing data.
// Running the plan twice with unchanged inputs yields no changes the second
// time.
func PlanReprocess(convs []Conversion, rules []SamplingRule, pubAliases map[string][]string) []StatusChange {
	var changes []StatusChange

	if len(rules) == 0 {
		for i := range convs {
			if convs[i].Status != StatusApproved {
				changes = append(changes, StatusChange{convs[i].ID, StatusApproved})
			}
		}
		return changes
	}

	// Group by (publisher, source), preserving first-appearance order.
	type groupKey struct{ pub, source string }
	var order []groupKey
	groups := make(map[groupKey][]*Conversion)
	for i := range convs {
		k := groupKey{convs[i].PublisherID, convs[i].Source}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], &convs[i])
	}

	appendChange := func(c *Conversion, status ConversionStatus) {
		if c.Status != status {
			changes = append(changes, StatusChange{c.ID, status})
		}
	}

	for _, k := range order {
		group := groups[k]

		aliases := pubAliases[k.pub]
		if len(aliases) == 0 {
			aliases = []string{k.pub}
		}
		rule := MatchRule(rules, aliases, k.source)
		if rule == nil {
			for _, c := range group {
				appendChange(c, StatusApproved)
			}
			continue
		}

		switch rule.SamplingMode() {
		case SamplingPercentage:
			sampleCount := int(math.Floor(float64(len(group)) * rule.SamplingValue() / 100))
			for i, c := range group {
				if i < sampleCount {
					appendChange(c, StatusSampled)
				} else {
					appendChange(c, StatusApproved)
				}
			}
		case SamplingFixed:
			cap := int(rule.SamplingValue())
			perDay := make(map[string]int)
			for _, c := range group {
				day := c.CreatedAt.Local().Format(dayKeyLayout)
				if perDay[day] < cap {
					perDay[day]++
					appendChange(c, StatusSampled)
				} else {
					appendChange(c, StatusApproved)
				}
			}
		}
	}
	return changes
}
