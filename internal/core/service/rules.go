package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"ledgerly.io/financemail/internal/core/domain"
)

const (
	defaultRulePriority   = 999
	defaultRuleConfidence = 0.9
)

// EvaluateRules runs the ordered rule list against the context and returns
// the matched rules in priority order. Disabled rules are skipped; rules
// without a priority sort as 999 (ties keep original order). Conditions AND
// together: any present-but-unsatisfied condition fails the whole rule. A
// matching rule with StopProcessing halts evaluation of the remaining rules.
func EvaluateRules(rules []domain.FinanceRule, rctx domain.RuleContext) []domain.RuleResult {
	ordered := make([]domain.FinanceRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Enabled {
			ordered = append(ordered, rule)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return rulePriority(ordered[i]) < rulePriority(ordered[j])
	})

	haystack := strings.ToLower(rctx.Subject + " " + rctx.BodyExcerpt + " " + rctx.Body)
	sender := strings.ToLower(rctx.FromAddress)
	amount := decimal.Zero
	if rctx.Amount != nil {
		amount = *rctx.Amount
	}

	var results []domain.RuleResult
	for _, rule := range ordered {
		reasons, matched := matchConditions(rule.Conditions, haystack, sender, amount)
		if !matched {
			continue
		}

		confidence := defaultRuleConfidence
		if rule.Actions.Confidence != nil {
			confidence = *rule.Actions.Confidence
		}
		results = append(results, domain.RuleResult{
			RuleID:     rule.ID,
			RuleName:   rule.Name,
			Reasons:    reasons,
			Actions:    rule.Actions,
			Confidence: confidence,
		})

		if rule.StopProcessing {
			break
		}
	}

	return results
}

func rulePriority(rule domain.FinanceRule) int {
	if rule.Priority == nil {
		return defaultRulePriority
	}
	return *rule.Priority
}

func matchConditions(c domain.RuleConditions, haystack, sender string, amount decimal.Decimal) ([]string, bool) {
	var reasons []string

	if len(c.SubjectContainsAny) > 0 {
		if !containsAnyTerm(haystack, c.SubjectContainsAny) {
			return nil, false
		}
		reasons = append(reasons, "subjectContainsAny")
	}
	if len(c.DescriptionContainsAny) > 0 {
		if !containsAnyTerm(haystack, c.DescriptionContainsAny) {
			return nil, false
		}
		reasons = append(reasons, "descriptionContainsAny")
	}
	if len(c.SenderDomainIn) > 0 {
		if !senderInDomains(sender, c.SenderDomainIn) {
			return nil, false
		}
		reasons = append(reasons, "senderDomainIn")
	}
	if c.AmountLessThan != nil {
		if !amount.LessThan(decimal.NewFromFloat(*c.AmountLessThan)) {
			return nil, false
		}
		reasons = append(reasons, "amountLessThan")
	}
	if c.AmountGreaterThan != nil {
		if !amount.GreaterThan(decimal.NewFromFloat(*c.AmountGreaterThan)) {
			return nil, false
		}
		reasons = append(reasons, "amountGreaterThan")
	}

	return reasons, true
}

func containsAnyTerm(haystack string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func senderInDomains(sender string, domains []string) bool {
	for _, d := range domains {
		if d == "" {
			continue
		}
		if strings.HasSuffix(sender, "@"+strings.ToLower(strings.TrimPrefix(d, "@"))) {
			return true
		}
	}
	return false
}
