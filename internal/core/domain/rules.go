package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleScope string

const (
	RuleScopeCategorisation RuleScope = "categorisation"
	RuleScopeApproval       RuleScope = "approval"
)

// FinanceRule is an ordered business rule. Priority ascends (lower evaluates
// first, nil defaults to 999); Conditions AND together; StopProcessing masks
// lower-priority rules in the same scope once the rule matches.
type FinanceRule struct {
	ID             uuid.UUID
	Name           string
	Scope          RuleScope
	Priority       *int
	Enabled        bool
	Conditions     RuleConditions
	Actions        RuleActions
	StopProcessing bool
}

// RuleConditions is the closed set of condition kinds. Absent fields are not
// evaluated; present fields must all be satisfied. Stored as a JSON document.
type RuleConditions struct {
	SubjectContainsAny     []string `json:"subjectContainsAny,omitempty"`
	DescriptionContainsAny []string `json:"descriptionContainsAny,omitempty"`
	SenderDomainIn         []string `json:"senderDomainIn,omitempty"`
	AmountLessThan         *float64 `json:"amountLessThan,omitempty"`
	AmountGreaterThan      *float64 `json:"amountGreaterThan,omitempty"`
}

// RuleActions is the effect applied when a rule matches. Stored as a JSON
// document alongside the conditions.
type RuleActions struct {
	SetCategoryName string   `json:"setCategoryName,omitempty"`
	AutoApprove     bool     `json:"autoApprove,omitempty"`
	Confidence      *float64 `json:"confidence,omitempty"`
}

// RuleResult is the per-rule outcome of an evaluation pass. Ephemeral, never
// persisted.
type RuleResult struct {
	RuleID     uuid.UUID
	RuleName   string
	Reasons    []string
	Actions    RuleActions
	Confidence float64
}

// RuleContext is the shared evaluation context for one message.
type RuleContext struct {
	Subject     string
	BodyExcerpt string
	Body        string
	FromAddress string
	Amount      *decimal.Decimal
}
