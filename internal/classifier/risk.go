// Package classifier assigns risk and origin labels to an additive from the
// merged provider evidence. Classification is layered: a curated override
// table wins outright, then the registry's structured risk field, and only
// while the level is still low does the description keyword scan run.
package classifier

import "strings"

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// knownRisks pins well-studied additives to a fixed level regardless of what
// any provider reports about them.
var knownRisks = map[string]RiskLevel{
	"e250": RiskHigh, // sodium nitrite
	"e251": RiskHigh, // sodium nitrate
	"e249": RiskHigh,
	"e252": RiskHigh,
	"e171": RiskHigh, // titanium dioxide, banned in the EU
	"e320": RiskHigh, // BHA
	"e321": RiskHigh, // BHT
	"e924": RiskHigh, // potassium bromate
	"e621": RiskModerate, // MSG
	"e951": RiskModerate, // aspartame
	"e950": RiskModerate, // acesulfame K
	"e102": RiskModerate, // tartrazine
	"e129": RiskModerate, // allura red
	"e133": RiskModerate,
	"e220": RiskModerate, // sulfur dioxide
	"e211": RiskModerate, // sodium benzoate
}

var highTerms = []string{
	"carcinogen",
	"cancer",
	"banned",
	"toxic",
	"dna damage",
}

var moderateTerms = []string{
	"hyperactivity",
	"allergy",
	"asthma",
	"migraine",
	"intolerance",
	"children",
}

// ClassifyRisk determines the risk level for an additive. The code is the
// lowercased E-number (may be empty), structured is the registry's own risk
// field (may be empty), and description is the prose used for the keyword
// scan.
func ClassifyRisk(code, structured, description string) RiskLevel {
	if code != "" {
		if level, ok := knownRisks[strings.ToLower(code)]; ok {
			return level
		}
	}

	level := RiskLow
	switch strings.ToLower(strings.TrimSpace(structured)) {
	case "high":
		level = RiskHigh
	case "moderate":
		level = RiskModerate
	case "low":
		level = RiskLow
	}

	if level == RiskLow && description != "" {
		text := strings.ToLower(description)
		for _, term := range highTerms {
			if strings.Contains(text, term) {
				return RiskHigh
			}
		}
		for _, term := range moderateTerms {
			if strings.Contains(text, term) {
				return RiskModerate
			}
		}
	}

	return level
}
