// Package catalog holds the static learning-module table: the per-module XP
// award and premium gating. It is configuration, not database state, and is
// injected into the services that consult it.
package catalog

type ModuleInfo struct {
	Title           string `json:"title"`
	XP              int    `json:"xp"`
	PremiumRequired bool   `json:"premiumRequired"`
}

type Catalog map[string]ModuleInfo

// Default is the module table the platform ships with.
func Default() Catalog {
	return Catalog{
		"phishing-basics": {Title: "Spotting Phishing Emails", XP: 50},
		"romance-scams":   {Title: "Romance Scam Red Flags", XP: 75},
		"investment-fraud": {
			Title:           "Investment & Crypto Fraud",
			XP:              100,
			PremiumRequired: true,
		},
		"identity-theft": {Title: "Protecting Your Identity", XP: 75},
		"online-shopping": {
			Title: "Safe Online Shopping",
			XP:    50,
		},
		"tech-support-scams": {Title: "Fake Tech Support Calls", XP: 60},
		"job-offer-scams": {
			Title:           "Too-Good-To-Be-True Job Offers",
			XP:              80,
			PremiumRequired: true,
		},
	}
}

// Info looks up a module by id.
func (c Catalog) Info(moduleID string) (ModuleInfo, bool) {
	info, ok := c[moduleID]
	return info, ok
}

// XPFor returns the completion XP for a module, zero if unknown.
func (c Catalog) XPFor(moduleID string) int {
	return c[moduleID].XP
}
