package advertise

import (
	"net/url"
	"strings"
)

// IsPremium reports whether the sponsorship was bought at the premium tier.
func IsPremium(s Sponsoring) bool {
	return Tier(strings.ToLower(strings.TrimSpace(string(s.Tier)))) == TierPremium
}

// PremiumSponsors returns the premium sponsorships from all, in input order.
// A sponsor that bought premium more than once is listed once, at the
// position of its first purchase.
func PremiumSponsors(all []Sponsoring) []Sponsoring {
	seen := make(map[string]struct{})
	var premium []Sponsoring
	for _, s := range all {
		if !IsPremium(s) {
			continue
		}
		key := sponsorKey(s.Sponsor)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		premium = append(premium, s)
	}
	return premium
}

// sponsorKey identifies a sponsor by website host, falling back to its name.
func sponsorKey(sp Sponsor) string {
	if sp.Website != "" {
		if u, err := url.Parse(strings.TrimSpace(sp.Website)); err == nil && u.Host != "" {
			return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
		}
	}
	return "name:" + strings.ToLower(strings.TrimSpace(sp.Name))
}
