package advertise

import "testing"

func TestPremiumSponsors(t *testing.T) {
	tests := []struct {
		name string
		in   []Sponsoring
		want []string
	}{
		{name: "nil", in: nil, want: nil},
		{
			name: "no premium",
			in: []Sponsoring{
				{ID: "1", Tier: TierStandard, Sponsor: Sponsor{Name: "A"}},
			},
			want: nil,
		},
		{
			name: "single premium",
			in: []Sponsoring{
				{ID: "1", Tier: TierPremium, Sponsor: Sponsor{Name: "Acme"}},
			},
			want: []string{"1"},
		},
		{
			name: "keeps input order",
			in: []Sponsoring{
				{ID: "1", Tier: TierPremium, Sponsor: Sponsor{Name: "Zeta"}},
				{ID: "2", Tier: TierStandard, Sponsor: Sponsor{Name: "Beta"}},
				{ID: "3", Tier: TierPremium, Sponsor: Sponsor{Name: "Alpha"}},
			},
			want: []string{"1", "3"},
		},
		{
			name: "tier is case insensitive",
			in: []Sponsoring{
				{ID: "1", Tier: "Premium ", Sponsor: Sponsor{Name: "Acme"}},
			},
			want: []string{"1"},
		},
		{
			name: "repeat purchase listed once",
			in: []Sponsoring{
				{ID: "1", Tier: TierPremium, Sponsor: Sponsor{Name: "Acme", Website: "https://acme.example"}},
				{ID: "2", Tier: TierPremium, Sponsor: Sponsor{Name: "Other", Website: "https://other.example"}},
				{ID: "3", Tier: TierPremium, Sponsor: Sponsor{Name: "Acme Inc", Website: "https://www.ACME.example/pricing"}},
			},
			want: []string{"1", "2"},
		},
		{
			name: "name fallback without website",
			in: []Sponsoring{
				{ID: "1", Tier: TierPremium, Sponsor: Sponsor{Name: "Acme"}},
				{ID: "2", Tier: TierPremium, Sponsor: Sponsor{Name: " acme "}},
			},
			want: []string{"1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PremiumSponsors(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("PremiumSponsors count = %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestPremiumSponsorsDoesNotModifyInput(t *testing.T) {
	in := []Sponsoring{
		{ID: "1", Tier: TierStandard, Sponsor: Sponsor{Name: "A"}},
		{ID: "2", Tier: TierPremium, Sponsor: Sponsor{Name: "B"}},
	}
	PremiumSponsors(in)
	if in[0].ID != "1" || in[1].ID != "2" || len(in) != 2 {
		t.Errorf("input modified: %+v", in)
	}
}
