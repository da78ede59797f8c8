// Package plans holds the static plan table: four ordered service tiers,
// each fixing a monthly price and two usage allowances. The table is a
// collaborator of the quota ledger, not owned by it.
package plans

// Tier names one of the four service levels.
type Tier string

const (
	TierFree    Tier = "Free"
	TierStarter Tier = "Starter"
	TierCreator Tier = "Creator"
	TierPro     Tier = "Pro"
)

// Plan describes a tier's monthly price and included allowances.
type Plan struct {
	Name                 Tier
	Price                int
	ImagesIncluded       int
	VideoSecondsIncluded int
}

var table = map[Tier]Plan{
	TierFree:    {Name: TierFree, Price: 0, ImagesIncluded: 3, VideoSecondsIncluded: 5},
	TierStarter: {Name: TierStarter, Price: 10, ImagesIncluded: 100, VideoSecondsIncluded: 40},
	TierCreator: {Name: TierCreator, Price: 20, ImagesIncluded: 200, VideoSecondsIncluded: 100},
	TierPro:     {Name: TierPro, Price: 50, ImagesIncluded: 500, VideoSecondsIncluded: 300},
}

// ByTier returns the plan for the given tier. The second result is false for
// unknown tiers.
func ByTier(t Tier) (Plan, bool) {
	p, ok := table[t]
	return p, ok
}

// Tiers returns all tiers in ascending price order.
func Tiers() []Tier {
	return []Tier{TierFree, TierStarter, TierCreator, TierPro}
}

// Valid reports whether t names a known tier.
func Valid(t Tier) bool {
	_, ok := table[t]
	return ok
}
