package generator

import (
	"fmt"
	"math/rand"

	"github.com/ClaudiaCodeLab/DemoMB/model"
)

const campaignPoolSize = 12

// sameSourceBias is the probability that Pick resolves to a campaign
// bound to the preferred source.
const sameSourceBias = 0.70

// Registry holds the fixed campaign pool, built once per run and
// read-only afterwards.
type Registry struct {
	rng       *rand.Rand
	campaigns []model.Campaign
}

// NewRegistry draws the pool of 12 campaigns, one weighted source each.
func NewRegistry(rng *rand.Rand) *Registry {
	campaigns := make([]model.Campaign, 0, campaignPoolSize)
	for i := 1; i <= campaignPoolSize; i++ {
		campaigns = append(campaigns, model.Campaign{
			ID:     fmt.Sprintf("CMP%02d", i),
			Source: model.Source(sources.Pick(rng)),
		})
	}
	return &Registry{rng: rng, campaigns: campaigns}
}

// Pick returns a campaign for the preferred source: with probability
// 0.70 one bound to that source when any exists, otherwise a uniform
// choice over the whole pool. The bias draw always happens first, the
// draw order must not change.
func (r *Registry) Pick(preferred model.Source) model.Campaign {
	if r.rng.Float64() < sameSourceBias {
		var same []model.Campaign
		for _, c := range r.campaigns {
			if c.Source == preferred {
				same = append(same, c)
			}
		}
		if len(same) > 0 {
			return same[r.rng.Intn(len(same))]
		}
	}
	return r.campaigns[r.rng.Intn(len(r.campaigns))]
}

// Campaigns ...
func (r *Registry) Campaigns() []model.Campaign {
	return r.campaigns
}
