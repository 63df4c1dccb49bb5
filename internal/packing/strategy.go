package packing

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/velofab/pallet-service/internal/domain/model"
)

// strategy is one candidate configuration for the layered packer: a presort
// applied to the items before packing, a height tolerance for layer grouping,
// and a guillotine split rule.
type strategy struct {
	name      string
	sort      func([]model.Item)
	heightTol float64
	split     SplitRule
}

func sortAreaDesc(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Dims.FootprintArea() > items[j].Dims.FootprintArea()
	})
}

func sortWeightDesc(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Dims.WeightLbs > items[j].Dims.WeightLbs
	})
}

func sortHeightDesc(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Dims.HeightIn > items[j].Dims.HeightIn
	})
}

func sortVolumeDesc(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Dims.Volume() > items[j].Dims.Volume()
	})
}

// strategies is the fixed roster the runner tries, in order. The order
// matters: ties in score keep the earliest winner.
var strategies = []strategy{
	{name: "area-desc/1.0", sort: sortAreaDesc, heightTol: 1.0, split: SplitShorterAxis},
	{name: "area-desc/0.5", sort: sortAreaDesc, heightTol: 0.5, split: SplitShorterAxis},
	{name: "area-desc/2.0", sort: sortAreaDesc, heightTol: 2.0, split: SplitShorterAxis},
	{name: "volume-desc/1.0", sort: sortVolumeDesc, heightTol: 1.0, split: SplitShorterAxis},
	{name: "height-desc/1.0", sort: sortHeightDesc, heightTol: 1.0, split: SplitShorterAxis},
	{name: "weight-desc/1.0", sort: sortWeightDesc, heightTol: 1.0, split: SplitShorterAxis},
}

// strategyScore ranks a completed run. Fewer pallets always wins; average
// utilization breaks ties between equal pallet counts.
func strategyScore(pallets []*model.Pallet) float64 {
	return float64(len(pallets))*10000 - avgUtilization(pallets)*1000
}

// avgUtilization is the mean of item volume over pallet capacity volume.
func avgUtilization(pallets []*model.Pallet) float64 {
	if len(pallets) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range pallets {
		cap := p.Length * p.Width * p.MaxHeight
		if cap <= 0 {
			continue
		}
		used := 0.0
		for i := range p.Placements {
			pl := &p.Placements[i]
			used += pl.L * pl.W * pl.H
		}
		sum += used / cap
	}
	return sum / float64(len(pallets))
}

// RunStrategies packs the items with every layered strategy and keeps the
// best-scoring result. If no layered strategy places every item, the
// height-map packer takes over as the fallback.
func RunStrategies(log zerolog.Logger, spec PalletSpec, items []model.Item) ([]*model.Pallet, error) {
	if len(items) == 0 {
		return nil, ErrOrderEmpty
	}

	var best []*model.Pallet
	bestScore := 0.0
	bestName := ""

	for _, s := range strategies {
		ordered := make([]model.Item, len(items))
		copy(ordered, items)
		s.sort(ordered)

		pallets, err := PackAll(spec, ordered, s.heightTol, s.split)
		if err != nil {
			log.Debug().Str("strategy", s.name).Err(err).Msg("layered strategy failed")
			continue
		}
		score := strategyScore(pallets)
		if best == nil || score < bestScore {
			best = pallets
			bestScore = score
			bestName = s.name
		}
	}

	if best == nil {
		log.Debug().Msg("all layered strategies failed, falling back to height-map packer")
		pallets, err := PackAllHeightMap(spec, items)
		if err != nil {
			return nil, err
		}
		return pallets, nil
	}

	log.Debug().
		Str("strategy", bestName).
		Int("pallets", len(best)).
		Float64("score", bestScore).
		Msg("selected packing strategy")
	return best, nil
}
