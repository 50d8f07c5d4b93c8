package dispatch

import (
	"slices"
	"sort"

	"go.uber.org/zap"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/geo"
	"emergo.xyz/dispatch-service/pkg/models"
)

func matchLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDispatchCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMatch),
	)
}

// MatchConstraints narrows the candidate pool for one selection.
type MatchConstraints struct {
	RequestedType models.AmbulanceType
	ExcludeIDs    []string
}

// SelectNearest picks the best ambulance for a target out of a caller-supplied
// snapshot. Pure function, no side effects: candidates without a known
// location or with an incompatible type are skipped, the rest are ranked by
// great-circle distance (stable, so input order breaks ties). The nearest
// active candidate wins; if none are active the globally nearest one is
// returned as a last resort.
func SelectNearest(candidates []models.Ambulance, target models.LatLng, c MatchConstraints) *models.Ambulance {
	type ranked struct {
		dist float64
		amb  *models.Ambulance
	}

	requested := c.RequestedType
	if requested == "" {
		requested = models.AmbulanceTypeAny
	}

	var pool []ranked
	for i := range candidates {
		amb := &candidates[i]
		loc := amb.Location()
		if loc == nil {
			continue
		}
		if slices.Contains(c.ExcludeIDs, amb.ID) {
			continue
		}
		if !models.TypesCompatible(requested, amb.Type) {
			continue
		}
		pool = append(pool, ranked{
			dist: geo.HaversineKm(target.Lat, target.Lng, loc.Lat, loc.Lng),
			amb:  amb,
		})
	}
	if len(pool) == 0 {
		return nil
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].dist < pool[j].dist })

	for _, r := range pool {
		if r.amb.Status == models.AmbulanceStatusActive {
			return r.amb
		}
	}
	return pool[0].amb
}
