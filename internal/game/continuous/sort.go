package continuous

import (
	"sort"

	"github.com/magefree/mage-layers-go/internal/game"
)

// SortWithDependencies orders same-layer effects so that if A depends on B,
// B comes before A. Effects without dependencies between them stay in
// timestamp order, and a dependency cycle drops the whole group back to pure
// timestamp order.
func SortWithDependencies(effects []*ContinuousEffect) []*ContinuousEffect {
	return sortGroup(effects, DependsOn)
}

// SortLayerEffects orders the effects of one layer. Power/toughness effects
// are grouped by sublayer first; dependencies never cross sublayers.
func SortLayerEffects(effects []*ContinuousEffect) []*ContinuousEffect {
	return sortLayer(effects, DependsOn)
}

// SortLayerEffectsWithBaseline is SortLayerEffects with dependency detection
// refined by hypothetical application against a characteristics baseline.
func SortLayerEffectsWithBaseline(
	effects []*ContinuousEffect,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) []*ContinuousEffect {
	depends := func(a, b *ContinuousEffect) bool {
		return dependsOnWithBaseline(a, b, baseline, state)
	}
	return sortLayer(effects, depends)
}

func sortLayer(effects []*ContinuousEffect, depends func(a, b *ContinuousEffect) bool) []*ContinuousEffect {
	if len(effects) == 0 {
		return nil
	}

	if LayerOf(effects[0].Modification) != LayerPowerToughness {
		return sortGroup(effects, depends)
	}

	bySublayer := make(map[Sublayer][]*ContinuousEffect)
	for _, effect := range effects {
		sub, ok := SublayerOf(effect.Modification)
		if !ok {
			// Misclassified for this layer; treat as the last sublayer so
			// it still gets applied.
			sub = SublayerSwitching
		}
		bySublayer[sub] = append(bySublayer[sub], effect)
	}

	var result []*ContinuousEffect
	for _, sub := range sublayerOrder {
		result = append(result, sortGroup(bySublayer[sub], depends)...)
	}
	return result
}

// sortGroup runs dependency detection across one layer/sublayer group and
// topologically sorts it. The ready set is kept in timestamp order so that
// unconstrained effects are applied oldest first.
func sortGroup(effects []*ContinuousEffect, depends func(a, b *ContinuousEffect) bool) []*ContinuousEffect {
	if len(effects) <= 1 {
		return append([]*ContinuousEffect(nil), effects...)
	}

	n := len(effects)
	dependsOn := make([][]bool, n)
	for i := range dependsOn {
		dependsOn[i] = make([]bool, n)
	}

	hasAnyDependency := false
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && depends(effects[i], effects[j]) {
				dependsOn[i][j] = true
				hasAnyDependency = true
			}
		}
	}

	if !hasAnyDependency {
		return sortedByTimestamp(effects)
	}

	if hasCycle(dependsOn) {
		// Rule 613.8c fallback: a dependency loop reverts to timestamps.
		return sortedByTimestamp(effects)
	}

	inDegree := make([]int, n)
	dependedBy := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dependsOn[i][j] {
				inDegree[i]++
				dependedBy[j] = append(dependedBy[j], i)
			}
		}
	}

	var ready []int
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	byOldest := func(a, b int) bool {
		if effects[a].Timestamp != effects[b].Timestamp {
			return effects[a].Timestamp < effects[b].Timestamp
		}
		return a < b
	}

	result := make([]*ContinuousEffect, 0, n)
	for len(ready) > 0 {
		sort.Slice(ready, func(x, y int) bool { return byOldest(ready[x], ready[y]) })
		idx := ready[0]
		ready = ready[1:]
		result = append(result, effects[idx])
		for _, dependent := range dependedBy[idx] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	return result
}

func sortedByTimestamp(effects []*ContinuousEffect) []*ContinuousEffect {
	out := append([]*ContinuousEffect(nil), effects...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}

// hasCycle runs depth-first search over the dependency matrix.
func hasCycle(dependsOn [][]bool) bool {
	n := len(dependsOn)
	visited := make([]bool, n)
	inStack := make([]bool, n)

	var dfs func(node int) bool
	dfs = func(node int) bool {
		visited[node] = true
		inStack[node] = true
		for dep := 0; dep < n; dep++ {
			if !dependsOn[node][dep] {
				continue
			}
			if !visited[dep] {
				if dfs(dep) {
					return true
				}
			} else if inStack[dep] {
				return true
			}
		}
		inStack[node] = false
		return false
	}

	for i := 0; i < n; i++ {
		if !visited[i] && dfs(i) {
			return true
		}
	}
	return false
}
