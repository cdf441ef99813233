// Package skills models the skill tree as a DAG of prerequisite edges
// gating progression.
package skills

import (
	"sort"

	engerr "github.com/grimveil/dicebound/internal/errors"
)

// Prerequisite is one edge: the node requires another node at a rank
type Prerequisite struct {
	NodeID string `json:"node_id" yaml:"node_id"`
	Rank   int    `json:"rank" yaml:"rank"`
}

// Node is a skill tree node
type Node struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	Tier          int            `json:"tier" yaml:"tier"`
	PointCost     int            `json:"point_cost" yaml:"point_cost"`
	MaxRank       int            `json:"max_rank" yaml:"max_rank"`
	Prerequisites []Prerequisite `json:"prerequisites" yaml:"prerequisites"`
}

// Graph holds the validated skill tree. TierThresholds[t] is the points
// spent required to unlock tier t+1; thresholds are strictly increasing.
type Graph struct {
	nodes          map[string]*Node
	tierThresholds []int
}

// GraphConfig holds configuration for building a graph
type GraphConfig struct {
	Nodes          []*Node
	TierThresholds []int
}

// NewGraph builds and validates the skill graph. Edges may only point at
// lower-or-equal tiers, never the node itself, and every node must be
// reachable from a tier-1 node.
func NewGraph(cfg *GraphConfig) (*Graph, error) {
	g := &Graph{
		nodes:          make(map[string]*Node, len(cfg.Nodes)),
		tierThresholds: cfg.TierThresholds,
	}

	for i := 1; i < len(cfg.TierThresholds); i++ {
		if cfg.TierThresholds[i] <= cfg.TierThresholds[i-1] {
			return nil, engerr.Validation("skill tier thresholds must be strictly increasing")
		}
	}

	for _, n := range cfg.Nodes {
		if n.ID == "" {
			return nil, engerr.Validation("skill node missing id")
		}
		if n.Tier < 1 {
			return nil, engerr.Validationf("skill node %q: tier must be at least 1", n.ID)
		}
		if _, exists := g.nodes[n.ID]; exists {
			return nil, engerr.AlreadyExists("duplicate skill node " + n.ID)
		}
		g.nodes[n.ID] = n
	}

	for _, n := range g.nodes {
		for _, p := range n.Prerequisites {
			if p.NodeID == n.ID {
				return nil, engerr.Validationf("skill node %q requires itself", n.ID)
			}
			req, ok := g.nodes[p.NodeID]
			if !ok {
				return nil, engerr.Validationf("skill node %q requires unknown node %q", n.ID, p.NodeID)
			}
			if req.Tier > n.Tier {
				return nil, engerr.Validationf("skill node %q (tier %d) requires higher-tier node %q (tier %d)",
					n.ID, n.Tier, req.ID, req.Tier)
			}
		}
	}

	if err := g.checkReachability(); err != nil {
		return nil, err
	}
	return g, nil
}

// checkReachability walks from every tier-1 node and verifies the walk
// covers the whole tree
func (g *Graph) checkReachability() error {
	reachable := make(map[string]bool)
	var queue []string
	for id, n := range g.nodes {
		if n.Tier == 1 {
			reachable[id] = true
			queue = append(queue, id)
		}
	}

	// A node is reachable once all its prerequisites are; iterate to a
	// fixed point since map order gives no topological guarantee.
	for changed := true; changed; {
		changed = false
		for id, n := range g.nodes {
			if reachable[id] {
				continue
			}
			ok := true
			for _, p := range n.Prerequisites {
				if !reachable[p.NodeID] {
					ok = false
					break
				}
			}
			if ok {
				reachable[id] = true
				changed = true
			}
		}
	}

	for id := range g.nodes {
		if !reachable[id] {
			return engerr.Validationf("skill node %q is unreachable from tier 1", id)
		}
	}
	return nil
}

// Node returns the node with the given id, or nil
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// Nodes returns every node ordered by tier then id
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// TierUnlocked reports whether points spent unlock the given tier.
// Tier 1 is always open.
func (g *Graph) TierUnlocked(tier, pointsSpent int) bool {
	if tier <= 1 {
		return true
	}
	idx := tier - 2
	if idx >= len(g.tierThresholds) {
		return false
	}
	return pointsSpent >= g.tierThresholds[idx]
}

// CanLearn checks whether a node's next rank can be taken given current
// ranks and total points spent
func (g *Graph) CanLearn(nodeID string, ranks map[string]int, pointsSpent int) bool {
	n, ok := g.nodes[nodeID]
	if !ok {
		return false
	}
	if n.MaxRank > 0 && ranks[nodeID] >= n.MaxRank {
		return false
	}
	if !g.TierUnlocked(n.Tier, pointsSpent) {
		return false
	}
	for _, p := range n.Prerequisites {
		if ranks[p.NodeID] < p.Rank {
			return false
		}
	}
	return true
}
