package game

import "strings"

// Resource is a bit set naming the session state a system touches.
type Resource uint16

const (
	ResWorld Resource = 1 << iota
	ResMap
	ResCamera
	ResRNG
	ResKey
	ResTurn
	ResBatch
)

var resourceNames = []struct {
	r    Resource
	name string
}{
	{ResWorld, "world"},
	{ResMap, "map"},
	{ResCamera, "camera"},
	{ResRNG, "rng"},
	{ResKey, "key"},
	{ResTurn, "turn"},
	{ResBatch, "batch"},
}

// Each calls fn for every resource in the set, in declaration order.
func (r Resource) Each(fn func(Resource)) {
	for _, rn := range resourceNames {
		if r&rn.r != 0 {
			fn(rn.r)
		}
	}
}

func (r Resource) String() string {
	if r == 0 {
		return "-"
	}
	var parts []string
	for _, rn := range resourceNames {
		if r&rn.r != 0 {
			parts = append(parts, rn.name)
		}
	}
	return strings.Join(parts, ",")
}
