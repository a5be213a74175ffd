package catalog

import "github.com/phanxgames/pickergrid"

// Hint picks the animation hint for replacing old with next: a single group
// added or removed (the rest unchanged in order) is tracked as an install or
// removal; any other change is generic. Identical group lists give no hint.
func Hint(old, next []pickergrid.ItemGroup) pickergrid.ContentAnimationHint {
	switch len(next) - len(old) {
	case 1:
		if id, ok := singleInsert(old, next); ok {
			return pickergrid.GroupInstalledHint(id, false)
		}
	case -1:
		if id, ok := singleInsert(next, old); ok {
			return pickergrid.GroupRemovedHint(id, false)
		}
	case 0:
		if sameGroups(old, next) {
			return pickergrid.ContentAnimationHint{}
		}
	}
	return pickergrid.GenericHint()
}

// singleInsert reports whether long is short with exactly one group
// inserted, and returns its id.
func singleInsert(short, long []pickergrid.ItemGroup) (pickergrid.GroupID, bool) {
	i := 0
	for i < len(short) && sameGroup(&short[i], &long[i]) {
		i++
	}
	for j := i; j < len(short); j++ {
		if !sameGroup(&short[j], &long[j+1]) {
			return "", false
		}
	}
	return long[i].ID, true
}

func sameGroups(a, b []pickergrid.ItemGroup) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameGroup(&a[i], &b[i]) {
			return false
		}
	}
	return true
}

func sameGroup(a, b *pickergrid.ItemGroup) bool {
	if a.ID != b.ID || a.Title != b.Title || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !a.Items[i].Equal(b.Items[i]) {
			return false
		}
	}
	return true
}
