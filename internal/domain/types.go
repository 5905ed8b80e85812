// Package domain holds the fixed, read-only context a planning task is
// checked against: the type lattice, the object universe, predicates and
// parameter lists. Nothing in this package mutates once built — it is the
// catalogue the rest of the core (unifier, formula kernel, compile-in
// engine, pruners) treats as given input, never as something it derives.
package domain

// TypeID indexes into a Types lattice. Ids are assigned by Types.AddType,
// starting at 0 for the first type added.
type TypeID int

// ObjectID indexes into a Types' object universe.
type ObjectID int

// UndefObject marks an unbound/absent object slot, mirroring
// PDDL_OBJ_ID_UNDEF in the reference implementation.
const UndefObject ObjectID = -1

type typeEntry struct {
	name    string
	parent  TypeID // -1 for a root type
	objects []ObjectID
}

// Types is the type lattice: each type has at most one declared parent,
// and an object declared with type t also satisfies every supertype of t.
// A type with zero declared inhabitants is permitted and is treated as
// unsatisfiable: no unifier may bind a variable to it.
type Types struct {
	byID     []typeEntry
	byName   map[string]TypeID
	objName  []string
	objType  []TypeID // the single declared (most specific) type of each object
	ancestor [][]bool // ancestor[t][u] == true iff u is an ancestor-or-self of t
}

// NewTypes creates an empty lattice.
func NewTypes() *Types {
	return &Types{byName: map[string]TypeID{}}
}

// AddType declares a new type with the given parent (-1 for a root type).
// Parent must already be declared. Returns the new type's id.
func (t *Types) AddType(name string, parent TypeID) TypeID {
	id := TypeID(len(t.byID))
	t.byID = append(t.byID, typeEntry{name: name, parent: parent})
	t.byName[name] = id
	t.ancestor = nil // invalidated, recomputed lazily
	return id
}

// AddObject declares an object of the given (most specific) type.
func (t *Types) AddObject(name string, ty TypeID) ObjectID {
	id := ObjectID(len(t.objName))
	t.objName = append(t.objName, name)
	t.objType = append(t.objType, ty)
	t.byID[ty].objects = append(t.byID[ty].objects, id)
	t.ancestor = nil
	return id
}

// TypeByName looks up a declared type, returning (0, false) if absent.
func (t *Types) TypeByName(name string) (TypeID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// TypeName returns the declared name of a type.
func (t *Types) TypeName(ty TypeID) string {
	return t.byID[ty].name
}

// ObjectName returns the declared name of an object.
func (t *Types) ObjectName(o ObjectID) string {
	return t.objName[o]
}

func (t *Types) buildAncestors() {
	if t.ancestor != nil {
		return
	}
	n := len(t.byID)
	anc := make([][]bool, n)
	for i := range anc {
		anc[i] = make([]bool, n)
		cur := TypeID(i)
		for {
			anc[i][cur] = true
			if t.byID[cur].parent < 0 {
				break
			}
			cur = t.byID[cur].parent
		}
	}
	t.ancestor = anc
}

// IsSubset reports whether every inhabitant of t1 is also an inhabitant
// of t2, i.e. t2 is t1 or an ancestor of t1.
func (t *Types) IsSubset(t1, t2 TypeID) bool {
	t.buildAncestors()
	return t.ancestor[t1][t2]
}

// AreDisjoint reports whether t1 and t2 share no common descendant type,
// i.e. neither is a subset of the other.
func (t *Types) AreDisjoint(t1, t2 TypeID) bool {
	return !t.IsSubset(t1, t2) && !t.IsSubset(t2, t1)
}

// ObjectsOfType returns every object whose declared type is a subset of ty
// (i.e. ty or one of its descendants).
func (t *Types) ObjectsOfType(ty TypeID) []ObjectID {
	t.buildAncestors()
	var out []ObjectID
	for ot := range t.byID {
		if t.ancestor[ot][ty] {
			out = append(out, t.byID[ot].objects...)
		}
	}
	return out
}

// ObjectHasType reports whether o's declared type is a subset of ty.
func (t *Types) ObjectHasType(ty TypeID, o ObjectID) bool {
	return t.IsSubset(t.objType[o], ty)
}

// CountObjects returns len(ObjectsOfType(ty)) without materializing the slice.
func (t *Types) CountObjects(ty TypeID) int {
	t.buildAncestors()
	n := 0
	for ot := range t.byID {
		if t.ancestor[ot][ty] {
			n += len(t.byID[ot].objects)
		}
	}
	return n
}

// IsEmpty reports whether ty has zero inhabitants — such a type is
// unsatisfiable and no unifier may bind a variable to it.
func (t *Types) IsEmpty(ty TypeID) bool {
	return t.CountObjects(ty) == 0
}
