package domain

// Predicate is a named, fixed-arity relation symbol.
type Predicate struct {
	Name  string
	Arity int
}

// Predicates is the fixed catalogue of predicates a task is defined over,
// plus the one distinguished equality predicate every unifier-derived
// condition is expressed in terms of.
type Predicates struct {
	pred   []Predicate
	byName map[string]int
	// EqPred is the id of the distinguished `eq` predicate.
	EqPred int
}

// NewPredicates creates an empty catalogue and registers the `eq`
// predicate as predicate 0.
func NewPredicates() *Predicates {
	p := &Predicates{byName: map[string]int{}}
	p.EqPred = p.Add("eq", 2)
	return p
}

// Add registers a predicate and returns its id.
func (p *Predicates) Add(name string, arity int) int {
	if id, ok := p.byName[name]; ok {
		return id
	}
	id := len(p.pred)
	p.pred = append(p.pred, Predicate{Name: name, Arity: arity})
	p.byName[name] = id
	return id
}

// ByName looks up a predicate id by name.
func (p *Predicates) ByName(name string) (int, bool) {
	id, ok := p.byName[name]
	return id, ok
}

// Get returns the Predicate for an id.
func (p *Predicates) Get(id int) Predicate {
	return p.pred[id]
}
