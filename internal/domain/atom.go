package domain

// Arg is one argument position of an Atom: it is either a bound Object or
// a reference to a parameter slot of the owning parameter list. Param < 0
// means "this argument is the object Obj"; Param >= 0 means "this argument
// is parameter slot Param of whichever Params list the atom is interpreted
// under" and Obj is meaningless.
type Arg struct {
	Param int
	Obj   ObjectID
}

// ObjArg builds an argument bound to a concrete object.
func ObjArg(o ObjectID) Arg { return Arg{Param: -1, Obj: o} }

// ParamArg builds an argument referring to parameter slot i.
func ParamArg(i int) Arg { return Arg{Param: i} }

// IsParam reports whether this argument refers to a parameter slot.
func (a Arg) IsParam() bool { return a.Param >= 0 }

// Atom is a predicate applied to arguments, with a negation flag
// distinguishing positive from negative literals.
type Atom struct {
	Pred int
	Args []Arg
	Neg  bool
}

// NewAtom allocates an atom of the given arity with all argument slots
// zeroed (the zero Arg refers to parameter slot 0); callers fill in Args
// before use.
func NewAtom(pred, arity int) *Atom {
	return &Atom{Pred: pred, Args: make([]Arg, arity)}
}

// Arity returns the number of arguments.
func (a *Atom) Arity() int { return len(a.Args) }
