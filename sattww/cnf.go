package sattww

// Lit is a DIMACS-style literal: a positive value names a variable true,
// its negation names that variable false. Variable ids start at 1.
type Lit int

// Neg returns the negation of l.
func (l Lit) Neg() Lit { return -l }

// Var returns the underlying variable id of l (always positive).
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}

	return int(l)
}

// Clause is a disjunction of literals.
type Clause []Lit

// CNF is a growable conjunctive-normal-form formula with its own variable
// allocator, the structure every encode.go clause group and the totalizer
// network are built into.
type CNF struct {
	NumVars int
	Clauses []Clause
}

// NewVar allocates and returns a fresh variable as a positive literal.
func (c *CNF) NewVar() Lit {
	c.NumVars++

	return Lit(c.NumVars)
}

// AddClause appends a clause built from the given literals.
func (c *CNF) AddClause(lits ...Lit) {
	clause := make(Clause, len(lits))
	copy(clause, lits)
	c.Clauses = append(c.Clauses, clause)
}
