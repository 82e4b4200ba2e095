package ast

import "sort"

// Program is the root of a translated source file: its top-level members.
type Program struct {
	Methods    []*Method
	Functions  []*Function
	Predicates []*Predicate
	Domains    []*Domain
	Fields     []*Field
}

// DefinitionKind mirrors Kind for the subset of variants that appear in
// outline/definition reports.
type DefinitionKind = Kind

// Definition is an informational record describing one named entity in the
// program, emitted for editor outlines. It carries no semantic weight for
// caching.
type Definition struct {
	Name      string
	Kind      DefinitionKind
	Position  Position
	Enclosing *Position // nil at top level
}

// Definitions walks the program and returns a definition record for every
// named entity: members, their arguments/returns/locals, domain functions,
// and axioms (spec.md §3).
func (p *Program) Definitions() []Definition {
	var defs []Definition

	addLocals := func(locals []*Local, role LocalRole, enclosing Position) {
		kind := KindLocal
		switch role {
		case RoleArgument:
			kind = KindArgument
		case RoleReturn:
			kind = KindReturn
		}
		for _, l := range locals {
			defs = append(defs, Definition{Name: l.Name(), Kind: kind, Position: l.Pos(), Enclosing: &enclosing})
		}
	}

	walkScopeLocals := func(n Node, enclosing Position) {
		seqn, ok := n.(*Seqn)
		if !ok || seqn == nil {
			return
		}
		addLocals(seqn.Locals, RoleLocal, enclosing)
	}

	for _, m := range p.Methods {
		defs = append(defs, Definition{Name: m.Name(), Kind: KindMethod, Position: m.Pos()})
		addLocals(m.Args, RoleArgument, m.Position)
		addLocals(m.Rets, RoleReturn, m.Position)
		if m.Body != nil {
			walkScopeLocals(m.Body, m.Position)
		}
	}
	for _, f := range p.Functions {
		defs = append(defs, Definition{Name: f.Name(), Kind: KindFunction, Position: f.Pos()})
		addLocals(f.Args, RoleArgument, f.Position)
	}
	for _, pr := range p.Predicates {
		defs = append(defs, Definition{Name: pr.Name(), Kind: KindPredicate, Position: pr.Pos()})
		addLocals(pr.Args, RoleArgument, pr.Position)
	}
	for _, d := range p.Domains {
		defs = append(defs, Definition{Name: d.Name(), Kind: KindDomain, Position: d.Pos()})
		for _, fn := range d.Functions {
			defs = append(defs, Definition{Name: fn.Name(), Kind: KindDomainFunc, Position: fn.Pos(), Enclosing: posPtr(d.Position)})
		}
		for _, ax := range d.Axioms {
			defs = append(defs, Definition{Name: ax.Name(), Kind: KindAxiom, Position: ax.Pos(), Enclosing: posPtr(d.Position)})
		}
	}
	for _, f := range p.Fields {
		defs = append(defs, Definition{Name: f.Name(), Kind: KindField, Position: f.Pos()})
	}

	return defs
}

func posPtr(p Position) *Position { return &p }

// Statistics counts the program's top-level members, for
// report.StatisticsReport.
type Statistics struct {
	Methods    int
	Functions  int
	Predicates int
	Domains    int
	Fields     int
}

// Stats computes the program's member-kind statistics.
func (p *Program) Stats() Statistics {
	return Statistics{
		Methods:    len(p.Methods),
		Functions:  len(p.Functions),
		Predicates: len(p.Predicates),
		Domains:    len(p.Domains),
		Fields:     len(p.Fields),
	}
}

// Outline returns the program's top-level members as generic Nodes, sorted
// by (kind, name), suitable for report.ProgramOutlineReport.
func (p *Program) Outline() []Node {
	var members []Node
	for _, m := range p.Methods {
		members = append(members, m)
	}
	for _, f := range p.Functions {
		members = append(members, f)
	}
	for _, pr := range p.Predicates {
		members = append(members, pr)
	}
	for _, d := range p.Domains {
		members = append(members, d)
	}
	for _, f := range p.Fields {
		members = append(members, f)
	}
	sort.Slice(members, func(i, j int) bool {
		ni, nj := members[i].(Named), members[j].(Named)
		if ni.Kind() != nj.Kind() {
			return ni.Kind() < nj.Kind()
		}
		return ni.Name() < nj.Name()
	})
	return members
}

// MethodByName returns the method with the given name, or nil.
func (p *Program) MethodByName(name string) *Method {
	for _, m := range p.Methods {
		if m.MethodName == name {
			return m
		}
	}
	return nil
}

// WithMethods returns a shallow copy of p whose Methods slice is replaced,
// preserving all non-method members. Used by the orchestrator to construct
// the reduced program sent to the back-end (spec.md §4.5 step 5).
func (p *Program) WithMethods(methods []*Method) *Program {
	return &Program{
		Methods:    methods,
		Functions:  p.Functions,
		Predicates: p.Predicates,
		Domains:    p.Domains,
		Fields:     p.Fields,
	}
}
