package types

import "fmt"

// FlexID numbers the free variables of a Solved type locally.
type FlexID uint16

// Solved is a pre-solved signature as produced by an upstream stage. Free
// variables are numbered per signature and only become Variables when the
// signature is instantiated into a particular store.
type Solved struct {
	Kind   Kind
	Flex   FlexID // KindVariable
	Name   string
	Args   []Solved
	Result *Solved
	Fields []SolvedField
	Tags   []SolvedTag
	Ext    *Solved
}

// SolvedField is a record field of a Solved type.
type SolvedField struct {
	Name string
	Type Solved
}

// SolvedTag is a tag of a Solved union.
type SolvedTag struct {
	Name string
	Args []Solved
}

// FreeVars remembers the Variable chosen for each FlexID while instantiating.
type FreeVars struct {
	byFlex map[FlexID]Variable
	order  []Variable
}

// Introduced returns the instantiated variables in first-use order.
func (fv *FreeVars) Introduced() []Variable {
	if fv == nil {
		return nil
	}
	out := make([]Variable, len(fv.order))
	copy(out, fv.order)
	return out
}

func (fv *FreeVars) lookup(id FlexID, store *VarStore) Variable {
	if fv.byFlex == nil {
		fv.byFlex = make(map[FlexID]Variable)
	}
	if v, ok := fv.byFlex[id]; ok {
		return v
	}
	v := store.Fresh()
	fv.byFlex[id] = v
	fv.order = append(fv.order, v)
	return v
}

// Instantiate turns a Solved signature into a Type, minting one fresh variable
// per distinct flex id.
func Instantiate(s Solved, fv *FreeVars, store *VarStore) (*Type, error) {
	if store == nil {
		return nil, fmt.Errorf("instantiate: nil variable store")
	}
	if fv == nil {
		fv = &FreeVars{}
	}
	return instantiate(s, fv, store)
}

func instantiate(s Solved, fv *FreeVars, store *VarStore) (*Type, error) {
	out := &Type{Kind: s.Kind, Name: s.Name}
	switch s.Kind {
	case KindVariable:
		out.Var = fv.lookup(s.Flex, store)
		return out, nil
	case KindApply, KindAlias, KindFunction, KindRecord, KindTagUnion, KindEmptyRecord:
	default:
		return nil, fmt.Errorf("instantiate: unsupported kind %s", s.Kind)
	}
	for _, a := range s.Args {
		t, err := instantiate(a, fv, store)
		if err != nil {
			return nil, err
		}
		out.Args = append(out.Args, t)
	}
	if s.Result != nil {
		t, err := instantiate(*s.Result, fv, store)
		if err != nil {
			return nil, err
		}
		out.Result = t
	}
	for _, f := range s.Fields {
		t, err := instantiate(f.Type, fv, store)
		if err != nil {
			return nil, err
		}
		out.Fields = append(out.Fields, Field{Name: f.Name, Type: t})
	}
	for _, tag := range s.Tags {
		nt := Tag{Name: tag.Name}
		for _, a := range tag.Args {
			t, err := instantiate(a, fv, store)
			if err != nil {
				return nil, err
			}
			nt.Args = append(nt.Args, t)
		}
		out.Tags = append(out.Tags, nt)
	}
	if s.Ext != nil {
		t, err := instantiate(*s.Ext, fv, store)
		if err != nil {
			return nil, err
		}
		out.Ext = t
	}
	return out, nil
}
