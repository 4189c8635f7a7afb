// Package codec converts spaces to and from a self-describing record, and
// reads and writes that record as JSON, YAML or TOML.
//
// Records are rebuilt through the space constructors, so decoding a record
// reports the same construction errors as building the space by hand.
package codec

import (
	"github.com/cottand/spaces/internal/log"
	"github.com/cottand/spaces/space"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var logger = log.DefaultLogger.With("section", "codec")

// recordValidate checks struct tags before a record is rebuilt
var recordValidate = validator.New(validator.WithRequiredStructEnabled())

const (
	KindNull      = "null"
	KindSingleton = "singleton"
	KindBinary    = "binary"
	KindNaturals  = "naturals"
	KindDiscrete  = "discrete"
	KindRange     = "range"
	KindInterval  = "interval"
	KindProduct   = "product"
	KindUnion     = "union"
)

// Record is the external representation of a space
type Record struct {
	Kind string `json:"kind" yaml:"kind" toml:"kind" validate:"required,oneof=null singleton binary naturals discrete range interval product union"`

	// Labels is used by discrete spaces
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`

	// Start and End delimit a range, end excluded
	Start *int64 `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty" validate:"required_if=Kind range"`
	End   *int64 `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty" validate:"required_if=Kind range"`

	// Lower and Upper bound an interval, nil means unbounded
	Lower *BoundRecord `json:"lower,omitempty" yaml:"lower,omitempty" toml:"lower,omitempty"`
	Upper *BoundRecord `json:"upper,omitempty" yaml:"upper,omitempty" toml:"upper,omitempty"`

	// Value is the element of a singleton
	Value *ValueRecord `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty" validate:"required_if=Kind singleton"`

	Children []Record       `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty" validate:"dive"`
	Branches []BranchRecord `json:"branches,omitempty" yaml:"branches,omitempty" toml:"branches,omitempty" validate:"dive"`
}

type BoundRecord struct {
	Value     float64 `json:"value" yaml:"value" toml:"value"`
	Inclusive bool    `json:"inclusive" yaml:"inclusive" toml:"inclusive"`
}

type BranchRecord struct {
	Tag   string `json:"tag" yaml:"tag" toml:"tag" validate:"required"`
	Space Record `json:"space" yaml:"space" toml:"space"`
}

// ToRecord converts s into its record
func ToRecord(s space.Space) (Record, error) {
	switch s := s.(type) {
	case *space.NullSpace:
		return Record{Kind: KindNull}, nil
	case *space.Binary:
		return Record{Kind: KindBinary}, nil
	case *space.Naturals:
		return Record{Kind: KindNaturals}, nil
	case *space.Singleton:
		value, err := valueToRecord(s.Value())
		if err != nil {
			return Record{}, errors.Wrap(err, "singleton")
		}
		return Record{Kind: KindSingleton, Value: &value}, nil
	case *space.Discrete:
		if start, end, ok := s.Bounds(); ok {
			return Record{Kind: KindRange, Start: &start, End: &end}, nil
		}
		return Record{Kind: KindDiscrete, Labels: s.Labels()}, nil
	case *space.Interval:
		return Record{Kind: KindInterval, Lower: boundToRecord(s.Lower()), Upper: boundToRecord(s.Upper())}, nil
	case *space.Product:
		rec := Record{Kind: KindProduct}
		for i, factor := range s.Factors() {
			child, err := ToRecord(factor)
			if err != nil {
				return Record{}, errors.Wrapf(err, "children[%d]", i)
			}
			rec.Children = append(rec.Children, child)
		}
		return rec, nil
	case *space.Union:
		rec := Record{Kind: KindUnion}
		for _, b := range s.Branches() {
			child, err := ToRecord(b.Space)
			if err != nil {
				return Record{}, errors.Wrapf(err, "branch '%s'", b.Tag)
			}
			rec.Branches = append(rec.Branches, BranchRecord{Tag: b.Tag, Space: child})
		}
		return rec, nil
	default:
		return Record{}, errors.Errorf("unsupported space %T", s)
	}
}

// FromRecord validates rec and rebuilds the space it describes
func FromRecord(rec Record) (space.Space, error) {
	if err := recordValidate.Struct(rec); err != nil {
		logger.Debug("invalid record", "kind", rec.Kind, "error", err)
		return nil, errors.Wrap(err, "invalid record")
	}
	return fromRecord(rec)
}

func fromRecord(rec Record) (space.Space, error) {
	switch rec.Kind {
	case KindNull:
		return space.NewNull(), nil
	case KindBinary:
		return space.NewBinary(), nil
	case KindNaturals:
		return space.NewNaturals(), nil
	case KindSingleton:
		v, err := valueFromRecord(*rec.Value)
		if err != nil {
			return nil, errors.Wrap(err, "singleton")
		}
		return space.NewSingleton(v), nil
	case KindDiscrete:
		return orNil(space.NewDiscrete(rec.Labels...))
	case KindRange:
		return orNil(space.NewRange(*rec.Start, *rec.End))
	case KindInterval:
		return orNil(space.NewInterval(boundFromRecord(rec.Lower), boundFromRecord(rec.Upper)))
	case KindProduct:
		factors := make([]space.Space, len(rec.Children))
		for i, child := range rec.Children {
			factor, err := fromRecord(child)
			if err != nil {
				return nil, errors.Wrapf(err, "children[%d]", i)
			}
			factors[i] = factor
		}
		return orNil(space.NewProduct(factors...))
	case KindUnion:
		branches := make([]space.Branch, len(rec.Branches))
		for i, b := range rec.Branches {
			s, err := fromRecord(b.Space)
			if err != nil {
				return nil, errors.Wrapf(err, "branch '%s'", b.Tag)
			}
			branches[i] = space.Branch{Tag: b.Tag, Space: s}
		}
		return orNil(space.NewUnion(branches...))
	default:
		return nil, errors.Errorf("unknown space kind '%s'", rec.Kind)
	}
}

// orNil keeps a failed constructor from returning a typed nil inside a non-nil interface
func orNil[S space.Space](s S, err error) (space.Space, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func boundToRecord(b space.Bound) *BoundRecord {
	v, ok := b.Value()
	if !ok {
		return nil
	}
	return &BoundRecord{Value: v, Inclusive: b.Inclusive()}
}

func boundFromRecord(b *BoundRecord) space.Bound {
	switch {
	case b == nil:
		return space.Unbounded()
	case b.Inclusive:
		return space.Closed(b.Value)
	default:
		return space.Open(b.Value)
	}
}
