// Package interpret classifies observed genotypes against the reference
// table.
package interpret

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/geniusdna/geniusdna/internal/parser"
	"github.com/geniusdna/geniusdna/internal/reference"
)

// Classification is the outcome of comparing a genotype with a definition.
type Classification string

// Classifications.
const (
	Normal    Classification = "normal"
	Carrier   Classification = "carrier"
	AtRisk    Classification = "at_risk"
	Unmatched Classification = "unmatched"
	Invalid   Classification = "invalid"
)

// Score returns the contribution to the category risk score.
func (c Classification) Score() int {
	switch c {
	case Carrier:
		return 1
	case AtRisk:
		return 3
	}
	return 0
}

func (c Classification) String() string {
	return string(c)
}

// Interpretation is one observation resolved against the reference table.
type Interpretation struct {
	Observation     parser.Observation    `json:"observation"`
	Definition      *reference.Definition `json:"definition,omitempty"` // nil when unmatched
	Genotype        string                `json:"genotype"`
	Classification  Classification        `json:"classification"`
	Recommendations []string              `json:"recommendations,omitempty"` // shared with Definition
}

// Matched reports whether the observation's ID is in the reference table.
func (i *Interpretation) Matched() bool {
	return i.Definition != nil
}

// ID returns the variant identifier.
func (i *Interpretation) ID() string {
	return i.Observation.ID
}

// Category returns the definition's category. Only meaningful when Matched.
func (i *Interpretation) Category() reference.Category {
	if i.Definition == nil {
		return reference.Category(-1)
	}
	return i.Definition.Category
}

// Score returns the contribution to the category risk score.
func (i *Interpretation) Score() int {
	return i.Classification.Score()
}

// Interpreter classifies observations. It is safe for concurrent use.
type Interpreter struct {
	table   *reference.Table
	workers int
	logger  *zap.Logger
}

// New creates an interpreter over the given table.
func New(table *reference.Table) *Interpreter {
	return &Interpreter{
		table:   table,
		workers: 1,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for debug messages.
func (it *Interpreter) SetLogger(l *zap.Logger) {
	it.logger = l
}

// SetWorkers sets the worker count used by InterpretAll. Values below 1
// mean runtime.NumCPU().
func (it *Interpreter) SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	it.workers = n
}

// Interpret classifies a single observation. It never fails: unknown IDs
// are Unmatched and undecodable genotypes are Invalid.
func (it *Interpreter) Interpret(obs parser.Observation) *Interpretation {
	interp := &Interpretation{
		Observation: obs,
		Genotype:    obs.Genotype,
	}

	def, ok := it.table.Lookup(obs.ID)
	if !ok {
		interp.Classification = Unmatched
		return interp
	}
	interp.Definition = def
	interp.Classification = Classify(obs.Genotype, def)

	switch interp.Classification {
	case Carrier, AtRisk:
		interp.Recommendations = def.Recommendations
	case Invalid:
		it.logger.Debug("genotype does not match reference alleles",
			zap.String("rsid", obs.ID),
			zap.Int("line", obs.Line),
			zap.String("genotype", obs.Genotype),
			zap.String("risk_allele", def.RiskAllele),
			zap.String("normal_allele", def.NormalAllele))
	}
	return interp
}

// Classify counts risk alleles in a normalized two-letter genotype.
// Allele order does not matter.
func Classify(genotype string, def *reference.Definition) Classification {
	if len(genotype) != 2 {
		return Invalid
	}

	risk := 0
	for i := 0; i < len(genotype); i++ {
		switch string(genotype[i]) {
		case def.RiskAllele:
			risk++
		case def.NormalAllele:
		default:
			return Invalid
		}
	}

	switch risk {
	case 0:
		return Normal
	case 1:
		return Carrier
	}
	return AtRisk
}

// InterpretAll classifies observations, preserving input order. With more
// than one worker the work is spread over ParallelInterpret.
func (it *Interpreter) InterpretAll(observations []parser.Observation) []*Interpretation {
	out := make([]*Interpretation, len(observations))
	if it.workers <= 1 || len(observations) < 2 {
		for i, obs := range observations {
			out[i] = it.Interpret(obs)
		}
		return out
	}

	items := make(chan WorkItem, len(observations))
	for i, obs := range observations {
		items <- WorkItem{Seq: i, Observation: obs}
	}
	close(items)

	// Every Seq is in range and appears once, so results land in place.
	for r := range it.ParallelInterpret(items, it.workers) {
		out[r.Seq] = r.Interpretation
	}
	return out
}
