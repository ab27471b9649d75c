package processor

// Resolver supplies the behaviour of opcodes missing from a table.
type Resolver interface {
	Resolve(opcode int) Instruction
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(opcode int) Instruction

func (fn ResolverFunc) Resolve(opcode int) Instruction {
	return fn(opcode)
}

// Always returns a resolver mapping every opcode to in. It is a *Rules
// with no rules, so Validate and Downgrade see the instruction.
func Always(in Instruction) Resolver {
	return &Rules{Default: in}
}

// Undefined is the behaviour of an undocumented opcode on a processor
// without a resolver: nothing happens.
var Undefined = Instruction{
	Description: "Undefined",
	Execute:     func(State) {},
	IpIncrement: 1,
}

// Rule maps an opcode range to an instruction.
type Rule struct {
	Range       Range
	Instruction Instruction
}

// Rules resolves opcodes by ordered range rules.
//
// Every rule is evaluated and the last match wins, so a later rule
// overrides an earlier one where their ranges overlap. Default is used
// when no rule matches.
type Rules struct {
	Rules   []Rule
	Default Instruction
}

// RuleSpec is a rule whose range is still in ParseRange syntax.
type RuleSpec struct {
	Range       string
	Instruction Instruction
}

// NewRules parses the rule specs, in order, into Rules.
func NewRules(def Instruction, specs ...RuleSpec) (rules *Rules, err error) {
	rules = &Rules{
		Default: def,
		Rules:   make([]Rule, 0, len(specs)),
	}

	for _, spec := range specs {
		var rng Range
		rng, err = ParseRange(spec.Range)
		if err != nil {
			rules = nil
			return
		}
		rules.Rules = append(rules.Rules, Rule{Range: rng, Instruction: spec.Instruction})
	}

	return
}

// Resolve returns the instruction of the last matching rule, or Default.
func (rules *Rules) Resolve(opcode int) (in Instruction) {
	in = rules.Default
	for _, rule := range rules.Rules {
		if rule.Range.Contains(opcode) {
			in = rule.Instruction
		}
	}
	return
}
