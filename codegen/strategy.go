package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geoknoesis/kastor-go/schema/naming"
)

// setterStrategy is the per-scalar-type emission strategy behind builder
// setters: the accepted Go type, the literal the setter writes, and the
// fail-fast checks it runs first. Object properties have their own path
// in the DSL emitter; strategies cover literals only.
type setterStrategy interface {
	goType() string

	// literalExpr is the expression building the written literal from
	// the value variable.
	literalExpr(p PropertyModel, valueVar string) string

	// checkLines are the statements enforcing the property's declared
	// constraints on one value, each returning early on failure.
	// litVar names a local holding the built literal, for strategies
	// whose value checks compare lexical forms.
	checkLines(p PropertyModel, valueVar, litVar string) []string
}

func strategyFor(s naming.Scalar) setterStrategy {
	switch s.GoType() {
	case "int":
		return intStrategy{}
	case "float64":
		return floatStrategy{}
	case "bool":
		return boolStrategy{}
	default:
		return stringStrategy{}
	}
}

// checkStmt renders one guarded check call.
func checkStmt(call string) []string {
	return []string{
		"if err := " + call + "; err != nil {",
		"\treturn err",
		"}",
	}
}

func quoteSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

type stringStrategy struct{}

func (stringStrategy) goType() string { return "string" }

func (stringStrategy) literalExpr(p PropertyModel, valueVar string) string {
	return fmt.Sprintf("runtime.StringLiteral(%s, %s)", valueVar, strconv.Quote(p.Datatype))
}

func (stringStrategy) checkLines(p PropertyModel, valueVar, _ string) []string {
	c := p.Constraints
	name := strconv.Quote(p.Name)
	var lines []string
	if c.MinLength != nil {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckMinLength(%s, %s, %d)", name, valueVar, *c.MinLength))...)
	}
	if c.MaxLength != nil {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckMaxLength(%s, %s, %d)", name, valueVar, *c.MaxLength))...)
	}
	if c.Pattern != "" {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckPattern(%s, %s, %s)", name, valueVar, strconv.Quote(c.Pattern)))...)
	}
	if len(c.In) > 0 {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckIn(%s, %s, %s)", name, valueVar, quoteSlice(c.In)))...)
	}
	if c.HasValue != "" {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckHasValue(%s, %s, %s)", name, valueVar, strconv.Quote(c.HasValue)))...)
	}
	return lines
}

// numericChecks emits the shared range checks; valueExpr must already be
// a float64 expression.
func numericChecks(p PropertyModel, valueExpr string) []string {
	c := p.Constraints
	name := strconv.Quote(p.Name)
	var lines []string
	if c.MinInclusive != nil {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckMinInclusive(%s, %s, %s)", name, valueExpr, formatFloat(*c.MinInclusive)))...)
	}
	if c.MaxInclusive != nil {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckMaxInclusive(%s, %s, %s)", name, valueExpr, formatFloat(*c.MaxInclusive)))...)
	}
	if c.MinExclusive != nil {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckMinExclusive(%s, %s, %s)", name, valueExpr, formatFloat(*c.MinExclusive)))...)
	}
	if c.MaxExclusive != nil {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckMaxExclusive(%s, %s, %s)", name, valueExpr, formatFloat(*c.MaxExclusive)))...)
	}
	return lines
}

// lexicalValueChecks emits In/HasValue checks against the canonical
// lexical form of the built literal.
func lexicalValueChecks(p PropertyModel, litVar string) []string {
	c := p.Constraints
	name := strconv.Quote(p.Name)
	var lines []string
	if len(c.In) > 0 {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckIn(%s, %s.Lexical, %s)", name, litVar, quoteSlice(c.In)))...)
	}
	if c.HasValue != "" {
		lines = append(lines, checkStmt(fmt.Sprintf("runtime.CheckHasValue(%s, %s.Lexical, %s)", name, litVar, strconv.Quote(c.HasValue)))...)
	}
	return lines
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type intStrategy struct{}

func (intStrategy) goType() string { return "int" }

func (intStrategy) literalExpr(p PropertyModel, valueVar string) string {
	return fmt.Sprintf("runtime.IntLiteral(%s, %s)", valueVar, strconv.Quote(p.Datatype))
}

func (intStrategy) checkLines(p PropertyModel, valueVar, litVar string) []string {
	lines := numericChecks(p, "float64("+valueVar+")")
	return append(lines, lexicalValueChecks(p, litVar)...)
}

type floatStrategy struct{}

func (floatStrategy) goType() string { return "float64" }

func (floatStrategy) literalExpr(p PropertyModel, valueVar string) string {
	return fmt.Sprintf("runtime.FloatLiteral(%s, %s)", valueVar, strconv.Quote(p.Datatype))
}

func (floatStrategy) checkLines(p PropertyModel, valueVar, litVar string) []string {
	lines := numericChecks(p, valueVar)
	return append(lines, lexicalValueChecks(p, litVar)...)
}

type boolStrategy struct{}

func (boolStrategy) goType() string { return "bool" }

func (boolStrategy) literalExpr(p PropertyModel, valueVar string) string {
	return fmt.Sprintf("runtime.BoolLiteral(%s)", valueVar)
}

func (boolStrategy) checkLines(p PropertyModel, _, litVar string) []string {
	return lexicalValueChecks(p, litVar)
}
