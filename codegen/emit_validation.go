package codegen

import (
	"fmt"
	"strconv"

	"github.com/geoknoesis/kastor-go/codegen/gocode"
)

// validateTarget abstracts over the two receivers a Validate method is
// generated onto: the wrapper (reading an existing graph) and the
// builder (checking the resource under construction).
type validateTarget struct {
	recv      gocode.Param
	graphExpr string
	nodeExpr  string
}

func wrapperValidateTarget(m ClassModel) validateTarget {
	return validateTarget{
		recv:      gocode.Param{Name: "w", Type: "*" + m.WrapperName},
		graphExpr: "w.h.Graph()",
		nodeExpr:  "w.h.Node()",
	}
}

func builderValidateTarget(m ClassModel) validateTarget {
	return validateTarget{
		recv:      gocode.Param{Name: "b", Type: "*" + m.BuilderName},
		graphExpr: "b.ctx.Graph()",
		nodeExpr:  "b.node",
	}
}

// validateFunc emits the Validate method for the class per the
// configured mode. The second result is false when the mode omits
// validation entirely.
//
// Violations are data: the generated body accumulates a report and
// never fails on a constraint violation.
func (g *Generator) validateFunc(m ClassModel, t validateTarget) (gocode.Func, bool) {
	switch g.opts.ValidationMode {
	case ValidationNone:
		return gocode.Func{}, false

	case ValidationExternal:
		return gocode.Func{
			Recv:    &t.recv,
			Name:    "Validate",
			Results: []string{"runtime.Report"},
			Doc: []string{
				fmt.Sprintf("Validate delegates to the %q external validator.", g.opts.ExternalValidator),
			},
			Body: []string{
				fmt.Sprintf("return runtime.ValidateWith(%s, %s, %s)",
					strconv.Quote(g.opts.ExternalValidator), t.graphExpr, t.nodeExpr),
			},
		}, true

	default:
		return g.embeddedValidateFunc(m, t), true
	}
}

func (g *Generator) embeddedValidateFunc(m ClassModel, t validateTarget) gocode.Func {
	body := []string{"var report runtime.Report"}
	for _, p := range m.Properties {
		if !p.HasCardinality() {
			continue
		}
		body = append(body,
			fmt.Sprintf("report.Violations = append(report.Violations, runtime.CheckCardinality(%s, %s, %s, %s, %d, %d)...)",
				t.graphExpr, t.nodeExpr, m.shapeIRIConst(), m.predicateConst(p), p.MinCount, p.MaxCount))
	}
	body = append(body, "return report")

	return gocode.Func{
		Recv:    &t.recv,
		Name:    "Validate",
		Results: []string{"runtime.Report"},
		Doc: []string{
			fmt.Sprintf("Validate checks the declared cardinalities of the %s shape", m.ClassName),
			"and reports every unsatisfied bound.",
		},
		Body: body,
	}
}
