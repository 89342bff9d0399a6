package runtime

import (
	"strconv"

	"github.com/geoknoesis/rdf-go/rdf"

	rdfvoc "github.com/geoknoesis/kastor-go/vocabulary/rdf"
	"github.com/geoknoesis/kastor-go/vocabulary/xsd"
)

// Literal constructors used by generated setters. Keeping lexical-form
// rules here means every generated builder writes literals the same way.

// StringLiteral builds a plain string literal with the given datatype.
// An empty datatype defaults to xsd:string.
func StringLiteral(value, datatype string) rdf.Literal {
	if datatype == "" {
		datatype = xsd.String
	}
	return rdf.Literal{Lexical: value, Datatype: rdf.IRI{Value: datatype}}
}

// LangLiteral builds a language-tagged string literal.
func LangLiteral(value, lang string) rdf.Literal {
	return rdf.Literal{Lexical: value, Lang: lang, Datatype: rdf.IRI{Value: rdfvoc.LangString}}
}

// IntLiteral builds an integer literal with the given datatype.
// An empty datatype defaults to xsd:integer.
func IntLiteral(value int, datatype string) rdf.Literal {
	if datatype == "" {
		datatype = xsd.Integer
	}
	return rdf.Literal{Lexical: strconv.Itoa(value), Datatype: rdf.IRI{Value: datatype}}
}

// FloatLiteral builds a floating-point literal with the given datatype.
// An empty datatype defaults to xsd:double.
func FloatLiteral(value float64, datatype string) rdf.Literal {
	if datatype == "" {
		datatype = xsd.Double
	}
	return rdf.Literal{Lexical: strconv.FormatFloat(value, 'g', -1, 64), Datatype: rdf.IRI{Value: datatype}}
}

// BoolLiteral builds a boolean literal.
func BoolLiteral(value bool) rdf.Literal {
	return rdf.Literal{Lexical: strconv.FormatBool(value), Datatype: rdf.IRI{Value: xsd.Boolean}}
}
