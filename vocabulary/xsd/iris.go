package xsd

// Namespace is the base IRI for XML Schema Datatypes.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// String datatypes.
const (
	// String is the xsd:string datatype.
	String = Namespace + "string"

	// AnyURI is the xsd:anyURI datatype. Mapped to string.
	AnyURI = Namespace + "anyURI"
)

// Integer datatypes. All map to the Go int type.
const (
	// Integer is the xsd:integer datatype.
	Integer = Namespace + "integer"

	// Int is the xsd:int datatype.
	Int = Namespace + "int"

	// Long is the xsd:long datatype.
	Long = Namespace + "long"

	// Short is the xsd:short datatype.
	Short = Namespace + "short"

	// NonNegativeInteger is the xsd:nonNegativeInteger datatype.
	NonNegativeInteger = Namespace + "nonNegativeInteger"

	// PositiveInteger is the xsd:positiveInteger datatype.
	PositiveInteger = Namespace + "positiveInteger"
)

// Floating-point datatypes. All map to the Go float64 type.
const (
	// Decimal is the xsd:decimal datatype.
	Decimal = Namespace + "decimal"

	// Double is the xsd:double datatype.
	Double = Namespace + "double"

	// Float is the xsd:float datatype.
	Float = Namespace + "float"
)

// Boolean is the xsd:boolean datatype.
const Boolean = Namespace + "boolean"

// Temporal datatypes. Mapped to string; lexical forms pass through unchanged.
const (
	// DateTime is the xsd:dateTime datatype.
	DateTime = Namespace + "dateTime"

	// Date is the xsd:date datatype.
	Date = Namespace + "date"

	// Time is the xsd:time datatype.
	Time = Namespace + "time"
)
