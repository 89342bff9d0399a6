// Package xsd provides IRI constants for the XML Schema Datatypes vocabulary.
//
// The code generator maps SHACL datatype constraints onto Go types through
// these constants. Only the datatypes the generator understands are listed;
// anything else falls back to the string mapping (or fails generation in
// strict mode).
package xsd
