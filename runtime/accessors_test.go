package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/geoknoesis/kastor-go/rdfgraph"
	"github.com/geoknoesis/kastor-go/vocabulary/xsd"
)

var (
	testNode  = rdf.IRI{Value: "http://example.org/entity/1"}
	testOther = rdf.IRI{Value: "http://example.org/entity/2"}
	predName  = rdf.IRI{Value: "http://example.org/vocab#name"}
	predAge   = rdf.IRI{Value: "http://example.org/vocab#age"}
	predKnows = rdf.IRI{Value: "http://example.org/vocab#knows"}
)

func testHandle(g *rdfgraph.Graph) Handle {
	return NewHandle(g, testNode, predName, predAge, predKnows)
}

func TestRequiredLiteral(t *testing.T) {
	g := rdfgraph.New()
	g.Add(rdf.Triple{S: testNode, P: predName, O: StringLiteral("Alice", "")})

	v, err := RequiredLiteral(testHandle(g), predName, AsString)
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)
}

func TestRequiredLiteral_Absent(t *testing.T) {
	g := rdfgraph.New()

	_, err := RequiredLiteral(testHandle(g), predName, AsString)
	require.ErrorIs(t, err, ErrRequiredAbsent)
	assert.Contains(t, err.Error(), predName.Value)
}

func TestOptionalLiteral(t *testing.T) {
	g := rdfgraph.New()

	v, err := OptionalLiteral(testHandle(g), predAge, AsInt)
	require.NoError(t, err)
	assert.Nil(t, v)

	g.Add(rdf.Triple{S: testNode, P: predAge, O: IntLiteral(42, "")})
	v, err = OptionalLiteral(testHandle(g), predAge, AsInt)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)
}

func TestOptionalLiteral_ConversionFailure(t *testing.T) {
	g := rdfgraph.New()
	g.Add(rdf.Triple{S: testNode, P: predAge, O: StringLiteral("not a number", xsd.Integer)})

	_, err := OptionalLiteral(testHandle(g), predAge, AsInt)
	require.ErrorIs(t, err, ErrConversion)
}

func TestLiteralList_LenientDropsUnconvertible(t *testing.T) {
	g := rdfgraph.New()
	g.Add(rdf.Triple{S: testNode, P: predAge, O: IntLiteral(1, "")})
	g.Add(rdf.Triple{S: testNode, P: predAge, O: StringLiteral("junk", xsd.Integer)})
	g.Add(rdf.Triple{S: testNode, P: predAge, O: IntLiteral(3, "")})

	vs, err := LiteralList(testHandle(g), predAge, AsInt, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, vs)
}

func TestLiteralList_StrictAborts(t *testing.T) {
	g := rdfgraph.New()
	g.Add(rdf.Triple{S: testNode, P: predAge, O: IntLiteral(1, "")})
	g.Add(rdf.Triple{S: testNode, P: predAge, O: StringLiteral("junk", xsd.Integer)})

	_, err := LiteralList(testHandle(g), predAge, AsInt, true)
	require.ErrorIs(t, err, ErrConversion)
}

type testEntity struct {
	h Handle
}

func (e *testEntity) Node() rdf.Term { return e.h.Node() }

func registerTestEntity(t *testing.T) string {
	t.Helper()
	classIRI := "http://example.org/vocab#TestEntity/" + t.Name()
	Register(classIRI, func(h Handle) any { return &testEntity{h: h} })
	return classIRI
}

func TestRequiredObject(t *testing.T) {
	classIRI := registerTestEntity(t)
	g := rdfgraph.New()
	g.Add(rdf.Triple{S: testNode, P: predKnows, O: testOther})

	e, err := RequiredObject[*testEntity](testHandle(g), predKnows, classIRI)
	require.NoError(t, err)
	assert.Equal(t, testOther, e.Node())
}

func TestRequiredObject_Absent(t *testing.T) {
	classIRI := registerTestEntity(t)
	g := rdfgraph.New()

	_, err := RequiredObject[*testEntity](testHandle(g), predKnows, classIRI)
	require.ErrorIs(t, err, ErrRequiredAbsent)
}

func TestOptionalObject_AbsentIsZero(t *testing.T) {
	classIRI := registerTestEntity(t)
	g := rdfgraph.New()

	e, err := OptionalObject[*testEntity](testHandle(g), predKnows, classIRI)
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestObjectList(t *testing.T) {
	classIRI := registerTestEntity(t)
	g := rdfgraph.New()
	third := rdf.IRI{Value: "http://example.org/entity/3"}
	g.Add(rdf.Triple{S: testNode, P: predKnows, O: testOther})
	g.Add(rdf.Triple{S: testNode, P: predKnows, O: third})

	es, err := ObjectList[*testEntity](testHandle(g), predKnows, classIRI)
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, testOther, es[0].Node())
	assert.Equal(t, third, es[1].Node())
}

func TestObjectList_UnregisteredClass(t *testing.T) {
	g := rdfgraph.New()
	g.Add(rdf.Triple{S: testNode, P: predKnows, O: testOther})

	_, err := ObjectList[*testEntity](testHandle(g), predKnows, "http://example.org/vocab#Nowhere")
	require.ErrorIs(t, err, ErrUnregistered)
}

func TestMaterializeAs_WrongType(t *testing.T) {
	classIRI := registerTestEntity(t)
	g := rdfgraph.New()

	_, err := MaterializeAs[string](classIRI, NewHandle(g, testNode))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnregistered))
}
