package yamlcodec_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mellemahp/smithy4go/document"
	"github.com/mellemahp/smithy4go/internal/testshapes"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/validate"
	"github.com/mellemahp/smithy4go/yamlcodec"
)

func TestMarshalPerson(t *testing.T) {
	age := int32(41)
	p := testshapes.Person{Name: "Alice", Age: &age}
	got, err := yamlcodec.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(got)
	if !strings.Contains(out, `"Alice"`) || !strings.Contains(out, "age: 41") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}
}

func TestPersonRoundTrip(t *testing.T) {
	age := int32(30)
	want := testshapes.Person{Name: "Bob", Age: &age}
	data, err := yamlcodec.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := yamlcodec.Unmarshal(data, testshapes.PersonSchema(), testshapes.NewPersonBuilder())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestUnmarshalHandEditedYAML(t *testing.T) {
	data := []byte("name: Carol\nage: 44\nunknown:\n  nested: [1, 2]\n")
	got, err := yamlcodec.Unmarshal(data, testshapes.PersonSchema(), testshapes.NewPersonBuilder())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != "Carol" || got.Age == nil || *got.Age != 44 {
		t.Fatalf("got %+v", got)
	}
}

func TestUnmarshalNullOptional(t *testing.T) {
	data := []byte("name: Bob\nage: null\n")
	got, err := yamlcodec.Unmarshal(data, testshapes.PersonSchema(), testshapes.NewPersonBuilder())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Age != nil {
		t.Fatalf("Age = %v, want nil", *got.Age)
	}
}

func TestUnmarshalValidates(t *testing.T) {
	_, err := yamlcodec.Unmarshal([]byte("age: 44\n"), testshapes.PersonSchema(), testshapes.NewPersonBuilder())
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("err = %v, want validate.Errors", err)
	}
}

func TestOrderRoundTrip(t *testing.T) {
	status := testshapes.StatusPending
	order := testshapes.Order{
		ID: "ord-7",
		Items: []testshapes.Item{
			{SKU: "WIDGET-1", Quantity: 2},
		},
		CreatedAt: time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
		Tags:      map[string]string{"env": "prod"},
		Shipping:  &testshapes.Address{Street: "2 Side St", City: "Shelbyville"},
		Payload:   []byte("raw"),
		Metadata:  document.Map{"note": document.String("fragile")},
		Status:    &status,
	}
	data, err := yamlcodec.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := yamlcodec.Unmarshal(data, testshapes.OrderSchema(), testshapes.NewOrderBuilder())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, order) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, order)
	}
}

func TestUnionRoundTrip(t *testing.T) {
	data, err := yamlcodec.Marshal(testshapes.AttachmentData{Value: []byte{0xde, 0xad}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := yamlcodec.Unmarshal(data, testshapes.AttachmentSchema(), testshapes.NewAttachmentBuilder())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	blob, ok := got.(testshapes.AttachmentData)
	if !ok || !reflect.DeepEqual(blob.Value, []byte{0xde, 0xad}) {
		t.Fatalf("got %T %+v", got, got)
	}
}

func TestUnionSetTwice(t *testing.T) {
	data := []byte("text: a\ndata: aGk=\n")
	_, err := yamlcodec.Unmarshal(data, testshapes.AttachmentSchema(), testshapes.NewAttachmentBuilder())
	if !errors.Is(err, serde.ErrUnionValueAlreadySet) {
		t.Fatalf("err = %v", err)
	}
}

func TestRecursiveNodeRoundTrip(t *testing.T) {
	chain := testshapes.Node{
		Value: "a",
		Next:  &testshapes.Node{Value: "b"},
	}
	data, err := yamlcodec.Marshal(chain)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := yamlcodec.Unmarshal(data, testshapes.NodeSchema(), testshapes.NewNodeBuilder())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, chain) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestMaxDepthGuard(t *testing.T) {
	chain := testshapes.Node{Value: "0"}
	for i := 0; i < 6; i++ {
		next := chain
		chain = testshapes.Node{Value: "x", Next: &next}
	}
	data, err := yamlcodec.Marshal(chain)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, err = yamlcodec.UnmarshalWith(
		data,
		testshapes.NodeSchema(),
		testshapes.NewNodeBuilder(),
		yamlcodec.Options{MaxDepth: 3},
	)
	if !errors.Is(err, yamlcodec.ErrMaxDepth) {
		t.Fatalf("err = %v, want ErrMaxDepth", err)
	}
}

func TestYAMLAnchorsResolve(t *testing.T) {
	data := []byte("value: &v shared\nnext:\n  value: *v\n")
	got, err := yamlcodec.Unmarshal(data, testshapes.NodeSchema(), testshapes.NewNodeBuilder())
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Value != "shared" || got.Next == nil || got.Next.Value != "shared" {
		t.Fatalf("got %+v", got)
	}
}
