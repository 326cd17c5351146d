package ir

import (
	"testing"

	"github.com/treedoc-format/go-treedoc/format"
)

func TestJSONRoundTrip(t *testing.T) {
	for _, doc := range []*Node{
		True(),
		FromSlice(nil),
		FromKeyVals([]KeyVal{{"k", True()}, {"k", False()}}),
		nestedDoc(),
	} {
		d, err := ToJSON(doc)
		if err != nil {
			t.Fatalf("ToJSON: %v", err)
		}
		back, err := FromJSON(d)
		if err != nil {
			t.Fatalf("FromJSON: %v", err)
		}
		if !Equal(doc, back) {
			t.Errorf("round trip changed %s to %s",
				doc.Text(format.Compact), back.Text(format.Compact))
		}
		checkParents(t, back)
	}
}

func TestFromJSONBad(t *testing.T) {
	bad := []string{
		`{"type": "Object", "fields": ["a"], "values": []}`,
		`{"type": "Array", "fields": ["a"], "values": [{"type": "Bool", "bool": true}]}`,
		`{"type": "Bool", "bool": true, "values": [{"type": "Bool", "bool": true}]}`,
		`{"type": "Nope"}`,
		`]`,
	}
	for _, in := range bad {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("FromJSON(%s) should fail", in)
		}
	}
}
