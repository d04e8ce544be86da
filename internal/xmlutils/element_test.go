package xmlutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_Serialize(t *testing.T) {
	doc := NewDocument("Document",
		Attr{Name: "xmlns", Value: "urn:example"},
	)
	wrapper := doc.Child("Wrapper")
	wrapper.ChildText("Name", "Acme")
	wrapper.Child("Empty")
	wrapper.ChildText("Amt", "0.02").SetAttr("Ccy", "EUR")

	got := doc.Serialize()
	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<Document xmlns="urn:example">` +
		`<Wrapper><Name>Acme</Name><Empty/><Amt Ccy="EUR">0.02</Amt></Wrapper>` +
		`</Document>` + "\n"
	assert.Equal(t, want, got)
}

func TestElement_ChildrenKeepInsertionOrder(t *testing.T) {
	doc := NewDocument("Root")
	for _, tag := range []string{"B", "A", "C", "A"} {
		doc.Child(tag)
	}
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
		"<Root><B/><A/><C/><A/></Root>\n", doc.Serialize())
}

func TestElement_EscapesTextAndAttributes(t *testing.T) {
	doc := NewDocument("Root")
	doc.ChildText("Nm", `Fish & Chips <Ltd>`).SetAttr("note", `a "b" & c`)

	got := doc.Serialize()
	assert.Contains(t, got, "<Nm note=\"a &#34;b&#34; &amp; c\">Fish &amp; Chips &lt;Ltd&gt;</Nm>")
	assert.NotContains(t, got, "Fish & Chips")
}

func TestElement_Accessors(t *testing.T) {
	doc := NewDocument("Root")
	child := doc.ChildText("Nm", "Acme")
	assert.Equal(t, "Nm", child.Tag())
	assert.Equal(t, "Acme", child.Text())
	assert.Equal(t, "Root", doc.Tag())
	assert.Equal(t, "", doc.Text())
}

func TestElement_SerializeIsSingleBodyLine(t *testing.T) {
	doc := NewDocument("Root")
	doc.Child("A").ChildText("B", "x")

	lines := strings.Split(strings.TrimSuffix(doc.Serialize(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, lines[0])
}
