package doc_test

import (
	"fmt"

	"github.com/matzehuels/slidekit/pkg/doc"
)

func ExampleNode_NodeAt() {
	d := doc.NewDoc(
		doc.H(1, "Title"),
		doc.Row(nil, doc.Column(doc.P("left")), doc.Column(doc.P("right"))),
	)

	n, _ := d.NodeAt(7)
	fmt.Println(n)
	n, _ = d.NodeAt(8)
	fmt.Println(n)
	// Output:
	// row(column(paragraph("left")), column(paragraph("right")))
	// column(paragraph("left"))
}

func ExampleTransaction() {
	d := doc.NewDoc(doc.P("one"), doc.P("two"))

	tr := doc.NewTransaction(d)
	_ = tr.Delete(0, 5)
	_ = tr.Insert(tr.Doc().ContentSize(), doc.P("three"))

	fmt.Println(tr.Doc())
	fmt.Println(tr.Mapping().Map(5))
	// Output:
	// doc(paragraph("two"), paragraph("three"))
	// 0
}
