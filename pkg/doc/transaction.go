package doc

// Transaction groups the steps of one logical edit. Each step is applied as
// it is added, so [Transaction.Doc] always reflects the steps so far.
//
// A Transaction is not safe for concurrent use.
type Transaction struct {
	before  *Node
	doc     *Node
	steps   []Step
	mapping Mapping
	meta    map[string]any
}

// NewTransaction starts a transaction on d.
func NewTransaction(d *Node) *Transaction {
	return &Transaction{before: d, doc: d}
}

// Step applies s to the working document. A failing step leaves the
// transaction unchanged.
func (tr *Transaction) Step(s Step) error {
	next, err := s.Apply(tr.doc)
	if err != nil {
		return err
	}
	tr.doc = next
	tr.steps = append(tr.steps, s)
	tr.mapping.Append(s.Map())
	return nil
}

// Delete removes the children between from and to.
func (tr *Transaction) Delete(from, to int) error {
	return tr.Step(ReplaceStep{From: from, To: to})
}

// Insert places nodes at pos.
func (tr *Transaction) Insert(pos int, nodes ...*Node) error {
	return tr.Step(ReplaceStep{From: pos, To: pos, Content: nodes})
}

// ReplaceWith replaces the children between from and to with nodes.
func (tr *Transaction) ReplaceWith(from, to int, nodes ...*Node) error {
	return tr.Step(ReplaceStep{From: from, To: to, Content: nodes})
}

// SetAttrs merges attrs into the node starting at pos.
func (tr *Transaction) SetAttrs(pos int, attrs Attrs) error {
	return tr.Step(AttrStep{Pos: pos, Attrs: attrs})
}

// Doc returns the current working document.
func (tr *Transaction) Doc() *Node { return tr.doc }

// Before returns the document the transaction started from.
func (tr *Transaction) Before() *Node { return tr.before }

// Steps returns the applied steps in order.
func (tr *Transaction) Steps() []Step { return tr.steps }

// Mapping returns the composed position mapping of all steps.
func (tr *Transaction) Mapping() *Mapping { return &tr.mapping }

// DocChanged reports whether the transaction changed document structure.
// Attribute-only steps do not count.
func (tr *Transaction) DocChanged() bool {
	for _, s := range tr.steps {
		if _, ok := s.(ReplaceStep); ok {
			return true
		}
	}
	return false
}

// Empty reports whether no step was applied.
func (tr *Transaction) Empty() bool { return len(tr.steps) == 0 }

// SetMeta attaches metadata to the transaction and returns it for chaining.
func (tr *Transaction) SetMeta(key string, value any) *Transaction {
	if tr.meta == nil {
		tr.meta = make(map[string]any)
	}
	tr.meta[key] = value
	return tr
}

// Meta returns the metadata stored under key.
func (tr *Transaction) Meta(key string) any { return tr.meta[key] }
