package doc

import (
	"fmt"

	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/schema"
)

// Validate checks d against the containment schema. The returned error has
// code [errors.ErrCodeInvalidDocument] and names the path of the first
// offending node, e.g. "doc/row[1]/column[0]".
func Validate(d *Node) error {
	if d == nil {
		return errors.New(errors.ErrCodeInvalidDocument, "document is nil")
	}
	if d.Type != schema.Doc {
		return errors.New(errors.ErrCodeInvalidDocument, "root is %s, want doc", d.Type)
	}
	return validateNode(d, "doc")
}

func validateNode(n *Node, path string) error {
	if n.Type == schema.Unknown {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: unknown node type", path)
	}
	if n.IsText() {
		if n.Text == "" {
			return errors.New(errors.ErrCodeInvalidDocument, "%s: empty text node", path)
		}
		return nil
	}
	rule, _ := schema.RuleFor(n.Type)
	if len(n.Content) < rule.Min {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: %d children, want at least %d", path, len(n.Content), rule.Min)
	}
	if rule.Max > 0 && len(n.Content) > rule.Max {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: %d children, want at most %d", path, len(n.Content), rule.Max)
	}
	if n.Type == schema.Heading {
		if lvl, ok := n.Attrs.Int(schema.AttrLevel); !ok || lvl < 1 || lvl > 6 {
			return errors.New(errors.ErrCodeInvalidDocument, "%s: heading level must be 1-6", path)
		}
	}
	if n.Type == schema.OrderedList {
		if _, set := n.Attrs[schema.AttrStart]; set {
			if start, ok := n.Attrs.Int(schema.AttrStart); !ok || start < 0 {
				return errors.New(errors.ErrCodeInvalidDocument, "%s: list start must be a whole number", path)
			}
		}
	}
	for i, c := range n.Content {
		childPath := fmt.Sprintf("%s/%s[%d]", path, c.Type, i)
		if !rule.Allows(c.Type) {
			return errors.New(errors.ErrCodeInvalidDocument, "%s: %s not allowed inside %s", childPath, c.Type, n.Type)
		}
		if err := validateNode(c, childPath); err != nil {
			return err
		}
	}
	return nil
}
