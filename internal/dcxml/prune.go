package dcxml

import "github.com/beevik/etree"

// pruneEmpty removes every element that, at call time, has no text and no
// child elements. The doomed set is collected before anything is removed,
// so a parent whose only child is doomed survives the pass. Attributes
// alone do not keep an element alive.
func pruneEmpty(root *etree.Element) {
	var doomed []*etree.Element

	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			walk(child)
			if child.Text() == "" && len(child.ChildElements()) == 0 {
				doomed = append(doomed, child)
			}
		}
	}
	walk(root)

	for _, el := range doomed {
		if parent := el.Parent(); parent != nil {
			parent.RemoveChild(el)
		}
	}
}
