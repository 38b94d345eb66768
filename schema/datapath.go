package schema

// PathBuilder composes the path of a child from its parent's path.
// key is the property name, pattern or tuple index for keyed kinds and
// empty otherwise.
type PathBuilder func(kind NodeKind, parent, key string) string

// DataPath is the default PathBuilder. It renders paths in terms of the data
// a schema describes:
//
//	ObjectProperty              parent.key
//	ObjectPatternProperties     parent./pattern/
//	ObjectAdditionalProperties  parent.*
//	TupleItem                   parent[i]
//	ArrayItems                  parent[*]
//	Root                        ""
//
// DefProperty leaves the parent path unchanged.
func DataPath(kind NodeKind, parent, key string) string {
	switch kind {
	case Root:
		return ""
	case ObjectProperty:
		return parent + "." + key
	case ObjectPatternProperties:
		return parent + "./" + key + "/"
	case ObjectAdditionalProperties:
		return parent + ".*"
	case TupleItem:
		return parent + "[" + key + "]"
	case ArrayItems:
		return parent + "[*]"
	default:
		return parent
	}
}

// PathOf folds a node path (as handed out by a reader) into a single path
// string using build. A nil build uses DataPath.
func PathOf(path []Node, build PathBuilder) string {
	if build == nil {
		build = DataPath
	}
	p := ""
	for _, n := range path {
		p = build(n.Kind, p, n.Key)
	}
	return p
}
