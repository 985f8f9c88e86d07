package rtr

import (
	"github.com/rohanthewiz/rnav/consts"
)

// Tree stores route patterns segment by segment for lookup with parameter
// capture. Static segments are matched exactly; ":name" segments match any
// single non-empty segment and capture it under "name".
//
// Structure example for patterns /cars, /cars/:name, /cars/:name/parts:
//
//	root
//	 └── "cars"  (data: /cars)
//	      └── :name (data: /cars/:name)
//	           └── "parts" (data: /cars/:name/parts)
//
// Empty segments are skipped during both Add and Lookup, so trailing and
// doubled slashes are tolerated without registering extra variants.
//
// Zero value is ready to use.
type Tree[T any] struct {
	root treeNode[T]
}

// treeNode is one segment of the tree. A node may have static children and
// at most one parameter child. paramName is only set on parameter nodes.
type treeNode[T any] struct {
	children  map[string]*treeNode[T]
	parameter *treeNode[T]
	paramName string
	data      T
	final     bool
}

// Add registers data under the given pattern.
// Registering the same pattern twice replaces the data.
// A parameter segment registered at a level where a different parameter name
// already exists reuses the existing node under the new name (one parameter
// slot per level, same as single-segment matching demands).
func (tree *Tree[T]) Add(pattern string, data T) {
	node := &tree.root

	for i := 0; i <= len(pattern); {
		j := i
		for j < len(pattern) && pattern[j] != consts.RuneFwdSlash {
			j++
		}

		if seg := pattern[i:j]; seg != "" {
			if seg[0] == consts.RuneColon {
				if node.parameter == nil {
					node.parameter = &treeNode[T]{}
				}
				node.parameter.paramName = seg[1:]
				node = node.parameter
			} else {
				if node.children == nil {
					node.children = make(map[string]*treeNode[T])
				}
				child, ok := node.children[seg]
				if !ok {
					child = &treeNode[T]{}
					node.children[seg] = child
				}
				node = child
			}
		}

		if j >= len(pattern) {
			break
		}
		i = j + 1
	}

	node.data = data
	node.final = true
}

// Lookup finds the data for the given path.
// This is a convenience wrapper around LookupNoAlloc that collects
// parameters into a slice. The allocation only occurs when the matched
// pattern actually has parameters.
func (tree *Tree[T]) Lookup(path string) (T, []Parameter, bool) {
	var params []Parameter

	data, found := tree.LookupNoAlloc(path, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})

	return data, params, found
}

// LookupNoAlloc finds the data for the given path without allocating.
// Parameters are delivered through the callback as they are captured.
// Note the callback may have fired for a prefix of the path even when the
// overall lookup fails; callers keying off the boolean result should reset
// any collected parameters on a miss.
func (tree *Tree[T]) LookupNoAlloc(path string, addParameter func(key string, value string)) (T, bool) {
	node := &tree.root

	for i := 0; i <= len(path); {
		j := i
		for j < len(path) && path[j] != consts.RuneFwdSlash {
			j++
		}

		if seg := path[i:j]; seg != "" {
			if child, ok := node.children[seg]; ok {
				node = child
			} else if node.parameter != nil {
				addParameter(node.parameter.paramName, seg)
				node = node.parameter
			} else {
				var empty T
				return empty, false
			}
		}

		if j >= len(path) {
			break
		}
		i = j + 1
	}

	if !node.final {
		var empty T
		return empty, false
	}
	return node.data, true
}

// Map binds all stored data to new values provided by the callback.
// This traverses the entire tree, e.g. to wrap every handler.
func (tree *Tree[T]) Map(transform func(T) T) {
	tree.root.each("", func(pattern string, node *treeNode[T]) {
		if node.final {
			node.data = transform(node.data)
		}
	})
}

// Walk calls fn with the reconstructed pattern and data of every
// registered entry, in depth-first order.
func (tree *Tree[T]) Walk(fn func(pattern string, data T)) {
	tree.root.each("", func(pattern string, node *treeNode[T]) {
		if node.final {
			if pattern == "" {
				pattern = consts.PathRoot
			}
			fn(pattern, node.data)
		}
	})
}

// each performs a depth-first traversal, threading the accumulated pattern.
func (node *treeNode[T]) each(pattern string, callback func(string, *treeNode[T])) {
	callback(pattern, node)

	for seg, child := range node.children {
		child.each(pattern+"/"+seg, callback)
	}

	if node.parameter != nil {
		node.parameter.each(pattern+"/:"+node.parameter.paramName, callback)
	}
}
