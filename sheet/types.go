package sheet

import "restyle/style"

// Block is one named declaration block compiled into a style object.
type Block struct {
	Name   string
	Object *style.Object
}

// Sheet is the result of compiling a stylesheet source.
type Sheet struct {
	Blocks   []Block
	Warnings []string
}

// Block returns the named block if present.
func (s *Sheet) Block(name string) (Block, bool) {
	for _, b := range s.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Block{}, false
}
