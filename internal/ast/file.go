package ast

import "github.com/lineCode/mjs-1/internal/source"

// File is the root of a parsed program: a flat top-level statement list.
type File struct {
	Span source.Span
	Body []StmtID
}

type Files struct {
	arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.arena.Allocate(File{Span: sp}))
}

func (f *Files) Get(id FileID) *File {
	return f.arena.Get(uint32(id))
}
