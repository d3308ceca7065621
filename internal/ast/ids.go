package ast

// FileID, StmtID, and ExprID index into a Builder's arenas. The zero
// value of each is not a valid node and is used as a sentinel — e.g. a
// Return with no argument stores NoExprID in its Expr field.
type (
	FileID uint32
	StmtID uint32
	ExprID uint32
)

const (
	NoFileID FileID = 0
	NoStmtID StmtID = 0
	NoExprID ExprID = 0
)

func (id FileID) IsValid() bool { return id != NoFileID }
func (id StmtID) IsValid() bool { return id != NoStmtID }
func (id ExprID) IsValid() bool { return id != NoExprID }
