package dcel

// Clone returns a deep, independent copy of d. Because ids are arena
// indices rather than pointers, the copy is a plain slice copy: no
// id-rewriting pass is needed.
func (d *DCEL) Clone() *DCEL {
	out := &DCEL{
		infNode: d.infNode,
	}
	out.vertices = append([]vertexRecord(nil), d.vertices...)
	out.edges = append([]edgeRecord(nil), d.edges...)
	out.lines = append(out.lines, d.lines...)
	return out
}
