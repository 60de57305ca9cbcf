package domain

// Member is the progression record kept for one member.
type Member struct {
	Level      int `json:"level"`
	Experience int `json:"experience"`
	Currency   int `json:"currency"`
}

// Table maps member identifiers to their records. A missing key means the
// member was never touched, which is distinct from a zero-valued record.
type Table map[string]Member

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for id, m := range t {
		out[id] = m
	}
	return out
}
