package entity

// Member represents a Redmine user expected to log time against the tracked project.
type Member struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Roster é o conjunto ordenado de membros de um projeto.
// A ordem da resposta da API é preservada para que a saída seja determinística.
type Roster struct {
	members []Member
	index   map[int]int
}

// NewRoster cria um Roster a partir de uma lista de membros.
// Um ID duplicado mantém a primeira posição e assume o último nome.
func NewRoster(members []Member) Roster {
	r := Roster{
		members: make([]Member, 0, len(members)),
		index:   make(map[int]int, len(members)),
	}
	for _, m := range members {
		if pos, ok := r.index[m.ID]; ok {
			r.members[pos].Name = m.Name
			continue
		}
		r.index[m.ID] = len(r.members)
		r.members = append(r.members, m)
	}
	return r
}

// Members returns a copy of the members in roster order.
func (r Roster) Members() []Member {
	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}

// Len returns the number of distinct members.
func (r Roster) Len() int {
	return len(r.members)
}

// Contains reports whether id belongs to the roster.
func (r Roster) Contains(id int) bool {
	_, ok := r.index[id]
	return ok
}

// Name returns the display name for id.
func (r Roster) Name(id int) (string, bool) {
	pos, ok := r.index[id]
	if !ok {
		return "", false
	}
	return r.members[pos].Name, true
}

// Restrict returns a roster holding only the given ids, in the order of ids.
// Ids that are not part of the roster are dropped. An empty ids list returns
// the roster unchanged.
func (r Roster) Restrict(ids []int) Roster {
	if len(ids) == 0 {
		return r
	}
	selected := make([]Member, 0, len(ids))
	for _, id := range ids {
		if pos, ok := r.index[id]; ok {
			selected = append(selected, r.members[pos])
		}
	}
	return NewRoster(selected)
}
