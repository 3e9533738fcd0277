package ecs

// entityStore tracks entity generations and free ids.
type entityStore struct {
	gen  []int
	free []int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return Entity{}
	}
	if len(s.free) > 0 {
		id := s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		return Entity{ID: id, Gen: s.gen[id-1]}
	}
	s.gen = append(s.gen, 0)
	return Entity{ID: len(s.gen), Gen: 0}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.ID-1]++
	s.free = append(s.free, e.ID)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.gen[e.ID-1] == e.Gen
}

func (s *entityStore) alive() []Entity {
	if s == nil {
		return nil
	}
	free := make(map[int]struct{}, len(s.free))
	for _, id := range s.free {
		free[id] = struct{}{}
	}
	out := make([]Entity, 0, len(s.gen)-len(s.free))
	for i, g := range s.gen {
		if _, ok := free[i+1]; ok {
			continue
		}
		out = append(out, Entity{ID: i + 1, Gen: g})
	}
	return out
}
