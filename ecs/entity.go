package ecs

import "strconv"

// Entity is a generation-checked handle. IDs start at 1; the zero value is
// never alive.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}
