package domain

// SubListCap is the maximum length of every capped sub-entity list
// (zones, reviews, offers, topics, images, sources).
const SubListCap = 20

// identified is implemented by every sub-entity that carries a generated
// shortid.
type identified interface {
	EntityID() string
}

// Tail returns the most recently appended max elements of list, dropping
// from the front. The list is returned unchanged when it fits.
func Tail[T any](list []T, max int) []T {
	if len(list) <= max {
		return list
	}
	return list[len(list)-max:]
}

// indexByID returns the position of the sub-entity with the given shortid,
// or -1 when absent.
func indexByID[T identified](list []T, id string) int {
	for i := range list {
		if list[i].EntityID() == id {
			return i
		}
	}
	return -1
}

// removeByID filters out the sub-entity with the given shortid. Removing an
// absent id is a no-op.
func removeByID[T identified](list []T, id string) []T {
	out := list[:0]
	for _, el := range list {
		if el.EntityID() != id {
			out = append(out, el)
		}
	}
	return out
}
