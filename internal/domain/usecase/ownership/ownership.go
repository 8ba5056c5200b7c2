package ownership

// Owned is implemented by any resource that records its owning user
type Owned interface {
	OwnerID() uint64
}

// Require fetches an id-addressed resource and checks it against the caller.
// An absent row surfaces the repository's not-found error unchanged; a row
// owned by someone else answers the same notFound sentinel, so the caller can
// never learn whether a foreign row exists. Every id-addressed Get, Update
// and Delete across both resource types goes through here.
func Require[T Owned](fetch func() (T, error), callerID uint64, notFound error) (T, error) {
	var zero T

	resource, err := fetch()
	if err != nil {
		return zero, err
	}

	if resource.OwnerID() != callerID {
		return zero, notFound
	}

	return resource, nil
}
