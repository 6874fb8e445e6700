// Package namespace derives the storage namespace for an authenticated user.
package namespace

// DefaultPrefix is the namespace prefix used when none is configured.
const DefaultPrefix = "storserv"

// Resolver maps usernames onto storage namespaces. The mapping is a pure
// deterministic function: equal usernames share a namespace, distinct ones
// never do. It is consulted only at login time; on the data path the
// namespace comes from the validated token claim, never from request input.
type Resolver struct {
	prefix string
}

func NewResolver(prefix string) *Resolver {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Resolver{prefix: prefix}
}

// NamespaceFor returns the namespace owned by the given username.
func (r *Resolver) NamespaceFor(username string) string {
	return r.prefix + "-" + username
}
