package catalog

import "github.com/google/uuid"

// IDHashNamespace scopes content-addressed disc IDs. Changing it changes
// every derived ID, so re-imports would no longer match stored discs.
var IDHashNamespace = uuid.MustParse("1b671a64-40d5-491e-99b0-da01ff1f3341")

// Hasher derives deterministic IDs within a fixed namespace.
type Hasher struct {
	namespace uuid.UUID
}

// NewHasher returns a Hasher scoped to namespace.
func NewHasher(namespace uuid.UUID) Hasher {
	return Hasher{namespace: namespace}
}

// Namespace returns the namespace the Hasher was built with.
func (h Hasher) Namespace() uuid.UUID { return h.namespace }

// Hash returns the version 5 UUID of seed in the Hasher's namespace.
//
// Postcondition: equal seeds always produce equal IDs.
func (h Hasher) Hash(seed string) string {
	return uuid.NewSHA1(h.namespace, []byte(seed)).String()
}

var defaultHasher = NewHasher(IDHashNamespace)

// HashString returns the content-addressed ID of seed in IDHashNamespace.
func HashString(seed string) string {
	return defaultHasher.Hash(seed)
}

// NewID returns a random version 4 UUID.
func NewID() string {
	return uuid.NewString()
}
