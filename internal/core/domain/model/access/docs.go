// Package access decides whether an actor may perform a fulfillment operation.
//
// Roles arrive from the identity provider as free-form strings. They are
// normalized once when the Actor is built; matching is case-insensitive and a
// held role satisfies a requirement when it equals it or contains it, so
// "Shipping Manager" satisfies "manager". Any role containing "admin"
// satisfies every requirement unless the policy explicitly excludes one of the
// actor's roles.
package access
