// Package registry maps model kinds to creation strategies and dispatches
// create calls to them.
//
// A Registry is built once at setup time, registered against, and then
// treated as immutable: registrations are one-shot per kind, so a fixture
// table cannot be silently overridden later. It holds the backend client and
// passes it to whichever strategy a create call resolves to.
//
// Two registration forms exist. RegisterModel installs the default strategy,
// a creator bound to an endpoint and transform. RegisterCallback installs an
// arbitrary strategy function for kinds whose creation does not fit the
// one-POST-per-model shape. Both forms share the kind namespace.
//
// The registry itself never logs, retries, or rewrites errors; whatever a
// strategy returns is handed back unchanged.
package registry
