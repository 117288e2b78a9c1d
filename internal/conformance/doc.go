// Package conformance is the scenario suite every binding adapter must pass.
//
// Each Case calls one capability through a bindings.Binding and states what
// it must return, or which error it must fail with. The same cases run
// against every adapter, and Equivalent compares two adapters against each
// other call by call.
package conformance
