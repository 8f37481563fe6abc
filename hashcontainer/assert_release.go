//go:build !hcdebug

package hashcontainer

const debugChecks = false
