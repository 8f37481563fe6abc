//go:build hcdebug

package hashcontainer

const debugChecks = true
