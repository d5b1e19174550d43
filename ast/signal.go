package ast

import "github.com/mavmi/mython-interpreter/runtime"

// returnSignal is the payload a Return node panics with. It is caught
// only by MethodBody.Execute's recover — any other frame that observes
// one re-panics, since that means a Return statement appeared outside
// a method body, which the tree that built it should never allow.
type returnSignal struct {
	value runtime.ObjectHolder
}
