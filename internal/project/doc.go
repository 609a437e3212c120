// Package project models the authoring tool's object tree and decodes it
// from work-unit XML files (.wwu). The tree is the input of the reverse
// compiler and the source the object registry is built from.
package project
