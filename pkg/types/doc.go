// Package types defines the rendering configuration and the serialisable node
// record shared by the treelib loader, renderer and CLI.
package types
