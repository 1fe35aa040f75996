// Package domain contains the core entities exchanged between the requirement
// collector, the area calculator and the search and summary clients. Values
// are built once per submission and never mutated afterwards, so they are safe
// to share across goroutines.
package domain
